// Package engine fetches and derives the health-data overview shown around
// the chat transcript. It owns no UI state: everything here is either a
// context-aware fetch or a pure derivation.
package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm/vita/internal/client"
	"github.com/dm/vita/internal/model"
)

// FetchOverview calls the profile, vitals, and blood-test endpoints
// concurrently. If any of the three fails, FetchOverview returns the first
// error. Medical history is non-fatal (older agent deployments do not expose
// it); on error the field is left nil.
func FetchOverview(ctx context.Context, c client.AgentClient) (*model.Overview, error) {
	var (
		profile *client.UserProfile
		vitals  []client.VitalsRecord
		tests   []client.BloodTest
		history []client.MedicalEvent
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		profile, err = c.GetProfile(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		vitals, err = c.GetVitals(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		tests, err = c.GetBloodTests(gctx)
		return err
	})

	// Medical history runs outside the errgroup so its failure or slowness
	// never blocks the core three. Uses the parent ctx (not gctx) so the
	// request is not prematurely cancelled when the core requests complete.
	// The buffered channel prevents a goroutine leak regardless of whether
	// the result is consumed.
	histCh := make(chan []client.MedicalEvent, 1)
	go func() {
		h, err := c.GetMedicalHistory(ctx)
		if err != nil {
			histCh <- nil
			return
		}
		histCh <- h
	}()

	if err := g.Wait(); err != nil {
		return nil, err
	}

	select {
	case history = <-histCh:
	case <-ctx.Done():
	}

	if profile == nil {
		return nil, fmt.Errorf("FetchOverview: incomplete response (unexpected nil)")
	}

	return &model.Overview{
		Profile:        *profile,
		Vitals:         vitals,
		BloodTests:     tests,
		MedicalHistory: history,
		FetchedAt:      time.Now(),
	}, nil
}
