package engine

import (
	"context"

	"github.com/dm/vita/internal/client"
)

// MockAgentClient implements client.AgentClient for testing.
type MockAgentClient struct {
	ChatFn           func(ctx context.Context, message string) (string, error)
	ProfileFn        func(ctx context.Context) (*client.UserProfile, error)
	VitalsFn         func(ctx context.Context) ([]client.VitalsRecord, error)
	BloodTestsFn     func(ctx context.Context) ([]client.BloodTest, error)
	MedicalHistoryFn func(ctx context.Context) ([]client.MedicalEvent, error)
}

func (m *MockAgentClient) Chat(ctx context.Context, message string) (string, error) {
	if m.ChatFn != nil {
		return m.ChatFn(ctx, message)
	}
	return "I'm your health assistant.", nil
}

func (m *MockAgentClient) GetProfile(ctx context.Context) (*client.UserProfile, error) {
	if m.ProfileFn != nil {
		return m.ProfileFn(ctx)
	}
	return &client.UserProfile{Name: "Test User", Age: 40}, nil
}

func (m *MockAgentClient) GetVitals(ctx context.Context) ([]client.VitalsRecord, error) {
	if m.VitalsFn != nil {
		return m.VitalsFn(ctx)
	}
	return []client.VitalsRecord{}, nil
}

func (m *MockAgentClient) GetBloodTests(ctx context.Context) ([]client.BloodTest, error) {
	if m.BloodTestsFn != nil {
		return m.BloodTestsFn(ctx)
	}
	return []client.BloodTest{}, nil
}

func (m *MockAgentClient) GetMedicalHistory(ctx context.Context) ([]client.MedicalEvent, error) {
	if m.MedicalHistoryFn != nil {
		return m.MedicalHistoryFn(ctx)
	}
	return []client.MedicalEvent{}, nil
}

func (m *MockAgentClient) Ping(ctx context.Context) error {
	return nil
}

func (m *MockAgentClient) BaseURL() string {
	return "http://mock:8000"
}

func (m *MockAgentClient) SessionID() string {
	return "sess-mock"
}
