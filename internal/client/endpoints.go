package client

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	endpointChat           = "/api/chat"
	endpointHealth         = "/api/health"
	endpointProfile        = "/api/user/profile"
	endpointVitals         = "/api/health/vitals"
	endpointBloodTests     = "/api/health/blood-tests"
	endpointMedicalHistory = "/api/health/medical-history"
)

// Chat sends one user message to POST /api/chat and returns the raw assistant
// reply text. The configured session identifier is attached to every request
// so the agent can correlate the conversation server-side.
func (c *DefaultClient) Chat(ctx context.Context, message string) (string, error) {
	payload := ChatRequest{
		Message:   message,
		SessionID: c.config.SessionID,
	}

	body, err := c.doPost(ctx, endpointChat, payload)
	if err != nil {
		return "", fmt.Errorf("Chat: %w", err)
	}

	var result ChatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("Chat decode: %w", err)
	}
	return result.Response, nil
}

// GetProfile fetches the user profile from /api/user/profile.
func (c *DefaultClient) GetProfile(ctx context.Context) (*UserProfile, error) {
	body, err := c.doGet(ctx, endpointProfile)
	if err != nil {
		return nil, fmt.Errorf("GetProfile: %w", err)
	}

	var result UserProfile
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetProfile decode: %w", err)
	}
	return &result, nil
}

// GetVitals fetches vital-sign records from /api/health/vitals, most recent
// first.
func (c *DefaultClient) GetVitals(ctx context.Context) ([]VitalsRecord, error) {
	body, err := c.doGet(ctx, endpointVitals)
	if err != nil {
		return nil, fmt.Errorf("GetVitals: %w", err)
	}

	var result []VitalsRecord
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetVitals decode: %w", err)
	}
	return result, nil
}

// GetBloodTests fetches blood-test records from /api/health/blood-tests,
// most recent first.
func (c *DefaultClient) GetBloodTests(ctx context.Context) ([]BloodTest, error) {
	body, err := c.doGet(ctx, endpointBloodTests)
	if err != nil {
		return nil, fmt.Errorf("GetBloodTests: %w", err)
	}

	var result []BloodTest
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetBloodTests decode: %w", err)
	}
	return result, nil
}

// GetMedicalHistory fetches past conditions from /api/health/medical-history.
func (c *DefaultClient) GetMedicalHistory(ctx context.Context) ([]MedicalEvent, error) {
	body, err := c.doGet(ctx, endpointMedicalHistory)
	if err != nil {
		return nil, fmt.Errorf("GetMedicalHistory: %w", err)
	}

	var result []MedicalEvent
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetMedicalHistory decode: %w", err)
	}
	return result, nil
}
