package model

import (
	"time"

	"github.com/dm/vita/internal/client"
)

// Overview holds the health-data snapshot fetched once at startup to dress
// the UI: who the user is and their latest records.
type Overview struct {
	Profile        client.UserProfile
	Vitals         []client.VitalsRecord
	BloodTests     []client.BloodTest
	MedicalHistory []client.MedicalEvent
	FetchedAt      time.Time
}

// VitalCard holds display-ready data for one card in the overview bar.
// Status carries the agent's qualitative reading (normal, elevated, ...) and
// selects the card's color.
type VitalCard struct {
	Label  string
	Value  string
	Status string
}
