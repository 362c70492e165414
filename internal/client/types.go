package client

// ChatRequest is the JSON body sent to POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the JSON body returned by POST /api/chat. Response carries
// the raw assistant text handed to the classifier.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// UserProfile represents the response from /api/user/profile.
type UserProfile struct {
	Name      string  `json:"name"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	HeightCm  float64 `json:"height"`
	WeightKg  float64 `json:"weight"`
	BloodType string  `json:"bloodType"`
}

// BloodTest represents one entry from /api/health/blood-tests. Results is
// keyed by test name (glucose, cholesterolTotal, ...).
type BloodTest struct {
	Date    string                     `json:"date"`
	Results map[string]BloodTestResult `json:"results"`
}

// BloodTestResult holds a single blood-test measurement.
type BloodTestResult struct {
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	NormalRange string  `json:"normalRange"`
	Status      string  `json:"status"`
}

// VitalsRecord represents one entry from /api/health/vitals.
type VitalsRecord struct {
	Date             string        `json:"date"`
	BloodPressure    BloodPressure `json:"bloodPressure"`
	HeartRate        VitalReading  `json:"heartRate"`
	OxygenSaturation VitalReading  `json:"oxygenSaturation"`
	Temperature      VitalReading  `json:"temperature"`
}

// BloodPressure holds a systolic/diastolic pair with its status.
type BloodPressure struct {
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	Status    string `json:"status"`
}

// VitalReading holds a single vital-sign measurement.
type VitalReading struct {
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Status string  `json:"status"`
}

// MedicalEvent represents one entry from /api/health/medical-history.
type MedicalEvent struct {
	Date      string `json:"date"`
	Condition string `json:"condition"`
	Notes     string `json:"notes"`
}
