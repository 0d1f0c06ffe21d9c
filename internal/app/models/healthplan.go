package models

// HealthPlan carries the plan's expiration as a calendar date string
// (YYYY-MM-DD); the plan is usable through the end of that day. Status, when
// present, overrides the date comparison entirely.
type HealthPlan struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Operadora string `json:"operadora"`
	Validade  string `json:"validade"`
	Status    string `json:"status,omitempty"`
}
