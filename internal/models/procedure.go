package models

// Procedure is an administrative walkthrough shown to students.
type Procedure struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}
