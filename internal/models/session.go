package models

import "time"

// Session is one pairing round between two teams, addressed by its short code.
type Session struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	TournamentID   string    `json:"tournament_id"`
	YourTeamID     string    `json:"your_team_id"`
	OpponentTeamID string    `json:"opponent_team_id"`
	RoundNumber    int       `json:"round_number"`
	RoundName      string    `json:"round_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// SessionMatrices lists every score matrix submitted to a session
type SessionMatrices struct {
	SessionCode    string                        `json:"session_code"`
	Matrices       map[string]map[string]float64 `json:"matrices"`
	SubmittedCount int                           `json:"submitted_count"`
}

// MatrixSubmitted acknowledges a matrix submission.
type MatrixSubmitted struct {
	Message        string `json:"message"`
	Player         string `json:"player"`
	TotalSubmitted int    `json:"total_submitted"`
}
