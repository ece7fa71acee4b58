package models

type CreatePlayerRequest struct {
	Name      string `json:"name" validate:"required,max=64"`
	Army      string `json:"army" validate:"max=128"`
	Archetype string `json:"archetype" validate:"max=64"`
}

type CreateTeamRequest struct {
	Name    string                `json:"name" validate:"required,max=128"`
	Players []CreatePlayerRequest `json:"players" validate:"required,min=3,unique=Name,dive"`
}

type CreateTournamentRequest struct {
	Name  string              `json:"name" validate:"required,max=128"`
	Teams []CreateTeamRequest `json:"teams" validate:"required,min=2,unique=Name,dive"`
}

type CreateSessionRequest struct {
	TournamentID   string `json:"tournament_id" validate:"required"`
	YourTeamID     string `json:"your_team_id" validate:"required"`
	OpponentTeamID string `json:"opponent_team_id" validate:"required,nefield=YourTeamID"`
	RoundNumber    int    `json:"round_number" validate:"omitempty,min=1"`
	RoundName      string `json:"round_name" validate:"max=64"`
}

// MatrixInput is one player's predicted scores (0-20) against each opponent.
type MatrixInput struct {
	PlayerName string             `json:"player_name" validate:"required"`
	Matrix     map[string]float64 `json:"matrix" validate:"required,min=1,dive,keys,required,endkeys,gte=0,lte=20"`
}

// RecommendationRequest describes the commitments known so far in a round.
type RecommendationRequest struct {
	DecisionType         string   `json:"decision_type" validate:"required,oneof=pick_defender pick_attackers pick_defender_matchup"`
	UnpairedYourTeam     []string `json:"unpaired_your_team" validate:"required,min=1,dive,required"`
	UnpairedOpponentTeam []string `json:"unpaired_opponent_team" validate:"required,min=1,dive,required"`
	OpponentDefender     string   `json:"opponent_defender,omitempty"`
	OpponentAttackers    []string `json:"opponent_attackers,omitempty"`
	YourDefender         string   `json:"your_defender,omitempty"`
}
