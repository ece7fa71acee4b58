package models

import "time"

// Player is a roster member. Army and Archetype are free-form labels.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Army      string `json:"army,omitempty"`
	Archetype string `json:"archetype,omitempty"`
}

// Team is an ordered roster.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// Tournament groups the teams that can be paired against each other
type Tournament struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Teams     []Team    `json:"teams"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerNames returns the roster in order.
func (t *Team) PlayerNames() []string {
	names := make([]string, len(t.Players))
	for i, p := range t.Players {
		names[i] = p.Name
	}
	return names
}
