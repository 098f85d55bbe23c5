package models

import "time"

const InitialRating = 1000

// PlayerRecord is a registry entry that outlives single tournaments.
type PlayerRecord struct {
	Name              string    `json:"name" db:"name"`
	Level             float64   `json:"level" db:"level"`
	Rating            int       `json:"rating" db:"rating"`
	TournamentsPlayed int       `json:"tournaments_played" db:"tournaments_played"`
	TotalWins         int       `json:"total_wins" db:"total_wins"`
	TotalLosses       int       `json:"total_losses" db:"total_losses"`
	RegisteredAt      time.Time `json:"registered_date" db:"registered_at"`
}

type PlayerStats struct {
	Name              string  `json:"name"`
	Level             float64 `json:"level"`
	Rating            int     `json:"rating"`
	TournamentsPlayed int     `json:"tournaments_played"`
	TotalWins         int     `json:"total_wins"`
	TotalLosses       int     `json:"total_losses"`
	TotalMatches      int     `json:"total_matches"`
	WinRate           float64 `json:"win_rate"`
}

// PlayerChanges is a partial profile edit; nil fields are left as stored.
type PlayerChanges struct {
	Level  *float64
	Rating *int
}

// StatsDelta is added to a stored record in a single write.
type StatsDelta struct {
	Rating            int
	TournamentsPlayed int
	Wins              int
	Losses            int
}

func (d StatsDelta) Add(o StatsDelta) StatsDelta {
	return StatsDelta{
		Rating:            d.Rating + o.Rating,
		TournamentsPlayed: d.TournamentsPlayed + o.TournamentsPlayed,
		Wins:              d.Wins + o.Wins,
		Losses:            d.Losses + o.Losses,
	}
}
