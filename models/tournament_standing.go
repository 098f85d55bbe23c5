package models

// Standing is one derived row of a group table.
type Standing struct {
	Name           string    `json:"name"`
	Seed           int       `json:"seed"`
	Level          float64   `json:"level"`
	Group          GroupName `json:"group"`
	Wins           int       `json:"wins"`
	Losses         int       `json:"losses"`
	GamesWon       int       `json:"games_won"`
	GamesLost      int       `json:"games_lost"`
	GameDifference int       `json:"game_difference"`
}

// Placements is the final podium. Third and fourth are absent when no
// third-place match was played.
type Placements struct {
	Champion    string  `json:"champion"`
	RunnerUp    string  `json:"runner_up"`
	ThirdPlace  *string `json:"third_place"`
	FourthPlace *string `json:"fourth_place"`
}
