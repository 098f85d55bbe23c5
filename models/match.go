package models

import (
	"encoding/json"
	"fmt"
)

// Stage is the typed tag of the tournament phase a match belongs to.
type Stage int

const (
	StageGroupA Stage = iota + 1
	StageGroupB
	StageSemifinal
	StageFinal
	StageThirdPlace
)

var stageLabels = map[Stage]string{
	StageGroupA:     "Group A",
	StageGroupB:     "Group B",
	StageSemifinal:  "Semifinal",
	StageFinal:      "Final",
	StageThirdPlace: "Third Place",
}

func (s Stage) String() string {
	if label, ok := stageLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// IsGroup reports whether the stage is part of the round-robin phase.
func (s Stage) IsGroup() bool {
	return s == StageGroupA || s == StageGroupB
}

// PlayoffType returns the wire name used by clients for playoff stages.
func (s Stage) PlayoffType() PlayoffType {
	switch s {
	case StageSemifinal:
		return PlayoffSemifinal
	case StageFinal:
		return PlayoffFinal
	case StageThirdPlace:
		return PlayoffThirdPlace
	}
	return ""
}

func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Stage) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	for stage, l := range stageLabels {
		if l == label {
			*s = stage
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", label)
}

// StageForGroup maps a group name onto its stage tag.
func StageForGroup(name GroupName) Stage {
	if name == GroupB {
		return StageGroupB
	}
	return StageGroupA
}

type PlayoffType string

const (
	PlayoffSemifinal  PlayoffType = "semifinal"
	PlayoffFinal      PlayoffType = "final"
	PlayoffThirdPlace PlayoffType = "third_place"
)

// Stage returns the stage tag for a playoff type, or false for unknown values.
func (p PlayoffType) Stage() (Stage, bool) {
	switch p {
	case PlayoffSemifinal:
		return StageSemifinal, true
	case PlayoffFinal:
		return StageFinal, true
	case PlayoffThirdPlace:
		return StageThirdPlace, true
	}
	return 0, false
}

// Score holds the literal game counts, oriented as [player1, player2].
type Score [2]int

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s[0], s[1])
}

// Reversed returns the score seen from player2's side.
func (s Score) Reversed() Score {
	return Score{s[1], s[0]}
}

type Match struct {
	ID      string `json:"id"`
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Stage   Stage  `json:"stage"`
	Round   int    `json:"round,omitempty"`
	Time    string `json:"time"`
	Court   int    `json:"court"`
	Score   *Score `json:"score"`
	Played  bool   `json:"played"`
}

// Involves reports whether the named player is one of the two opponents.
func (m *Match) Involves(name string) bool {
	return m.Player1 == name || m.Player2 == name
}

// Between reports whether the match is between a and b in either order.
func (m *Match) Between(a, b string) bool {
	return (m.Player1 == a && m.Player2 == b) || (m.Player1 == b && m.Player2 == a)
}

// SetScore records a result; played and score always change together.
func (m *Match) SetScore(score Score) {
	s := score
	m.Score = &s
	m.Played = true
}

// Winner returns the player with more games. Empty when unplayed.
func (m *Match) Winner() string {
	if !m.Played || m.Score == nil {
		return ""
	}
	if m.Score[0] > m.Score[1] {
		return m.Player1
	}
	return m.Player2
}

// Loser returns the player with fewer games. Empty when unplayed.
func (m *Match) Loser() string {
	if !m.Played || m.Score == nil {
		return ""
	}
	if m.Score[0] > m.Score[1] {
		return m.Player2
	}
	return m.Player1
}

func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	c := *m
	if m.Score != nil {
		s := *m.Score
		c.Score = &s
	}
	return &c
}
