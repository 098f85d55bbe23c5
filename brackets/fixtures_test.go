package brackets

import (
	"testing"

	"github.com/Dosada05/tennis-finals/models"
)

// seededEntrants orders players so the snake draft puts P1..P4 in group A
// and Q1..Q4 in group B.
func seededEntrants() []models.Player {
	names := []string{"P1", "Q1", "Q2", "P2", "P3", "Q3", "Q4", "P4"}
	entrants := make([]models.Player, len(names))
	for i, n := range names {
		entrants[i] = models.Player{Name: n, Level: 3.5}
	}
	return entrants
}

func newTestTournament(t *testing.T, cfg models.ScheduleConfig) *models.Tournament {
	t.Helper()
	tournament, err := NewTournament(seededEntrants(), cfg)
	if err != nil {
		t.Fatalf("NewTournament: %v", err)
	}
	return tournament
}

// lowerNameWins scores a match 6-2 for the alphabetically smaller player.
func lowerNameWins(m *models.Match) models.Score {
	if m.Player1 < m.Player2 {
		return models.Score{6, 2}
	}
	return models.Score{2, 6}
}

func playGroups(tournament *models.Tournament) {
	for _, m := range tournament.GroupMatches() {
		m.SetScore(lowerNameWins(m))
	}
}
