package services

import (
	"errors"
	"testing"

	"github.com/Dosada05/tennis-finals/brackets"
	"github.com/Dosada05/tennis-finals/models"
)

func fixtureTournament(t *testing.T) *models.Tournament {
	t.Helper()
	names := []string{"Alice", "Cora", "Dina", "Bob", "Evan", "Gus", "Hana", "Finn"}
	entrants := make([]models.Player, len(names))
	for i, n := range names {
		entrants[i] = models.Player{Name: n}
	}
	tournament, err := brackets.NewTournament(entrants, models.DefaultScheduleConfig())
	if err != nil {
		t.Fatalf("NewTournament: %v", err)
	}
	return tournament
}

func TestMatchStoreSubmitAndEdit(t *testing.T) {
	store := NewMatchStore(models.DefaultScheduleConfig())
	tournament := fixtureTournament(t)

	result, err := store.SubmitResult(tournament, SubmitResultInput{Player1: "Alice", Player2: "Bob", Score: "6-2", Context: ContextGroup})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	m := result.Match
	if !m.Played || m.Score == nil || m.Winner() != "Alice" {
		t.Fatalf("unexpected match after submit: %+v", *m)
	}
	if result.IsEdit() {
		t.Error("first submission reported as edit")
	}

	before := len(tournament.GroupMatches())
	result, err = store.SubmitResult(tournament, SubmitResultInput{Player1: "Alice", Player2: "Bob", Score: "3-6", Context: ContextGroup})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if result.Match != m {
		t.Error("edit created a new match")
	}
	if m.Winner() != "Bob" || !result.IsEdit() || result.Previous.Winner() != "Alice" {
		t.Errorf("edit not applied in place: %+v", *m)
	}
	if len(tournament.GroupMatches()) != before {
		t.Error("edit changed the number of matches")
	}
}

func TestMatchStoreOrientsScore(t *testing.T) {
	store := NewMatchStore(models.DefaultScheduleConfig())
	tournament := fixtureTournament(t)

	target, err := store.FindMatch(tournament, "Alice", "Bob", ContextGroup)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	first, second := target.Player1, target.Player2

	_, err = store.SubmitResult(tournament, SubmitResultInput{Player1: second, Player2: first, Score: "6-1", Context: ContextGroup})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if *target.Score != (models.Score{1, 6}) || target.Winner() != second {
		t.Errorf("score %v not oriented to match order %s vs %s", *target.Score, first, second)
	}
}

func TestMatchStoreErrors(t *testing.T) {
	store := NewMatchStore(models.DefaultScheduleConfig())
	tournament := fixtureTournament(t)

	tests := []struct {
		name  string
		input SubmitResultInput
		want  error
	}{
		{"draw", SubmitResultInput{Player1: "Alice", Player2: "Bob", Score: "4-4", Context: ContextGroup}, ErrInvalidScore},
		{"garbage score", SubmitResultInput{Player1: "Alice", Player2: "Bob", Score: "abc", Context: ContextGroup}, ErrInvalidScore},
		{"players in different groups", SubmitResultInput{Player1: "Alice", Player2: "Cora", Score: "6-2", Context: ContextGroup}, ErrMatchNotFound},
		{"unknown player", SubmitResultInput{Player1: "Alice", Player2: "Zed", Score: "6-2"}, ErrMatchNotFound},
		{"no bracket yet", SubmitResultInput{Player1: "Alice", Player2: "Bob", Score: "6-2", Context: ContextFinal}, ErrMatchNotFound},
		{"missing name", SubmitResultInput{Player1: "", Player2: "Bob", Score: "6-2"}, ErrMatchNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SubmitResult(tournament, tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
	for _, m := range tournament.AllMatches() {
		if m.Played {
			t.Errorf("failed submission wrote %s", m.ID)
		}
	}
}

func TestMatchStoreAmbiguousContext(t *testing.T) {
	store := NewMatchStore(models.DefaultScheduleConfig())
	tournament := fixtureTournament(t)
	tournament.Bracket = &models.Bracket{
		Final: &models.Match{ID: brackets.FinalID, Player1: "Alice", Player2: "Bob", Stage: models.StageFinal},
	}

	if _, err := store.FindMatch(tournament, "Bob", "Alice", ContextAny); !errors.Is(err, ErrAmbiguousMatch) {
		t.Fatalf("got %v, want ErrAmbiguousMatch", err)
	}
	m, err := store.FindMatch(tournament, "Bob", "Alice", ContextFinal)
	if err != nil || m.ID != brackets.FinalID {
		t.Fatalf("final context: %v, %v", m, err)
	}
	m, err = store.FindMatch(tournament, "Bob", "Alice", ContextGroup)
	if err != nil || !m.Stage.IsGroup() {
		t.Fatalf("group context: %v, %v", m, err)
	}
}

func TestParseMatchContext(t *testing.T) {
	for raw, want := range map[string]MatchContext{
		"":            ContextAny,
		"any":         ContextAny,
		"group":       ContextGroup,
		"Semifinal":   ContextSemifinal,
		"final":       ContextFinal,
		"third_place": ContextThirdPlace,
	} {
		got, err := ParseMatchContext(raw)
		if err != nil || got != want {
			t.Errorf("ParseMatchContext(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseMatchContext("quarterfinal"); !errors.Is(err, ErrInvalidMatchType) {
		t.Errorf("got %v, want ErrInvalidMatchType", err)
	}
}
