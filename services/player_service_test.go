package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Dosada05/tennis-finals/models"
	"github.com/Dosada05/tennis-finals/repositories"
)

func newPlayerService() (PlayerService, repositories.PlayerRepository) {
	repo := repositories.NewMemoryPlayerRepository()
	return NewPlayerService(repo, discardLogger()), repo
}

func TestRegisterPlayerValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPlayerService()

	p, err := svc.RegisterPlayer(ctx, CreatePlayerInput{Name: "  Nadia ", Level: 5})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.Name != "Nadia" || p.Rating != models.InitialRating {
		t.Errorf("unexpected record: %+v", p)
	}

	tests := []struct {
		name  string
		input CreatePlayerInput
		want  error
	}{
		{"empty name", CreatePlayerInput{Name: " ", Level: 3}, ErrInvalidPlayer},
		{"level too low", CreatePlayerInput{Name: "Ann", Level: 0.5}, ErrInvalidPlayer},
		{"level too high", CreatePlayerInput{Name: "Ann", Level: 11}, ErrInvalidPlayer},
		{"duplicate", CreatePlayerInput{Name: "Nadia", Level: 3}, ErrPlayerExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RegisterPlayer(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateAndDeletePlayer(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPlayerService()
	if _, err := svc.RegisterPlayer(ctx, CreatePlayerInput{Name: "Nadia", Level: 5}); err != nil {
		t.Fatalf("register: %v", err)
	}

	level, rating := 6.5, 1234
	p, err := svc.UpdatePlayer(ctx, "Nadia", UpdatePlayerInput{Level: &level, Rating: &rating})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Level != 6.5 || p.Rating != 1234 {
		t.Errorf("unexpected record: %+v", p)
	}

	negative := -1
	if _, err := svc.UpdatePlayer(ctx, "Nadia", UpdatePlayerInput{Rating: &negative}); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("negative rating: got %v", err)
	}
	if _, err := svc.UpdatePlayer(ctx, "Ghost", UpdatePlayerInput{Level: &level}); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("missing player: got %v", err)
	}

	if err := svc.DeletePlayer(ctx, "Nadia"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeletePlayer(ctx, "Nadia"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("second delete: got %v", err)
	}
}

func TestGetPlayerStats(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPlayerService()
	err := repo.Create(ctx, &models.PlayerRecord{Name: "Nadia", Level: 4, Rating: 1200, TournamentsPlayed: 2, TotalWins: 2, TotalLosses: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, &models.PlayerRecord{Name: "Rookie", Level: 2, Rating: 1000}); err != nil {
		t.Fatalf("create: %v", err)
	}

	stats, err := svc.GetPlayerStats(ctx, "Nadia")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalMatches != 3 || stats.WinRate != 66.7 || stats.TournamentsPlayed != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	stats, _ = svc.GetPlayerStats(ctx, "Rookie")
	if stats.WinRate != 0 || stats.TotalMatches != 0 {
		t.Errorf("rookie stats: %+v", stats)
	}
	if _, err := svc.GetPlayerStats(ctx, "Ghost"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("missing player: got %v", err)
	}
}

func TestSelectEntrants(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPlayerService()
	if err := repo.Create(ctx, &models.PlayerRecord{Name: "Ace", Level: 5, Rating: 1500}); err != nil {
		t.Fatalf("create: %v", err)
	}

	entrants, err := svc.SelectEntrants(ctx, 8)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(entrants) != 8 {
		t.Fatalf("got %d entrants", len(entrants))
	}
	if entrants[0].Name != "Ace" || entrants[0].Seed != 1 || entrants[7].Seed != 8 {
		t.Errorf("unexpected seeding: %+v", entrants)
	}
	all, _ := svc.ListPlayers(ctx)
	if len(all) != len(DefaultRoster)+1 {
		t.Errorf("registry has %d players, want %d", len(all), len(DefaultRoster)+1)
	}

	if _, err := svc.SelectEntrants(ctx, 20); !errors.Is(err, ErrNotEnoughPlayers) {
		t.Errorf("oversized draw: got %v", err)
	}
}

func TestApplyResultSkipsUnknownPlayers(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPlayerService()
	if err := repo.Create(ctx, &models.PlayerRecord{Name: "Nadia", Level: 4, Rating: 1000}); err != nil {
		t.Fatalf("create: %v", err)
	}

	m := &models.Match{Player1: "Nadia", Player2: "Guest"}
	m.SetScore(models.Score{6, 1})
	if err := svc.ApplyResult(ctx, &models.Match{Player1: "Nadia", Player2: "Guest"}, m); err != nil {
		t.Fatalf("apply: %v", err)
	}
	p, _ := repo.GetByName(ctx, "Nadia")
	if p.Rating != 1000+winnerPoints || p.TotalWins != 1 {
		t.Errorf("unexpected record: %+v", p)
	}

	// the same outcome again leaves the record unchanged
	if err := svc.ApplyResult(ctx, m.Clone(), m); err != nil {
		t.Fatalf("re-apply: %v", err)
	}
	p, _ = repo.GetByName(ctx, "Nadia")
	if p.Rating != 1000+winnerPoints || p.TotalWins != 1 {
		t.Errorf("record changed by an identical edit: %+v", p)
	}
}

func TestConcurrentProfileEditsKeepResults(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPlayerService()
	for _, name := range []string{"Nadia", "Olga"} {
		if err := repo.Create(ctx, &models.PlayerRecord{Name: name, Level: 4, Rating: 1000}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	const rounds = 40
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			m := &models.Match{Player1: "Nadia", Player2: "Olga"}
			m.SetScore(models.Score{6, 2})
			if err := svc.ApplyResult(ctx, nil, m); err != nil {
				t.Errorf("apply: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := svc.RecordTournamentPlayed(ctx, []string{"Nadia", "Olga"}); err != nil {
				t.Errorf("record: %v", err)
			}
		}()
		go func(i int) {
			defer wg.Done()
			level := 4 + float64(i%2)
			if _, err := svc.UpdatePlayer(ctx, "Nadia", UpdatePlayerInput{Level: &level}); err != nil {
				t.Errorf("update: %v", err)
			}
		}(i)
	}
	wg.Wait()

	nadia, _ := repo.GetByName(ctx, "Nadia")
	if nadia.Rating != 1000+rounds*winnerPoints || nadia.TotalWins != rounds || nadia.TournamentsPlayed != rounds {
		t.Errorf("winner lost updates: %+v", nadia)
	}
	if nadia.Level != 4 && nadia.Level != 5 {
		t.Errorf("level = %v", nadia.Level)
	}
	olga, _ := repo.GetByName(ctx, "Olga")
	if olga.Rating != 1000-rounds*loserPoints || olga.TotalLosses != rounds || olga.TournamentsPlayed != rounds {
		t.Errorf("loser lost updates: %+v", olga)
	}
}
