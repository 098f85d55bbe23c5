package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Dosada05/tennis-finals/models"
	"github.com/Dosada05/tennis-finals/repositories"
	"golang.org/x/sync/errgroup"
)

const (
	minLevel     = 1.0
	maxLevel     = 10.0
	winnerPoints = 100
	loserPoints  = 50
)

// DefaultRoster seeds an empty registry so a tournament can always be drawn.
var DefaultRoster = []CreatePlayerInput{
	{Name: "Masha", Level: 4},
	{Name: "Oleksandr", Level: 4},
	{Name: "Yaroslav", Level: 3.5},
	{Name: "Vova", Level: 3.5},
	{Name: "Alex", Level: 3.5},
	{Name: "Igor", Level: 4},
	{Name: "Jonathan", Level: 4},
	{Name: "Oleg", Level: 3.5},
	{Name: "Vito", Level: 3.5},
	{Name: "Florian", Level: 3.5},
}

type PlayerService interface {
	RegisterPlayer(ctx context.Context, input CreatePlayerInput) (*models.PlayerRecord, error)
	GetPlayer(ctx context.Context, name string) (*models.PlayerRecord, error)
	ListPlayers(ctx context.Context) ([]*models.PlayerRecord, error)
	UpdatePlayer(ctx context.Context, name string, input UpdatePlayerInput) (*models.PlayerRecord, error)
	DeletePlayer(ctx context.Context, name string) error
	GetPlayerStats(ctx context.Context, name string) (*models.PlayerStats, error)

	// SelectEntrants returns the top count players in seed order. The
	// default roster is registered first when the registry is too small.
	SelectEntrants(ctx context.Context, count int) ([]models.Player, error)
	RecordTournamentPlayed(ctx context.Context, players []string) error
	// ApplyResult moves ratings from the previous outcome of a match to its
	// current one.
	ApplyResult(ctx context.Context, previous, current *models.Match) error
}

type CreatePlayerInput struct {
	Name  string  `json:"name"`
	Level float64 `json:"level"`
}

type UpdatePlayerInput struct {
	Level  *float64 `json:"level,omitempty"`
	Rating *int     `json:"rating,omitempty"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	logger     *slog.Logger
	now        func() time.Time
}

func NewPlayerService(playerRepo repositories.PlayerRepository, logger *slog.Logger) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func validateLevel(level float64) error {
	if level < minLevel || level > maxLevel {
		return fmt.Errorf("%w: level must be between %.0f and %.0f", ErrInvalidPlayer, minLevel, maxLevel)
	}
	return nil
}

func (s *playerService) RegisterPlayer(ctx context.Context, input CreatePlayerInput) (*models.PlayerRecord, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidPlayer)
	}
	if err := validateLevel(input.Level); err != nil {
		return nil, err
	}

	player := &models.PlayerRecord{
		Name:         name,
		Level:        input.Level,
		Rating:       models.InitialRating,
		RegisteredAt: s.now().UTC(),
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerConflict) {
			return nil, fmt.Errorf("%w: %s", ErrPlayerExists, name)
		}
		return nil, fmt.Errorf("failed to register player %s: %w", name, err)
	}
	return player, nil
}

func (s *playerService) GetPlayer(ctx context.Context, name string) (*models.PlayerRecord, error) {
	player, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
		}
		return nil, fmt.Errorf("failed to get player %s: %w", name, err)
	}
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context) ([]*models.PlayerRecord, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if players == nil {
		return []*models.PlayerRecord{}, nil
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, name string, input UpdatePlayerInput) (*models.PlayerRecord, error) {
	if input.Level != nil {
		if err := validateLevel(*input.Level); err != nil {
			return nil, err
		}
	}
	if input.Rating != nil && *input.Rating < 0 {
		return nil, fmt.Errorf("%w: rating cannot be negative", ErrInvalidPlayer)
	}

	player, err := s.playerRepo.Update(ctx, name, models.PlayerChanges{Level: input.Level, Rating: input.Rating})
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
		}
		return nil, fmt.Errorf("failed to update player %s: %w", name, err)
	}
	return player, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, name string) error {
	if err := s.playerRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
		}
		return fmt.Errorf("failed to delete player %s: %w", name, err)
	}
	return nil
}

func (s *playerService) GetPlayerStats(ctx context.Context, name string) (*models.PlayerStats, error) {
	player, err := s.GetPlayer(ctx, name)
	if err != nil {
		return nil, err
	}
	return statsFor(player), nil
}

func statsFor(p *models.PlayerRecord) *models.PlayerStats {
	total := p.TotalWins + p.TotalLosses
	winRate := 0.0
	if total > 0 {
		winRate = math.Round(float64(p.TotalWins)/float64(total)*1000) / 10
	}
	return &models.PlayerStats{
		Name:              p.Name,
		Level:             p.Level,
		Rating:            p.Rating,
		TournamentsPlayed: p.TournamentsPlayed,
		TotalWins:         p.TotalWins,
		TotalLosses:       p.TotalLosses,
		TotalMatches:      total,
		WinRate:           winRate,
	}
}

func (s *playerService) SelectEntrants(ctx context.Context, count int) ([]models.Player, error) {
	players, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	if len(players) < count {
		for _, input := range DefaultRoster {
			_, err := s.RegisterPlayer(ctx, input)
			if err != nil && !errors.Is(err, ErrPlayerExists) {
				return nil, err
			}
		}
		if players, err = s.ListPlayers(ctx); err != nil {
			return nil, err
		}
	}
	if len(players) < count {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughPlayers, count, len(players))
	}

	entrants := make([]models.Player, 0, count)
	for i, p := range players[:count] {
		entrants = append(entrants, models.Player{Name: p.Name, Seed: i + 1, Level: p.Level})
	}
	return entrants, nil
}

func (s *playerService) RecordTournamentPlayed(ctx context.Context, players []string) error {
	deltas := make(map[string]models.StatsDelta, len(players))
	for _, name := range players {
		deltas[name] = deltas[name].Add(models.StatsDelta{TournamentsPlayed: 1})
	}
	return s.adjustAll(ctx, deltas)
}

func (s *playerService) ApplyResult(ctx context.Context, previous, current *models.Match) error {
	deltas := make(map[string]models.StatsDelta)
	add := func(name string, d models.StatsDelta) {
		if name != "" {
			deltas[name] = deltas[name].Add(d)
		}
	}

	if previous != nil && previous.Played {
		add(previous.Winner(), models.StatsDelta{Rating: -winnerPoints, Wins: -1})
		add(previous.Loser(), models.StatsDelta{Rating: loserPoints, Losses: -1})
	}
	if current != nil && current.Played {
		add(current.Winner(), models.StatsDelta{Rating: winnerPoints, Wins: 1})
		add(current.Loser(), models.StatsDelta{Rating: -loserPoints, Losses: 1})
	}
	return s.adjustAll(ctx, deltas)
}

// adjustAll writes every delta concurrently. Players missing from the
// registry are skipped; zero deltas are not written.
func (s *playerService) adjustAll(ctx context.Context, deltas map[string]models.StatsDelta) error {
	g, gctx := errgroup.WithContext(ctx)
	for name, delta := range deltas {
		if delta == (models.StatsDelta{}) {
			continue
		}
		name, delta := name, delta
		g.Go(func() error {
			err := s.playerRepo.AdjustStats(gctx, name, delta)
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				s.logger.Warn("player not in registry, stats not updated", slog.String("player", name))
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to update player %s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
