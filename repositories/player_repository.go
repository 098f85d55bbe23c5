package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/tennis-finals/models"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerConflict = errors.New("player name already registered")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.PlayerRecord) error
	GetByName(ctx context.Context, name string) (*models.PlayerRecord, error)
	// List returns players by rating, then level (both descending), then name.
	List(ctx context.Context) ([]*models.PlayerRecord, error)
	// Update applies the non-nil profile fields and returns the stored record.
	Update(ctx context.Context, name string, changes models.PlayerChanges) (*models.PlayerRecord, error)
	// AdjustStats adds delta to the stored counters in one write, so
	// concurrent adjustments never overwrite each other.
	AdjustStats(ctx context.Context, name string, delta models.StatsDelta) error
	Delete(ctx context.Context, name string) error
}

type postgresPlayerRepository struct {
	db SQLExecutor
}

func NewPostgresPlayerRepository(db SQLExecutor) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.PlayerRecord) error {
	query := `
		INSERT INTO players (name, level, rating, tournaments_played, total_wins, total_losses)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING registered_at`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.Level,
		player.Rating,
		player.TournamentsPlayed,
		player.TotalWins,
		player.TotalLosses,
	).Scan(&player.RegisteredAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPlayerConflict
		}
		return fmt.Errorf("failed to insert player %q: %w", player.Name, err)
	}
	return nil
}

func (r *postgresPlayerRepository) scanPlayer(row interface{ Scan(...interface{}) error }) (*models.PlayerRecord, error) {
	var p models.PlayerRecord
	err := row.Scan(
		&p.Name,
		&p.Level,
		&p.Rating,
		&p.TournamentsPlayed,
		&p.TotalWins,
		&p.TotalLosses,
		&p.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresPlayerRepository) GetByName(ctx context.Context, name string) (*models.PlayerRecord, error) {
	query := `
		SELECT name, level, rating, tournaments_played, total_wins, total_losses, registered_at
		FROM players
		WHERE name = $1`

	player, err := r.scanPlayer(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player %q: %w", name, err)
	}
	return player, nil
}

func (r *postgresPlayerRepository) List(ctx context.Context) ([]*models.PlayerRecord, error) {
	query := `
		SELECT name, level, rating, tournaments_played, total_wins, total_losses, registered_at
		FROM players
		ORDER BY rating DESC, level DESC, name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]*models.PlayerRecord, 0)
	for rows.Next() {
		player, scanErr := r.scanPlayer(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", scanErr)
		}
		players = append(players, player)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", err)
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, name string, changes models.PlayerChanges) (*models.PlayerRecord, error) {
	query := `
		UPDATE players
		SET level = COALESCE($2::double precision, level),
		    rating = COALESCE($3::integer, rating)
		WHERE name = $1
		RETURNING name, level, rating, tournaments_played, total_wins, total_losses, registered_at`

	player, err := r.scanPlayer(r.db.QueryRowContext(ctx, query, name, changes.Level, changes.Rating))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player %q: %w", name, err)
	}
	return player, nil
}

func (r *postgresPlayerRepository) AdjustStats(ctx context.Context, name string, delta models.StatsDelta) error {
	query := `
		UPDATE players
		SET rating = rating + $2,
		    tournaments_played = tournaments_played + $3,
		    total_wins = total_wins + $4,
		    total_losses = total_losses + $5
		WHERE name = $1`

	result, err := r.db.ExecContext(ctx, query, name, delta.Rating, delta.TournamentsPlayed, delta.Wins, delta.Losses)
	if err != nil {
		return fmt.Errorf("failed to adjust stats of player %q: %w", name, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete player %q: %w", name, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

type memoryPlayerRepository struct {
	mu      sync.RWMutex
	players map[string]models.PlayerRecord
	now     func() time.Time
}

func NewMemoryPlayerRepository() PlayerRepository {
	return &memoryPlayerRepository{
		players: make(map[string]models.PlayerRecord),
		now:     time.Now,
	}
}

func (r *memoryPlayerRepository) Create(ctx context.Context, player *models.PlayerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[player.Name]; ok {
		return ErrPlayerConflict
	}
	player.RegisteredAt = r.now()
	r.players[player.Name] = *player
	return nil
}

func (r *memoryPlayerRepository) GetByName(ctx context.Context, name string) (*models.PlayerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[name]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return &p, nil
}

func (r *memoryPlayerRepository) List(ctx context.Context) ([]*models.PlayerRecord, error) {
	r.mu.RLock()
	players := make([]*models.PlayerRecord, 0, len(r.players))
	for _, p := range r.players {
		p := p
		players = append(players, &p)
	}
	r.mu.RUnlock()

	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		return a.Name < b.Name
	})
	return players, nil
}

func (r *memoryPlayerRepository) Update(ctx context.Context, name string, changes models.PlayerChanges) (*models.PlayerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[name]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	if changes.Level != nil {
		p.Level = *changes.Level
	}
	if changes.Rating != nil {
		p.Rating = *changes.Rating
	}
	r.players[name] = p
	return &p, nil
}

func (r *memoryPlayerRepository) AdjustStats(ctx context.Context, name string, delta models.StatsDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[name]
	if !ok {
		return ErrPlayerNotFound
	}
	p.Rating += delta.Rating
	p.TournamentsPlayed += delta.TournamentsPlayed
	p.TotalWins += delta.Wins
	p.TotalLosses += delta.Losses
	r.players[name] = p
	return nil
}

func (r *memoryPlayerRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[name]; !ok {
		return ErrPlayerNotFound
	}
	delete(r.players, name)
	return nil
}
