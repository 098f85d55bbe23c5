package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Dosada05/tennis-finals/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// currentTournamentID is the single row holding the live tournament document.
const currentTournamentID = 1

// TournamentRepository persists the tournament aggregate as one document.
type TournamentRepository interface {
	Load(ctx context.Context) (*models.Tournament, error)
	Save(ctx context.Context, tournament *models.Tournament) error
}

type postgresTournamentRepository struct {
	db SQLExecutor
}

func NewPostgresTournamentRepository(db SQLExecutor) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) Load(ctx context.Context) (*models.Tournament, error) {
	query := `SELECT document FROM tournament_state WHERE id = $1`

	var document []byte
	err := r.db.QueryRowContext(ctx, query, currentTournamentID).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament document: %w", err)
	}

	var tournament models.Tournament
	if err := json.Unmarshal(document, &tournament); err != nil {
		return nil, fmt.Errorf("failed to decode tournament document: %w", err)
	}
	return &tournament, nil
}

func (r *postgresTournamentRepository) Save(ctx context.Context, tournament *models.Tournament) error {
	document, err := json.Marshal(tournament)
	if err != nil {
		return fmt.Errorf("failed to encode tournament document: %w", err)
	}

	query := `
		INSERT INTO tournament_state (id, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, currentTournamentID, document); err != nil {
		return fmt.Errorf("failed to save tournament document: %w", err)
	}
	return nil
}

// memoryTournamentRepository keeps the encoded document so callers never
// share pointers with the stored copy.
type memoryTournamentRepository struct {
	mu       sync.RWMutex
	document []byte
}

func NewMemoryTournamentRepository() TournamentRepository {
	return &memoryTournamentRepository{}
}

func (r *memoryTournamentRepository) Load(ctx context.Context) (*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.document == nil {
		return nil, ErrTournamentNotFound
	}
	var tournament models.Tournament
	if err := json.Unmarshal(r.document, &tournament); err != nil {
		return nil, fmt.Errorf("failed to decode tournament document: %w", err)
	}
	return &tournament, nil
}

func (r *memoryTournamentRepository) Save(ctx context.Context, tournament *models.Tournament) error {
	document, err := json.Marshal(tournament)
	if err != nil {
		return fmt.Errorf("failed to encode tournament document: %w", err)
	}
	r.mu.Lock()
	r.document = document
	r.mu.Unlock()
	return nil
}
