package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/tennis-finals/brackets"
	"github.com/Dosada05/tennis-finals/models"
	"github.com/Dosada05/tennis-finals/repositories"
	"github.com/Dosada05/tennis-finals/storage"
)

var errSaveFailed = errors.New("disk full")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type flakyTournamentRepo struct {
	repositories.TournamentRepository
	failSave bool
}

func (r *flakyTournamentRepo) Save(ctx context.Context, t *models.Tournament) error {
	if r.failSave {
		return errSaveFailed
	}
	return r.TournamentRepository.Save(ctx, t)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) BroadcastToRoom(roomID string, message interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if msg, ok := message.(brackets.WebSocketMessage); ok && roomID == brackets.TournamentRoom {
		n.events = append(n.events, msg.Type)
	}
}

func (n *recordingNotifier) count(event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, e := range n.events {
		if e == event {
			c++
		}
	}
	return c
}

type recordingUploader struct {
	mu     sync.Mutex
	keys   []string
	bodies [][]byte
}

func (u *recordingUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.keys = append(u.keys, key)
	u.bodies = append(u.bodies, buf.Bytes())
	return &storage.UploadResult{Key: key}, nil
}

func (u *recordingUploader) GetPublicURL(key string) string { return "" }

type testEnv struct {
	svc        *tournamentService
	players    PlayerService
	playerRepo repositories.PlayerRepository
	repo       *flakyTournamentRepo
	notifier   *recordingNotifier
	uploader   *recordingUploader
}

var fixedNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T, cfg models.ScheduleConfig) *testEnv {
	t.Helper()
	env := &testEnv{
		playerRepo: repositories.NewMemoryPlayerRepository(),
		repo:       &flakyTournamentRepo{TournamentRepository: repositories.NewMemoryTournamentRepository()},
		notifier:   &recordingNotifier{},
		uploader:   &recordingUploader{},
	}
	env.players = NewPlayerService(env.playerRepo, discardLogger())
	svc := NewTournamentService(env.repo, env.players, cfg, env.notifier, env.uploader, discardLogger())
	env.svc = svc.(*tournamentService)
	env.svc.now = func() time.Time { return fixedNow }
	return env
}

// seedRegistry registers players with descending ratings so the draw puts
// P1..P4 in group A and Q1..Q4 in group B.
func (e *testEnv) seedRegistry(t *testing.T) {
	t.Helper()
	names := []string{"P1", "Q1", "Q2", "P2", "P3", "Q3", "Q4", "P4"}
	for i, n := range names {
		err := e.playerRepo.Create(context.Background(), &models.PlayerRecord{
			Name:   n,
			Level:  4,
			Rating: 2000 - 100*i,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", n, err)
		}
	}
}

func (e *testEnv) player(t *testing.T, name string) *models.PlayerRecord {
	t.Helper()
	p, err := e.playerRepo.GetByName(context.Background(), name)
	if err != nil {
		t.Fatalf("get %s: %v", name, err)
	}
	return p
}

func lowerNameWins(p1, p2 string) string {
	if p1 < p2 {
		return "6-2"
	}
	return "2-6"
}
