package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/tennis-finals/brackets"
	"github.com/Dosada05/tennis-finals/models"
	"github.com/Dosada05/tennis-finals/repositories"
	"github.com/Dosada05/tennis-finals/storage"
)

// Notifier delivers events to connected spectators.
type Notifier interface {
	BroadcastToRoom(roomID string, message interface{})
}

type TournamentService interface {
	// Restore loads the last committed tournament from the repository.
	Restore(ctx context.Context) error

	CreateTournament(ctx context.Context) (*models.Tournament, error)
	GetInfo(ctx context.Context, isAdmin bool) (*TournamentInfo, error)
	GetSchedule(ctx context.Context) ([]ScheduleEntry, error)
	GetStatus(ctx context.Context) (*StatusView, error)
	OpenMatch(ctx context.Context, matchID string) (*OpenMatchView, error)

	SubmitResult(ctx context.Context, input SubmitResultInput) (*models.Match, error)
	SubmitGroupResult(ctx context.Context, input SubmitResultInput) (*models.Match, error)
	SubmitPlayoffResult(ctx context.Context, input SubmitPlayoffInput) (*models.Match, error)
	SetupPlayoffs(ctx context.Context) (*models.Bracket, error)
	GetResults(ctx context.Context) (*models.Placements, error)
}

type SubmitPlayoffInput struct {
	Player1     string
	Player2     string
	Score       string
	PlayoffType string
}

type GroupView struct {
	Name    models.GroupName  `json:"name"`
	Players []models.Standing `json:"players"`
}

type TournamentInfo struct {
	Groups       []GroupView     `json:"groups"`
	GroupMatches []*models.Match `json:"group_matches"`
	IsAdmin      bool            `json:"is_admin"`
	CreatedAt    time.Time       `json:"created_at"`
}

const (
	ScheduleTypeGroup   = "group"
	ScheduleTypePlayoff = "playoff"
)

type ScheduleEntry struct {
	models.Match
	Type        string             `json:"type"`
	PlayoffType models.PlayoffType `json:"playoff_type,omitempty"`
}

type StatusView struct {
	Status           models.TournamentStatus `json:"status"`
	CanSetupPlayoffs bool                    `json:"can_setup_playoffs"`
}

// OpenMatchView is a match prepared for editing. Score is the current result
// in "g1-g2" form, empty when the match is unplayed.
type OpenMatchView struct {
	Match       *models.Match      `json:"match"`
	Score       string             `json:"score"`
	Type        string             `json:"type"`
	PlayoffType models.PlayoffType `json:"playoff_type,omitempty"`
}

type tournamentService struct {
	mu      sync.RWMutex
	current *models.Tournament

	tournamentRepo repositories.TournamentRepository
	playerService  PlayerService
	matchStore     *MatchStore
	cfg            models.ScheduleConfig
	notifier       Notifier
	archive        storage.FileUploader
	logger         *slog.Logger
	now            func() time.Time
}

// NewTournamentService wires the session controller. notifier and archive
// may be nil.
func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	playerService PlayerService,
	cfg models.ScheduleConfig,
	notifier Notifier,
	archive storage.FileUploader,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		playerService:  playerService,
		matchStore:     NewMatchStore(cfg),
		cfg:            cfg,
		notifier:       notifier,
		archive:        archive,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *tournamentService) Restore(ctx context.Context) error {
	t, err := s.tournamentRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil
		}
		return fmt.Errorf("failed to restore tournament: %w", err)
	}
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
	s.logger.Info("tournament restored", slog.String("status", string(brackets.Status(t))))
	return nil
}

// commit persists draft and makes it current. The caller holds the write lock.
func (s *tournamentService) commit(ctx context.Context, draft *models.Tournament) error {
	if err := s.tournamentRepo.Save(ctx, draft); err != nil {
		return fmt.Errorf("failed to save tournament: %w", err)
	}
	s.current = draft
	return nil
}

func (s *tournamentService) notify(event string, payload interface{}) {
	if s.notifier == nil {
		return
	}
	s.notifier.BroadcastToRoom(brackets.TournamentRoom, brackets.WebSocketMessage{
		Type:    event,
		Payload: payload,
	})
}

func (s *tournamentService) CreateTournament(ctx context.Context) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entrants, err := s.playerService.SelectEntrants(ctx, 2*s.cfg.GroupSize)
	if err != nil {
		return nil, err
	}
	draft, err := brackets.NewTournament(entrants, s.cfg)
	if err != nil {
		return nil, err
	}
	draft.CreatedAt = s.now().UTC()

	if err := s.commit(ctx, draft); err != nil {
		return nil, err
	}
	s.logger.Info("tournament created", slog.Int("players", len(entrants)), slog.Int("matches", len(draft.GroupMatches())))

	drawn := make([]string, len(entrants))
	for i, p := range entrants {
		drawn[i] = p.Name
	}
	if err := s.playerService.RecordTournamentPlayed(ctx, drawn); err != nil {
		s.logger.Error("failed to record tournament participation", slog.Any("error", err))
	}

	s.notify(brackets.EventTournamentCreated, buildInfo(draft, false))
	return draft.Clone(), nil
}

func buildInfo(t *models.Tournament, isAdmin bool) *TournamentInfo {
	info := &TournamentInfo{
		Groups:       make([]GroupView, 0, len(t.Groups)),
		GroupMatches: make([]*models.Match, 0),
		IsAdmin:      isAdmin,
		CreatedAt:    t.CreatedAt,
	}
	for _, g := range t.Groups {
		info.Groups = append(info.Groups, GroupView{Name: g.Name, Players: brackets.RankStandings(g)})
	}
	for _, m := range t.GroupMatches() {
		info.GroupMatches = append(info.GroupMatches, m.Clone())
	}
	return info
}

func (s *tournamentService) snapshot() (*models.Tournament, error) {
	if s.current == nil {
		return nil, ErrTournamentNotFound
	}
	return s.current, nil
}

func (s *tournamentService) GetInfo(ctx context.Context, isAdmin bool) (*TournamentInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return buildInfo(t, isAdmin), nil
}

func scheduleEntry(m *models.Match) ScheduleEntry {
	entry := ScheduleEntry{Match: *m.Clone(), Type: ScheduleTypeGroup}
	if !m.Stage.IsGroup() {
		entry.Type = ScheduleTypePlayoff
		entry.PlayoffType = m.Stage.PlayoffType()
	}
	return entry
}

func (s *tournamentService) GetSchedule(ctx context.Context) ([]ScheduleEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	matches := t.AllMatches()
	schedule := make([]ScheduleEntry, 0, len(matches))
	for _, m := range matches {
		schedule = append(schedule, scheduleEntry(m))
	}
	return schedule, nil
}

func (s *tournamentService) GetStatus(ctx context.Context) (*StatusView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return &StatusView{Status: models.StatusNotStarted}, nil
	}
	return &StatusView{
		Status:           brackets.Status(s.current),
		CanSetupPlayoffs: s.current.Bracket == nil && brackets.CanSetupPlayoffs(s.current),
	}, nil
}

func (s *tournamentService) OpenMatch(ctx context.Context, matchID string) (*OpenMatchView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	m := t.MatchByID(matchID)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	entry := scheduleEntry(m)
	view := &OpenMatchView{Match: m.Clone(), Type: entry.Type, PlayoffType: entry.PlayoffType}
	if m.Played && m.Score != nil {
		view.Score = m.Score.String()
	}
	return view, nil
}

func (s *tournamentService) SubmitGroupResult(ctx context.Context, input SubmitResultInput) (*models.Match, error) {
	input.Context = ContextGroup
	return s.SubmitResult(ctx, input)
}

func (s *tournamentService) SubmitPlayoffResult(ctx context.Context, input SubmitPlayoffInput) (*models.Match, error) {
	mc, err := ParseMatchContext(input.PlayoffType)
	if err != nil {
		return nil, err
	}
	if mc == ContextAny || mc == ContextGroup {
		return nil, fmt.Errorf("%w: playoff_type must be semifinal, final or third_place", ErrInvalidMatchType)
	}
	return s.SubmitResult(ctx, SubmitResultInput{
		Player1: input.Player1,
		Player2: input.Player2,
		Score:   input.Score,
		Context: mc,
	})
}

// SubmitResult writes a result into a copy of the tournament and swaps it
// in only after the copy has been saved.
func (s *tournamentService) SubmitResult(ctx context.Context, input SubmitResultInput) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	wasCompleted := brackets.Status(t) == models.StatusCompleted
	hadFinal := t.Bracket != nil && t.Bracket.Final != nil

	draft := t.Clone()
	result, err := s.matchStore.SubmitResult(draft, input)
	if err != nil {
		return nil, err
	}
	// Any earlier archive copy no longer matches the document.
	draft.Archived = false
	if err := s.commit(ctx, draft); err != nil {
		return nil, err
	}
	s.logger.Info("match result recorded",
		slog.String("match_id", result.Match.ID),
		slog.String("score", result.Match.Score.String()),
		slog.Bool("edit", result.IsEdit()),
	)

	if err := s.playerService.ApplyResult(ctx, result.Previous, result.Match); err != nil {
		s.logger.Error("failed to update player ratings", slog.String("match_id", result.Match.ID), slog.Any("error", err))
	}

	s.notify(brackets.EventMatchUpdated, result.Match.Clone())
	if !hadFinal && draft.Bracket != nil && draft.Bracket.Final != nil {
		s.notify(brackets.EventPlayoffsCreated, draft.Bracket.Clone())
	}
	if brackets.Status(draft) == models.StatusCompleted {
		if !wasCompleted {
			if placements, err := brackets.FinalizeResults(draft.Bracket); err == nil {
				s.notify(brackets.EventTournamentCompleted, placements)
			}
		}
		s.archiveLocked(ctx)
	}
	return result.Match.Clone(), nil
}

func (s *tournamentService) SetupPlayoffs(ctx context.Context) (*models.Bracket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	draft := t.Clone()
	bracket, err := brackets.SetupPlayoffs(draft, s.cfg.Playoffs)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, draft); err != nil {
		return nil, err
	}
	s.logger.Info("playoffs created", slog.Any("seeds", bracket.Seeds))

	s.notify(brackets.EventPlayoffsCreated, bracket.Clone())
	return bracket.Clone(), nil
}

func (s *tournamentService) GetResults(ctx context.Context) (*models.Placements, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return brackets.FinalizeResults(t.Bracket)
}

// ArchiveKey is the object key of a completed tournament document.
func ArchiveKey(t *models.Tournament) string {
	return fmt.Sprintf("tournaments/%d.json", t.CreatedAt.Unix())
}

// archiveLocked uploads the current document once it is complete and marks
// it archived. An edit clears the mark, so the object under the same key is
// overwritten with the edited podium. Failures are logged and retried on the
// next commit.
func (s *tournamentService) archiveLocked(ctx context.Context) {
	if s.archive == nil || s.current == nil || s.current.Archived {
		return
	}
	document, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode tournament archive", slog.Any("error", err))
		return
	}
	key := ArchiveKey(s.current)
	result, err := s.archive.Upload(ctx, key, "application/json", bytes.NewReader(document))
	if err != nil {
		s.logger.Error("failed to archive tournament", slog.String("key", key), slog.Any("error", err))
		return
	}

	draft := s.current.Clone()
	draft.Archived = true
	if err := s.commit(ctx, draft); err != nil {
		s.logger.Error("failed to mark tournament archived", slog.Any("error", err))
		return
	}
	s.logger.Info("tournament archived", slog.String("key", result.Key), slog.String("location", result.Location))
}
