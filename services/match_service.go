package services

import (
	"fmt"
	"strings"

	"github.com/Dosada05/tennis-finals/brackets"
	"github.com/Dosada05/tennis-finals/models"
)

// MatchContext narrows the search for the match a result belongs to.
type MatchContext string

const (
	ContextAny        MatchContext = ""
	ContextGroup      MatchContext = "group"
	ContextSemifinal  MatchContext = MatchContext(models.PlayoffSemifinal)
	ContextFinal      MatchContext = MatchContext(models.PlayoffFinal)
	ContextThirdPlace MatchContext = MatchContext(models.PlayoffThirdPlace)
)

// ParseMatchContext accepts "", "any", "group" and the playoff types.
func ParseMatchContext(raw string) (MatchContext, error) {
	switch c := MatchContext(strings.ToLower(strings.TrimSpace(raw))); c {
	case ContextAny, ContextGroup, ContextSemifinal, ContextFinal, ContextThirdPlace:
		return c, nil
	case "any":
		return ContextAny, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMatchType, raw)
}

func (c MatchContext) admits(stage models.Stage) bool {
	switch c {
	case ContextAny:
		return true
	case ContextGroup:
		return stage.IsGroup()
	}
	s, ok := models.PlayoffType(c).Stage()
	return ok && s == stage
}

func (c MatchContext) String() string {
	if c == ContextAny {
		return "any"
	}
	return string(c)
}

type SubmitResultInput struct {
	Player1 string
	Player2 string
	Score   string
	Context MatchContext
}

// MatchResult is a committed write. Previous is the match as it was before
// the write; it is unplayed for a first submission.
type MatchResult struct {
	Match    *models.Match
	Previous *models.Match
}

// IsEdit reports whether the write overwrote an earlier result.
func (r *MatchResult) IsEdit() bool {
	return r.Previous != nil && r.Previous.Played
}

// MatchStore writes results into a tournament aggregate. It never touches
// shared state: callers hand it a private copy and keep or drop the copy
// depending on the returned error.
type MatchStore struct {
	cfg models.ScheduleConfig
}

func NewMatchStore(cfg models.ScheduleConfig) *MatchStore {
	return &MatchStore{cfg: cfg}
}

// FindMatch returns the single match between p1 and p2 (either order)
// admitted by the context.
func (s *MatchStore) FindMatch(t *models.Tournament, p1, p2 string, mc MatchContext) (*models.Match, error) {
	var found []*models.Match
	for _, m := range t.AllMatches() {
		if mc.admits(m.Stage) && m.Between(p1, p2) {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: no %s match between %s and %s", ErrMatchNotFound, mc, p1, p2)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%w (%s and %s play %d matches)", ErrAmbiguousMatch, p1, p2, len(found))
	}
}

// SubmitResult parses the score, locates the match and writes the result.
// The score is read in the order the players were given and stored in
// match order.
func (s *MatchStore) SubmitResult(t *models.Tournament, input SubmitResultInput) (*MatchResult, error) {
	p1 := strings.TrimSpace(input.Player1)
	p2 := strings.TrimSpace(input.Player2)
	if p1 == "" || p2 == "" {
		return nil, fmt.Errorf("%w: both player names are required", ErrMatchNotFound)
	}

	score, err := parseAndValidateScore(input.Score, s.cfg.Scoring)
	if err != nil {
		return nil, err
	}

	match, err := s.FindMatch(t, p1, p2, input.Context)
	if err != nil {
		return nil, err
	}
	if match.Player1 != p1 {
		score = score.Reversed()
	}

	previous := match.Clone()
	if match.Stage.IsGroup() {
		match.SetScore(score)
		if err := brackets.CheckSeeds(t); err != nil {
			return nil, err
		}
		return &MatchResult{Match: match, Previous: previous}, nil
	}

	if t.Bracket == nil {
		return nil, fmt.Errorf("%w: no bracket yet", ErrMatchNotFound)
	}
	written, err := brackets.RecordPlayoffResult(t.Bracket, match.ID, score, s.cfg.Playoffs)
	if err != nil {
		return nil, err
	}
	return &MatchResult{Match: written, Previous: previous}, nil
}
