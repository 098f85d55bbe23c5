package brackets

import (
	"errors"
	"fmt"

	"github.com/Dosada05/tennis-finals/models"
)

const (
	SemifinalOneID = "SF1"
	SemifinalTwoID = "SF2"
	FinalID        = "F"
	ThirdPlaceID   = "TP"
)

// ValidatePlayoffs checks that the playoff slots can host the bracket.
func ValidatePlayoffs(slots models.PlayoffSlots) error {
	if len(slots.Semifinals.Courts) < 2 {
		return fmt.Errorf("%w: semifinal slot needs 2 courts, has %d", ErrScheduleShape, len(slots.Semifinals.Courts))
	}
	need := 1
	if slots.ThirdPlace {
		need = 2
	}
	if len(slots.Finals.Courts) < need {
		return fmt.Errorf("%w: finals slot needs %d courts, has %d", ErrScheduleShape, need, len(slots.Finals.Courts))
	}
	return nil
}

// CanSetupPlayoffs reports whether every group match has been played.
func CanSetupPlayoffs(t *models.Tournament) bool {
	matches := t.GroupMatches()
	if len(matches) == 0 {
		return false
	}
	for _, m := range matches {
		if !m.Played {
			return false
		}
	}
	return true
}

// SeedPlayoffs interleaves the two group tables: A1, B1, A2, B2.
func SeedPlayoffs(t *models.Tournament) ([]string, error) {
	a := t.Group(models.GroupA)
	b := t.Group(models.GroupB)
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: tournament needs groups A and B", ErrScheduleShape)
	}
	rankA := RankStandings(a)
	rankB := RankStandings(b)
	if len(rankA) < 2 || len(rankB) < 2 {
		return nil, fmt.Errorf("%w: each group needs at least 2 players for playoffs", ErrScheduleShape)
	}
	return []string{rankA[0].Name, rankB[0].Name, rankA[1].Name, rankB[1].Name}, nil
}

// SetupPlayoffs creates the semifinals from the final group tables and
// attaches the bracket to the tournament. Seed 1 meets seed 4, seed 2 meets
// seed 3, so group winners never face a group-mate in the semifinal.
func SetupPlayoffs(t *models.Tournament, slots models.PlayoffSlots) (*models.Bracket, error) {
	if t.Bracket != nil {
		return nil, ErrPlayoffsAlreadyExist
	}
	if !CanSetupPlayoffs(t) {
		return nil, ErrPlayoffsNotReady
	}
	if err := ValidatePlayoffs(slots); err != nil {
		return nil, err
	}
	seeds, err := SeedPlayoffs(t)
	if err != nil {
		return nil, err
	}

	sf := slots.Semifinals
	bracket := &models.Bracket{
		Seeds: seeds,
		Semifinals: []*models.Match{
			{ID: SemifinalOneID, Player1: seeds[0], Player2: seeds[3], Stage: models.StageSemifinal, Time: sf.Time, Court: sf.Courts[0]},
			{ID: SemifinalTwoID, Player1: seeds[1], Player2: seeds[2], Stage: models.StageSemifinal, Time: sf.Time, Court: sf.Courts[1]},
		},
	}
	t.Bracket = bracket
	return bracket, nil
}

// CheckSeeds fails when the current group tables no longer produce the
// seeds the bracket was built from.
func CheckSeeds(t *models.Tournament) error {
	if t.Bracket == nil {
		return nil
	}
	seeds, err := SeedPlayoffs(t)
	if err != nil {
		return err
	}
	if len(seeds) != len(t.Bracket.Seeds) {
		return fmt.Errorf("%w: bracket has %d seeds, group tables give %d", ErrBracketInconsistency, len(t.Bracket.Seeds), len(seeds))
	}
	for i, name := range seeds {
		if t.Bracket.Seeds[i] != name {
			return fmt.Errorf("%w: seed %d would change from %s to %s", ErrBracketInconsistency, i+1, t.Bracket.Seeds[i], name)
		}
	}
	return nil
}

var errNotInBracket = errors.New("match is not part of the bracket")

// RecordPlayoffResult writes a score to a bracket match. The final and the
// third-place match are derived once, the first time both semifinals are
// played. A semifinal edit that would change who advanced is rejected
// before anything is written.
func RecordPlayoffResult(b *models.Bracket, matchID string, score models.Score, slots models.PlayoffSlots) (*models.Match, error) {
	var match *models.Match
	for _, m := range b.Matches() {
		if m.ID == matchID {
			match = m
			break
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", errNotInBracket, matchID)
	}

	if match.Stage == models.StageSemifinal && b.Final != nil {
		candidate := match.Clone()
		candidate.SetScore(score)
		if candidate.Winner() != match.Winner() {
			return nil, fmt.Errorf("%w: %s already advanced from %s to the final", ErrBracketInconsistency, match.Winner(), match.ID)
		}
	}

	match.SetScore(score)

	if match.Stage == models.StageSemifinal && b.Final == nil && semifinalsPlayed(b) {
		deriveMedalMatches(b, slots)
	}
	return match, nil
}

func semifinalsPlayed(b *models.Bracket) bool {
	if len(b.Semifinals) != 2 {
		return false
	}
	for _, m := range b.Semifinals {
		if !m.Played {
			return false
		}
	}
	return true
}

func deriveMedalMatches(b *models.Bracket, slots models.PlayoffSlots) {
	sf1, sf2 := b.Semifinals[0], b.Semifinals[1]
	finals := slots.Finals
	b.Final = &models.Match{
		ID:      FinalID,
		Player1: sf1.Winner(),
		Player2: sf2.Winner(),
		Stage:   models.StageFinal,
		Time:    finals.Time,
		Court:   finals.Courts[0],
	}
	if slots.ThirdPlace {
		b.ThirdPlace = &models.Match{
			ID:      ThirdPlaceID,
			Player1: sf1.Loser(),
			Player2: sf2.Loser(),
			Stage:   models.StageThirdPlace,
			Time:    finals.Time,
			Court:   finals.Courts[1],
		}
	}
}

// IsComplete reports whether the final and, if it exists, the third-place
// match have both been played.
func IsComplete(b *models.Bracket) bool {
	if b == nil || b.Final == nil || !b.Final.Played {
		return false
	}
	return b.ThirdPlace == nil || b.ThirdPlace.Played
}

// Status derives the lifecycle state from tournament content.
func Status(t *models.Tournament) models.TournamentStatus {
	switch {
	case t == nil:
		return models.StatusNotStarted
	case t.Bracket == nil && CanSetupPlayoffs(t):
		return models.StatusPlayoffsReady
	case t.Bracket == nil:
		return models.StatusGroupStage
	case IsComplete(t.Bracket):
		return models.StatusCompleted
	default:
		return models.StatusPlayoffsInProgress
	}
}
