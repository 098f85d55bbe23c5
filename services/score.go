package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Dosada05/tennis-finals/models"
)

// maxGames is the largest game count a single score may carry.
const maxGames = 99

// ParseScore reads a "g1-g2" string. Whitespace around either number is
// ignored.
func ParseScore(raw string) (models.Score, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 {
		return models.Score{}, fmt.Errorf("%w: expected format g1-g2, got %q", ErrInvalidScore, raw)
	}
	var score models.Score
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return models.Score{}, fmt.Errorf("%w: %q is not a number", ErrInvalidScore, strings.TrimSpace(part))
		}
		score[i] = n
	}
	return score, nil
}

// ValidateScore checks a parsed score against the configured rule.
func ValidateScore(score models.Score, rule models.ScoringRule) error {
	g1, g2 := score[0], score[1]
	if g1 < 0 || g2 < 0 {
		return fmt.Errorf("%w: game counts cannot be negative", ErrInvalidScore)
	}
	if g1 > maxGames || g2 > maxGames {
		return fmt.Errorf("%w: game counts cannot exceed %d", ErrInvalidScore, maxGames)
	}
	if g1 == g2 {
		return fmt.Errorf("%w: %s is a draw, a match needs a winner", ErrInvalidScore, score)
	}
	if rule != models.ScoringTennisSet {
		return nil
	}

	hi, lo := g1, g2
	if lo > hi {
		hi, lo = lo, hi
	}
	switch {
	case hi == 6 && lo <= 4:
	case hi == 7 && (lo == 5 || lo == 6):
	default:
		return fmt.Errorf("%w: %s is not a valid set score (6-0 to 6-4, 7-5, 7-6)", ErrInvalidScore, score)
	}
	return nil
}

func parseAndValidateScore(raw string, rule models.ScoringRule) (models.Score, error) {
	score, err := ParseScore(raw)
	if err != nil {
		return models.Score{}, err
	}
	if err := ValidateScore(score, rule); err != nil {
		return models.Score{}, err
	}
	return score, nil
}
