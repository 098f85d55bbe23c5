package brackets

import "github.com/Dosada05/tennis-finals/models"

// FinalizeResults derives the podium. Third and fourth place are only set
// once the third-place match has been played.
func FinalizeResults(b *models.Bracket) (*models.Placements, error) {
	if b == nil || b.Final == nil || !b.Final.Played {
		return nil, ErrResultsNotReady
	}
	p := &models.Placements{
		Champion: b.Final.Winner(),
		RunnerUp: b.Final.Loser(),
	}
	if b.ThirdPlace != nil && b.ThirdPlace.Played {
		third, fourth := b.ThirdPlace.Winner(), b.ThirdPlace.Loser()
		p.ThirdPlace = &third
		p.FourthPlace = &fourth
	}
	return p, nil
}
