package brackets

import (
	"fmt"

	"github.com/Dosada05/tennis-finals/models"
)

// DrawGroups splits seeded entrants into groups A and B by snake draft
// (1,4,5,8 to A; 2,3,6,7 to B) so both groups get an even spread of
// strength. Entrants must already be in seed order.
func DrawGroups(entrants []models.Player, groupSize int) ([]*models.Group, error) {
	if len(entrants) != 2*groupSize {
		return nil, fmt.Errorf("%w: need %d entrants for two groups of %d, got %d", ErrScheduleShape, 2*groupSize, groupSize, len(entrants))
	}
	seen := make(map[string]bool, len(entrants))
	a := &models.Group{Name: models.GroupA}
	b := &models.Group{Name: models.GroupB}
	for i, p := range entrants {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: entrant %d has no name", ErrScheduleShape, i+1)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate entrant %s", ErrScheduleShape, p.Name)
		}
		seen[p.Name] = true

		p.Seed = i + 1
		if pos := i % 4; pos == 0 || pos == 3 {
			p.Group = models.GroupA
			a.Players = append(a.Players, p)
		} else {
			p.Group = models.GroupB
			b.Players = append(b.Players, p)
		}
	}
	return []*models.Group{a, b}, nil
}

// NewTournament draws the groups and attaches the full group-stage schedule.
func NewTournament(entrants []models.Player, cfg models.ScheduleConfig) (*models.Tournament, error) {
	groups, err := DrawGroups(entrants, cfg.GroupSize)
	if err != nil {
		return nil, err
	}
	matches, err := AssignSchedule(groups, cfg)
	if err != nil {
		return nil, err
	}
	t := &models.Tournament{Groups: groups}
	for _, m := range matches {
		g := groups[0]
		if m.Stage == models.StageGroupB {
			g = groups[1]
		}
		g.Matches = append(g.Matches, m)
	}
	return t, nil
}
