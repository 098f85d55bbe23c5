package brackets

import (
	"fmt"

	"github.com/Dosada05/tennis-finals/models"
)

// RoundRobinPairings returns the pairings of a single round-robin over n
// entries as index pairs, one slice per round. Rotation follows the circle
// method: index 0 stays fixed and the rest turn one step per round.
func RoundRobinPairings(n int) [][][2]int {
	if n < 2 || n%2 != 0 {
		return nil
	}
	numRounds := n - 1
	perRound := n / 2

	rounds := make([][][2]int, numRounds)
	for r := 0; r < numRounds; r++ {
		pairs := make([][2]int, 0, perRound)
		for m := 0; m < perRound; m++ {
			i1 := circleIndex(m, n, r)
			i2 := circleIndex(n-1-m, n, r)
			pairs = append(pairs, [2]int{i1, i2})
		}
		rounds[r] = pairs
	}
	return rounds
}

func circleIndex(index, length, round int) int {
	if index == 0 {
		return 0
	}
	index -= 1
	index -= round
	index += length - 1
	index %= length - 1
	return index + 1
}

// ValidateShape checks that the groups fit the fixed timetable: equal, even
// sizes matching cfg.GroupSize, one configured round per round-robin round,
// and enough courts in every slot.
func ValidateShape(groups []*models.Group, cfg models.ScheduleConfig) error {
	if len(groups) != 2 {
		return fmt.Errorf("%w: expected 2 groups, got %d", ErrScheduleShape, len(groups))
	}
	size := len(groups[0].Players)
	for _, g := range groups {
		if len(g.Players) != size {
			return fmt.Errorf("%w: group sizes differ (%d and %d)", ErrScheduleShape, size, len(g.Players))
		}
	}
	if size != cfg.GroupSize {
		return fmt.Errorf("%w: groups have %d players, timetable expects %d", ErrScheduleShape, size, cfg.GroupSize)
	}
	if size < 2 || size%2 != 0 {
		return fmt.Errorf("%w: group size must be an even number of at least 2, got %d", ErrScheduleShape, size)
	}
	if len(cfg.Rounds) != size-1 {
		return fmt.Errorf("%w: %d players per group need %d rounds, timetable has %d", ErrScheduleShape, size, size-1, len(cfg.Rounds))
	}
	for i, round := range cfg.Rounds {
		for _, g := range groups {
			slot, ok := round.Groups[g.Name]
			if !ok {
				return fmt.Errorf("%w: round %d has no slot for group %s", ErrScheduleShape, i+1, g.Name)
			}
			if len(slot.Courts) < size/2 {
				return fmt.Errorf("%w: round %d for group %s needs %d courts, has %d", ErrScheduleShape, i+1, g.Name, size/2, len(slot.Courts))
			}
		}
	}
	return nil
}

// AssignSchedule creates every group match with round, time and court set.
// Output order is group, then round, then court; the same input always
// yields the same schedule.
func AssignSchedule(groups []*models.Group, cfg models.ScheduleConfig) ([]*models.Match, error) {
	if err := ValidateShape(groups, cfg); err != nil {
		return nil, err
	}

	size := len(groups[0].Players)
	pairings := RoundRobinPairings(size)

	matches := make([]*models.Match, 0, len(groups)*size*(size-1)/2)
	for _, g := range groups {
		stage := models.StageForGroup(g.Name)
		for r, pairs := range pairings {
			slot := cfg.Rounds[r].Groups[g.Name]
			for m, pair := range pairs {
				court := slot.Courts[m]
				matches = append(matches, &models.Match{
					ID:      fmt.Sprintf("%s-R%d-C%d", g.Name, r+1, court),
					Player1: g.Players[pair[0]].Name,
					Player2: g.Players[pair[1]].Name,
					Stage:   stage,
					Round:   r + 1,
					Time:    slot.Time,
					Court:   court,
				})
			}
		}
	}
	return matches, nil
}
