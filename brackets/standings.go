package brackets

import (
	"sort"

	"github.com/Dosada05/tennis-finals/models"
)

// ComputeStandings derives the group table in the group's player order.
// Only played matches count; an unplayed match is not a forfeit.
func ComputeStandings(group *models.Group) []models.Standing {
	index := make(map[string]*models.Standing, len(group.Players))
	standings := make([]models.Standing, len(group.Players))
	for i, p := range group.Players {
		standings[i] = models.Standing{
			Name:  p.Name,
			Seed:  p.Seed,
			Level: p.Level,
			Group: group.Name,
		}
		index[p.Name] = &standings[i]
	}

	for _, match := range group.Matches {
		if !match.Played || match.Score == nil {
			continue
		}
		entry1 := index[match.Player1]
		entry2 := index[match.Player2]
		if entry1 == nil || entry2 == nil {
			continue
		}
		g1, g2 := match.Score[0], match.Score[1]
		entry1.GamesWon += g1
		entry1.GamesLost += g2
		entry2.GamesWon += g2
		entry2.GamesLost += g1
		if g1 > g2 {
			entry1.Wins++
			entry2.Losses++
		} else {
			entry2.Wins++
			entry1.Losses++
		}
	}

	for i := range standings {
		standings[i].GameDifference = standings[i].GamesWon - standings[i].GamesLost
	}
	return standings
}

// RankStandings returns the group table ordered for seeding:
// wins, game difference, games won (all descending), then name.
func RankStandings(group *models.Group) []models.Standing {
	standings := ComputeStandings(group)
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.GameDifference != b.GameDifference {
			return a.GameDifference > b.GameDifference
		}
		if a.GamesWon != b.GamesWon {
			return a.GamesWon > b.GamesWon
		}
		return a.Name < b.Name
	})
	return standings
}
