package models

// ScoringRule selects how a submitted score is validated.
type ScoringRule string

const (
	// ScoringGames accepts any pair of non-negative game counts that is not a draw.
	ScoringGames ScoringRule = "games"
	// ScoringTennisSet accepts single-set tennis scores: 6-0..6-4, 7-5, 7-6.
	ScoringTennisSet ScoringRule = "tennis_set"
)

// TimeSlot is one time window with the courts it provides.
type TimeSlot struct {
	Time   string `json:"time" yaml:"time"`
	Courts []int  `json:"courts" yaml:"courts"`
}

// RoundSlots assigns each group its slot for one group-stage round.
type RoundSlots struct {
	Round  int                    `json:"round" yaml:"round"`
	Groups map[GroupName]TimeSlot `json:"groups" yaml:"groups"`
}

type PlayoffSlots struct {
	Semifinals TimeSlot `json:"semifinals" yaml:"semifinals"`
	// Finals hosts the final on Courts[0] and the third-place match on Courts[1].
	Finals     TimeSlot `json:"finals" yaml:"finals"`
	ThirdPlace bool     `json:"third_place" yaml:"third_place"`
}

// ScheduleConfig is the single timetable shared by the schedule assigner,
// the bracket builder and every view.
type ScheduleConfig struct {
	GroupSize int          `json:"group_size" yaml:"group_size"`
	Scoring   ScoringRule  `json:"scoring" yaml:"scoring"`
	Rounds    []RoundSlots `json:"rounds" yaml:"rounds"`
	Playoffs  PlayoffSlots `json:"playoffs" yaml:"playoffs"`
}

// DefaultScheduleConfig is the one-day format: three rounds per group in
// alternating hours, then semifinals and the medal matches.
func DefaultScheduleConfig() ScheduleConfig {
	courts := []int{1, 2}
	return ScheduleConfig{
		GroupSize: 4,
		Scoring:   ScoringGames,
		Rounds: []RoundSlots{
			{Round: 1, Groups: map[GroupName]TimeSlot{
				GroupA: {Time: "8:00-9:00", Courts: courts},
				GroupB: {Time: "9:00-10:00", Courts: courts},
			}},
			{Round: 2, Groups: map[GroupName]TimeSlot{
				GroupA: {Time: "10:00-11:00", Courts: courts},
				GroupB: {Time: "11:00-12:00", Courts: courts},
			}},
			{Round: 3, Groups: map[GroupName]TimeSlot{
				GroupA: {Time: "12:00-13:00", Courts: courts},
				GroupB: {Time: "13:00-14:00", Courts: courts},
			}},
		},
		Playoffs: PlayoffSlots{
			Semifinals: TimeSlot{Time: "14:00-15:00", Courts: courts},
			Finals:     TimeSlot{Time: "15:00-16:00", Courts: courts},
			ThirdPlace: true,
		},
	}
}
