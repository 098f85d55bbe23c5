package models

import "time"

// TournamentStatus is derived from the tournament content, never stored.
type TournamentStatus string

const (
	StatusNotStarted         TournamentStatus = "not_started"
	StatusGroupStage         TournamentStatus = "group_stage"
	StatusPlayoffsReady      TournamentStatus = "playoffs_ready"
	StatusPlayoffsInProgress TournamentStatus = "playoffs_in_progress"
	StatusCompleted          TournamentStatus = "completed"
)

type GroupName string

const (
	GroupA GroupName = "A"
	GroupB GroupName = "B"
)

// Player is a tournament entrant. Standings fields live in Standing, not here.
type Player struct {
	Name  string    `json:"name"`
	Seed  int       `json:"seed"`
	Level float64   `json:"level"`
	Group GroupName `json:"group"`
}

type Group struct {
	Name    GroupName `json:"name"`
	Players []Player  `json:"players"`
	Matches []*Match  `json:"matches"`
}

// PlayedMatches returns the group matches that carry a score.
func (g *Group) PlayedMatches() []*Match {
	played := make([]*Match, 0, len(g.Matches))
	for _, m := range g.Matches {
		if m.Played {
			played = append(played, m)
		}
	}
	return played
}

func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	c := &Group{
		Name:    g.Name,
		Players: append([]Player(nil), g.Players...),
		Matches: make([]*Match, len(g.Matches)),
	}
	for i, m := range g.Matches {
		c.Matches[i] = m.Clone()
	}
	return c
}

// Bracket is the playoff tree. Final and ThirdPlace stay nil until both
// semifinals have been played.
type Bracket struct {
	Seeds      []string `json:"seeds"`
	Semifinals []*Match `json:"semifinals"`
	Final      *Match   `json:"final,omitempty"`
	ThirdPlace *Match   `json:"third_place,omitempty"`
}

// Matches returns every playoff match that exists, in schedule order.
func (b *Bracket) Matches() []*Match {
	if b == nil {
		return nil
	}
	matches := append([]*Match(nil), b.Semifinals...)
	if b.Final != nil {
		matches = append(matches, b.Final)
	}
	if b.ThirdPlace != nil {
		matches = append(matches, b.ThirdPlace)
	}
	return matches
}

func (b *Bracket) Clone() *Bracket {
	if b == nil {
		return nil
	}
	c := &Bracket{
		Seeds:      append([]string(nil), b.Seeds...),
		Semifinals: make([]*Match, len(b.Semifinals)),
		Final:      b.Final.Clone(),
		ThirdPlace: b.ThirdPlace.Clone(),
	}
	for i, m := range b.Semifinals {
		c.Semifinals[i] = m.Clone()
	}
	return c
}

// Tournament is the aggregate root.
type Tournament struct {
	Groups    []*Group  `json:"groups"`
	Bracket   *Bracket  `json:"bracket,omitempty"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
}

// Group returns the group with the given name, or nil.
func (t *Tournament) Group(name GroupName) *Group {
	for _, g := range t.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// GroupMatches returns all group-stage matches, group A first.
func (t *Tournament) GroupMatches() []*Match {
	var matches []*Match
	for _, g := range t.Groups {
		matches = append(matches, g.Matches...)
	}
	return matches
}

// AllMatches returns group matches followed by playoff matches.
func (t *Tournament) AllMatches() []*Match {
	return append(t.GroupMatches(), t.Bracket.Matches()...)
}

// MatchByID looks a match up by its stable identifier.
func (t *Tournament) MatchByID(id string) *Match {
	for _, m := range t.AllMatches() {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (t *Tournament) Clone() *Tournament {
	if t == nil {
		return nil
	}
	c := &Tournament{
		Groups:    make([]*Group, len(t.Groups)),
		Bracket:   t.Bracket.Clone(),
		Archived:  t.Archived,
		CreatedAt: t.CreatedAt,
	}
	for i, g := range t.Groups {
		c.Groups[i] = g.Clone()
	}
	return c
}
