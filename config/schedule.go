package config

import (
	"fmt"
	"os"

	"github.com/Dosada05/tennis-finals/brackets"
	"github.com/Dosada05/tennis-finals/models"
	"gopkg.in/yaml.v3"
)

// LoadSchedule reads the timetable from a YAML file, or returns the default
// one-day format when path is empty.
func LoadSchedule(path string) (models.ScheduleConfig, error) {
	if path == "" {
		return models.DefaultScheduleConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ScheduleConfig{}, fmt.Errorf("failed to read schedule config %s: %w", path, err)
	}
	return ParseSchedule(data)
}

// ParseSchedule decodes and validates a YAML timetable.
func ParseSchedule(data []byte) (models.ScheduleConfig, error) {
	var cfg models.ScheduleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return models.ScheduleConfig{}, fmt.Errorf("failed to parse schedule config: %w", err)
	}
	if cfg.Scoring == "" {
		cfg.Scoring = models.ScoringGames
	}
	if err := ValidateSchedule(cfg); err != nil {
		return models.ScheduleConfig{}, err
	}
	return cfg, nil
}

// ValidateSchedule checks the timetable against its own group size so a bad
// file fails at startup rather than at tournament creation.
func ValidateSchedule(cfg models.ScheduleConfig) error {
	switch cfg.Scoring {
	case models.ScoringGames, models.ScoringTennisSet:
	default:
		return fmt.Errorf("unknown scoring rule %q", cfg.Scoring)
	}

	groups := make([]*models.Group, 0, 2)
	for _, name := range []models.GroupName{models.GroupA, models.GroupB} {
		g := &models.Group{Name: name, Players: make([]models.Player, cfg.GroupSize)}
		for i := range g.Players {
			g.Players[i].Name = fmt.Sprintf("%s%d", name, i+1)
		}
		groups = append(groups, g)
	}
	if err := brackets.ValidateShape(groups, cfg); err != nil {
		return err
	}
	return brackets.ValidatePlayoffs(cfg.Playoffs)
}
