package maze

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the on-disk maze definition
type Config struct {
	Rows []string `yaml:"rows"`
	// optional reward overrides
	StepReward      *float64 `yaml:"step_reward"`
	CollisionReward *float64 `yaml:"collision_reward"`
	ExitReward      *float64 `yaml:"exit_reward"`
}

// LoadConfig reads a maze definition from a YAML file
func LoadConfig(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading maze config: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing maze config: %w", err)
	}
	m, err := NewMaze(config.Rows)
	if err != nil {
		return nil, err
	}
	if config.StepReward != nil {
		m.StepReward = *config.StepReward
	}
	if config.CollisionReward != nil {
		m.CollisionReward = *config.CollisionReward
	}
	if config.ExitReward != nil {
		m.ExitReward = *config.ExitReward
	}
	return m, nil
}
