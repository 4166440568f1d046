package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/pmrs/core/band"
	"github.com/kilianp07/pmrs/core/schedule"
)

// QuickConnectDef is the expected position of one quick-connect.
type QuickConnectDef struct {
	Minute  int `yaml:"minute"`
	Channel int `yaml:"channel"`
}

type Expected struct {
	Days          int               `yaml:"days"`
	CycleDays     int               `yaml:"cycle_days"`
	Seed          int64             `yaml:"seed"`
	QuickConnects []QuickConnectDef `yaml:"quick_connects,omitempty"`
	// Error is an error kind as reported by schedule.ErrorKind.
	Error string `yaml:"error,omitempty"`
}

type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	User1       string   `yaml:"user1"`
	User2       string   `yaml:"user2"`
	Days        int      `yaml:"days"`
	Band        string   `yaml:"band,omitempty"`
	Expected    Expected `yaml:"expected"`
}

// Request converts the scenario inputs into a generation request.
func (s Scenario) Request() schedule.Request {
	return schedule.Request{
		User1: s.User1,
		User2: s.User2,
		Days:  s.Days,
		Band:  band.Name(s.Band),
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
