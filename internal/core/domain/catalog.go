package domain

import (
	"time"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "prism.yaml"

	// LiveDataFunctionID identifies nodes that source market data.
	LiveDataFunctionID = "LiveData"
)

// FunctionInput is one input a function needs.
type FunctionInput struct {
	ValueName string
	// OnSecurity requests the input on the security of a position or trade
	// target rather than on the target itself.
	OnSecurity bool
}

// FunctionDefinition describes a function able to produce one value on a kind of target.
type FunctionDefinition struct {
	ID         string
	Output     string
	TargetType ComputationTargetType
	// SecurityType restricts the function to targets whose security has this type.
	// Empty matches any.
	SecurityType string
	Inputs       []FunctionInput
}

// StatisticsSettings tunes execution statistics housekeeping and job sizing.
type StatisticsSettings struct {
	Enabled        bool
	DecayInterval  time.Duration
	DecayFactor    float64
	Retention      time.Duration
	DefaultJobSize int
	Parallelism    int
}

// DefaultStatisticsSettings returns the settings used when the config omits them.
func DefaultStatisticsSettings() StatisticsSettings {
	return StatisticsSettings{
		Enabled:        true,
		DecayInterval:  time.Minute,
		DecayFactor:    0.1,
		Retention:      time.Hour,
		DefaultJobSize: 8,
		Parallelism:    4,
	}
}

// Catalog is everything loaded from the workspace configuration.
type Catalog struct {
	Root       string
	Securities []Security
	Portfolios []Portfolio
	Functions  []FunctionDefinition
	LiveData   []string
	Views      []*ViewDefinition
	Statistics StatisticsSettings
}

// View looks up a view definition by name.
func (c *Catalog) View(name string) (*ViewDefinition, error) {
	for _, v := range c.Views {
		if v.Name() == name {
			return v, nil
		}
	}
	return nil, zerr.With(ErrViewNotFound, "view", name)
}

// ViewNames returns the names of all defined views.
func (c *Catalog) ViewNames() []string {
	names := make([]string, len(c.Views))
	for i, v := range c.Views {
		names[i] = v.Name()
	}
	return names
}
