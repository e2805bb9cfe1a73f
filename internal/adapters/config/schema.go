package config

import "time"

// Prismfile represents the structure of the prism.yaml configuration file.
type Prismfile struct {
	Version    string         `yaml:"version"`
	Securities []SecurityDTO  `yaml:"securities"`
	Portfolios []PortfolioDTO `yaml:"portfolios"`
	Functions  []FunctionDTO  `yaml:"functions"`
	LiveData   []string       `yaml:"liveData"`
	Views      []ViewDTO      `yaml:"views"`
	Statistics *StatisticsDTO `yaml:"statistics"`
}

// SecurityDTO represents a security definition.
type SecurityDTO struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Identifiers []string `yaml:"identifiers"`
}

// PortfolioDTO represents a portfolio and its node tree.
type PortfolioDTO struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes"`
	Root       NodeDTO           `yaml:"root"`
}

// NodeDTO represents a portfolio node.
type NodeDTO struct {
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name"`
	Positions []PositionDTO `yaml:"positions"`
	Children  []NodeDTO     `yaml:"children"`
}

// SecurityLinkDTO holds the two ways a position or trade may refer to a security.
type SecurityLinkDTO struct {
	Security            string   `yaml:"security"`
	SecurityIdentifiers []string `yaml:"securityIdentifiers"`
}

// PositionDTO represents a position.
type PositionDTO struct {
	SecurityLinkDTO `yaml:",inline"`

	ID         string            `yaml:"id"`
	Quantity   float64           `yaml:"quantity"`
	Attributes map[string]string `yaml:"attributes"`
	Trades     []TradeDTO        `yaml:"trades"`
}

// TradeDTO represents a trade.
type TradeDTO struct {
	SecurityLinkDTO `yaml:",inline"`

	ID           string            `yaml:"id"`
	Quantity     float64           `yaml:"quantity"`
	Counterparty string            `yaml:"counterparty"`
	Date         time.Time         `yaml:"date"`
	Attributes   map[string]string `yaml:"attributes"`
}

// FunctionDTO represents a function definition.
type FunctionDTO struct {
	ID           string     `yaml:"id"`
	Output       string     `yaml:"output"`
	Target       string     `yaml:"target"`
	SecurityType string     `yaml:"securityType"`
	Inputs       []InputDTO `yaml:"inputs"`
}

// InputDTO represents a function input.
type InputDTO struct {
	Value      string `yaml:"value"`
	OnSecurity bool   `yaml:"onSecurity"`
}

// ViewDTO represents a view definition.
type ViewDTO struct {
	Name        string          `yaml:"name"`
	Portfolio   string          `yaml:"portfolio"`
	CalcConfigs []CalcConfigDTO `yaml:"calcConfigs"`
}

// CalcConfigDTO represents a calculation configuration of a view.
type CalcConfigDTO struct {
	Name                  string              `yaml:"name"`
	PortfolioRequirements map[string][]string `yaml:"portfolioRequirements"`
	SpecificRequirements  []RequirementDTO    `yaml:"specificRequirements"`
}

// RequirementDTO represents a specific requirement. The target is named
// either by unique id or by external identifiers.
type RequirementDTO struct {
	Value       string   `yaml:"value"`
	Target      string   `yaml:"target"`
	ID          string   `yaml:"id"`
	Identifiers []string `yaml:"identifiers"`
}

// StatisticsDTO represents the statistics settings. Omitted fields keep their defaults.
type StatisticsDTO struct {
	Enabled        *bool          `yaml:"enabled"`
	DecayInterval  *time.Duration `yaml:"decayInterval"`
	DecayFactor    *float64       `yaml:"decayFactor"`
	Retention      *time.Duration `yaml:"retention"`
	DefaultJobSize *int           `yaml:"defaultJobSize"`
	Parallelism    *int           `yaml:"parallelism"`
}
