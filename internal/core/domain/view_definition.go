package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// ValueRequirement asks for a named value on a computation target.
type ValueRequirement struct {
	ValueName string
	Target    ComputationTargetReference
}

// NewValueRequirement creates a ValueRequirement.
func NewValueRequirement(valueName string, target ComputationTargetReference) ValueRequirement {
	return ValueRequirement{ValueName: valueName, Target: target}
}

func (r ValueRequirement) String() string {
	if r.Target == nil {
		return r.ValueName
	}
	return r.ValueName + "@" + r.Target.String()
}

// ViewCalculationConfiguration is a named partition of the outputs a view requests.
// Each configuration compiles to its own dependency graph.
type ViewCalculationConfiguration struct {
	name                  string
	portfolioRequirements map[string][]string
	specificRequirements  []ValueRequirement
}

// NewViewCalculationConfiguration creates a calculation configuration.
// portfolioRequirements maps a security type to the value names required on
// every position holding a security of that type.
func NewViewCalculationConfiguration(
	name string,
	portfolioRequirements map[string][]string,
	specificRequirements []ValueRequirement,
) *ViewCalculationConfiguration {
	reqs := make(map[string][]string, len(portfolioRequirements))
	for secType, names := range portfolioRequirements {
		reqs[secType] = slices.Clone(names)
	}
	return &ViewCalculationConfiguration{
		name:                  name,
		portfolioRequirements: reqs,
		specificRequirements:  slices.Clone(specificRequirements),
	}
}

// Name returns the configuration name.
func (c *ViewCalculationConfiguration) Name() string {
	return c.name
}

// PortfolioRequirements returns the value names required on positions of the given security type.
func (c *ViewCalculationConfiguration) PortfolioRequirements(securityType string) []string {
	return slices.Clone(c.portfolioRequirements[securityType])
}

// PortfolioRequirementsBySecurityType returns a copy of all portfolio requirements.
func (c *ViewCalculationConfiguration) PortfolioRequirementsBySecurityType() map[string][]string {
	out := make(map[string][]string, len(c.portfolioRequirements))
	for secType, names := range c.portfolioRequirements {
		out[secType] = slices.Clone(names)
	}
	return out
}

// HasPortfolioRequirements reports whether any position-level output is requested.
func (c *ViewCalculationConfiguration) HasPortfolioRequirements() bool {
	for _, names := range c.portfolioRequirements {
		if len(names) > 0 {
			return true
		}
	}
	return false
}

// SpecificRequirements returns the explicitly requested, non-portfolio requirements.
func (c *ViewCalculationConfiguration) SpecificRequirements() []ValueRequirement {
	return slices.Clone(c.specificRequirements)
}

// ViewDefinition declares the outputs a view requires, per calculation
// configuration, over an optional portfolio.
type ViewDefinition struct {
	name        string
	portfolioID UniqueID
	configs     []*ViewCalculationConfiguration
	byName      map[string]*ViewCalculationConfiguration
}

// NewViewDefinition creates a view definition.
// Configuration names must be unique and non-empty; their order is preserved.
func NewViewDefinition(name string, portfolioID UniqueID, configs ...*ViewCalculationConfiguration) (*ViewDefinition, error) {
	if name == "" {
		return nil, ErrMissingViewName
	}
	byName := make(map[string]*ViewCalculationConfiguration, len(configs))
	for _, c := range configs {
		if c == nil || c.name == "" {
			return nil, zerr.With(ErrInvalidCalcConfig, "view", name)
		}
		if _, exists := byName[c.name]; exists {
			return nil, zerr.With(zerr.With(ErrDuplicateCalcConfig, "view", name), "calc_config", c.name)
		}
		byName[c.name] = c
	}
	return &ViewDefinition{
		name:        name,
		portfolioID: portfolioID,
		configs:     slices.Clone(configs),
		byName:      byName,
	}, nil
}

// Name returns the view name.
func (v *ViewDefinition) Name() string {
	return v.name
}

// PortfolioID returns the referenced portfolio, zero if the view has none.
func (v *ViewDefinition) PortfolioID() UniqueID {
	return v.portfolioID
}

// CalculationConfigurationNames returns configuration names in declaration order.
func (v *ViewDefinition) CalculationConfigurationNames() []string {
	names := make([]string, len(v.configs))
	for i, c := range v.configs {
		names[i] = c.name
	}
	return names
}

// CalculationConfiguration looks up a configuration by name.
func (v *ViewDefinition) CalculationConfiguration(name string) (*ViewCalculationConfiguration, bool) {
	c, ok := v.byName[name]
	return c, ok
}

// CalculationConfigurations returns the configurations in declaration order.
func (v *ViewDefinition) CalculationConfigurations() []*ViewCalculationConfiguration {
	return slices.Clone(v.configs)
}

// HasPortfolioRequirements reports whether any configuration requests portfolio outputs.
func (v *ViewDefinition) HasPortfolioRequirements() bool {
	return slices.ContainsFunc(v.configs, (*ViewCalculationConfiguration).HasPortfolioRequirements)
}
