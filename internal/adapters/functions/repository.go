// Package functions resolves value requirements to the function definitions
// declared in the workspace.
package functions

import (
	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
)

var _ ports.FunctionResolver = (*Repository)(nil)

type outputKey struct {
	output     string
	targetType domain.ComputationTargetType
}

// Repository is an immutable index of function definitions.
type Repository struct {
	byOutput map[outputKey][]domain.FunctionDefinition
}

// NewRepository indexes defs by output and target type, keeping declaration
// order within each key.
func NewRepository(defs []domain.FunctionDefinition) *Repository {
	r := &Repository{byOutput: make(map[outputKey][]domain.FunctionDefinition, len(defs))}
	for _, def := range defs {
		k := outputKey{output: def.Output, targetType: def.TargetType}
		r.byOutput[k] = append(r.byOutput[k], def)
	}
	return r
}

// Resolve returns the first function producing valueName on target.
// Functions restricted to a security type only match targets whose security
// has that type; unrestricted functions match any target.
func (r *Repository) Resolve(valueName string, target domain.ComputationTarget) (domain.FunctionDefinition, bool) {
	candidates := r.byOutput[outputKey{output: valueName, targetType: target.Type()}]
	if len(candidates) == 0 {
		return domain.FunctionDefinition{}, false
	}

	secType := securityType(target)
	for _, def := range candidates {
		if def.SecurityType == "" || def.SecurityType == secType {
			return def, true
		}
	}
	return domain.FunctionDefinition{}, false
}

// securityType returns the type of the target's security, empty when the
// target has none.
func securityType(target domain.ComputationTarget) string {
	if sec := target.Security(); sec != nil {
		return sec.SecurityType()
	}
	pt, ok := target.PositionOrTrade()
	if !ok {
		return ""
	}
	sec, err := pt.Security()
	if err != nil {
		return ""
	}
	return sec.SecurityType()
}
