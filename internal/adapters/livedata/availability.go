// Package livedata reports which values are sourced from market data.
package livedata

import (
	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
)

var _ ports.LiveDataAvailabilityProvider = (*FixedAvailability)(nil)

// FixedAvailability treats a fixed set of value names as available on every
// security and primitive target.
type FixedAvailability struct {
	values map[string]struct{}
}

// NewFixedAvailability creates an availability provider for valueNames.
func NewFixedAvailability(valueNames ...string) *FixedAvailability {
	values := make(map[string]struct{}, len(valueNames))
	for _, v := range valueNames {
		values[v] = struct{}{}
	}
	return &FixedAvailability{values: values}
}

// IsAvailable reports whether valueName is sourced from market data on target.
func (a *FixedAvailability) IsAvailable(valueName string, target domain.ComputationTargetSpecification) bool {
	switch target.Type {
	case domain.TargetSecurity, domain.TargetPrimitive:
		_, ok := a.values[valueName]
		return ok
	default:
		return false
	}
}
