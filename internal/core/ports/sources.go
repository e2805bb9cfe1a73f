package ports

import (
	"context"

	"go.trai.ch/prism/internal/core/domain"
)

//go:generate mockgen -source=sources.go -destination=mocks/mock_sources.go -package=mocks

// SecuritySource looks up securities.
type SecuritySource interface {
	// Security returns the security with the given id. A latest-version id
	// returns the current version.
	Security(ctx context.Context, id domain.UniqueID) (domain.Security, error)
	// SecurityByExternalIDs returns the security matching any id in the bundle.
	SecurityByExternalIDs(ctx context.Context, ids domain.ExternalIDBundle) (domain.Security, error)
}

// PositionSource looks up portfolios.
type PositionSource interface {
	// Portfolio returns the fully resolved portfolio with the given id.
	Portfolio(ctx context.Context, id domain.UniqueID) (domain.Portfolio, error)
}

// ComputationTargetResolver turns target references into resolved targets.
type ComputationTargetResolver interface {
	// Resolve returns the target named by spec.
	Resolve(ctx context.Context, spec domain.ComputationTargetSpecification) (domain.ComputationTarget, error)
	// ResolveRequirement turns an external-id reference into a specification.
	ResolveRequirement(ctx context.Context, req domain.ComputationTargetRequirement) (domain.ComputationTargetSpecification, error)
}

// LiveDataAvailabilityProvider reports which values can be sourced from market data.
type LiveDataAvailabilityProvider interface {
	// IsAvailable reports whether valueName on target is supplied by market data.
	IsAvailable(valueName string, target domain.ComputationTargetSpecification) bool
}

// FunctionResolver finds the function producing a value on a target.
type FunctionResolver interface {
	// Resolve returns the function producing valueName on target, if any.
	Resolve(valueName string, target domain.ComputationTarget) (domain.FunctionDefinition, bool)
}
