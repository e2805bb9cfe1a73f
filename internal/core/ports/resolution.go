package ports

import "go.trai.ch/prism/internal/core/domain"

// ResolutionLogger records how a reference was satisfied during target resolution.
// Implementations must be safe for concurrent use when shared across goroutines.
//
//go:generate mockgen -source=resolution.go -destination=mocks/mock_resolution.go -package=mocks
type ResolutionLogger interface {
	// Log records that ref resolved to the given versioned identifier.
	Log(ref domain.ComputationTargetReference, resolved domain.UniqueID)
}
