package domain

import "go.trai.ch/zerr"

var (
	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = zerr.New("required argument is nil")

	// ErrInvalidIdentifier is returned when an identifier cannot be parsed.
	ErrInvalidIdentifier = zerr.New("invalid identifier")

	// ErrInvalidTargetType is returned for an unknown computation target type.
	ErrInvalidTargetType = zerr.New("invalid computation target type")

	// ErrMissingViewName is returned when a view definition has no name.
	ErrMissingViewName = zerr.New("view definition has no name")

	// ErrInvalidCalcConfig is returned when a calculation configuration is nil or unnamed.
	ErrInvalidCalcConfig = zerr.New("invalid calculation configuration")

	// ErrDuplicateCalcConfig is returned when a view declares a calculation configuration twice.
	ErrDuplicateCalcConfig = zerr.New("duplicate calculation configuration")

	// ErrViewNotFound is returned when a requested view is not defined.
	ErrViewNotFound = zerr.New("view not found")

	// ErrNoViewSpecified is returned when no view is named and the workspace defines several.
	ErrNoViewSpecified = zerr.New("no view specified")

	// ErrDuplicateOutput is returned when two nodes produce the same value.
	ErrDuplicateOutput = zerr.New("value already produced by another node")

	// ErrMissingProducer is returned when no node produces a referenced value.
	ErrMissingProducer = zerr.New("no node produces value")

	// ErrCycleDetected is returned when a cycle is detected in a dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrSecurityNotResolved is returned when a position or trade has no resolved security.
	ErrSecurityNotResolved = zerr.New("security not resolved")

	// ErrSecurityNotFound is returned when a security lookup fails.
	ErrSecurityNotFound = zerr.New("security not found")

	// ErrPortfolioNotFound is returned when a portfolio lookup fails.
	ErrPortfolioNotFound = zerr.New("portfolio not found")

	// ErrPortfolioNotReferenced is returned when a view requests portfolio outputs but names no portfolio.
	ErrPortfolioNotReferenced = zerr.New("view requests portfolio outputs but references no portfolio")

	// ErrTargetNotFound is returned when a computation target cannot be resolved.
	ErrTargetNotFound = zerr.New("computation target not found")

	// ErrUnsatisfiedRequirement is returned when no function or live data satisfies a requirement.
	ErrUnsatisfiedRequirement = zerr.New("no function satisfies requirement")

	// ErrResolutionCycle is returned when resolving a requirement depends on itself.
	ErrResolutionCycle = zerr.New("requirement depends on itself")

	// ErrGraphBuildFailed is returned when a dependency graph could not be built.
	ErrGraphBuildFailed = zerr.New("failed to build dependency graph")

	// ErrCompilationFailed is returned when a view compilation attempt fails.
	ErrCompilationFailed = zerr.New("view compilation failed")

	// ErrViewExecutionFailed is returned when an execution cycle of a view fails.
	ErrViewExecutionFailed = zerr.New("view execution failed")

	// ErrJobExecutionFailed is returned when a calculation job fails.
	ErrJobExecutionFailed = zerr.New("calculation job failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find prism.yaml")

	// ErrConfigInvalid is returned when the config file is well formed but inconsistent.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrInvalidDecayFactor is returned when a decay factor is outside [0, 1].
	ErrInvalidDecayFactor = zerr.New("decay factor must be between 0 and 1")
)
