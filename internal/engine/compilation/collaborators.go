package compilation

import (
	"context"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/engine/resolution"
	"go.trai.ch/zerr"
)

// PortfolioCompiler compiles the portfolio of a view into its builders.
type PortfolioCompiler interface {
	Compile(ctx context.Context, vcc *ViewCompilationContext) (domain.Portfolio, error)
}

// RequirementsCompiler adds the non-portfolio requirements of a view to its builders.
type RequirementsCompiler interface {
	Compile(ctx context.Context, vcc *ViewCompilationContext) error
}

// PositionPortfolioCompiler resolves the view's portfolio, attaches it to every
// builder's compilation context and requests the portfolio outputs of each
// calculation configuration on every position. It returns the undecorated
// portfolio, nil if the view has none.
type PositionPortfolioCompiler struct{}

// Compile implements PortfolioCompiler.
func (PositionPortfolioCompiler) Compile(ctx context.Context, vcc *ViewCompilationContext) (domain.Portfolio, error) {
	view := vcc.ViewDefinition()
	id := view.PortfolioID()
	if id.IsZero() {
		if view.HasPortfolioRequirements() {
			return nil, zerr.With(domain.ErrPortfolioNotReferenced, "view", view.Name())
		}
		return nil, nil
	}

	resolved, err := vcc.Services().PositionSource.Portfolio(ctx, id)
	if err != nil {
		return nil, zerr.With(err, "portfolio", id.String())
	}
	logged := resolution.NewLoggedPortfolio(resolved, vcc.ResolutionRecorder())

	builders := vcc.Builders()
	names := vcc.BuilderNames()
	for _, name := range names {
		if cc := builders[name].CompilationContext(); cc != nil {
			cc.SetPortfolio(logged)
		}
	}

	err = domain.WalkPortfolio(logged.RootNode(), func(node domain.PortfolioNode) error {
		for _, pos := range node.Positions() {
			sec, err := pos.Security()
			if err != nil {
				return zerr.With(err, "position", pos.UniqueID().String())
			}
			target := domain.NewComputationTargetSpecification(domain.TargetPosition, pos.UniqueID())
			for _, name := range names {
				calcConfig, _ := view.CalculationConfiguration(name)
				for _, valueName := range calcConfig.PortfolioRequirements(sec.SecurityType()) {
					req := domain.NewValueRequirement(valueName, target)
					if err := builders[name].AddTarget(ctx, req); err != nil {
						return zerr.With(err, "calc_config", name)
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// SpecificRequirementsCompiler requests the specific outputs of every calculation configuration.
type SpecificRequirementsCompiler struct{}

// Compile implements RequirementsCompiler.
func (SpecificRequirementsCompiler) Compile(ctx context.Context, vcc *ViewCompilationContext) error {
	view := vcc.ViewDefinition()
	builders := vcc.Builders()
	for _, name := range vcc.BuilderNames() {
		calcConfig, _ := view.CalculationConfiguration(name)
		for _, req := range calcConfig.SpecificRequirements() {
			if err := builders[name].AddTarget(ctx, req); err != nil {
				return zerr.With(err, "calc_config", name)
			}
		}
	}
	return nil
}
