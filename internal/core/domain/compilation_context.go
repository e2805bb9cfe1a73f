package domain

import "sync"

// FunctionCompilationContext is shared by every dependency graph builder of
// one compilation attempt. It carries the resolved portfolio so builders can
// reach portfolio members without resolving them again.
type FunctionCompilationContext struct {
	mu        sync.RWMutex
	portfolio Portfolio
	targets   map[ObjectID]ComputationTarget
}

// NewFunctionCompilationContext creates an empty context.
func NewFunctionCompilationContext() *FunctionCompilationContext {
	return &FunctionCompilationContext{
		targets: make(map[ObjectID]ComputationTarget),
	}
}

// SetPortfolio attaches the resolved portfolio and indexes its nodes,
// positions and trades. Setting the same portfolio again is a no-op.
func (c *FunctionCompilationContext) SetPortfolio(p Portfolio) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.portfolio == p {
		return
	}
	c.portfolio = p
	c.targets = make(map[ObjectID]ComputationTarget)
	if p == nil {
		return
	}

	c.index(TargetPortfolio, p.UniqueID(), p)
	_ = WalkPortfolio(p.RootNode(), func(node PortfolioNode) error {
		c.index(TargetPortfolioNode, node.UniqueID(), node)
		for _, pos := range node.Positions() {
			c.index(TargetPosition, pos.UniqueID(), pos)
			for _, trade := range pos.Trades() {
				c.index(TargetTrade, trade.UniqueID(), trade)
			}
		}
		return nil
	})
}

func (c *FunctionCompilationContext) index(t ComputationTargetType, id UniqueID, value any) {
	c.targets[id.ObjectID()] = ComputationTarget{
		Spec:  NewComputationTargetSpecification(t, id),
		Value: value,
	}
}

// Portfolio returns the attached portfolio, nil if none.
func (c *FunctionCompilationContext) Portfolio() Portfolio {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.portfolio
}

// PortfolioTarget looks up a member of the attached portfolio.
func (c *FunctionCompilationContext) PortfolioTarget(spec ComputationTargetSpecification) (ComputationTarget, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.targets[spec.ID.ObjectID()]
	if !ok || t.Spec.Type != spec.Type {
		return ComputationTarget{}, false
	}
	return t, true
}
