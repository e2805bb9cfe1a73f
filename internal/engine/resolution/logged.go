// Package resolution provides portfolio decorators that report how securities
// and positions were resolved, and a recorder collecting those reports.
package resolution

import (
	"time"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
)

// LoggedPortfolio wraps a portfolio so that traversal reports resolutions to a logger.
type LoggedPortfolio struct {
	underlying domain.Portfolio
	logger     ports.ResolutionLogger
}

var _ domain.Portfolio = (*LoggedPortfolio)(nil)

// NewLoggedPortfolio decorates p. Neither argument is checked; a nil value
// fails on the first delegated call.
func NewLoggedPortfolio(p domain.Portfolio, logger ports.ResolutionLogger) *LoggedPortfolio {
	return &LoggedPortfolio{underlying: p, logger: logger}
}

// UniqueID returns the id of the underlying portfolio.
func (p *LoggedPortfolio) UniqueID() domain.UniqueID { return p.underlying.UniqueID() }

// Name returns the name of the underlying portfolio.
func (p *LoggedPortfolio) Name() string { return p.underlying.Name() }

// Attributes returns the attributes of the underlying portfolio.
func (p *LoggedPortfolio) Attributes() map[string]string { return p.underlying.Attributes() }

// RootNode returns the decorated root node, nil if the portfolio has none.
func (p *LoggedPortfolio) RootNode() domain.PortfolioNode {
	root := p.underlying.RootNode()
	if root == nil {
		return nil
	}
	return NewLoggedPortfolioNode(root, p.logger)
}

// LoggedPortfolioNode wraps a portfolio node.
type LoggedPortfolioNode struct {
	underlying domain.PortfolioNode
	logger     ports.ResolutionLogger
}

var _ domain.PortfolioNode = (*LoggedPortfolioNode)(nil)

// NewLoggedPortfolioNode decorates n.
func NewLoggedPortfolioNode(n domain.PortfolioNode, logger ports.ResolutionLogger) *LoggedPortfolioNode {
	return &LoggedPortfolioNode{underlying: n, logger: logger}
}

// UniqueID returns the id of the underlying node.
func (n *LoggedPortfolioNode) UniqueID() domain.UniqueID { return n.underlying.UniqueID() }

// ParentNodeID returns the parent id of the underlying node.
func (n *LoggedPortfolioNode) ParentNodeID() domain.UniqueID { return n.underlying.ParentNodeID() }

// Name returns the name of the underlying node.
func (n *LoggedPortfolioNode) Name() string { return n.underlying.Name() }

// ChildNodes returns the decorated children. Visiting children is not reported.
func (n *LoggedPortfolioNode) ChildNodes() []domain.PortfolioNode {
	children := n.underlying.ChildNodes()
	out := make([]domain.PortfolioNode, len(children))
	for i, child := range children {
		out[i] = NewLoggedPortfolioNode(child, n.logger)
	}
	return out
}

// Positions returns the decorated positions and reports each one as resolved
// from its latest-version reference.
func (n *LoggedPortfolioNode) Positions() []domain.Position {
	positions := n.underlying.Positions()
	out := make([]domain.Position, len(positions))
	for i, pos := range positions {
		id := pos.UniqueID()
		n.logger.Log(domain.NewComputationTargetSpecification(domain.TargetPosition, id.ToLatest()), id)
		out[i] = NewLoggedPosition(pos, n.logger)
	}
	return out
}

// LoggedPosition wraps a position.
type LoggedPosition struct {
	underlying domain.Position
	logger     ports.ResolutionLogger
}

var _ domain.Position = (*LoggedPosition)(nil)

// NewLoggedPosition decorates p.
func NewLoggedPosition(p domain.Position, logger ports.ResolutionLogger) *LoggedPosition {
	return &LoggedPosition{underlying: p, logger: logger}
}

// UniqueID returns the id of the underlying position.
func (p *LoggedPosition) UniqueID() domain.UniqueID { return p.underlying.UniqueID() }

// Quantity returns the quantity of the underlying position.
func (p *LoggedPosition) Quantity() float64 { return p.underlying.Quantity() }

// SecurityLink returns the security link of the underlying position.
func (p *LoggedPosition) SecurityLink() domain.SecurityLink { return p.underlying.SecurityLink() }

// Attributes returns the attributes of the underlying position.
func (p *LoggedPosition) Attributes() map[string]string { return p.underlying.Attributes() }

// Security returns the underlying security and reports how the link resolved.
func (p *LoggedPosition) Security() (domain.Security, error) {
	return loggedSecurity(p.underlying, p.logger)
}

// Trades returns the decorated trades. Visiting trades is not reported.
func (p *LoggedPosition) Trades() []domain.Trade {
	trades := p.underlying.Trades()
	out := make([]domain.Trade, len(trades))
	for i, trade := range trades {
		out[i] = NewLoggedTrade(trade, p.logger)
	}
	return out
}

// LoggedTrade wraps a trade.
type LoggedTrade struct {
	underlying domain.Trade
	logger     ports.ResolutionLogger
}

var _ domain.Trade = (*LoggedTrade)(nil)

// NewLoggedTrade decorates t.
func NewLoggedTrade(t domain.Trade, logger ports.ResolutionLogger) *LoggedTrade {
	return &LoggedTrade{underlying: t, logger: logger}
}

// UniqueID returns the id of the underlying trade.
func (t *LoggedTrade) UniqueID() domain.UniqueID { return t.underlying.UniqueID() }

// Quantity returns the quantity of the underlying trade.
func (t *LoggedTrade) Quantity() float64 { return t.underlying.Quantity() }

// SecurityLink returns the security link of the underlying trade.
func (t *LoggedTrade) SecurityLink() domain.SecurityLink { return t.underlying.SecurityLink() }

// Counterparty returns the counterparty of the underlying trade.
func (t *LoggedTrade) Counterparty() string { return t.underlying.Counterparty() }

// TradeDate returns the date of the underlying trade.
func (t *LoggedTrade) TradeDate() time.Time { return t.underlying.TradeDate() }

// Attributes returns the attributes of the underlying trade.
func (t *LoggedTrade) Attributes() map[string]string { return t.underlying.Attributes() }

// Security returns the underlying security and reports how the link resolved.
func (t *LoggedTrade) Security() (domain.Security, error) {
	return loggedSecurity(t.underlying, t.logger)
}

// loggedSecurity fetches the security of pt. Each form of reference carried by
// the link is reported once; nothing is reported on failure.
func loggedSecurity(pt domain.PositionOrTrade, logger ports.ResolutionLogger) (domain.Security, error) {
	sec, err := pt.Security()
	if err != nil {
		return nil, err
	}
	link := pt.SecurityLink()
	if link.HasExternalIDs() {
		logger.Log(domain.NewComputationTargetRequirement(domain.TargetSecurity, link.ExternalIDs), sec.UniqueID())
	}
	if link.HasObjectID() {
		logger.Log(domain.NewComputationTargetSpecification(domain.TargetSecurity, link.ObjectID.AtLatestVersion()), sec.UniqueID())
	}
	return sec, nil
}
