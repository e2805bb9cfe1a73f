package domain

import (
	"maps"
	"slices"
	"time"

	"go.trai.ch/zerr"
)

// Security is a tradable instrument.
type Security interface {
	UniqueID() UniqueID
	Name() string
	SecurityType() string
	ExternalIDs() ExternalIDBundle
}

// SecurityLink describes how a position or trade refers to its security.
// A link may carry an object id, an external id bundle, or both.
type SecurityLink struct {
	ObjectID    ObjectID
	ExternalIDs ExternalIDBundle
}

// HasObjectID reports whether the link refers to the security by object id.
func (l SecurityLink) HasObjectID() bool {
	return !l.ObjectID.IsZero()
}

// HasExternalIDs reports whether the link refers to the security by external ids.
func (l SecurityLink) HasExternalIDs() bool {
	return !l.ExternalIDs.IsEmpty()
}

// PositionOrTrade holds the accessors shared by positions and trades.
type PositionOrTrade interface {
	UniqueID() UniqueID
	Quantity() float64
	SecurityLink() SecurityLink
	// Security returns the resolved security the link points to.
	Security() (Security, error)
}

// Position is a holding of a quantity of a security.
type Position interface {
	PositionOrTrade
	Trades() []Trade
	Attributes() map[string]string
}

// Trade is a single transaction contributing to a position.
type Trade interface {
	PositionOrTrade
	Counterparty() string
	TradeDate() time.Time
	Attributes() map[string]string
}

// PortfolioNode is a node of a portfolio tree.
type PortfolioNode interface {
	UniqueID() UniqueID
	ParentNodeID() UniqueID
	Name() string
	ChildNodes() []PortfolioNode
	Positions() []Position
}

// Portfolio is a named tree of positions.
type Portfolio interface {
	UniqueID() UniqueID
	Name() string
	RootNode() PortfolioNode
	Attributes() map[string]string
}

// SimpleSecurity is a plain Security value.
type SimpleSecurity struct {
	ID          UniqueID
	DisplayName string
	Type        string
	Identifiers ExternalIDBundle
}

var _ Security = (*SimpleSecurity)(nil)

// UniqueID returns the security id.
func (s *SimpleSecurity) UniqueID() UniqueID { return s.ID }

// Name returns the display name.
func (s *SimpleSecurity) Name() string { return s.DisplayName }

// SecurityType returns the security type, e.g. "EQUITY".
func (s *SimpleSecurity) SecurityType() string { return s.Type }

// ExternalIDs returns the external identifiers of the security.
func (s *SimpleSecurity) ExternalIDs() ExternalIDBundle { return s.Identifiers }

// SimplePosition is a plain Position value with an already resolved security.
type SimplePosition struct {
	ID       UniqueID
	Qty      float64
	Link     SecurityLink
	Resolved Security
	TradeSet []Trade
	Attrs    map[string]string
}

var _ Position = (*SimplePosition)(nil)

// UniqueID returns the position id.
func (p *SimplePosition) UniqueID() UniqueID { return p.ID }

// Quantity returns the held quantity.
func (p *SimplePosition) Quantity() float64 { return p.Qty }

// SecurityLink returns the link to the held security.
func (p *SimplePosition) SecurityLink() SecurityLink { return p.Link }

// Security returns the resolved security.
func (p *SimplePosition) Security() (Security, error) {
	if p.Resolved == nil {
		return nil, zerr.With(ErrSecurityNotResolved, "position", p.ID.String())
	}
	return p.Resolved, nil
}

// Trades returns the trades of the position.
func (p *SimplePosition) Trades() []Trade { return slices.Clone(p.TradeSet) }

// Attributes returns a copy of the position attributes.
func (p *SimplePosition) Attributes() map[string]string { return maps.Clone(p.Attrs) }

// SimpleTrade is a plain Trade value with an already resolved security.
type SimpleTrade struct {
	ID       UniqueID
	Qty      float64
	Link     SecurityLink
	Resolved Security
	Party    string
	Date     time.Time
	Attrs    map[string]string
}

var _ Trade = (*SimpleTrade)(nil)

// UniqueID returns the trade id.
func (t *SimpleTrade) UniqueID() UniqueID { return t.ID }

// Quantity returns the traded quantity.
func (t *SimpleTrade) Quantity() float64 { return t.Qty }

// SecurityLink returns the link to the traded security.
func (t *SimpleTrade) SecurityLink() SecurityLink { return t.Link }

// Security returns the resolved security.
func (t *SimpleTrade) Security() (Security, error) {
	if t.Resolved == nil {
		return nil, zerr.With(ErrSecurityNotResolved, "trade", t.ID.String())
	}
	return t.Resolved, nil
}

// Counterparty returns the trade counterparty.
func (t *SimpleTrade) Counterparty() string { return t.Party }

// TradeDate returns the trade date.
func (t *SimpleTrade) TradeDate() time.Time { return t.Date }

// Attributes returns a copy of the trade attributes.
func (t *SimpleTrade) Attributes() map[string]string { return maps.Clone(t.Attrs) }

// SimplePortfolioNode is a plain PortfolioNode value.
type SimplePortfolioNode struct {
	ID          UniqueID
	ParentID    UniqueID
	DisplayName string
	Children    []PortfolioNode
	Holdings    []Position
}

var _ PortfolioNode = (*SimplePortfolioNode)(nil)

// UniqueID returns the node id.
func (n *SimplePortfolioNode) UniqueID() UniqueID { return n.ID }

// ParentNodeID returns the id of the parent node, zero for the root.
func (n *SimplePortfolioNode) ParentNodeID() UniqueID { return n.ParentID }

// Name returns the node name.
func (n *SimplePortfolioNode) Name() string { return n.DisplayName }

// ChildNodes returns the child nodes.
func (n *SimplePortfolioNode) ChildNodes() []PortfolioNode { return slices.Clone(n.Children) }

// Positions returns the positions held directly in the node.
func (n *SimplePortfolioNode) Positions() []Position { return slices.Clone(n.Holdings) }

// SimplePortfolio is a plain Portfolio value.
type SimplePortfolio struct {
	ID          UniqueID
	DisplayName string
	Root        PortfolioNode
	Attrs       map[string]string
}

var _ Portfolio = (*SimplePortfolio)(nil)

// UniqueID returns the portfolio id.
func (p *SimplePortfolio) UniqueID() UniqueID { return p.ID }

// Name returns the portfolio name.
func (p *SimplePortfolio) Name() string { return p.DisplayName }

// RootNode returns the root of the portfolio tree.
func (p *SimplePortfolio) RootNode() PortfolioNode { return p.Root }

// Attributes returns a copy of the portfolio attributes.
func (p *SimplePortfolio) Attributes() map[string]string { return maps.Clone(p.Attrs) }

// WalkPortfolio visits every node of the tree depth first, parents before children.
// It stops at the first error returned by fn.
func WalkPortfolio(node PortfolioNode, fn func(PortfolioNode) error) error {
	if node == nil {
		return nil
	}
	if err := fn(node); err != nil {
		return err
	}
	for _, child := range node.ChildNodes() {
		if err := WalkPortfolio(child, fn); err != nil {
			return err
		}
	}
	return nil
}
