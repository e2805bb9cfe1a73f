// Package source provides an in-memory master of securities and portfolios
// loaded from the workspace catalog. Every entity is versioned by a hash of
// its content so that unique ids change whenever the definition changes.
package source

import (
	"context"
	"sync"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.SecuritySource            = (*Store)(nil)
	_ ports.PositionSource            = (*Store)(nil)
	_ ports.ComputationTargetResolver = (*Store)(nil)
)

// Store serves securities, portfolios and computation targets from memory.
type Store struct {
	securities []*domain.SimpleSecurity
	byObjectID map[domain.ObjectID]*domain.SimpleSecurity

	portfolioDefs map[domain.ObjectID]domain.Portfolio

	mu         sync.Mutex
	portfolios map[domain.ObjectID]*domain.SimplePortfolio
	members    map[domain.ObjectID]domain.ComputationTarget
}

// NewStore indexes the securities and portfolios of catalog.
func NewStore(catalog *domain.Catalog) (*Store, error) {
	if catalog == nil {
		return nil, zerr.With(domain.ErrNilArgument, "argument", "catalog")
	}

	s := &Store{
		byObjectID:    make(map[domain.ObjectID]*domain.SimpleSecurity, len(catalog.Securities)),
		portfolioDefs: make(map[domain.ObjectID]domain.Portfolio, len(catalog.Portfolios)),
		portfolios:    make(map[domain.ObjectID]*domain.SimplePortfolio),
		members:       make(map[domain.ObjectID]domain.ComputationTarget),
	}

	for _, def := range catalog.Securities {
		oid := def.UniqueID().ObjectID()
		sec := &domain.SimpleSecurity{
			ID:          oid.AtVersion(securityVersion(def)),
			DisplayName: def.Name(),
			Type:        def.SecurityType(),
			Identifiers: def.ExternalIDs(),
		}
		s.securities = append(s.securities, sec)
		s.byObjectID[oid] = sec
	}

	for _, def := range catalog.Portfolios {
		s.portfolioDefs[def.UniqueID().ObjectID()] = def
	}

	return s, nil
}

// Security returns the security with the given id. A versioned id must match
// the current version.
func (s *Store) Security(ctx context.Context, id domain.UniqueID) (domain.Security, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sec, ok := s.byObjectID[id.ObjectID()]
	if !ok || (!id.IsLatest() && sec.ID != id) {
		return nil, zerr.With(domain.ErrSecurityNotFound, "security", id.String())
	}
	return sec, nil
}

// SecurityByExternalIDs returns the first declared security sharing an
// identifier with ids.
func (s *Store) SecurityByExternalIDs(ctx context.Context, ids domain.ExternalIDBundle) (domain.Security, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, sec := range s.securities {
		if sec.Identifiers.ContainsAny(ids) {
			return sec, nil
		}
	}
	return nil, zerr.With(domain.ErrSecurityNotFound, "identifiers", ids.String())
}

// Portfolio returns the portfolio with every position and trade linked to
// its security. Resolved portfolios are cached.
func (s *Store) Portfolio(ctx context.Context, id domain.UniqueID) (domain.Portfolio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.portfolio(ctx, id.ObjectID())
	if err != nil {
		return nil, err
	}
	if !id.IsLatest() && p.ID != id {
		return nil, zerr.With(domain.ErrPortfolioNotFound, "portfolio", id.String())
	}
	return p, nil
}

// portfolio resolves and caches a portfolio. Callers hold s.mu.
func (s *Store) portfolio(ctx context.Context, oid domain.ObjectID) (*domain.SimplePortfolio, error) {
	if p, ok := s.portfolios[oid]; ok {
		return p, nil
	}
	def, ok := s.portfolioDefs[oid]
	if !ok {
		return nil, zerr.With(domain.ErrPortfolioNotFound, "portfolio", oid.String())
	}

	members := make(map[domain.ObjectID]domain.ComputationTarget)
	root, err := s.resolveNode(ctx, def.RootNode(), members)
	if err != nil {
		return nil, zerr.With(err, "portfolio", oid.String())
	}

	p := &domain.SimplePortfolio{
		ID:          oid.AtVersion(portfolioVersion(def, root)),
		DisplayName: def.Name(),
		Attrs:       def.Attributes(),
	}
	if root != nil {
		p.Root = root
	}
	s.portfolios[oid] = p
	members[oid] = domain.ComputationTarget{
		Spec:  domain.NewComputationTargetSpecification(domain.TargetPortfolio, p.ID),
		Value: p,
	}
	for k, v := range members {
		s.members[k] = v
	}
	return p, nil
}

func (s *Store) resolveNode(
	ctx context.Context,
	def domain.PortfolioNode,
	members map[domain.ObjectID]domain.ComputationTarget,
) (*domain.SimplePortfolioNode, error) {
	if def == nil {
		return nil, nil
	}

	positions := make([]domain.Position, 0, len(def.Positions()))
	for _, pd := range def.Positions() {
		pos, err := s.resolvePosition(ctx, pd, members)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}

	children := make([]domain.PortfolioNode, 0, len(def.ChildNodes()))
	for _, cd := range def.ChildNodes() {
		child, err := s.resolveNode(ctx, cd, members)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	oid := def.UniqueID().ObjectID()
	node := &domain.SimplePortfolioNode{
		ID:          oid.AtVersion(nodeVersion(def, children, positions)),
		ParentID:    def.ParentNodeID().ToLatest(),
		DisplayName: def.Name(),
		Children:    children,
		Holdings:    positions,
	}
	members[oid] = domain.ComputationTarget{
		Spec:  domain.NewComputationTargetSpecification(domain.TargetPortfolioNode, node.ID),
		Value: node,
	}
	return node, nil
}

func (s *Store) resolvePosition(
	ctx context.Context,
	def domain.Position,
	members map[domain.ObjectID]domain.ComputationTarget,
) (*domain.SimplePosition, error) {
	sec, err := s.linkedSecurity(ctx, def.SecurityLink())
	if err != nil {
		return nil, zerr.With(err, "position", def.UniqueID().String())
	}

	trades := make([]domain.Trade, 0, len(def.Trades()))
	for _, td := range def.Trades() {
		tsec, err := s.linkedSecurity(ctx, td.SecurityLink())
		if err != nil {
			return nil, zerr.With(err, "trade", td.UniqueID().String())
		}
		toid := td.UniqueID().ObjectID()
		trade := &domain.SimpleTrade{
			ID:       toid.AtVersion(tradeVersion(td, tsec)),
			Qty:      td.Quantity(),
			Link:     td.SecurityLink(),
			Resolved: tsec,
			Party:    td.Counterparty(),
			Date:     td.TradeDate(),
			Attrs:    td.Attributes(),
		}
		trades = append(trades, trade)
		members[toid] = domain.ComputationTarget{
			Spec:  domain.NewComputationTargetSpecification(domain.TargetTrade, trade.ID),
			Value: trade,
		}
	}

	oid := def.UniqueID().ObjectID()
	pos := &domain.SimplePosition{
		ID:       oid.AtVersion(positionVersion(def, sec, trades)),
		Qty:      def.Quantity(),
		Link:     def.SecurityLink(),
		Resolved: sec,
		TradeSet: trades,
		Attrs:    def.Attributes(),
	}
	members[oid] = domain.ComputationTarget{
		Spec:  domain.NewComputationTargetSpecification(domain.TargetPosition, pos.ID),
		Value: pos,
	}
	return pos, nil
}

// linkedSecurity follows the object id of a link, falling back to its external ids.
func (s *Store) linkedSecurity(ctx context.Context, link domain.SecurityLink) (domain.Security, error) {
	if link.HasObjectID() {
		return s.Security(ctx, link.ObjectID.AtLatestVersion())
	}
	return s.SecurityByExternalIDs(ctx, link.ExternalIDs)
}

// Resolve returns the target named by spec. Portfolio members are found once
// their portfolio has been resolved. PRIMITIVE targets resolve to their id.
func (s *Store) Resolve(ctx context.Context, spec domain.ComputationTargetSpecification) (domain.ComputationTarget, error) {
	if err := ctx.Err(); err != nil {
		return domain.ComputationTarget{}, err
	}

	switch spec.Type {
	case domain.TargetSecurity:
		sec, err := s.Security(ctx, spec.ID)
		if err != nil {
			return domain.ComputationTarget{}, zerr.Wrap(err, domain.ErrTargetNotFound.Error())
		}
		return domain.ComputationTarget{
			Spec:  domain.NewComputationTargetSpecification(domain.TargetSecurity, sec.UniqueID()),
			Value: sec,
		}, nil
	case domain.TargetPrimitive:
		return domain.ComputationTarget{Spec: spec, Value: spec.ID}, nil
	case domain.TargetPortfolio:
		if _, err := s.Portfolio(ctx, spec.ID); err != nil {
			return domain.ComputationTarget{}, zerr.Wrap(err, domain.ErrTargetNotFound.Error())
		}
	}

	s.mu.Lock()
	target, ok := s.members[spec.ID.ObjectID()]
	s.mu.Unlock()
	if !ok || target.Spec.Type != spec.Type || (!spec.ID.IsLatest() && target.Spec.ID != spec.ID) {
		return domain.ComputationTarget{}, zerr.With(domain.ErrTargetNotFound, "target", spec.String())
	}
	return target, nil
}

// ResolveRequirement resolves SECURITY requirements by external identifiers.
func (s *Store) ResolveRequirement(
	ctx context.Context,
	req domain.ComputationTargetRequirement,
) (domain.ComputationTargetSpecification, error) {
	if req.Type != domain.TargetSecurity {
		return domain.ComputationTargetSpecification{}, zerr.With(domain.ErrTargetNotFound, "target", req.String())
	}
	sec, err := s.SecurityByExternalIDs(ctx, req.Identifiers)
	if err != nil {
		return domain.ComputationTargetSpecification{}, zerr.Wrap(err, domain.ErrTargetNotFound.Error())
	}
	return domain.NewComputationTargetSpecification(domain.TargetSecurity, sec.UniqueID()), nil
}
