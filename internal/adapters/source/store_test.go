package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prism/internal/adapters/source"
	"go.trai.ch/prism/internal/core/domain"
)

func bundle(t *testing.T, s string) domain.ExternalIDBundle {
	t.Helper()
	b, err := domain.ParseExternalIDBundle(s)
	require.NoError(t, err)
	return b
}

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	acme := &domain.SimpleSecurity{
		ID:          domain.NewUniqueID("SEC", "ACME", ""),
		DisplayName: "Acme Corp",
		Type:        "EQUITY",
		Identifiers: bundle(t, "TICKER~ACME,ISIN~US0000000001"),
	}
	bond := &domain.SimpleSecurity{
		ID:          domain.NewUniqueID("SEC", "BOND", ""),
		DisplayName: "Treasury 2030",
		Type:        "BOND",
	}

	equities := &domain.SimplePortfolioNode{
		ID:          domain.NewUniqueID("NODE", "MAIN/Root/Equities", ""),
		ParentID:    domain.NewUniqueID("NODE", "MAIN/Root", ""),
		DisplayName: "Equities",
		Holdings: []domain.Position{&domain.SimplePosition{
			ID:   domain.NewUniqueID("POS", "1", ""),
			Qty:  100,
			Link: domain.SecurityLink{ExternalIDs: bundle(t, "TICKER~ACME")},
			TradeSet: []domain.Trade{&domain.SimpleTrade{
				ID:   domain.NewUniqueID("TRD", "1", ""),
				Qty:  100,
				Link: domain.SecurityLink{ObjectID: domain.NewObjectID("SEC", "ACME")},
			}},
		}},
	}
	root := &domain.SimplePortfolioNode{
		ID:          domain.NewUniqueID("NODE", "MAIN/Root", ""),
		DisplayName: "Root",
		Children:    []domain.PortfolioNode{equities},
		Holdings: []domain.Position{&domain.SimplePosition{
			ID:   domain.NewUniqueID("POS", "2", ""),
			Qty:  50,
			Link: domain.SecurityLink{ObjectID: domain.NewObjectID("SEC", "BOND")},
		}},
	}

	return &domain.Catalog{
		Securities: []domain.Security{acme, bond},
		Portfolios: []domain.Portfolio{&domain.SimplePortfolio{
			ID:          domain.NewUniqueID("PF", "MAIN", ""),
			DisplayName: "Main",
			Root:        root,
		}},
	}
}

func newStore(t *testing.T) *source.Store {
	t.Helper()
	s, err := source.NewStore(testCatalog(t))
	require.NoError(t, err)
	return s
}

func TestNewStore_NilCatalog(t *testing.T) {
	_, err := source.NewStore(nil)
	assert.ErrorContains(t, err, domain.ErrNilArgument.Error())
}

func TestStore_Security(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	sec, err := s.Security(ctx, domain.NewUniqueID("SEC", "ACME", ""))
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", sec.Name())
	assert.False(t, sec.UniqueID().IsLatest(), "served securities carry a content version")

	again, err := s.Security(ctx, sec.UniqueID())
	require.NoError(t, err)
	assert.Same(t, sec, again)

	_, err = s.Security(ctx, domain.NewUniqueID("SEC", "ACME", "stale"))
	assert.ErrorContains(t, err, domain.ErrSecurityNotFound.Error())

	_, err = s.Security(ctx, domain.NewUniqueID("SEC", "MISSING", ""))
	assert.ErrorContains(t, err, domain.ErrSecurityNotFound.Error())
}

func TestStore_VersionsFollowContent(t *testing.T) {
	a := newStore(t)
	b := newStore(t)

	secA, err := a.Security(t.Context(), domain.NewUniqueID("SEC", "ACME", ""))
	require.NoError(t, err)
	secB, err := b.Security(t.Context(), domain.NewUniqueID("SEC", "ACME", ""))
	require.NoError(t, err)
	assert.Equal(t, secA.UniqueID(), secB.UniqueID())

	changed := testCatalog(t)
	changed.Securities[0].(*domain.SimpleSecurity).DisplayName = "Acme Corporation"
	c, err := source.NewStore(changed)
	require.NoError(t, err)
	secC, err := c.Security(t.Context(), domain.NewUniqueID("SEC", "ACME", ""))
	require.NoError(t, err)
	assert.Equal(t, secA.UniqueID().ObjectID(), secC.UniqueID().ObjectID())
	assert.NotEqual(t, secA.UniqueID().Version, secC.UniqueID().Version)
}

func TestStore_SecurityByExternalIDs(t *testing.T) {
	s := newStore(t)

	sec, err := s.SecurityByExternalIDs(t.Context(), bundle(t, "ISIN~US0000000001,RIC~OTHER"))
	require.NoError(t, err)
	assert.Equal(t, "ACME", sec.UniqueID().Value)

	_, err = s.SecurityByExternalIDs(t.Context(), bundle(t, "TICKER~NOPE"))
	assert.ErrorContains(t, err, domain.ErrSecurityNotFound.Error())
}

func TestStore_Portfolio(t *testing.T) {
	s := newStore(t)

	p, err := s.Portfolio(t.Context(), domain.NewUniqueID("PF", "MAIN", ""))
	require.NoError(t, err)
	assert.False(t, p.UniqueID().IsLatest())

	root := p.RootNode()
	require.Len(t, root.Positions(), 1)
	bond, err := root.Positions()[0].Security()
	require.NoError(t, err)
	assert.Equal(t, "BOND", bond.SecurityType())

	child := root.ChildNodes()[0]
	assert.Equal(t, domain.NewUniqueID("NODE", "MAIN/Root", ""), child.ParentNodeID())
	pos := child.Positions()[0]
	sec, err := pos.Security()
	require.NoError(t, err)
	assert.Equal(t, "ACME", sec.UniqueID().Value)

	trade := pos.Trades()[0]
	tsec, err := trade.Security()
	require.NoError(t, err)
	assert.Equal(t, sec.UniqueID(), tsec.UniqueID())

	again, err := s.Portfolio(t.Context(), p.UniqueID())
	require.NoError(t, err)
	assert.Same(t, p, again)

	_, err = s.Portfolio(t.Context(), domain.NewUniqueID("PF", "MAIN", "stale"))
	assert.ErrorContains(t, err, domain.ErrPortfolioNotFound.Error())
	_, err = s.Portfolio(t.Context(), domain.NewUniqueID("PF", "NONE", ""))
	assert.ErrorContains(t, err, domain.ErrPortfolioNotFound.Error())
}

func TestStore_Portfolio_UnknownSecurity(t *testing.T) {
	catalog := testCatalog(t)
	catalog.Securities = catalog.Securities[:1]

	s, err := source.NewStore(catalog)
	require.NoError(t, err)

	_, err = s.Portfolio(t.Context(), domain.NewUniqueID("PF", "MAIN", ""))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSecurityNotFound.Error())
}

func TestStore_Resolve(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	_, err := s.Resolve(ctx, domain.NewComputationTargetSpecification(domain.TargetPosition, domain.NewUniqueID("POS", "1", "")))
	require.ErrorContains(t, err, domain.ErrTargetNotFound.Error(), "members are unknown until the portfolio is resolved")

	p, err := s.Portfolio(ctx, domain.NewUniqueID("PF", "MAIN", ""))
	require.NoError(t, err)

	tests := []struct {
		name string
		spec domain.ComputationTargetSpecification
	}{
		{"portfolio", domain.NewComputationTargetSpecification(domain.TargetPortfolio, p.UniqueID().ToLatest())},
		{"node", domain.NewComputationTargetSpecification(domain.TargetPortfolioNode, domain.NewUniqueID("NODE", "MAIN/Root/Equities", ""))},
		{"position", domain.NewComputationTargetSpecification(domain.TargetPosition, domain.NewUniqueID("POS", "1", ""))},
		{"trade", domain.NewComputationTargetSpecification(domain.TargetTrade, domain.NewUniqueID("TRD", "1", ""))},
		{"security", domain.NewComputationTargetSpecification(domain.TargetSecurity, domain.NewUniqueID("SEC", "BOND", ""))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := s.Resolve(ctx, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.spec.Type, target.Type())
			assert.Equal(t, tt.spec.ID.ObjectID(), target.UniqueID().ObjectID())
			assert.False(t, target.UniqueID().IsLatest())
			assert.NotNil(t, target.Value)
		})
	}

	primitive := domain.NewComputationTargetSpecification(domain.TargetPrimitive, domain.NewUniqueID("CURVE", "USD", ""))
	target, err := s.Resolve(ctx, primitive)
	require.NoError(t, err)
	assert.Equal(t, primitive, target.Spec)

	_, err = s.Resolve(ctx, domain.NewComputationTargetSpecification(domain.TargetTrade, domain.NewUniqueID("POS", "1", "")))
	assert.ErrorContains(t, err, domain.ErrTargetNotFound.Error(), "type must match")
}

func TestStore_ResolveRequirement(t *testing.T) {
	s := newStore(t)

	spec, err := s.ResolveRequirement(t.Context(), domain.NewComputationTargetRequirement(domain.TargetSecurity, bundle(t, "TICKER~ACME")))
	require.NoError(t, err)
	assert.Equal(t, domain.TargetSecurity, spec.Type)
	assert.Equal(t, "ACME", spec.ID.Value)

	_, err = s.ResolveRequirement(t.Context(), domain.NewComputationTargetRequirement(domain.TargetPosition, bundle(t, "TICKER~ACME")))
	assert.ErrorContains(t, err, domain.ErrTargetNotFound.Error())

	_, err = s.ResolveRequirement(t.Context(), domain.NewComputationTargetRequirement(domain.TargetSecurity, bundle(t, "TICKER~NOPE")))
	assert.ErrorContains(t, err, domain.ErrTargetNotFound.Error())
}

func TestStore_CanceledContext(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := s.Security(ctx, domain.NewUniqueID("SEC", "ACME", ""))
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.Portfolio(ctx, domain.NewUniqueID("PF", "MAIN", ""))
	require.ErrorIs(t, err, context.Canceled)
}
