package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prism/internal/core/domain"
)

func contextPortfolio() *domain.SimplePortfolio {
	trade := &domain.SimpleTrade{ID: domain.NewUniqueID("TRD", "1", "1")}
	pos := &domain.SimplePosition{
		ID:       domain.NewUniqueID("POS", "1", "1"),
		TradeSet: []domain.Trade{trade},
	}
	return &domain.SimplePortfolio{
		ID: domain.NewUniqueID("PF", "MAIN", "1"),
		Root: &domain.SimplePortfolioNode{
			ID: domain.NewUniqueID("NODE", "root", "1"),
			Children: []domain.PortfolioNode{
				&domain.SimplePortfolioNode{
					ID:       domain.NewUniqueID("NODE", "child", "1"),
					ParentID: domain.NewUniqueID("NODE", "root", "1"),
					Holdings: []domain.Position{pos},
				},
			},
		},
	}
}

func TestFunctionCompilationContext_PortfolioTarget(t *testing.T) {
	ctx := domain.NewFunctionCompilationContext()
	assert.Nil(t, ctx.Portfolio())

	pf := contextPortfolio()
	ctx.SetPortfolio(pf)
	assert.Same(t, pf, ctx.Portfolio())

	tests := []struct {
		name   string
		spec   domain.ComputationTargetSpecification
		wantOK bool
	}{
		{name: "portfolio", spec: domain.NewComputationTargetSpecification(domain.TargetPortfolio, pf.ID), wantOK: true},
		{name: "child node", spec: domain.NewComputationTargetSpecification(domain.TargetPortfolioNode, domain.NewUniqueID("NODE", "child", "")), wantOK: true},
		{name: "position", spec: domain.NewComputationTargetSpecification(domain.TargetPosition, domain.NewUniqueID("POS", "1", "1")), wantOK: true},
		{name: "trade", spec: domain.NewComputationTargetSpecification(domain.TargetTrade, domain.NewUniqueID("TRD", "1", "")), wantOK: true},
		{name: "wrong type", spec: domain.NewComputationTargetSpecification(domain.TargetTrade, domain.NewUniqueID("POS", "1", "1"))},
		{name: "unknown", spec: domain.NewComputationTargetSpecification(domain.TargetPosition, domain.NewUniqueID("POS", "9", "1"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := ctx.PortfolioTarget(tt.spec)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.spec.Type, target.Type())
				assert.Equal(t, tt.spec.ID.ObjectID(), target.UniqueID().ObjectID())
			}
		})
	}
}

func TestFunctionCompilationContext_SetPortfolioReplaces(t *testing.T) {
	ctx := domain.NewFunctionCompilationContext()
	ctx.SetPortfolio(contextPortfolio())

	other := &domain.SimplePortfolio{
		ID:   domain.NewUniqueID("PF", "OTHER", "1"),
		Root: &domain.SimplePortfolioNode{ID: domain.NewUniqueID("NODE", "other", "1")},
	}
	ctx.SetPortfolio(other)

	_, ok := ctx.PortfolioTarget(domain.NewComputationTargetSpecification(domain.TargetPosition, domain.NewUniqueID("POS", "1", "1")))
	assert.False(t, ok)
	_, ok = ctx.PortfolioTarget(domain.NewComputationTargetSpecification(domain.TargetPortfolioNode, domain.NewUniqueID("NODE", "other", "1")))
	assert.True(t, ok)

	ctx.SetPortfolio(nil)
	assert.Nil(t, ctx.Portfolio())
	_, ok = ctx.PortfolioTarget(domain.NewComputationTargetSpecification(domain.TargetPortfolio, other.ID))
	assert.False(t, ok)
}
