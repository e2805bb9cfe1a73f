package resolution_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports/mocks"
	"go.trai.ch/prism/internal/engine/resolution"
	"go.uber.org/mock/gomock"
)

func testSecurity() *domain.SimpleSecurity {
	return &domain.SimpleSecurity{
		ID:          domain.NewUniqueID("SEC", "ACME", "3"),
		DisplayName: "Acme Corp",
		Type:        "EQUITY",
		Identifiers: domain.NewExternalIDBundle(domain.ExternalID{Scheme: "SCHEME", Value: "X"}),
	}
}

func TestLoggedPosition_Security_ExternalIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockResolutionLogger(ctrl)

	sec := testSecurity()
	bundle := domain.NewExternalIDBundle(domain.ExternalID{Scheme: "SCHEME", Value: "X"})
	pos := &domain.SimplePosition{
		ID:       domain.NewUniqueID("POS", "1", "1"),
		Qty:      100,
		Link:     domain.SecurityLink{ExternalIDs: bundle},
		Resolved: sec,
	}

	logger.EXPECT().
		Log(domain.NewComputationTargetRequirement(domain.TargetSecurity, bundle), sec.ID).
		Times(1)

	got, err := resolution.NewLoggedPosition(pos, logger).Security()
	require.NoError(t, err)
	assert.Same(t, sec, got)
}

func TestLoggedPosition_Security_ObjectID(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockResolutionLogger(ctrl)

	sec := testSecurity()
	pos := &domain.SimplePosition{
		ID:       domain.NewUniqueID("POS", "1", "1"),
		Link:     domain.SecurityLink{ObjectID: domain.NewObjectID("SEC", "ACME")},
		Resolved: sec,
	}

	logger.EXPECT().
		Log(domain.NewComputationTargetSpecification(domain.TargetSecurity, domain.NewUniqueID("SEC", "ACME", "")), sec.ID).
		Times(1)

	_, err := resolution.NewLoggedPosition(pos, logger).Security()
	require.NoError(t, err)
}

func TestLoggedTrade_Security_BothReferenceForms(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockResolutionLogger(ctrl)

	sec := testSecurity()
	bundle := sec.Identifiers
	trade := &domain.SimpleTrade{
		ID:       domain.NewUniqueID("TRD", "7", "1"),
		Link:     domain.SecurityLink{ObjectID: domain.NewObjectID("SEC", "ACME"), ExternalIDs: bundle},
		Resolved: sec,
	}

	logger.EXPECT().Log(domain.NewComputationTargetRequirement(domain.TargetSecurity, bundle), sec.ID)
	logger.EXPECT().Log(domain.NewComputationTargetSpecification(domain.TargetSecurity, domain.NewUniqueID("SEC", "ACME", "")), sec.ID)

	got, err := resolution.NewLoggedTrade(trade, logger).Security()
	require.NoError(t, err)
	assert.Equal(t, sec.ID, got.UniqueID())
}

func TestLoggedPosition_Security_ErrorLogsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockResolutionLogger(ctrl)

	pos := &domain.SimplePosition{
		ID:   domain.NewUniqueID("POS", "1", "1"),
		Link: domain.SecurityLink{ObjectID: domain.NewObjectID("SEC", "MISSING")},
	}

	_, err := resolution.NewLoggedPosition(pos, logger).Security()
	require.ErrorContains(t, err, domain.ErrSecurityNotResolved.Error())
}

func TestLoggedPortfolioNode_Positions(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockResolutionLogger(ctrl)

	p1 := &domain.SimplePosition{ID: domain.NewUniqueID("POS", "1", "4"), Qty: 10}
	p2 := &domain.SimplePosition{ID: domain.NewUniqueID("POS", "2", "9"), Qty: 20}
	node := &domain.SimplePortfolioNode{
		ID:       domain.NewUniqueID("NODE", "root", ""),
		Holdings: []domain.Position{p1, p2},
	}

	gomock.InOrder(
		logger.EXPECT().Log(domain.NewComputationTargetSpecification(domain.TargetPosition, domain.NewUniqueID("POS", "1", "")), p1.ID),
		logger.EXPECT().Log(domain.NewComputationTargetSpecification(domain.TargetPosition, domain.NewUniqueID("POS", "2", "")), p2.ID),
	)

	got := resolution.NewLoggedPortfolioNode(node, logger).Positions()
	require.Len(t, got, 2)
	assert.IsType(t, &resolution.LoggedPosition{}, got[0])
	assert.Equal(t, p1.ID, got[0].UniqueID())
	assert.Equal(t, p2.ID, got[1].UniqueID())
	assert.InDelta(t, 20.0, got[1].Quantity(), 0)
}

func TestLoggedPortfolioNode_ChildNodesAndTradesAreNotLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockResolutionLogger(ctrl)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	trade := &domain.SimpleTrade{ID: domain.NewUniqueID("TRD", "1", "1"), Party: "BANK", Date: date}
	pos := &domain.SimplePosition{ID: domain.NewUniqueID("POS", "1", "1"), TradeSet: []domain.Trade{trade}}
	child := &domain.SimplePortfolioNode{ID: domain.NewUniqueID("NODE", "child", ""), DisplayName: "child"}
	root := &domain.SimplePortfolioNode{
		ID:       domain.NewUniqueID("NODE", "root", ""),
		Children: []domain.PortfolioNode{child},
	}

	children := resolution.NewLoggedPortfolioNode(root, logger).ChildNodes()
	require.Len(t, children, 1)
	assert.IsType(t, &resolution.LoggedPortfolioNode{}, children[0])
	assert.Equal(t, "child", children[0].Name())

	trades := resolution.NewLoggedPosition(pos, logger).Trades()
	require.Len(t, trades, 1)
	assert.IsType(t, &resolution.LoggedTrade{}, trades[0])
	assert.Equal(t, "BANK", trades[0].Counterparty())
	assert.Equal(t, date, trades[0].TradeDate())
}

func TestLoggedPortfolio_RootNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockResolutionLogger(ctrl)

	root := &domain.SimplePortfolioNode{ID: domain.NewUniqueID("NODE", "root", "")}
	p := &domain.SimplePortfolio{
		ID:          domain.NewUniqueID("PF", "main", "1"),
		DisplayName: "Main",
		Root:        root,
		Attrs:       map[string]string{"desk": "rates"},
	}

	logged := resolution.NewLoggedPortfolio(p, logger)
	assert.Equal(t, p.ID, logged.UniqueID())
	assert.Equal(t, "Main", logged.Name())
	assert.Equal(t, map[string]string{"desk": "rates"}, logged.Attributes())
	require.IsType(t, &resolution.LoggedPortfolioNode{}, logged.RootNode())
	assert.Equal(t, root.ID, logged.RootNode().UniqueID())

	empty := resolution.NewLoggedPortfolio(&domain.SimplePortfolio{ID: p.ID}, logger)
	assert.Nil(t, empty.RootNode())
}

func TestLoggedPortfolioNode_NilLoggerPanics(t *testing.T) {
	node := &domain.SimplePortfolioNode{
		Holdings: []domain.Position{&domain.SimplePosition{ID: domain.NewUniqueID("POS", "1", "1")}},
	}
	logged := resolution.NewLoggedPortfolioNode(node, nil)
	assert.Panics(t, func() { logged.Positions() })
}
