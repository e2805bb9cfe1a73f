package statistics_test

import (
	"context"
	"math"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports/mocks"
	"go.trai.ch/prism/internal/engine/statistics"
	"go.uber.org/mock/gomock"
)

func TestNewMaintainer_RejectsInvalidSettings(t *testing.T) {
	p := statistics.NewTotallingProvider()

	settings := domain.DefaultStatisticsSettings()
	for _, factor := range []float64{-0.1, 2, math.NaN()} {
		settings.DecayFactor = factor
		_, err := statistics.NewMaintainer(p, settings, nil)
		require.ErrorContains(t, err, domain.ErrInvalidDecayFactor.Error(), "factor %v", factor)
	}

	settings = domain.DefaultStatisticsSettings()
	settings.DecayInterval = 0
	_, err := statistics.NewMaintainer(p, settings, nil)
	require.ErrorContains(t, err, domain.ErrConfigInvalid.Error())
}

func TestMaintainer_Run(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)

		p := statistics.NewTotallingProvider()
		p.StatisticsGatherer(viewID).GraphExecuted("Default", 100, time.Second, time.Second)

		settings := domain.StatisticsSettings{
			DecayInterval: time.Minute,
			DecayFactor:   0.1,
			Retention:     90 * time.Second,
		}
		m, err := statistics.NewMaintainer(p, settings, logger)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)
		go func() { done <- m.Run(ctx) }()

		time.Sleep(time.Minute + time.Second)
		synctest.Wait()

		stats, ok := p.Gatherer(viewID).Statistics("Default")
		require.True(t, ok)
		assert.Equal(t, int64(90), stats.ExecutedNodes())

		logger.EXPECT().Debug("dropped idle view statistics", "views", 1)

		time.Sleep(time.Minute)
		synctest.Wait()
		assert.Empty(t, p.ViewStatistics())

		cancel()
		require.NoError(t, <-done)
	})
}
