package statistics

import (
	"context"
	"math"
	"time"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/zerr"
)

// Maintainer periodically decays every view's statistics and drops views that
// have been idle longer than the retention window.
type Maintainer struct {
	provider  *PerViewProvider[*TotallingGatherer]
	logger    ports.Logger
	interval  time.Duration
	factor    float64
	retention time.Duration
}

// NewMaintainer creates a maintainer from the statistics settings.
func NewMaintainer(
	provider *PerViewProvider[*TotallingGatherer],
	settings domain.StatisticsSettings,
	logger ports.Logger,
) (*Maintainer, error) {
	if math.IsNaN(settings.DecayFactor) || settings.DecayFactor < 0 || settings.DecayFactor > 1 {
		return nil, zerr.With(domain.ErrInvalidDecayFactor, "factor", settings.DecayFactor)
	}
	if settings.DecayInterval <= 0 {
		return nil, zerr.With(domain.ErrConfigInvalid, "decay_interval", settings.DecayInterval.String())
	}
	return &Maintainer{
		provider:  provider,
		logger:    logger,
		interval:  settings.DecayInterval,
		factor:    settings.DecayFactor,
		retention: settings.Retention,
	}, nil
}

// Run maintains the statistics every interval until ctx is done.
func (m *Maintainer) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			m.Maintain(now)
		}
	}
}

// Maintain runs one decay and drop pass as of now.
func (m *Maintainer) Maintain(now time.Time) {
	m.provider.Range(func(id domain.UniqueID, g *TotallingGatherer) bool {
		if err := g.Decay(m.factor); err != nil {
			m.logger.Error(zerr.With(err, "view_process", id.String()))
		}
		return true
	})

	if m.retention <= 0 {
		return
	}
	if dropped := m.provider.DropStatisticsBefore(now.Add(-m.retention)); dropped > 0 {
		m.logger.Debug("dropped idle view statistics", "views", dropped)
	}
}
