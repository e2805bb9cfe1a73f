package source

import (
	"encoding/binary"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/prism/internal/core/domain"
)

// versioner derives content versions. Equal content yields equal versions.
type versioner struct {
	h *xxhash.Digest
}

func newVersioner() *versioner {
	return &versioner{h: xxhash.New()}
}

func (v *versioner) str(s string) *versioner {
	_, _ = v.h.WriteString(s)
	_, _ = v.h.Write([]byte{0})
	return v
}

func (v *versioner) float(f float64) *versioner {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	_, _ = v.h.Write(buf[:])
	return v
}

func (v *versioner) bundle(b domain.ExternalIDBundle) *versioner {
	for _, id := range b.IDs() {
		v.str(id.String())
	}
	_, _ = v.h.Write([]byte{0})
	return v
}

func (v *versioner) attrs(m map[string]string) *versioner {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v.str(k).str(m[k])
	}
	_, _ = v.h.Write([]byte{0})
	return v
}

func (v *versioner) link(l domain.SecurityLink) *versioner {
	return v.str(l.ObjectID.String()).bundle(l.ExternalIDs)
}

func (v *versioner) sum() string {
	return fmt.Sprintf("%016x", v.h.Sum64())
}

func securityVersion(s domain.Security) string {
	return newVersioner().
		str(s.UniqueID().ObjectID().String()).
		str(s.Name()).
		str(s.SecurityType()).
		bundle(s.ExternalIDs()).
		sum()
}

// tradeVersion covers the trade and the version of its resolved security.
func tradeVersion(t domain.Trade, sec domain.Security) string {
	return newVersioner().
		str(t.UniqueID().ObjectID().String()).
		float(t.Quantity()).
		link(t.SecurityLink()).
		str(sec.UniqueID().String()).
		str(t.Counterparty()).
		str(t.TradeDate().UTC().Format("2006-01-02T15:04:05Z")).
		attrs(t.Attributes()).
		sum()
}

// positionVersion covers the position, its trades and its resolved security.
func positionVersion(p domain.Position, sec domain.Security, trades []domain.Trade) string {
	v := newVersioner().
		str(p.UniqueID().ObjectID().String()).
		float(p.Quantity()).
		link(p.SecurityLink()).
		str(sec.UniqueID().String()).
		attrs(p.Attributes())
	for _, t := range trades {
		v.str(t.UniqueID().String())
	}
	return v.sum()
}

// nodeVersion covers the node name and the versions of everything below it.
func nodeVersion(n domain.PortfolioNode, children []domain.PortfolioNode, positions []domain.Position) string {
	v := newVersioner().
		str(n.UniqueID().ObjectID().String()).
		str(n.ParentNodeID().ObjectID().String()).
		str(n.Name())
	for _, c := range children {
		v.str(c.UniqueID().String())
	}
	_, _ = v.h.Write([]byte{0})
	for _, p := range positions {
		v.str(p.UniqueID().String())
	}
	return v.sum()
}

func portfolioVersion(p domain.Portfolio, root domain.PortfolioNode) string {
	v := newVersioner().
		str(p.UniqueID().ObjectID().String()).
		str(p.Name()).
		attrs(p.Attributes())
	if root != nil {
		v.str(root.UniqueID().String())
	}
	return v.sum()
}
