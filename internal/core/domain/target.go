package domain

import "go.trai.ch/zerr"

// ComputationTargetType classifies what a dependency node computes on.
type ComputationTargetType string

const (
	// TargetPortfolio is a whole portfolio.
	TargetPortfolio ComputationTargetType = "PORTFOLIO"
	// TargetPortfolioNode is a node of a portfolio tree.
	TargetPortfolioNode ComputationTargetType = "PORTFOLIO_NODE"
	// TargetPosition is a position held in a portfolio node.
	TargetPosition ComputationTargetType = "POSITION"
	// TargetTrade is a trade contributing to a position.
	TargetTrade ComputationTargetType = "TRADE"
	// TargetSecurity is a security referenced by a position or trade.
	TargetSecurity ComputationTargetType = "SECURITY"
	// TargetPrimitive is any other identifiable object, e.g. a curve.
	TargetPrimitive ComputationTargetType = "PRIMITIVE"
)

// ParseComputationTargetType validates a target type name.
func ParseComputationTargetType(s string) (ComputationTargetType, error) {
	switch t := ComputationTargetType(s); t {
	case TargetPortfolio, TargetPortfolioNode, TargetPosition, TargetTrade, TargetSecurity, TargetPrimitive:
		return t, nil
	default:
		return "", zerr.With(ErrInvalidTargetType, "target_type", s)
	}
}

// ComputationTargetReference is an unresolved reference to a computation target.
// It is either a ComputationTargetRequirement or a ComputationTargetSpecification.
type ComputationTargetReference interface {
	TargetType() ComputationTargetType
	String() string
}

// ComputationTargetRequirement refers to a target by external identifiers.
// Resolving it requires a lookup against a source.
type ComputationTargetRequirement struct {
	Type        ComputationTargetType
	Identifiers ExternalIDBundle
}

// NewComputationTargetRequirement creates a requirement-style reference.
func NewComputationTargetRequirement(t ComputationTargetType, ids ExternalIDBundle) ComputationTargetRequirement {
	return ComputationTargetRequirement{Type: t, Identifiers: ids}
}

// TargetType returns the type of the referenced target.
func (r ComputationTargetRequirement) TargetType() ComputationTargetType {
	return r.Type
}

func (r ComputationTargetRequirement) String() string {
	return "REQ[" + string(r.Type) + " " + r.Identifiers.String() + "]"
}

// ComputationTargetSpecification refers to a target by unique identifier.
type ComputationTargetSpecification struct {
	Type ComputationTargetType
	ID   UniqueID
}

// NewComputationTargetSpecification creates a specification-style reference.
func NewComputationTargetSpecification(t ComputationTargetType, id UniqueID) ComputationTargetSpecification {
	return ComputationTargetSpecification{Type: t, ID: id}
}

// TargetType returns the type of the referenced target.
func (s ComputationTargetSpecification) TargetType() ComputationTargetType {
	return s.Type
}

func (s ComputationTargetSpecification) String() string {
	return "SPEC[" + string(s.Type) + " " + s.ID.String() + "]"
}

// ComputationTarget is a resolved target: its specification plus the object it names.
type ComputationTarget struct {
	Spec  ComputationTargetSpecification
	Value any
}

// Type returns the target type.
func (t ComputationTarget) Type() ComputationTargetType {
	return t.Spec.Type
}

// UniqueID returns the id of the resolved object.
func (t ComputationTarget) UniqueID() UniqueID {
	return t.Spec.ID
}

// Security returns the security for SECURITY targets, nil otherwise.
func (t ComputationTarget) Security() Security {
	if t.Spec.Type != TargetSecurity {
		return nil
	}
	sec, _ := t.Value.(Security)
	return sec
}

// PositionOrTrade returns the position or trade for POSITION and TRADE targets.
func (t ComputationTarget) PositionOrTrade() (PositionOrTrade, bool) {
	switch t.Spec.Type {
	case TargetPosition, TargetTrade:
		pt, ok := t.Value.(PositionOrTrade)
		return pt, ok
	default:
		return nil, false
	}
}
