package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

const (
	idSeparator     = "~"
	bundleSeparator = ","
)

// ObjectID identifies an entity independent of its version.
type ObjectID struct {
	Scheme string
	Value  string
}

// NewObjectID creates an ObjectID.
func NewObjectID(scheme, value string) ObjectID {
	return ObjectID{Scheme: scheme, Value: value}
}

// IsZero reports whether the id is unset.
func (o ObjectID) IsZero() bool {
	return o.Scheme == "" && o.Value == ""
}

// AtLatestVersion returns the unversioned UniqueID for the object.
func (o ObjectID) AtLatestVersion() UniqueID {
	return UniqueID{Scheme: o.Scheme, Value: o.Value}
}

// AtVersion returns the UniqueID of a specific version of the object.
func (o ObjectID) AtVersion(version string) UniqueID {
	return UniqueID{Scheme: o.Scheme, Value: o.Value, Version: version}
}

func (o ObjectID) String() string {
	return o.Scheme + idSeparator + o.Value
}

// UniqueID identifies a specific version of an entity.
// An empty Version refers to the latest version.
type UniqueID struct {
	Scheme  string
	Value   string
	Version string
}

// NewUniqueID creates a UniqueID.
func NewUniqueID(scheme, value, version string) UniqueID {
	return UniqueID{Scheme: scheme, Value: value, Version: version}
}

// ParseUniqueID parses the "Scheme~Value" or "Scheme~Value~Version" form.
func ParseUniqueID(s string) (UniqueID, error) {
	parts := strings.Split(s, idSeparator)
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return UniqueID{}, zerr.With(ErrInvalidIdentifier, "identifier", s)
	}
	id := UniqueID{Scheme: parts[0], Value: parts[1]}
	if len(parts) == 3 {
		id.Version = parts[2]
	}
	return id, nil
}

// IsZero reports whether the id is unset.
func (u UniqueID) IsZero() bool {
	return u.Scheme == "" && u.Value == "" && u.Version == ""
}

// IsLatest reports whether the id carries no version.
func (u UniqueID) IsLatest() bool {
	return u.Version == ""
}

// ObjectID strips the version.
func (u UniqueID) ObjectID() ObjectID {
	return ObjectID{Scheme: u.Scheme, Value: u.Value}
}

// ToLatest returns the id without its version.
func (u UniqueID) ToLatest() UniqueID {
	return UniqueID{Scheme: u.Scheme, Value: u.Value}
}

func (u UniqueID) String() string {
	if u.Version == "" {
		return u.Scheme + idSeparator + u.Value
	}
	return u.Scheme + idSeparator + u.Value + idSeparator + u.Version
}

// ExternalID is an identifier issued by an outside system, e.g. a ticker.
type ExternalID struct {
	Scheme string
	Value  string
}

// ParseExternalID parses the "Scheme~Value" form.
func ParseExternalID(s string) (ExternalID, error) {
	scheme, value, ok := strings.Cut(s, idSeparator)
	if !ok || scheme == "" || value == "" {
		return ExternalID{}, zerr.With(ErrInvalidIdentifier, "external_id", s)
	}
	return ExternalID{Scheme: scheme, Value: value}, nil
}

func (e ExternalID) String() string {
	return e.Scheme + idSeparator + e.Value
}

func compareExternalIDs(a, b ExternalID) int {
	if c := strings.Compare(a.Scheme, b.Scheme); c != 0 {
		return c
	}
	return strings.Compare(a.Value, b.Value)
}

// ExternalIDBundle is an immutable, sorted set of external identifiers that
// all refer to the same entity.
type ExternalIDBundle struct {
	ids []ExternalID
}

// NewExternalIDBundle creates a bundle, dropping duplicates.
func NewExternalIDBundle(ids ...ExternalID) ExternalIDBundle {
	if len(ids) == 0 {
		return ExternalIDBundle{}
	}
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, compareExternalIDs)
	return ExternalIDBundle{ids: slices.Compact(sorted)}
}

// ParseExternalIDBundle parses a comma separated list of external ids.
func ParseExternalIDBundle(s string) (ExternalIDBundle, error) {
	if strings.TrimSpace(s) == "" {
		return ExternalIDBundle{}, nil
	}
	parts := strings.Split(s, bundleSeparator)
	ids := make([]ExternalID, 0, len(parts))
	for _, p := range parts {
		id, err := ParseExternalID(strings.TrimSpace(p))
		if err != nil {
			return ExternalIDBundle{}, err
		}
		ids = append(ids, id)
	}
	return NewExternalIDBundle(ids...), nil
}

// IDs returns a copy of the identifiers in the bundle.
func (b ExternalIDBundle) IDs() []ExternalID {
	return slices.Clone(b.ids)
}

// IsEmpty reports whether the bundle holds no identifiers.
func (b ExternalIDBundle) IsEmpty() bool {
	return len(b.ids) == 0
}

// Contains reports whether id is part of the bundle.
func (b ExternalIDBundle) Contains(id ExternalID) bool {
	_, found := slices.BinarySearchFunc(b.ids, id, compareExternalIDs)
	return found
}

// ContainsAny reports whether the bundles share at least one identifier.
func (b ExternalIDBundle) ContainsAny(other ExternalIDBundle) bool {
	for _, id := range other.ids {
		if b.Contains(id) {
			return true
		}
	}
	return false
}

// Equal reports whether both bundles hold the same identifiers.
func (b ExternalIDBundle) Equal(other ExternalIDBundle) bool {
	return slices.Equal(b.ids, other.ids)
}

func (b ExternalIDBundle) String() string {
	parts := make([]string, len(b.ids))
	for i, id := range b.ids {
		parts[i] = id.String()
	}
	return "{" + strings.Join(parts, bundleSeparator) + "}"
}
