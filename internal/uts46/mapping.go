// Package uts46 defines the per-code-point classification contract of the
// Unicode IDNA compatibility processing table (UTS #46) and ships a compact
// classifier derived from Unicode character properties.
//
// Every Unicode scalar value classifies as exactly one of five kinds:
// valid, mapped, deviation, disallowed, or ignored. Mapped and deviation
// classifications carry the replacement scalars, which may be a single
// scalar, several scalars, or nothing at all.
//
// The full generated mapping table (built from IdnaMappingTable.txt) is a
// separate data asset; anything implementing Classifier can be plugged into
// the engine in its place. The derived classifier in this package agrees
// with the generated table on the character classes that matter for real
// domain names and is what the engine uses by default.
package uts46

// Kind is the five-way classification of a Unicode scalar value.
type Kind int

const (
	// Valid scalars pass through mapping and are permitted in labels.
	Valid Kind = iota
	// Mapped scalars are replaced by their replacement sequence.
	Mapped
	// Deviation scalars are valid but were mapped differently under
	// transitional processing; they pass through unchanged here.
	Deviation
	// Disallowed scalars may never appear in a label.
	Disallowed
	// Ignored scalars are dropped during mapping.
	Ignored
)

// String returns the classification name as spelled in UTS #46.
func (k Kind) String() string {
	switch k {
	case Valid:
		return "valid"
	case Mapped:
		return "mapped"
	case Deviation:
		return "deviation"
	case Disallowed:
		return "disallowed"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Status is the IDNA 2008 status attached to valid scalars. It is carried
// as data for API completeness; no validation rule consults it.
type Status int

const (
	// StatusNone marks scalars valid under both UTS #46 and IDNA 2008.
	StatusNone Status = iota
	// StatusNV8 marks scalars valid under UTS #46 but excluded by IDNA 2008.
	StatusNV8
	// StatusXV8 marks scalars valid under UTS #46 but contextually
	// excluded by IDNA 2008.
	StatusXV8
)

// Mapping is the classification of one Unicode scalar value.
type Mapping struct {
	Kind Kind
	// Status is meaningful only when Kind is Valid.
	Status Status
	// Replacement holds the replacement scalars for Mapped and Deviation.
	Replacement []rune
}

// Classifier is a total, pure function over the Unicode scalar space.
// Implementations must return a well-formed Mapping for every rune; the
// engine treats an out-of-range Kind as a corrupted table and panics.
type Classifier interface {
	Classify(r rune) Mapping
}
