package uts46

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// Default returns the property-derived classifier.
func Default() Classifier {
	return derived{}
}

// exceptions covers the code points whose UTS #46 classification cannot be
// derived from general properties: the deviation set, label-separator
// equivalents that NFKC does not reach, and dotted-capital-I's special
// lowercase form.
var exceptions = map[rune]Mapping{
	0x00DF: {Kind: Deviation, Replacement: []rune("ss")},  // ß
	0x03C2: {Kind: Deviation, Replacement: []rune("σ")},   // final sigma
	0x200C: {Kind: Deviation, Replacement: []rune{}},      // ZWNJ
	0x200D: {Kind: Deviation, Replacement: []rune{}},      // ZWJ
	0x0130: {Kind: Mapped, Replacement: []rune("i̇")}, // İ
	0x3002: {Kind: Mapped, Replacement: []rune(".")},      // ideographic full stop
	0xFF61: {Kind: Mapped, Replacement: []rune(".")},      // halfwidth ideographic full stop
}

// ignorable is the default-ignorable set minus the deviation joiners,
// which the exceptions map claims first.
var ignorable = rangetable.Merge(
	unicode.Other_Default_Ignorable_Code_Point,
	unicode.Variation_Selector,
	rangetable.New(0x00AD, 0x200B, 0x2060, 0xFEFF),
)

// derived classifies scalars from Unicode character properties instead of
// the generated mapping table. Classification order matters: exceptions
// first, then ASCII, ignorables, disallowed categories, case and
// compatibility mappings, and finally the valid categories.
type derived struct{}

func (derived) Classify(c rune) Mapping {
	if m, ok := exceptions[c]; ok {
		return m
	}

	if c < 0x80 {
		return classifyASCII(c)
	}

	if unicode.Is(ignorable, c) {
		return Mapping{Kind: Ignored}
	}

	// Controls, format characters, private use, surrogates, separators,
	// and unassigned scalars never appear in labels.
	if unicode.In(c, unicode.Cc, unicode.Cf, unicode.Co, unicode.Cs, unicode.Z) {
		return Mapping{Kind: Disallowed}
	}
	if !unicode.In(c, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S) {
		return Mapping{Kind: Disallowed}
	}

	// Case and compatibility mapping in one step: uppercase letters,
	// fullwidth forms, ligatures, circled digits and the like all map to
	// the lowercase of their NFKC form. Doing both at once keeps the
	// replacement itself free of further mappings (e.g. fullwidth 'Ａ'
	// goes straight to 'a', not to fullwidth 'ａ').
	if d := strings.ToLower(norm.NFKC.String(string(c))); d != string(c) {
		return Mapping{Kind: Mapped, Replacement: []rune(d)}
	}

	switch {
	case unicode.In(c, unicode.L, unicode.M, unicode.Nd, unicode.Nl):
		return Mapping{Kind: Valid, Status: StatusNone}
	case unicode.In(c, unicode.S, unicode.No):
		// Symbols and other numerics are UTS #46 valid but outside the
		// IDNA 2008 letter-digit-hyphen repertoire.
		return Mapping{Kind: Valid, Status: StatusNV8}
	default:
		// Non-ASCII punctuation.
		return Mapping{Kind: Disallowed}
	}
}

func classifyASCII(c rune) Mapping {
	switch {
	case c >= 'A' && c <= 'Z':
		return Mapping{Kind: Mapped, Replacement: []rune{c + ('a' - 'A')}}
	case c >= 0x20 && c < 0x7F:
		// Printable ASCII is valid at the mapping stage; the STD3 rule
		// restricts it further during validation when enabled.
		return Mapping{Kind: Valid, Status: StatusNone}
	default:
		return Mapping{Kind: Disallowed}
	}
}
