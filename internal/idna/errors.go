package idna

import (
	"fmt"
	"strings"
)

// ViolationKind identifies which validity rule a label or domain failed.
type ViolationKind int

const (
	// ViolationPunycodePrefixNonASCII: an "xn--" label whose remainder
	// contains non-ASCII scalars.
	ViolationPunycodePrefixNonASCII ViolationKind = iota
	// ViolationPunycodeEncodeFailed: the Bootstring encoder could not
	// represent the label.
	ViolationPunycodeEncodeFailed
	// ViolationPunycodeDecodeFailed: the "xn--" tail is not decodable.
	ViolationPunycodeDecodeFailed
	// ViolationLabelEmptyAfterDecode: decoding produced an empty label.
	ViolationLabelEmptyAfterDecode
	// ViolationLabelAllASCIIAfterDecode: decoding produced an all-ASCII
	// label, meaning the encoding was a pointless no-op.
	ViolationLabelAllASCIIAfterDecode
	// ViolationLabelTooLong: a label exceeds 63 bytes.
	ViolationLabelTooLong
	// ViolationLabelEmpty: a zero-length label under the DNS length check.
	ViolationLabelEmpty
	// ViolationTrailingRootLabel: a trailing empty (root) label is not
	// allowed when DNS lengths are verified.
	ViolationTrailingRootLabel
	// ViolationDomainTooLong: labels plus separators exceed 254 bytes.
	ViolationDomainTooLong
	// ViolationDomainEmpty: the domain has no label content at all.
	ViolationDomainEmpty
	// ViolationLabelNotNFC: the label differs from its NFC form.
	ViolationLabelNotNFC
	// ViolationHyphenPosition34: hyphen-minus in both the 3rd and 4th
	// scalar position.
	ViolationHyphenPosition34
	// ViolationHyphenStartEnd: hyphen-minus at the start or end of a label.
	ViolationHyphenStartEnd
	// ViolationACEPrefixNotAllowed: a literal "xn--" prefix on a label
	// when the hyphen rules are disabled.
	ViolationACEPrefixNotAllowed
	// ViolationLeadingCombiningMark: the label starts with a combining mark.
	ViolationLeadingCombiningMark
	// ViolationInvalidCodePoint: a scalar that does not classify as valid
	// or deviation.
	ViolationInvalidCodePoint
	// ViolationDisallowedSTD3 reports an ASCII scalar outside the STD3
	// letter-digit-hyphen repertoire.
	ViolationDisallowedSTD3
)

var violationNames = map[ViolationKind]string{
	ViolationPunycodePrefixNonASCII:   "punycode label contains non-ASCII",
	ViolationPunycodeEncodeFailed:     "punycode encode failed",
	ViolationPunycodeDecodeFailed:     "punycode decode failed",
	ViolationLabelEmptyAfterDecode:    "label empty after punycode decode",
	ViolationLabelAllASCIIAfterDecode: "label all-ASCII after punycode decode",
	ViolationLabelTooLong:             "label exceeds 63 bytes",
	ViolationLabelEmpty:               "empty label",
	ViolationTrailingRootLabel:        "trailing root label not allowed",
	ViolationDomainTooLong:            "domain exceeds 254 bytes",
	ViolationDomainEmpty:              "domain is empty",
	ViolationLabelNotNFC:              "label not in NFC form",
	ViolationHyphenPosition34:         "hyphen at positions 3 and 4",
	ViolationHyphenStartEnd:           "hyphen at start or end of label",
	ViolationACEPrefixNotAllowed:      "label starts with xn-- prefix",
	ViolationLeadingCombiningMark:     "label starts with a combining mark",
	ViolationInvalidCodePoint:         "label contains invalid code point",
	ViolationDisallowedSTD3:           "ASCII character disallowed by STD3",
}

// String returns a short human-readable description of the rule.
func (k ViolationKind) String() string {
	if s, ok := violationNames[k]; ok {
		return s
	}
	return fmt.Sprintf("violation(%d)", int(k))
}

// Violation is one validity failure discovered during processing. Label,
// Rune and Length carry the offending data where the rule has any; the
// zero value means not applicable.
type Violation struct {
	Kind   ViolationKind
	Label  string
	Rune   rune
	Length int
}

// Message formats the violation with its offending data.
func (v Violation) Message() string {
	var b strings.Builder
	b.WriteString(v.Kind.String())
	if v.Label != "" {
		fmt.Fprintf(&b, " in label %q", v.Label)
	}
	if v.Rune != 0 {
		fmt.Fprintf(&b, " (%U)", v.Rune)
	}
	if v.Length != 0 {
		fmt.Fprintf(&b, " (%d bytes)", v.Length)
	}
	return b.String()
}

// MappingErrors is the batch of violations recorded while converting one
// domain name. Violations are ordered by discovery, not severity, and the
// batch is raised once at the end of processing; nothing is reported
// mid-label.
type MappingErrors struct {
	// Input is the domain name as originally supplied.
	Input string
	// Violations is the ordered list of recorded violations; never empty.
	Violations []Violation
}

// Error implements the error interface.
func (e *MappingErrors) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("idna: converting %q: %s", e.Input, e.Violations[0].Message())
	}
	return fmt.Sprintf("idna: converting %q: %d violations, first: %s",
		e.Input, len(e.Violations), e.Violations[0].Message())
}

// accumulator is the append-only violation buffer of one conversion call.
// Non-emptiness, checked once at the defined points in ToASCII/ToUnicode,
// is the sole failure trigger.
type accumulator struct {
	input      string
	violations []Violation
}

func newAccumulator(input string) *accumulator {
	return &accumulator{input: input}
}

func (a *accumulator) record(v Violation) {
	a.violations = append(a.violations, v)
}

// err drains the accumulator into a *MappingErrors, or nil if no violation
// was recorded.
func (a *accumulator) err() error {
	if len(a.violations) == 0 {
		return nil
	}
	return &MappingErrors{Input: a.input, Violations: a.violations}
}
