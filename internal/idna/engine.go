// Package idna converts internationalized domain names between their
// Unicode form and the ASCII-Compatible Encoding used on the wire, per the
// Unicode IDNA compatibility processing algorithm (RFC 5891 / UTS #46).
//
// Standards Compliance:
//
//   - RFC 3492: Punycode (via internal/punycode)
//   - RFC 5891: IDNA protocol
//   - UTS #46: Unicode IDNA Compatibility Processing
//
// Error Handling:
//
// Validity violations are never raised individually. Each conversion
// accumulates every violation it discovers and reports the whole batch as a
// single *MappingErrors at the end, so a caller can see all problems at
// once, relax exactly the flag a violation corresponds to, and retry.
//
// Concurrency:
//
// An Engine holds only its Flags and a read-only classification table; a
// single Engine may be used from any number of goroutines concurrently.
package idna

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jroosing/idnakit/internal/punycode"
	"github.com/jroosing/idnakit/internal/uts46"
)

// acePrefix marks a label carrying an ASCII-Compatible Encoding.
const acePrefix = "xn--"

const (
	maxLabelBytes  = 63
	maxDomainBytes = 254
)

// Engine performs ToASCII and ToUnicode conversions under a fixed Flags
// policy.
type Engine struct {
	flags Flags
	table uts46.Classifier
}

// New returns an engine using the default property-derived classifier.
func New(flags Flags) *Engine {
	return NewWithClassifier(flags, uts46.Default())
}

// NewWithClassifier returns an engine backed by a custom classification
// table, e.g. one generated from IdnaMappingTable.txt.
func NewWithClassifier(flags Flags, table uts46.Classifier) *Engine {
	if table == nil {
		panic("idna.NewWithClassifier: table is nil")
	}
	return &Engine{flags: flags, table: table}
}

// ToASCII converts a domain name with the given flags.
func ToASCII(domain string, flags Flags) (string, error) {
	return New(flags).ToASCII(domain)
}

// ToUnicode converts a domain name with the given flags.
func ToUnicode(domain string, flags Flags) (string, error) {
	return New(flags).ToUnicode(domain)
}

// ToASCII converts a domain name to its canonical ACE form. On failure the
// original input is returned together with a *MappingErrors carrying every
// violation found.
func (e *Engine) ToASCII(domain string) (string, error) {
	if out, ok := asciiFastPath(domain); ok {
		return out, nil
	}

	acc := newAccumulator(domain)
	labels := e.mainProcessing(domain, acc)

	for i, label := range labels {
		if isASCII(label) {
			continue
		}
		enc, err := punycode.Encode(label)
		if err != nil {
			acc.record(Violation{Kind: ViolationPunycodeEncodeFailed, Label: label})
		}
		// On encode failure the partial attempt still replaces the label
		// so the length checks below stay well-defined.
		labels[i] = acePrefix + enc
	}

	if e.flags.VerifyDNSLength {
		labels = verifyLengths(labels, acc)
	}

	if err := acc.err(); err != nil {
		return domain, err
	}
	return strings.Join(labels, "."), nil
}

// ToUnicode converts a domain name to its Unicode form. The partial-failure
// contract matches ToASCII: either the transformed string, or the original
// input plus the complete violation batch.
func (e *Engine) ToUnicode(domain string) (string, error) {
	if out, ok := asciiFastPath(domain); ok {
		return out, nil
	}

	acc := newAccumulator(domain)
	labels := e.mainProcessing(domain, acc)

	if err := acc.err(); err != nil {
		return domain, err
	}
	return strings.Join(labels, "."), nil
}

// asciiFastPath handles the common case of an input that is already
// IDNA-safe ASCII. Scalars limited to lowercase letters, digits and dots
// pass through unchanged; if uppercase ASCII letters are the only other
// thing present, they are case-folded in place. Anything else (including
// hyphens, so ACE labels never slip past validation) forces the full
// pipeline.
func asciiFastPath(domain string) (string, bool) {
	hasUpper := false
	for i := 0; i < len(domain); i++ {
		c := domain[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '.':
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		default:
			return "", false
		}
	}
	if !hasUpper {
		return domain, true
	}
	b := []byte(domain)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b), true
}

// mainProcessing runs the shared classify → normalize → split → per-label
// stage and returns the converted labels. Violations go to acc.
func (e *Engine) mainProcessing(input string, acc *accumulator) []string {
	var mapped strings.Builder
	mapped.Grow(len(input))

	for _, c := range input {
		m := e.table.Classify(c)
		switch m.Kind {
		case uts46.Valid, uts46.Deviation:
			mapped.WriteRune(c)
		case uts46.Disallowed:
			// Passes through here; validation reports it per label so the
			// violation names the label it belongs to.
			mapped.WriteRune(c)
		case uts46.Mapped:
			for _, r := range m.Replacement {
				mapped.WriteRune(r)
			}
		case uts46.Ignored:
			// Dropped.
		default:
			panicInvalidKind(m.Kind, c)
		}
	}

	// Empty labels are significant: a trailing dot yields a trailing empty
	// label representing the DNS root.
	labels := strings.Split(norm.NFC.String(mapped.String()), ".")
	for i, label := range labels {
		labels[i] = e.convertLabel(label, acc)
	}
	return labels
}

// convertLabel decodes an ACE label if present and validates the result.
func (e *Engine) convertLabel(label string, acc *accumulator) string {
	ignore := e.flags.IgnoreInvalidPunycode
	out := label

	if strings.HasPrefix(label, acePrefix) {
		rest := label[len(acePrefix):]
		switch {
		case !isASCII(rest):
			if !ignore {
				acc.record(Violation{Kind: ViolationPunycodePrefixNonASCII, Label: label})
			}
		default:
			decoded, err := punycode.Decode(rest)
			switch {
			case err != nil && ignore:
				// Tolerated: the label stays as supplied.
			case err != nil:
				acc.record(Violation{Kind: ViolationPunycodeDecodeFailed, Label: label})
			default:
				if !ignore {
					if decoded == "" {
						acc.record(Violation{Kind: ViolationLabelEmptyAfterDecode, Label: label})
					} else if isASCII(decoded) {
						acc.record(Violation{Kind: ViolationLabelAllASCIIAfterDecode, Label: label})
					}
				}
				out = decoded
			}
		}
	}

	e.validateLabel(out, acc)
	return out
}

// verifyLengths applies the DNS wire limits and returns the labels with a
// trailing root label removed.
func verifyLengths(labels []string, acc *accumulator) []string {
	if n := len(labels); n > 0 && labels[n-1] == "" {
		acc.record(Violation{Kind: ViolationTrailingRootLabel})
		labels = labels[:n-1]
	}

	content := 0
	for _, label := range labels {
		switch {
		case len(label) > maxLabelBytes:
			acc.record(Violation{Kind: ViolationLabelTooLong, Label: label, Length: len(label)})
		case len(label) == 0:
			acc.record(Violation{Kind: ViolationLabelEmpty})
		}
		content += len(label)
	}

	// One separator byte per label, matching the DNS wire encoding.
	if total := content + len(labels); total > maxDomainBytes {
		acc.record(Violation{Kind: ViolationDomainTooLong, Length: total})
	}
	if content == 0 {
		acc.record(Violation{Kind: ViolationDomainEmpty})
	}
	return labels
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// panicInvalidKind aborts on a classification outside the five known kinds.
// This is a corrupted table, not bad user input, so it is not recoverable.
func panicInvalidKind(k uts46.Kind, c rune) {
	panic(fmt.Sprintf("idna: classifier returned invalid kind %d for %U", k, c))
}
