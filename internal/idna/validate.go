package idna

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jroosing/idnakit/internal/uts46"
)

// validateLabel applies every configured validity check to one label (already
// mapped, normalized, and Punycode-decoded where applicable) and records
// every violation found. Checks never short-circuit: a label can collect
// several violations in one pass, and two passes over the same label under
// the same flags always record the same ordered list.
//
// IgnoreInvalidPunycode doubles as a general relaxation switch: it skips the
// NFC, ACE-prefix, combining-mark, and per-scalar checks entirely.
func (e *Engine) validateLabel(label string, acc *accumulator) {
	relaxed := e.flags.IgnoreInvalidPunycode

	if !relaxed && norm.NFC.String(label) != label {
		acc.record(Violation{Kind: ViolationLabelNotNFC, Label: label})
	}

	if e.flags.CheckHyphens {
		runes := []rune(label)
		if len(runes) >= 4 && runes[2] == '-' && runes[3] == '-' {
			acc.record(Violation{Kind: ViolationHyphenPosition34, Label: label})
		}
		// Start and end are separate findings: a label like "-a-" records
		// both.
		if len(runes) > 0 && runes[0] == '-' {
			acc.record(Violation{Kind: ViolationHyphenStartEnd, Label: label})
		}
		if len(runes) > 0 && runes[len(runes)-1] == '-' {
			acc.record(Violation{Kind: ViolationHyphenStartEnd, Label: label})
		}
	} else if !relaxed && strings.HasPrefix(label, acePrefix) {
		acc.record(Violation{Kind: ViolationACEPrefixNotAllowed, Label: label})
	}

	if !relaxed && label != "" {
		if first, _ := utf8.DecodeRuneInString(label); unicode.Is(unicode.M, first) {
			acc.record(Violation{Kind: ViolationLeadingCombiningMark, Label: label, Rune: first})
		}
	}

	if !relaxed {
		for _, c := range label {
			m := e.table.Classify(c)
			switch m.Kind {
			case uts46.Valid, uts46.Deviation:
			case uts46.Mapped, uts46.Disallowed, uts46.Ignored:
				acc.record(Violation{Kind: ViolationInvalidCodePoint, Label: label, Rune: c})
			default:
				panicInvalidKind(m.Kind, c)
			}
		}
	}

	if e.flags.UseSTD3ASCIIRules {
		for _, c := range label {
			if c < 0x80 && !isSTD3(byte(c)) {
				acc.record(Violation{Kind: ViolationDisallowedSTD3, Label: label, Rune: c})
			}
		}
	}

	// Bidi and joiner checks are intentionally absent: CheckBidi and
	// CheckJoiners are reserved flags with no behavior.
}

func isSTD3(c byte) bool {
	return c == '-' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')
}
