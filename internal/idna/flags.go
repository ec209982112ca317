package idna

// Flags is the per-call policy of the conversion engine. A Flags value is
// read-only during a single ToASCII/ToUnicode call; the engine never
// mutates it.
type Flags struct {
	// CheckHyphens enforces the hyphen positional rules: no hyphen-minus
	// at positions 3 and 4, none at the start or end of a label. When
	// false, labels may not begin with the literal "xn--" prefix instead.
	CheckHyphens bool

	// UseSTD3ASCIIRules restricts ASCII scalars in labels to letters,
	// digits, and hyphen-minus.
	UseSTD3ASCIIRules bool

	// VerifyDNSLength enforces the DNS wire limits: labels of 1..63
	// bytes and a total of at most 254 bytes including separators.
	VerifyDNSLength bool

	// IgnoreInvalidPunycode keeps undecodable "xn--" labels as-is instead
	// of reporting them, and doubles as a general relaxation switch for
	// the strict per-label checks.
	IgnoreInvalidPunycode bool

	// CheckBidi, CheckJoiners and ReplaceBadCharacters are part of the
	// Unicode flag set but permanently without effect here. They are kept
	// so configurations round-trip; no validation rule consults them.
	CheckBidi            bool
	CheckJoiners         bool
	ReplaceBadCharacters bool
}

// MostStrict returns the strictest preset: every enforcing flag on,
// invalid Punycode reported.
func MostStrict() Flags {
	return Flags{
		CheckHyphens:      true,
		UseSTD3ASCIIRules: true,
		VerifyDNSLength:   true,
		CheckBidi:         true,
		CheckJoiners:      true,
	}
}

// MostLax returns the laxest preset: no enforcing flags, invalid Punycode
// tolerated.
func MostLax() Flags {
	return Flags{IgnoreInvalidPunycode: true}
}

// DefaultFlags returns the default preset: as strict as MostStrict except
// that the STD3 ASCII restriction is off.
func DefaultFlags() Flags {
	f := MostStrict()
	f.UseSTD3ASCIIRules = false
	return f
}
