// Package punycode implements the Bootstring transform used for
// ASCII-Compatible Encoding of internationalized domain labels (RFC 3492).
//
// Parameters (fixed for Punycode):
//
//   - base=36, tmin=1, tmax=26
//   - skew=38, damp=700
//   - initial bias=72, initial n=0x80
//   - delimiter '-', digit alphabet a..z then 0..9 (values 0-25, 26-35)
//
// The codec works on one label at a time and knows nothing about domain-name
// structure: the "xn--" ACE prefix is the caller's business.
//
// Error Handling:
//
// All failures wrap ErrPunycode with context using fmt.Errorf("...: %w", err),
// mirroring the sentinel-error convention used across idnakit.
package punycode

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/jroosing/idnakit/internal/helpers"
)

const (
	base        = 36
	tmin        = 1
	tmax        = 26
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 0x80
	delimiter   = '-'

	// Insertions in the C1 control range (U+0080..U+009F) never occur in
	// text labels; both directions of the codec reject them so that an
	// encoding like "a" (which would otherwise decode to U+0080) is treated
	// as malformed rather than silently producing a control character.
	minEncodable = 0xA0

	maxDelta = math.MaxInt32
)

// ErrPunycode is the sentinel error for Bootstring codec failures.
// Wrap this with fmt.Errorf("context: %w", ErrPunycode) to add context.
var ErrPunycode = fmt.Errorf("punycode codec error")

// Encode converts a label to its Punycode form.
//
// Basic code points (< 0x80) are copied verbatim, followed by the delimiter
// (only when at least one basic code point was copied) and the
// variable-length-integer digit stream encoding the non-basic insertions.
// The output alphabet is [0-9a-z-].
//
// On failure the partial output produced so far is returned alongside the
// error; callers that need a well-defined placeholder (e.g. for length
// accounting) may still use it, everyone else should discard it.
func Encode(label string) (string, error) {
	input := []rune(label)
	var out strings.Builder
	out.Grow(len(label))

	basic := 0
	for _, c := range input {
		if c < initialN {
			out.WriteRune(c)
			basic++
		} else if !encodable(c) {
			return out.String(), fmt.Errorf("%w: code point %U cannot be encoded", ErrPunycode, c)
		}
	}

	handled := basic
	if basic > 0 {
		out.WriteByte(delimiter)
	}

	n := rune(initialN)
	delta := 0
	bias := initialBias

	for handled < len(input) {
		// Smallest code point >= n still waiting to be inserted.
		m := rune(math.MaxInt32)
		for _, c := range input {
			if c >= n && c < m {
				m = c
			}
		}

		if int(m-n) > (maxDelta-delta)/(handled+1) {
			return out.String(), fmt.Errorf("%w: delta overflow while encoding %d code points", ErrPunycode, len(input))
		}
		delta += int(m-n) * (handled + 1)
		n = m

		for _, c := range input {
			if c < n {
				delta++
				if delta > maxDelta {
					return out.String(), fmt.Errorf("%w: delta overflow while encoding %d code points", ErrPunycode, len(input))
				}
			}
			if c == n {
				q := delta
				for k := base; ; k += base {
					t := threshold(k, bias)
					if q < t {
						break
					}
					out.WriteByte(digitToByte(t + (q-t)%(base-t)))
					q = (q - t) / (base - t)
				}
				out.WriteByte(digitToByte(q))
				bias = adapt(delta, handled+1, handled == basic)
				delta = 0
				handled++
			}
		}
		delta++
		n++
	}

	return out.String(), nil
}

// Decode converts the Punycode form of a label back to Unicode.
//
// Everything before the last delimiter is copied verbatim as basic code
// points (each must be < 0x80); the remainder is consumed as a digit stream
// of insertion deltas. Decode accepts any input matching the Bootstring
// grammar, not only strings produced by Encode.
//
// Failure modes: a non-ASCII byte in the basic run, a digit outside the
// alphabet, a stream that ends mid-integer, arithmetic overflow, or an
// insertion that does not denote a Unicode scalar value.
func Decode(encoded string) (string, error) {
	output := make([]rune, 0, len(encoded))
	pos := 0
	if idx := strings.LastIndexByte(encoded, delimiter); idx >= 0 {
		for _, c := range encoded[:idx] {
			if c >= initialN {
				return "", fmt.Errorf("%w: non-basic code point %U before delimiter", ErrPunycode, c)
			}
			output = append(output, c)
		}
		pos = idx + 1
	}

	n := initialN
	i := 0
	bias := initialBias

	for pos < len(encoded) {
		oldi := i
		w := 1
		for k := base; ; k += base {
			if pos == len(encoded) {
				return "", fmt.Errorf("%w: digit stream ended mid-integer", ErrPunycode)
			}
			d, ok := digitValue(encoded[pos])
			if !ok {
				return "", fmt.Errorf("%w: invalid digit %q", ErrPunycode, encoded[pos])
			}
			pos++
			if d > (maxDelta-i)/w {
				return "", fmt.Errorf("%w: delta overflow in digit stream", ErrPunycode)
			}
			i += d * w
			t := threshold(k, bias)
			if d < t {
				break
			}
			if w > maxDelta/(base-t) {
				return "", fmt.Errorf("%w: weight overflow in digit stream", ErrPunycode)
			}
			w *= base - t
		}

		x := len(output) + 1
		bias = adapt(i-oldi, x, oldi == 0)
		if i/x > maxDelta-n {
			return "", fmt.Errorf("%w: code point overflow", ErrPunycode)
		}
		n += i / x
		i %= x
		if !encodable(rune(n)) {
			return "", fmt.Errorf("%w: decoded invalid code point %U", ErrPunycode, rune(n))
		}
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}

	return string(output), nil
}

// encodable reports whether c may appear as a non-basic insertion.
func encodable(c rune) bool {
	return c >= minEncodable && c <= unicode.MaxRune && !utf16.IsSurrogate(c)
}

// threshold computes the digit threshold for position k under the
// current bias, clamped to [tmin, tmax].
func threshold(k, bias int) int {
	return helpers.ClampInt(k-bias, tmin, tmax)
}

// adapt recomputes the bias after an insertion (RFC 3492 section 3.4).
func adapt(delta, numPoints int, firstTime bool) int {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := 0
	for delta > ((base-tmin)*tmax)/2 {
		delta /= base - tmin
		k += base
	}
	return k + (base-tmin+1)*delta/(delta+skew)
}

func digitToByte(d int) byte {
	if d < 26 {
		return byte('a' + d)
	}
	return byte('0' + d - 26)
}

func digitValue(b byte) (int, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a'), true
	case b >= 'A' && b <= 'Z':
		return int(b - 'A'), true
	case b >= '0' && b <= '9':
		return int(b-'0') + 26, true
	default:
		return 0, false
	}
}
