package calculator

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// operandPrefix matches the longest leading numeric literal of an operand.
// Trailing garbage is ignored, the way a lenient float parser reads "12abc" as 12.
var operandPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// parseOperand reads s as a floating-point number. It reports false when s
// has no numeric prefix or denotes NaN.
func parseOperand(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	lit := operandPrefix.FindString(s)
	if lit == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// formatNumber renders v as the shortest decimal that round-trips. Very large
// and very small magnitudes switch to exponent form ("1e+21", "1e-7").
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixedScale is 10^6, the scale of six fractional digits.
var fixedScale = big.NewRat(1_000_000, 1)

// formatFixed renders v with exactly six fractional digits. Exact ties on the
// binary value round away from zero (0.0078125 gives "0.007813"), where
// strconv would round to even. A negative value that rounds to zero keeps its
// sign; negative zero does not.
func formatFixed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e21 {
		return formatNumber(v)
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, fixedScale)
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	digits := n.String()
	if len(digits) < 7 {
		digits = strings.Repeat("0", 7-len(digits)) + digits
	}
	return sign + digits[:len(digits)-6] + "." + digits[len(digits)-6:]
}
