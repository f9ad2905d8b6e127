package snapshot

import (
	"fmt"
	"math/big"
	"strings"
)

const ratioScale = 18

// formatTokenAmount renders a base-unit amount with exactly decimals
// fractional digits, e.g. 1250000 with 6 decimals is "1.250000".
func formatTokenAmount(value *big.Int, decimals uint8) string {
	if value == nil {
		return "0"
	}
	if decimals == 0 {
		return value.String()
	}
	digits := new(big.Int).Abs(value).String()
	scale := int(decimals)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	point := len(digits) - scale
	text := digits[:point] + "." + digits[point:]
	if value.Sign() < 0 {
		return "-" + text
	}
	return text
}

// computeRatio returns num/den with ratioScale fractional digits, or "" when
// the denominator is zero.
func computeRatio(num *big.Int, den *big.Int) string {
	if num == nil || den == nil || den.Sign() == 0 {
		return ""
	}
	rat := new(big.Rat).SetFrac(num, den)
	return rat.FloatString(ratioScale)
}

func toDecimals(v int32) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("decimals out of range: %d", v)
	}
	return uint8(v), nil
}
