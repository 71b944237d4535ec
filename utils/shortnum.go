package utils

import (
	"errors"
	"fmt"
	"math"
)

// Short-scale unit abbreviations: K (10^3) through V (10^63).
var shortUnits = []string{
	"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "O", "N",
	"D", "UD", "DD", "TD", "QaD", "QiD", "SxD", "SpD", "OD", "ND", "V",
}

// ErrNumericOverflow means the value exceeds the largest supported unit.
var ErrNumericOverflow = errors.New("utils: value exceeds largest short-scale unit")

// ShortNumeric renders a number in abbreviated short-scale notation for
// display: values below 1000 as a plain integer, everything else as a
// 3-significant-digit mantissa plus unit ("1.00K", "1.50M"). Values past
// the unit table fail loudly instead of truncating.
func ShortNumeric(value float64) (string, error) {
	if value < 1000 {
		return fmt.Sprintf("%.0f", value), nil
	}

	mantissa := value
	exponent := 0
	for mantissa >= 1000 {
		mantissa /= 1000
		exponent++
	}

	// Round before formatting; a mantissa in [999.5, 1000) rolls over to
	// the next unit instead of printing four digits.
	mantissa = roundSignificant(mantissa)
	if mantissa >= 1000 {
		mantissa = roundSignificant(mantissa / 1000)
		exponent++
	}
	if exponent >= len(shortUnits) {
		return "", fmt.Errorf("%w: %g", ErrNumericOverflow, value)
	}

	decimals := 2
	switch {
	case mantissa >= 100:
		decimals = 0
	case mantissa >= 10:
		decimals = 1
	}
	return fmt.Sprintf("%.*f%s", decimals, mantissa, shortUnits[exponent]), nil
}

// roundSignificant rounds a mantissa in [1, 1000) to 3 significant digits.
func roundSignificant(m float64) float64 {
	switch {
	case m >= 100:
		return math.Round(m)
	case m >= 10:
		return math.Round(m*10) / 10
	default:
		return math.Round(m*100) / 100
	}
}
