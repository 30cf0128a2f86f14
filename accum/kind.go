// SPDX-License-Identifier: MIT

package accum

import "fmt"

// Kind selects one of the windowed statistics.
type Kind int

const (
	// KindAverage is the arithmetic mean of the window.
	KindAverage Kind = iota

	// KindVariance is the population variance of the window.
	KindVariance

	// KindStdDev is the population standard deviation of the window.
	KindStdDev

	// KindRMSContrast is the RMS contrast of the window (numerically StdDev).
	KindRMSContrast
)

var kindNames = [...]string{
	KindAverage:     "average",
	KindVariance:    "variance",
	KindStdDev:      "stddev",
	KindRMSContrast: "rms_contrast",
}

// Kinds lists every supported statistic in declaration order.
func Kinds() []Kind {
	return []Kind{KindAverage, KindVariance, KindStdDev, KindRMSContrast}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindAverage && k <= KindRMSContrast
}

// NeedsSquares reports whether k is reconstructed from Σx² as well as Σx.
func (k Kind) NeedsSquares() bool {
	return k == KindVariance || k == KindStdDev || k == KindRMSContrast
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a statistic name (as returned by String) to its Kind.
// "contrast" and "std" are accepted as short forms.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "average", "avg", "mean":
		return KindAverage, nil
	case "variance", "var":
		return KindVariance, nil
	case "stddev", "std", "sd":
		return KindStdDev, nil
	case "rms_contrast", "contrast", "rms":
		return KindRMSContrast, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}
