// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"fmt"
	"io"
)

// MinMax returns the smallest and largest values of p inside r, where p is a
// row-major grid with cols columns. ok is false when r is empty.
// Complexity: O(r.Len()).
func MinMax[T Number](p []T, cols int, r Region) (lo, hi T, ok bool) {
	r.Each(func(i, j int) {
		v := p[Index(i, j, cols)]
		if !ok {
			lo, hi, ok = v, v, true
			return
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	})

	return lo, hi, ok
}

// Print writes p as rows lines of cols space-prefixed values.
func Print[T Number](w io.Writer, p []T, rows, cols int) error {
	if err := ValidateShape(len(p), rows, cols); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			fmt.Fprintf(bw, " %v", p[Index(i, j, cols)])
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
