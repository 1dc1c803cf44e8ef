// SPDX-License-Identifier: MIT

package matrix

// Negated returns a new Dense holding −m[i][j] for every cell.
//
// Implementation:
//   - Stage 1: ValidateNotNil.
//   - Stage 2: allocate r×c (0×0 allowed) and copy negated values in row-major order.
//
// Errors: ErrNilMatrix; index errors from foreign At implementations.
// Complexity: Time O(r*c), Space O(r*c).
func Negated(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("Negated", err)
	}
	var (
		r, c = m.Rows(), m.Cols()
		out  = &Dense{r: r, c: c, data: make([]float64, r*c)}
	)
	// Fast path on *Dense: single flat loop.
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			out.data[k] = -v
		}

		return out, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = -v
		}
	}

	return out, nil
}

// ToSlices copies m into a freshly allocated [][]float64.
// Complexity: Time O(r*c), Space O(r*c).
func ToSlices(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("ToSlices", err)
	}
	var (
		r, c = m.Rows(), m.Cols()
		out  = make([][]float64, r)
		i, j int
		err  error
	)
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
