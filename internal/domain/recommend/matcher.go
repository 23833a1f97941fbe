package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

var (
	// ErrComputation marks failures of the numeric path. Callers treat it as
	// "nothing to recommend" rather than as a fault.
	ErrComputation = errors.New("recommendation computation failed")

	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrComputation)
	ErrNonFinite         = fmt.Errorf("%w: non-finite feature value", ErrComputation)
)

// Scaler standardizes columns to zero mean and unit variance using
// statistics of the pool it was fitted on.
type Scaler struct {
	mean []float64
	std  []float64
}

// FitScaler computes per-column mean and population standard deviation.
// rows must be non-empty and rectangular.
func FitScaler(rows [][]float64) (Scaler, error) {
	if len(rows) == 0 {
		return Scaler{}, fmt.Errorf("%w: fit on empty pool", ErrDimensionMismatch)
	}
	cols := len(rows[0])
	if cols == 0 {
		return Scaler{}, fmt.Errorf("%w: zero columns", ErrDimensionMismatch)
	}

	s := Scaler{mean: make([]float64, cols), std: make([]float64, cols)}
	for i, r := range rows {
		if len(r) != cols {
			return Scaler{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(r), cols)
		}
		for c, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Scaler{}, fmt.Errorf("%w: row %d column %d", ErrNonFinite, i, c)
			}
			s.mean[c] += v
		}
	}

	n := float64(len(rows))
	for c := range s.mean {
		s.mean[c] /= n
	}
	for _, r := range rows {
		for c, v := range r {
			d := v - s.mean[c]
			s.std[c] += d * d
		}
	}
	for c := range s.std {
		s.std[c] = math.Sqrt(s.std[c] / n)
	}
	return s, nil
}

// Columns is the vector width the scaler was fitted on.
func (s Scaler) Columns() int {
	return len(s.mean)
}

// Transform standardizes one vector. A zero-variance column yields 0.
func (s Scaler) Transform(v []float64) ([]float64, error) {
	if len(v) != s.Columns() {
		return nil, fmt.Errorf("%w: vector has %d columns, want %d", ErrDimensionMismatch, len(v), s.Columns())
	}
	out := make([]float64, len(v))
	for c, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: column %d", ErrNonFinite, c)
		}
		if s.std[c] == 0 {
			continue
		}
		out[c] = (x - s.mean[c]) / s.std[c]
	}
	return out, nil
}

type neighbor struct {
	row      int
	distance float64
}

// Nearest returns up to k pool ids ordered by ascending Euclidean distance
// to target in the pool's standardized space. Equal distances keep pool
// order. An empty pool or k <= 0 yields an empty result.
func Nearest(m Matrix, target []float64, k int) ([]uuid.UUID, error) {
	if m.Len() == 0 || k <= 0 {
		return []uuid.UUID{}, nil
	}
	if len(m.IDs) != len(m.Rows) {
		return nil, fmt.Errorf("%w: %d ids for %d rows", ErrDimensionMismatch, len(m.IDs), len(m.Rows))
	}

	scaler, err := FitScaler(m.Rows)
	if err != nil {
		return nil, err
	}
	q, err := scaler.Transform(target)
	if err != nil {
		return nil, err
	}

	neighbors := make([]neighbor, 0, len(m.Rows))
	for i, r := range m.Rows {
		scaled, err := scaler.Transform(r)
		if err != nil {
			return nil, err
		}
		neighbors = append(neighbors, neighbor{row: i, distance: euclidean(scaled, q)})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].distance < neighbors[j].distance
	})

	if k > len(neighbors) {
		k = len(neighbors)
	}
	out := make([]uuid.UUID, 0, k)
	for _, n := range neighbors[:k] {
		out = append(out, m.IDs[n.row])
	}
	return out, nil
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
