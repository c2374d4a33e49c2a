package measure

import (
	"fmt"
	"math/big"

	"gonum.org/v1/gonum/floats"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
)

// Dispersion measures how evenly a trajectory spreads its time over every cell
// of its state space:
//
//	1 - (S * Σp² - 1) / (S - 1)
//
// where S counts all cells, visited or not, and p is the fraction of the total
// duration spent in each visited cell. A trajectory confined to one cell scores 0.
func Dispersion[X, Y comparable](t *grid.Trajectory[X, Y]) (float64, error) {
	cells, total, err := dispersionInputs(t)
	if err != nil {
		return 0, err
	}
	shares := occupancy(t)
	for i, d := range shares {
		p := d / total
		shares[i] = p * p
	}
	s := float64(cells)
	return 1 - (s*floats.Sum(shares)-1)/(s-1), nil
}

// DispersionExact evaluates Dispersion in rational arithmetic. Timestamps are
// converted exactly from their float64 values.
func DispersionExact[X, Y comparable](t *grid.Trajectory[X, Y]) (*big.Rat, error) {
	cells, _, err := dispersionInputs(t)
	if err != nil {
		return nil, err
	}
	times := t.Times()
	total := new(big.Rat).Sub(ratOf(times[len(times)-1]), ratOf(times[0]))

	durations := make(map[grid.State[X, Y]]*big.Rat)
	for i, s := range t.States() {
		d, ok := durations[s]
		if !ok {
			d = new(big.Rat)
			durations[s] = d
		}
		d.Add(d, new(big.Rat).Sub(ratOf(times[i+1]), ratOf(times[i])))
	}

	sum := new(big.Rat)
	for _, d := range durations {
		p := new(big.Rat).Quo(d, total)
		sum.Add(sum, p.Mul(p, p))
	}

	s := big.NewRat(int64(cells), 1)
	num := new(big.Rat).Mul(s, sum)
	num.Sub(num, big.NewRat(1, 1))
	den := new(big.Rat).Sub(s, big.NewRat(1, 1))
	return new(big.Rat).Sub(big.NewRat(1, 1), num.Quo(num, den)), nil
}

func dispersionExactFloat[X, Y comparable](t *grid.Trajectory[X, Y]) (float64, error) {
	r, err := DispersionExact(t)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

func dispersionInputs[X, Y comparable](t *grid.Trajectory[X, Y]) (int, float64, error) {
	cells := t.Space().Size()
	if cells <= 1 {
		return 0, 0, fmt.Errorf("%w: %d cells", ErrDegenerateStateSpace, cells)
	}
	if t.Len() == 0 {
		return 0, 0, fmt.Errorf("%w: dispersion needs a non-zero duration", ErrInsufficientData)
	}
	return cells, t.Duration(), nil
}

// occupancy returns the summed duration of each visited state, in order of
// first visit, so the floating point sum does not depend on map order.
func occupancy[X, Y comparable](t *grid.Trajectory[X, Y]) []float64 {
	durations := t.StateDurations()
	distinct := t.DistinctStates()
	out := make([]float64, len(distinct))
	for i, s := range distinct {
		out[i] = durations[s]
	}
	return out
}

func ratOf(v float64) *big.Rat {
	return new(big.Rat).SetFloat64(v)
}
