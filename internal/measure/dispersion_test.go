package measure_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/measure"
)

var _ = Describe("Dispersion", func() {
	It("is zero for a trajectory confined to one cell", func() {
		t, err := grid.New(affect(), []cell{{X: "ok", Y: "ok"}, {X: "ok", Y: "ok"}}, []float64{0, 1, 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(measure.Dispersion(t)).To(BeNumerically("~", 0, tol))
	})

	It("is one when every cell is occupied equally", func() {
		r := []string{"bad", "ok", "good"}
		var states []cell
		var times []float64
		for _, x := range r {
			for _, y := range r {
				states = append(states, cell{X: x, Y: y})
				times = append(times, float64(len(times)))
			}
		}
		times = append(times, float64(len(times)))
		t, err := grid.New(affect(), states, times)
		Expect(err).NotTo(HaveOccurred())
		Expect(measure.Dispersion(t)).To(BeNumerically("~", 1, tol))
	})

	It("does not depend on the order durations are accumulated", func() {
		a, err := grid.New(affect(), []cell{{X: "bad", Y: "bad"}, {X: "ok", Y: "ok"}, {X: "bad", Y: "bad"}}, []float64{0, 1, 3, 4})
		Expect(err).NotTo(HaveOccurred())
		b, err := grid.New(affect(), []cell{{X: "ok", Y: "ok"}, {X: "bad", Y: "bad"}}, []float64{0, 2, 4})
		Expect(err).NotTo(HaveOccurred())
		da, err := measure.Dispersion(a)
		Expect(err).NotTo(HaveOccurred())
		db, err := measure.Dispersion(b)
		Expect(err).NotTo(HaveOccurred())
		Expect(da).To(BeNumerically("~", db, tol))
	})

	It("matches the rational evaluation", func() {
		for _, t := range []*grid.Trajectory[string, string]{diagonal(), wandering()} {
			f, err := measure.Dispersion(t)
			Expect(err).NotTo(HaveOccurred())
			r, err := measure.DispersionExact(t)
			Expect(err).NotTo(HaveOccurred())
			exact, _ := r.Float64()
			Expect(f).To(BeNumerically("~", exact, 1e-12))
		}
	})

	It("fails on a single cell state space", func() {
		space, err := grid.NewStateSpace([]int{1}, []int{1})
		Expect(err).NotTo(HaveOccurred())
		t, err := grid.New(space, []grid.State[int, int]{{X: 1, Y: 1}}, []float64{0, 1})
		Expect(err).NotTo(HaveOccurred())

		_, err = measure.Dispersion(t)
		Expect(err).To(MatchError(measure.ErrDegenerateStateSpace))
		_, err = measure.DispersionExact(t)
		Expect(err).To(MatchError(measure.ErrDegenerateStateSpace))
		_, err = measure.MeanDispersion(t)
		Expect(err).To(MatchError(measure.ErrDegenerateStateSpace))
	})

	It("fails on a trajectory with no duration", func() {
		_, err := measure.Dispersion(grid.Default())
		Expect(err).To(MatchError(measure.ErrInsufficientData))
	})
})
