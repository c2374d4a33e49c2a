package grid_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
)

type cell = grid.State[string, int]

func mixedSpace() *grid.StateSpace[string, int] {
	space, err := grid.NewStateSpace([]string{"bad", "ok", "good"}, []int{0, 1, 2})
	Expect(err).NotTo(HaveOccurred())
	return space
}

func intSpace(x, y []int) *grid.StateSpace[int, int] {
	space, err := grid.NewStateSpace(x, y)
	Expect(err).NotTo(HaveOccurred())
	return space
}

var _ = Describe("Trajectory construction", func() {
	It("builds an empty default trajectory", func() {
		t := grid.Default()
		Expect(t.Space().XRange()).To(Equal([]int{1, 2, 3, 4}))
		Expect(t.Space().YRange()).To(Equal([]int{1, 2, 3, 4}))
		Expect(t.States()).To(BeEmpty())
		Expect(t.Times()).To(Equal([]float64{0}))
		Expect(t.Len()).To(Equal(0))
	})

	It("does not share default slices between calls", func() {
		a := grid.Default()
		b := grid.Default()
		times := a.Times()
		times[0] = 42
		Expect(b.Times()).To(Equal([]float64{0}))
		Expect(a.Times()).To(Equal([]float64{0}))
	})

	It("keeps the declared ranges", func() {
		t, err := grid.New(intSpace([]int{0, 1, 2, 3}, []int{4, 5, 6, 7}), nil, []float64{0})
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Space().XRange()).To(Equal([]int{0, 1, 2, 3}))
		Expect(t.Space().YRange()).To(Equal([]int{4, 5, 6, 7}))
	})

	It("accepts a well formed trajectory", func() {
		states := []cell{{"ok", 1}, {"bad", 0}, {"bad", 1}, {"bad", 2}, {"ok", 2}, {"good", 2}, {"good", 1}, {"good", 0}, {"ok", 0}}
		t, err := grid.New(mixedSpace(), states, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, grid.WithID("dyad-1"))
		Expect(err).NotTo(HaveOccurred())
		Expect(t.ID()).To(Equal("dyad-1"))
		Expect(t.Len()).To(Equal(9))
		Expect(t.Duration()).To(Equal(9.0))
	})

	It("copies its inputs", func() {
		states := []cell{{"ok", 1}}
		times := []float64{0, 1}
		t, err := grid.New(mixedSpace(), states, times)
		Expect(err).NotTo(HaveOccurred())
		states[0] = cell{"bad", 0}
		times[1] = 5
		Expect(t.States()).To(Equal([]cell{{"ok", 1}}))
		Expect(t.Times()).To(Equal([]float64{0, 1}))
	})

	DescribeTable("rejects invalid input",
		func(states []grid.State[int, int], times []float64, want error) {
			_, err := grid.New(intSpace([]int{0, 1}, []int{0, 1}), states, times)
			Expect(err).To(MatchError(want))
		},
		Entry("no timestamps", []grid.State[int, int](nil), []float64{}, grid.ErrEventCountMismatch),
		Entry("timestamps without states", []grid.State[int, int](nil), []float64{0, 1, 2}, grid.ErrEventCountMismatch),
		Entry("NaN timestamp", []grid.State[int, int]{{0, 0}}, []float64{0, math.NaN()}, grid.ErrInvalidTimestamp),
		Entry("infinite timestamp", []grid.State[int, int]{{0, 0}}, []float64{math.Inf(-1), 1}, grid.ErrInvalidTimestamp),
		Entry("state outside range", []grid.State[int, int]{{0, 10}}, []float64{0, 1}, grid.ErrOutOfRangeState),
		Entry("descending times", []grid.State[int, int]{{0, 0}, {1, 1}}, []float64{0, 2, 1}, grid.ErrNonMonotonicTime),
		Entry("repeated time", []grid.State[int, int]{{0, 0}, {1, 1}}, []float64{0, 1, 1}, grid.ErrNonMonotonicTime),
	)

	It("rejects duplicate labels in a range", func() {
		_, err := grid.NewStateSpace([]int{0, 1, 1}, []int{0, 1})
		Expect(err).To(MatchError(grid.ErrDuplicateLabel))
	})

	It("looks up label positions", func() {
		space := mixedSpace()
		i, ok := space.XIndex("good")
		Expect(ok).To(BeTrue())
		Expect(i).To(Equal(2))
		_, ok = space.YIndex(7)
		Expect(ok).To(BeFalse())
		Expect(space.Size()).To(Equal(9))
	})
})

var _ = Describe("Raw column helpers", func() {
	It("pairs two-element rows", func() {
		states, err := grid.PairStates([][]int{{1, 1}, {2, 3}})
		Expect(err).NotTo(HaveOccurred())
		Expect(states).To(Equal([]grid.State[int, int]{{1, 1}, {2, 3}}))
	})

	It("rejects rows that are not pairs", func() {
		_, err := grid.PairStates([][]int{{1, 1}, {2}})
		Expect(err).To(MatchError(grid.ErrMalformedState))
	})

	It("parses numeric timestamps", func() {
		times, err := grid.ParseTimes([]string{"0", " 1.5", "2e1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(times).To(Equal([]float64{0, 1.5, 20}))
	})

	It("rejects non numeric timestamps", func() {
		_, err := grid.ParseTimes([]string{"a"})
		Expect(err).To(MatchError(grid.ErrInvalidTimestamp))
		_, err = grid.ParseTimes([]string{"NaN"})
		Expect(err).To(MatchError(grid.ErrInvalidTimestamp))
	})
})
