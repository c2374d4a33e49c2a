package grid_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
)

var _ = Describe("Validate", func() {
	walk := []grid.State[int, int]{{1, 1}, {0, 0}, {2, 2}}
	times := []float64{0, 1, 2, 3}

	build := func(x, y []int, opts ...grid.Option) *grid.Trajectory[int, int] {
		t, err := grid.New(intSpace(x, y), walk, times, opts...)
		Expect(err).NotTo(HaveOccurred())
		return t
	}

	It("requires at least one trajectory", func() {
		Expect(grid.Validate[int, int]()).To(MatchError(grid.ErrEmptyInput))
	})

	It("accepts identical state spaces", func() {
		a := build([]int{0, 1, 2}, []int{0, 1, 2})
		b := build([]int{0, 1, 2}, []int{0, 1, 2})
		Expect(grid.Validate(a, b)).To(Succeed())
	})

	It("rejects differing label sets", func() {
		a := build([]int{0, 1, 2}, []int{0, 1, 2})
		b := build([]int{0, 1, 2, 3}, []int{0, 1, 2})
		Expect(grid.Validate(a, b)).To(MatchError(grid.ErrStateSpaceMismatch))
	})

	It("rejects differing label order", func() {
		a := build([]int{0, 1, 2}, []int{0, 1, 2})
		b := build([]int{0, 1, 2}, []int{0, 2, 1}, grid.WithID("second"))
		err := grid.Validate(a, b)
		Expect(err).To(MatchError(grid.ErrStateSpaceOrder))

		var te *grid.TrajectoryError
		Expect(errors.As(err, &te)).To(BeTrue())
		Expect(te.Index).To(Equal(1))
		Expect(te.Error()).To(ContainSubstring("second"))
	})

	It("rejects swapped label types across axes", func() {
		r := []string{"bad", "ok", "good"}
		s1, _ := grid.NewStateSpace(r, r)
		s2, _ := grid.NewStateSpace([]string{"0", "1", "2"}, r)
		a, err := grid.New(s1, nil, []float64{0})
		Expect(err).NotTo(HaveOccurred())
		b, err := grid.New(s2, nil, []float64{0})
		Expect(err).NotTo(HaveOccurred())
		Expect(grid.Validate(a, b)).To(MatchError(grid.ErrStateSpaceMismatch))
	})
})
