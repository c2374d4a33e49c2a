package measure_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/measure"
)

type cell = grid.State[string, string]

const tol = 1e-9

func affect() *grid.StateSpace[string, string] {
	r := []string{"bad", "ok", "good"}
	space, err := grid.NewStateSpace(r, r)
	Expect(err).NotTo(HaveOccurred())
	return space
}

func diagonal() *grid.Trajectory[string, string] {
	t, err := grid.New(affect(),
		[]cell{{X: "bad", Y: "bad"}, {X: "ok", Y: "ok"}, {X: "good", Y: "good"}},
		[]float64{1, 1.1, 1.5, 2},
		grid.WithID("diagonal"))
	Expect(err).NotTo(HaveOccurred())
	return t
}

func wandering() *grid.Trajectory[string, string] {
	t, err := grid.New(affect(),
		[]cell{{X: "bad", Y: "good"}, {X: "ok", Y: "ok"}, {X: "ok", Y: "ok"}, {X: "good", Y: "bad"}, {X: "bad", Y: "good"}},
		[]float64{0, 0.9, 1, 1.5, 1.7, 2})
	Expect(err).NotTo(HaveOccurred())
	return t
}

var _ = Describe("Single trajectory measures", func() {
	It("matches the reference values for a diagonal walk", func() {
		m, err := measure.Compute([]*grid.Trajectory[string, string]{diagonal()})
		Expect(err).NotTo(HaveOccurred())
		Expect(m.MeanTrajectoryDuration).To(BeNumerically("~", 1, tol))
		Expect(m.MeanNumberOfEvents).To(Equal(3.0))
		Expect(m.MeanNumberOfVisits).To(Equal(3.0))
		Expect(m.MeanStateRange).To(Equal(3.0))
		Expect(m.TotalStateRange).To(Equal(3))
		Expect(m.MeanEventDuration).To(BeNumerically("~", 1.0/3, tol))
		Expect(m.MeanVisitDuration).To(BeNumerically("~", 1.0/3, tol))
		Expect(m.MeanStateDuration).To(BeNumerically("~", 1.0/3, tol))
		Expect(m.MeanDispersion).To(BeNumerically("~", 0.6525, tol))
	})

	It("matches the reference values for a walk with repeats", func() {
		t := wandering()
		Expect(measure.MeanTrajectoryDuration(t)).To(BeNumerically("~", 2, tol))
		Expect(measure.MeanNumberOfEvents(t)).To(Equal(5.0))
		Expect(measure.MeanNumberOfVisits(t)).To(Equal(4.0))
		Expect(measure.MeanStateRange(t)).To(Equal(3.0))
		Expect(measure.TotalStateRange(t)).To(Equal(3))
		Expect(measure.MeanEventDuration(t)).To(BeNumerically("~", 0.4, tol))
		Expect(measure.MeanVisitDuration(t)).To(BeNumerically("~", 0.5, tol))
		Expect(measure.MeanStateDuration(t)).To(BeNumerically("~", 2.0/3, tol))
		Expect(measure.MeanDispersion(t)).To(BeNumerically("~", 0.6075, tol))
	})
})

var _ = Describe("Multi trajectory measures", func() {
	var trajs []*grid.Trajectory[string, string]

	BeforeEach(func() {
		trajs = []*grid.Trajectory[string, string]{diagonal(), wandering()}
	})

	It("averages per trajectory quantities", func() {
		m, err := measure.Compute(trajs)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.MeanTrajectoryDuration).To(BeNumerically("~", 1.5, tol))
		Expect(m.MeanNumberOfEvents).To(Equal(4.0))
		Expect(m.MeanNumberOfVisits).To(Equal(3.5))
		Expect(m.MeanStateRange).To(Equal(3.0))
		Expect(m.TotalStateRange).To(Equal(5))
		Expect(m.MeanEventDuration).To(BeNumerically("~", 0.3666666666666667, tol))
		Expect(m.MeanVisitDuration).To(BeNumerically("~", 0.4166666666666667, tol))
		Expect(m.MeanStateDuration).To(BeNumerically("~", 0.5, tol))
		Expect(m.MeanDispersion).To(BeNumerically("~", 0.63, tol))
	})

	It("agrees between the composite and the individual functions", func() {
		m, err := measure.Compute(trajs)
		Expect(err).NotTo(HaveOccurred())
		Expect(measure.MeanVisitDuration(trajs...)).To(BeNumerically("~", m.MeanVisitDuration, tol))
		Expect(measure.MeanDispersion(trajs...)).To(BeNumerically("~", m.MeanDispersion, tol))
		Expect(measure.TotalStateRange(trajs...)).To(Equal(m.TotalStateRange))
	})

	It("bounds the total state range by the individual ranges", func() {
		total, err := measure.TotalStateRange(trajs...)
		Expect(err).NotTo(HaveOccurred())
		largest, sum := 0, 0
		for _, t := range trajs {
			n := len(t.DistinctStates())
			largest = max(largest, n)
			sum += n
		}
		Expect(total).To(BeNumerically(">=", largest))
		Expect(total).To(BeNumerically("<=", sum))
	})

	It("produces the same result with exact dispersion", func() {
		m, err := measure.Compute(trajs, measure.WithExactDispersion())
		Expect(err).NotTo(HaveOccurred())
		Expect(m.MeanDispersion).To(BeNumerically("~", 0.63, 1e-12))
	})

	It("flattens into named fields in column order", func() {
		m, err := measure.Compute(trajs)
		Expect(err).NotTo(HaveOccurred())
		fields := m.Fields()
		Expect(fields).To(HaveLen(9))
		Expect(fields[0].Name).To(Equal("mean_trajectory_duration"))
		Expect(fields[4]).To(Equal(measure.Field{Name: "total_state_range", Value: 5}))
		Expect(fields[8].Name).To(Equal("mean_dispersion"))
	})
})

var _ = Describe("Measure failures", func() {
	It("requires at least one trajectory", func() {
		_, err := measure.Compute([]*grid.Trajectory[string, string]{})
		Expect(err).To(MatchError(grid.ErrEmptyInput))
		_, err = measure.MeanDispersion[string, string]()
		Expect(err).To(MatchError(grid.ErrEmptyInput))
	})

	It("reports state space disagreements", func() {
		space, err := grid.NewStateSpace([]string{"bad", "ok", "good"}, []string{"bad", "good", "ok"})
		Expect(err).NotTo(HaveOccurred())
		other, err := grid.New(space, []cell{{X: "ok", Y: "ok"}}, []float64{0, 1})
		Expect(err).NotTo(HaveOccurred())
		_, err = measure.Compute([]*grid.Trajectory[string, string]{diagonal(), other})
		Expect(err).To(MatchError(grid.ErrStateSpaceOrder))
	})

	It("rejects averaging over a trajectory without events", func() {
		empty, err := grid.New(affect(), nil, []float64{0})
		Expect(err).NotTo(HaveOccurred())

		_, err = measure.MeanEventDuration(diagonal(), empty)
		Expect(err).To(MatchError(measure.ErrInsufficientData))
		var te *grid.TrajectoryError
		Expect(err).To(BeAssignableToTypeOf(te))

		_, err = measure.Compute([]*grid.Trajectory[string, string]{empty})
		Expect(err).To(MatchError(measure.ErrInsufficientData))
	})

	It("still counts a trajectory without events", func() {
		empty := grid.Default()
		Expect(measure.MeanNumberOfEvents(empty)).To(Equal(0.0))
		Expect(measure.MeanNumberOfVisits(empty)).To(Equal(0.0))
		Expect(measure.TotalStateRange(empty)).To(Equal(0))
		Expect(measure.MeanTrajectoryDuration(empty)).To(Equal(0.0))
	})
})

var _ = Describe("FromFields", func() {
	It("inverts Fields", func() {
		m, err := measure.Compute([]*grid.Trajectory[string, string]{diagonal(), wandering()})
		Expect(err).NotTo(HaveOccurred())
		back, err := measure.FromFields(m.Fields())
		Expect(err).NotTo(HaveOccurred())
		Expect(back).To(Equal(m))
	})

	It("rejects unknown names", func() {
		_, err := measure.FromFields([]measure.Field{{Name: "entropy", Value: 1}})
		Expect(err).To(HaveOccurred())
	})
})
