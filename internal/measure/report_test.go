package measure_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
	"github.com/DyadicSolutions/StateSpaceGridLib/internal/measure"
)

var _ = Describe("Report", func() {
	It("has a row per trajectory and a combined row", func() {
		trajs := []*grid.Trajectory[string, string]{diagonal(), wandering()}
		report, err := measure.BuildReport(trajs)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Rows).To(HaveLen(3))
		Expect(report.Rows[0].Label).To(Equal("diagonal"))
		Expect(report.Rows[1].Label).To(Equal("trajectory_2"))
		Expect(report.Combined().Label).To(Equal(measure.CombinedLabel))

		combined, err := measure.Compute(trajs)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Combined().Measures).To(Equal(combined))
		Expect(report.Rows[1].Measures.MeanNumberOfVisits).To(Equal(4.0))
	})

	It("propagates failures", func() {
		empty, err := grid.New(affect(), nil, []float64{0}, grid.WithID("silent"))
		Expect(err).NotTo(HaveOccurred())
		_, err = measure.BuildReport([]*grid.Trajectory[string, string]{diagonal(), empty})
		Expect(err).To(MatchError(measure.ErrInsufficientData))
		Expect(err.Error()).To(ContainSubstring("silent"))
	})
})

var _ = Describe("Registry", func() {
	It("resolves every report field by name", func() {
		r := measure.NewRegistry[string, string]()
		Expect(r.Names()).To(ConsistOf(measure.FieldNames))
		fn, err := r.Get("total_state_range")
		Expect(err).NotTo(HaveOccurred())
		Expect(fn(diagonal(), wandering())).To(Equal(5.0))
	})

	It("rejects unknown names", func() {
		_, err := measure.NewRegistry[string, string]().Get("entropy")
		Expect(err).To(MatchError(ContainSubstring("unknown measure")))
	})
})
