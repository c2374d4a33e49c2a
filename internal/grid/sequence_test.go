package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/grid"
)

type label = grid.State[string, string]

func affectSpace() *grid.StateSpace[string, string] {
	r := []string{"bad", "ok", "good"}
	space, err := grid.NewStateSpace(r, r)
	Expect(err).NotTo(HaveOccurred())
	return space
}

var _ = Describe("Derived sequences", func() {
	var repeated *grid.Trajectory[string, string]

	BeforeEach(func() {
		var err error
		repeated, err = grid.New(affectSpace(),
			[]label{{"bad", "good"}, {"ok", "ok"}, {"ok", "ok"}, {"good", "bad"}, {"bad", "good"}},
			[]float64{0, 0.9, 1, 1.5, 1.7, 2})
		Expect(err).NotTo(HaveOccurred())
	})

	It("collapses consecutive repeats into visits", func() {
		Expect(repeated.Visits()).To(Equal([]label{{"bad", "good"}, {"ok", "ok"}, {"good", "bad"}, {"bad", "good"}}))
	})

	It("fenceposts visits", func() {
		Expect(repeated.VisitBoundaryTimes()).To(Equal([]float64{0, 0.9, 1.5, 1.7, 2}))
		Expect(repeated.VisitBoundaryTimes()).To(HaveLen(len(repeated.Visits()) + 1))
	})

	It("sums durations per state", func() {
		d := repeated.StateDurations()
		Expect(d).To(HaveLen(3))
		Expect(d[label{"bad", "good"}]).To(BeNumerically("~", 1.2, 1e-12))
		Expect(d[label{"ok", "ok"}]).To(BeNumerically("~", 0.6, 1e-12))
		Expect(d[label{"good", "bad"}]).To(BeNumerically("~", 0.2, 1e-12))
		Expect(d).NotTo(HaveKey(label{"ok", "good"}))
	})

	It("lists distinct states in order of first appearance", func() {
		Expect(repeated.DistinctStates()).To(Equal([]label{{"bad", "good"}, {"ok", "ok"}, {"good", "bad"}}))
	})

	It("keeps every event as a visit when no state repeats", func() {
		t, err := grid.New(affectSpace(),
			[]label{{"bad", "bad"}, {"ok", "ok"}, {"good", "good"}},
			[]float64{1, 1.1, 1.5, 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Visits()).To(HaveLen(t.Len()))
		Expect(t.VisitBoundaryTimes()).To(Equal(t.Times()))
		Expect(t.VisitDurations()).To(HaveLen(3))
		Expect(t.EventDurations()).To(HaveLen(3))
	})

	It("treats a trajectory with no events as having no visits", func() {
		t := grid.Default()
		Expect(t.Visits()).To(BeEmpty())
		Expect(t.VisitBoundaryTimes()).To(Equal([]float64{0}))
		Expect(t.StateDurations()).To(BeEmpty())
		Expect(t.EventDurations()).To(BeEmpty())
		Expect(t.VisitDurations()).To(BeEmpty())
	})

	It("has state durations that add up to the trajectory duration", func() {
		total := 0.0
		for _, d := range repeated.StateDurations() {
			total += d
		}
		Expect(total).To(BeNumerically("~", repeated.Duration(), 1e-12))
	})
})
