package linezone

import (
	"gonum.org/v1/gonum/stat"
)

// FlowSummary holds aggregate crossing statistics for one direction of a
// line zone
type FlowSummary struct {
	// Count is the total number of crossings observed
	Count int
	// MeanGap is the mean number of frames between successive crossings
	MeanGap float64
	// StdDevGap is the standard deviation of the gaps between crossings
	StdDevGap float64
	// PerMinute is the crossing rate derived from the mean gap and the
	// configured frame rate
	PerMinute float64
}

// FlowStats accumulates crossing rate statistics for a single LineZone.
// Call Observe after each Trigger call on the zone, statistics are derived
// from the frame gaps between successive crossings
type FlowStats struct {
	// fps is the source video frame rate used to convert frame gaps into
	// wall clock rates
	fps float64
	// totals seen at the last Observe call
	lastIn  int
	lastOut int
	// frame index of the most recent crossing per direction
	lastInFrame  int
	lastOutFrame int
	// frame gaps between successive crossings per direction
	inGaps  []float64
	outGaps []float64
}

// NewFlowStats returns a new statistics accumulator for a video source
// running at the given frames per second
func NewFlowStats(fps float64) *FlowStats {
	return &FlowStats{
		fps: fps,
	}
}

// Observe records any crossings the zone tallied since the previous call
func (s *FlowStats) Observe(z *LineZone) {
	s.observe(z.FrameIndex(), z.InCount(), &s.lastIn, &s.lastInFrame, &s.inGaps)
	s.observe(z.FrameIndex(), z.OutCount(), &s.lastOut, &s.lastOutFrame, &s.outGaps)
}

// observe folds new crossings for one direction into the gap history.
// Multiple crossings observed on the same frame record zero length gaps
func (s *FlowStats) observe(frame, total int, last, lastFrame *int,
	gaps *[]float64) {

	for ; *last < total; *last++ {

		if *lastFrame > 0 {
			*gaps = append(*gaps, float64(frame-*lastFrame))
		}

		*lastFrame = frame
	}
}

// Reset clears all accumulated statistics
func (s *FlowStats) Reset() {
	s.lastIn = 0
	s.lastOut = 0
	s.lastInFrame = 0
	s.lastOutFrame = 0
	s.inGaps = nil
	s.outGaps = nil
}

// In returns the crossing statistics for the "in" direction
func (s *FlowStats) In() FlowSummary {
	return s.summary(s.lastIn, s.inGaps)
}

// Out returns the crossing statistics for the "out" direction
func (s *FlowStats) Out() FlowSummary {
	return s.summary(s.lastOut, s.outGaps)
}

// summary computes the aggregate statistics for one directions gap history
func (s *FlowStats) summary(count int, gaps []float64) FlowSummary {

	sum := FlowSummary{
		Count: count,
	}

	if len(gaps) == 0 {
		return sum
	}

	sum.MeanGap = stat.Mean(gaps, nil)

	if len(gaps) > 1 {
		sum.StdDevGap = stat.StdDev(gaps, nil)
	}

	if sum.MeanGap > 0 && s.fps > 0 {
		sum.PerMinute = 60 * s.fps / sum.MeanGap
	}

	return sum
}
