package beacon

import (
	"math"
	"testing"

	"github.com/activecm/droplog/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	testCases := []struct {
		ts       []int64
		expected Summary
		msg      string
	}{
		{nil, Summary{}, "no timestamps"},
		{[]int64{100}, Summary{}, "a single timestamp has no intervals"},
		{[]int64{100, 130}, Summary{Intervals: 1, Mean: 30}, "one interval has no deviation"},
		{[]int64{100, 160, 220}, Summary{Intervals: 2, Mean: 60}, "evenly spaced packets"},
		{[]int64{5, 5, 5, 5}, Summary{Intervals: 3}, "packets within the same second"},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, Summarize(test.ts), test.msg)
	}
}

func TestSummarizeSampleDeviation(t *testing.T) {
	// deltas 10, 20, 30: mean 20, sample variance (100+0+100)/2
	s := Summarize([]int64{0, 10, 30, 60})
	assert.Equal(t, 3, s.Intervals)
	assert.InDelta(t, 20.0, s.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(100), s.StdDev, 1e-9, "deviation should divide by N-1")
}

func TestDeltas(t *testing.T) {
	assert.Nil(t, Deltas([]int64{1}))
	assert.Equal(t, []int64{60, 0, 5}, Deltas([]int64{100, 160, 160, 165}))
}

func TestTimingAnalyzer(t *testing.T) {
	key := data.NewConnectionKey("1.2.3.4", 23)
	other := data.NewConnectionKey("1.2.3.4", 22)
	analyzer := NewTimingAnalyzer(map[data.ConnectionKey][]int64{
		key:   {100, 160, 220},
		other: {50},
	})

	assert.Equal(t, Summary{Intervals: 2, Mean: 60}, analyzer.Summary(key))
	assert.Equal(t, Summary{}, analyzer.Summary(data.NewConnectionKey("9.9.9.9", 1)), "unknown connections are zero")
	assert.Equal(t, Summary{}, analyzer.Summary(other), "a single timestamp has no intervals")
}
