package beacon

import (
	"github.com/activecm/droplog/pkg/data"
	"gonum.org/v1/gonum/stat"
)

type (
	//Summary describes the spacing of the packets seen on one connection.
	//Times are in seconds.
	Summary struct {
		Intervals int     `json:"intervals"`
		Mean      float64 `json:"mean"`
		StdDev    float64 `json:"stddev"`
	}

	//TimingAnalyzer derives inter-arrival statistics for connections
	TimingAnalyzer struct {
		series map[data.ConnectionKey][]int64
	}
)

//NewTimingAnalyzer creates an analyzer over time ordered per connection timestamps
func NewTimingAnalyzer(series map[data.ConnectionKey][]int64) *TimingAnalyzer {
	return &TimingAnalyzer{series: series}
}

//Summary returns the statistics for one connection. Unknown connections
//report a zero Summary.
func (t *TimingAnalyzer) Summary(key data.ConnectionKey) Summary {
	return Summarize(t.series[key])
}

//Deltas returns the gaps between consecutive timestamps
func Deltas(ts []int64) []int64 {
	if len(ts) < 2 {
		return nil
	}
	diff := make([]int64, len(ts)-1)
	for i := range diff {
		diff[i] = ts[i+1] - ts[i]
	}
	return diff
}

//Summarize computes the mean and unbiased sample standard deviation of the
//deltas of a time ordered series. The mean is zero without deltas and the
//deviation is zero with fewer than two.
func Summarize(ts []int64) Summary {
	diff := Deltas(ts)

	switch len(diff) {
	case 0:
		return Summary{}
	case 1:
		return Summary{Intervals: 1, Mean: float64(diff[0])}
	}

	vals := make([]float64, len(diff))
	for i, d := range diff {
		vals[i] = float64(d)
	}
	mean, std := stat.MeanStdDev(vals, nil)
	return Summary{Intervals: len(diff), Mean: mean, StdDev: std}
}
