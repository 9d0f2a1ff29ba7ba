package aggregate

import "github.com/activecm/droplog/pkg/data"

// TopPortsCutoff is the smallest share of all hits a port needs to be listed
// among the popular ports
const TopPortsCutoff = 0.01

//TopFraction returns the ranked entries of a counter up to the first entry
//whose share of the total is below fraction. Entries exactly at the
//fraction are kept.
func TopFraction[K comparable](c *data.Counter[K], fraction float64) []data.Entry[K] {
	total := c.Total()
	if total == 0 {
		return nil
	}

	ranked := c.MostCommon()
	for i, entry := range ranked {
		if float64(entry.Hits)/float64(total) < fraction {
			return ranked[:i]
		}
	}
	return ranked
}

//ByPortNumber returns the entries of a port counter in ascending port order
func ByPortNumber(c *data.Counter[int]) []data.Entry[int] {
	return c.SortedBy(func(a, b int) bool { return a < b })
}
