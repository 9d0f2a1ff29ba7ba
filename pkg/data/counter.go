package data

import "sort"

type (
	//Counter counts hits per key and remembers the order in which keys
	//were first observed. Ranking ties are broken by that order.
	Counter[K comparable] struct {
		index map[K]int
		keys  []K
		hits  []int64
	}

	//Entry is one key of a Counter along with its hit count
	Entry[K comparable] struct {
		Key  K
		Hits int64
	}
)

//NewCounter returns an empty Counter
func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{index: make(map[K]int)}
}

//Add increments the count for key by n, creating the key on first observation
func (c *Counter[K]) Add(key K, n int64) {
	i, ok := c.index[key]
	if !ok {
		i = len(c.keys)
		c.index[key] = i
		c.keys = append(c.keys, key)
		c.hits = append(c.hits, 0)
	}
	c.hits[i] += n
}

//Inc increments the count for key by one
func (c *Counter[K]) Inc(key K) {
	c.Add(key, 1)
}

//Get returns the count for key, 0 if the key was never observed
func (c *Counter[K]) Get(key K) int64 {
	if i, ok := c.index[key]; ok {
		return c.hits[i]
	}
	return 0
}

//Len returns the number of distinct keys
func (c *Counter[K]) Len() int {
	return len(c.keys)
}

//Total returns the sum of all counts
func (c *Counter[K]) Total() int64 {
	var total int64
	for _, h := range c.hits {
		total += h
	}
	return total
}

//Entries returns the keys in first-insertion order
func (c *Counter[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry[K]{Key: k, Hits: c.hits[i]}
	}
	return out
}

//MostCommon returns the entries ordered by descending count. Entries with
//equal counts keep their first-insertion order.
func (c *Counter[K]) MostCommon() []Entry[K] {
	out := c.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Hits > out[j].Hits
	})
	return out
}

//SortedBy returns the entries ordered by key using the supplied less function
func (c *Counter[K]) SortedBy(less func(a, b K) bool) []Entry[K] {
	out := c.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].Key, out[j].Key)
	})
	return out
}
