package shades

// Pairs matches steps from both ends inward: steps[i] with steps[n-1-i].
// With an odd count the middle step is left unpaired. High is the lighter
// end as long as the steps come from descending Stops.
func Pairs(steps []Step) []Pair {
	n := len(steps)
	pairs := make([]Pair, 0, n/2)
	for i := 0; i < n/2; i++ {
		pairs = append(pairs, Pair{
			High: steps[i].Percent,
			Low:  steps[n-1-i].Percent,
		})
	}
	return pairs
}
