package dice

// Weighted pairs a value with its relative selection weight.
type Weighted[T any] struct {
	Weight int
	Value  T
}

// TotalWeight sums the weights of entries.
func TotalWeight[T any](entries []Weighted[T]) int {
	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	return total
}

// WeightedSelect draws one value with probability proportional to its weight.
// entries must not be empty and must have a positive total weight.
func WeightedSelect[T any](r Roller, entries []Weighted[T]) T {
	return SelectAt(entries, r.IntN(TotalWeight(entries)))
}

// SelectAt resolves a roll in [0, total) against the cumulative weights.
// The first entry whose cumulative weight exceeds roll wins, so a bucket's
// lower boundary is inclusive. An overshooting roll returns the last entry.
func SelectAt[T any](entries []Weighted[T], roll int) T {
	for _, e := range entries {
		roll -= e.Weight
		if roll < 0 {
			return e.Value
		}
	}
	return entries[len(entries)-1].Value
}
