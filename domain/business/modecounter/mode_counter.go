package modecounter

import (
	"cmp"
	"sort"
)

// Count amount of times a value was seen
type Count[K cmp.Ordered] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// ModeCounter counts occurrences of values to get the most frequent one.
// Ties are broken by the smallest value, so the result does not depend on insertion order.
type ModeCounter[K cmp.Ordered] struct {
	counters map[K]int
	total    int
}

func NewModeCounter[K cmp.Ordered]() *ModeCounter[K] {
	return &ModeCounter[K]{
		counters: make(map[K]int),
	}
}

func (mc *ModeCounter[K]) UpdateCounter(value K) {
	mc.counters[value] += 1
	mc.total += 1
}

// GetCounter returns the amount of times value was seen
func (mc *ModeCounter[K]) GetCounter(value K) int {
	return mc.counters[value]
}

// GetTotal returns the amount of values seen
func (mc *ModeCounter[K]) GetTotal() int {
	return mc.total
}

func (mc *ModeCounter[K]) IsEmpty() bool {
	return mc.total == 0
}

// Mode returns the most frequent value and its count. The last return value is false
// if no value was counted.
func (mc *ModeCounter[K]) Mode() (K, int, bool) {
	var mode K
	maxCount := 0
	for value, count := range mc.counters {
		if count > maxCount || (count == maxCount && value < mode) {
			mode = value
			maxCount = count
		}
	}
	return mode, maxCount, maxCount > 0
}

// Counts returns every value with its count, sorted by count descending and then by value
func (mc *ModeCounter[K]) Counts() []Count[K] {
	counts := make([]Count[K], 0, len(mc.counters))
	for value, count := range mc.counters {
		counts = append(counts, Count[K]{Value: value, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})
	return counts
}

// Min returns the smallest value counted
func (mc *ModeCounter[K]) Min() (K, bool) {
	var minValue K
	found := false
	for value := range mc.counters {
		if !found || value < minValue {
			minValue = value
			found = true
		}
	}
	return minValue, found
}

// Max returns the biggest value counted
func (mc *ModeCounter[K]) Max() (K, bool) {
	var maxValue K
	found := false
	for value := range mc.counters {
		if !found || value > maxValue {
			maxValue = value
			found = true
		}
	}
	return maxValue, found
}
