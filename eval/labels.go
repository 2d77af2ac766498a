package eval

import (
	"fmt"
	"sort"
)

// BinaryClasses is the label alphabet of a binary classifier.
var BinaryClasses = []int{0, 1}

// classIndex maps labels to their row/column in a confusion matrix.
// Labels are kept in ascending order.
type classIndex struct {
	labels []int
	index  map[int]int
}

func newClassIndex(labels []int) classIndex {
	sorted := make([]int, len(labels))
	copy(sorted, labels)
	sort.Ints(sorted)
	index := make(map[int]int, len(sorted))
	for i, l := range sorted {
		index[l] = i
	}
	return classIndex{
		labels: sorted,
		index:  index,
	}
}

// union collects the distinct labels of all given sequences.
func union(sequences ...[]int) []int {
	seen := make(map[int]struct{})
	labels := make([]int, 0)
	for _, seq := range sequences {
		for _, l := range seq {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				labels = append(labels, l)
			}
		}
	}
	return labels
}

// distinct checks that the given labels contain no duplicates.
func distinct(labels []int) error {
	seen := make(map[int]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			return fmt.Errorf("%w: duplicate class label %d", InvalidInputErr, l)
		}
		seen[l] = struct{}{}
	}
	return nil
}

func (ci classIndex) size() int {
	return len(ci.labels)
}

func (ci classIndex) of(label int) (int, bool) {
	i, ok := ci.index[label]
	return i, ok
}
