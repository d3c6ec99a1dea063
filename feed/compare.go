package feed

// Diff lists the values that differ between two versions.
type Diff[T comparable] struct {
	// Added holds values present in the second version but not the first, in its order.
	Added []T
	// Removed holds values present in the first version but not the second, in its order.
	Removed []T
}

// Empty reports whether the two versions hold the same set of values.
func (d Diff[T]) Empty() bool { return len(d.Added) == 0 && len(d.Removed) == 0 }

// Compare reports which values were added and removed going from v1 to v2.
// Membership is by value, so duplicates are not counted twice.
func (l *List[T]) Compare(v1, v2 int) (Diff[T], error) {
	first, err := l.Values(v1)
	if err != nil {
		return Diff[T]{}, err
	}
	second, err := l.Values(v2)
	if err != nil {
		return Diff[T]{}, err
	}

	return Diff[T]{
		Added:   missingFrom(second, first),
		Removed: missingFrom(first, second),
	}, nil
}

// missingFrom returns the elements of xs that do not occur in ys, keeping xs order.
func missingFrom[T comparable](xs, ys []T) []T {
	set := make(map[T]struct{}, len(ys))
	for _, y := range ys {
		set[y] = struct{}{}
	}
	out := make([]T, 0)
	for _, x := range xs {
		if _, ok := set[x]; !ok {
			out = append(out, x)
		}
	}

	return out
}
