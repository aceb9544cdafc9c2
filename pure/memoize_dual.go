package pure

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

// MemoizeI1O2 is MemoizeI1O1 for functions with two results,
// typically (value, error). Both results are remembered together.
func MemoizeI1O2[I1 comparable, O1, O2 any](pureFn func(I1) (O1, O2)) func(I1) (O1, O2) {
	memoized := MemoizeI1O1(func(i1 I1) result[O1, O2] {
		o1, o2 := pureFn(i1)
		return result[O1, O2]{O1: o1, O2: o2}
	})
	return func(i1 I1) (O1, O2) {
		res := memoized(i1)
		return res.O1, res.O2
	}
}
