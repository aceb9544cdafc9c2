package pure

// MemoizeI1O1 wraps pureFn with a single-slot cache.
//
// A call whose argument is == to the argument of the immediately
// preceding call returns the previous result without invoking pureFn.
// Any other argument evicts the slot, recomputes and remembers the new
// pair. Equality is shallow: no deep comparison is ever performed.
//
// pureFn must be referentially transparent; this is not checked.
// If I1 is an interface type, an argument whose dynamic type is not
// comparable panics once the slot is populated.
// The returned function is not safe for concurrent use; see SyncMemoizeI1O1.
func MemoizeI1O1[I1 comparable, O1 any](pureFn func(I1) O1) func(I1) O1 {
	var slot Slot[I1, O1]
	return func(i1 I1) O1 {
		if o1, ok := slot.Load(i1); ok {
			return o1
		}
		o1 := pureFn(i1)
		slot.Store(i1, o1)
		return o1
	}
}

// SyncMemoizeI1O1 is MemoizeI1O1 with the slot guarded by a mutex.
func SyncMemoizeI1O1[I1 comparable, O1 any](pureFn func(I1) O1) func(I1) O1 {
	var slot LockedSlot[I1, O1]
	return func(i1 I1) O1 {
		return slot.LoadOrCompute(i1, pureFn)
	}
}

type pair[I1, I2 comparable] struct {
	i1 I1
	i2 I2
}

// MemoizeI2O1 is MemoizeI1O1 for two-argument functions.
// Both arguments must match the previous call for a hit.
func MemoizeI2O1[I1, I2 comparable, O1 any](pureFn func(I1, I2) O1) func(I1, I2) O1 {
	memoized := MemoizeI1O1(func(p pair[I1, I2]) O1 {
		return pureFn(p.i1, p.i2)
	})
	return func(i1 I1, i2 I2) O1 {
		return memoized(pair[I1, I2]{i1: i1, i2: i2})
	}
}
