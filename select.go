package kdtree

// selectNth reorders order[lo:hi] so that order[nth] holds the element whose
// coordinate axis would sit at nth in sorted order, everything in
// order[lo:nth] is <= it and everything in order[nth+1:hi] is >= it.
//
// It is a quickselect with a median-of-three pivot and a three-way
// partition, so runs of equal coordinates do not degrade it.
func selectNth[T Number](points [][]T, order []int, lo, hi, nth, axis int) {
	key := func(i int) T { return points[order[i]][axis] }

	for hi-lo > 1 {
		pivot := medianOfThree(key(lo), key(lo+(hi-lo)/2), key(hi-1))

		// Dutch national flag: [lo, lt) < pivot, [lt, i) == pivot, [gt, hi) > pivot.
		lt, i, gt := lo, lo, hi
		for i < gt {
			switch v := key(i); {
			case v < pivot:
				order[lt], order[i] = order[i], order[lt]
				lt++
				i++
			case v > pivot:
				gt--
				order[i], order[gt] = order[gt], order[i]
			default:
				i++
			}
		}

		switch {
		case nth < lt:
			hi = lt
		case nth >= gt:
			lo = gt
		default:
			return
		}
	}
}

func medianOfThree[T Number](a, b, c T) T {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}
	return b
}
