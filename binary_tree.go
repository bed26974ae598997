package kdtree

// Index arithmetic for a complete binary tree stored in array form:
// node i has children at 2*i+1 and 2*i+2.

// LeftChildIndex returns the array index of the left child of node i.
func LeftChildIndex(i int) int { return 2*i + 1 }

// RightChildIndex returns the array index of the right child of node i.
func RightChildIndex(i int) int { return 2*i + 2 }

// ParentIndex returns the array index of the parent of node i.
// The root (i == 0) has no parent and returns -1.
func ParentIndex(i int) int {
	if i <= 0 {
		return -1
	}
	return (i - 1) / 2
}

// depthOf returns the depth of node i (the root is depth 0).
func depthOf(i int) int {
	d := 0
	for i > 0 {
		i = (i - 1) / 2
		d++
	}
	return d
}

// completeTreeSize returns the smallest 2^h - 1 that is >= n, along with h.
func completeTreeSize(n int) (size, height int) {
	for size < n {
		size = 2*size + 1
		height++
	}
	return size, height
}
