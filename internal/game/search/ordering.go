package search

// orderChildren sorts nodes by ascending immediate utility in place. The
// partition scheme is fixed so equal utilities always land in the same order
// for the same input.
func orderChildren(nodes []node) {
	quickSort(nodes, 0, len(nodes)-1)
}

func quickSort(nodes []node, lo, hi int) {
	for lo < hi {
		p := partition(nodes, lo, hi)
		// recurse into the smaller side to bound stack depth
		if p-lo < hi-p {
			quickSort(nodes, lo, p-1)
			lo = p + 1
		} else {
			quickSort(nodes, p+1, hi)
			hi = p - 1
		}
	}
}

// partition is Lomuto's scheme with the last element as pivot
func partition(nodes []node, lo, hi int) int {
	pivot := nodes[hi].utility
	i := lo - 1
	for j := lo; j < hi; j++ {
		if nodes[j].utility <= pivot {
			i++
			nodes[i], nodes[j] = nodes[j], nodes[i]
		}
	}
	nodes[i+1], nodes[hi] = nodes[hi], nodes[i+1]
	return i + 1
}
