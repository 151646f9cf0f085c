package tour

// genCandidatesKNN computes, for every node, its k nearest neighbors by a
// bounded insertion sort — O(k·N²). Ties are broken by ascending repository
// index. A shared helper serving both tour implementations.
func genCandidatesKNN(repo Distancer, out [][]NodeId, k int) {
	n := repo.Size()
	if k > n-1 {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}

	dists := make([]float64, k)
	ids := make([]NodeId, k)

	for base := 0; base < n; base++ {
		count := 0
		for other := 0; other < n; other++ {
			if other == base {
				continue
			}
			d := repo.Distance(base, other)

			if count < k {
				// insertion sort into the first `count` slots
				pos := count
				for pos > 0 && (dists[pos-1] > d || (dists[pos-1] == d && ids[pos-1] > other)) {
					dists[pos] = dists[pos-1]
					ids[pos] = ids[pos-1]
					pos--
				}
				dists[pos] = d
				ids[pos] = other
				count++
				continue
			}

			if d > dists[k-1] || (d == dists[k-1] && other > ids[k-1]) {
				continue
			}
			pos := k - 1
			for pos > 0 && (dists[pos-1] > d || (dists[pos-1] == d && ids[pos-1] > other)) {
				dists[pos] = dists[pos-1]
				ids[pos] = ids[pos-1]
				pos--
			}
			dists[pos] = d
			ids[pos] = other
		}

		list := make([]NodeId, count)
		copy(list, ids[:count])
		out[base] = list
	}
}
