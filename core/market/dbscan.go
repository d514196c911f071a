package market

import (
	"math"
	"sort"
)

// Noise is the label of points that belong to no cluster.
const Noise = -1

// DBSCAN clusters one-dimensional points and returns a label per point, in
// input order. Two points are neighbors when their distance is at most eps; a
// point with at least minSamples neighbors (itself included) is a core point.
// Clusters are numbered in the input order of their first core point, and a
// border point reachable from several clusters joins the first one.
func DBSCAN(points []int64, eps float64, minSamples int) []int {
	n := len(points)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Noise
	}
	if n == 0 {
		return labels
	}

	// In one dimension every neighborhood is a contiguous window of the
	// sorted order.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return points[order[a]] < points[order[b]] })

	pos := make([]int, n)
	for p, i := range order {
		pos[i] = p
	}

	lo := make([]int, n)
	hi := make([]int, n)
	l, h := 0, 0
	for p := 0; p < n; p++ {
		v := points[order[p]]
		for distance(v, points[order[l]]) > eps {
			l++
		}
		if h < p {
			h = p
		}
		for h+1 < n && distance(points[order[h+1]], v) <= eps {
			h++
		}
		lo[p], hi[p] = l, h
	}

	core := func(p int) bool { return hi[p]-lo[p]+1 >= minSamples }

	// next[p] skips over labeled sorted positions.
	next := make([]int, n+1)
	for p := range next {
		next[p] = p
	}
	var find func(p int) int
	find = func(p int) int {
		for next[p] != p {
			next[p] = next[next[p]]
			p = next[p]
		}
		return p
	}
	mark := func(p, label int) {
		labels[order[p]] = label
		next[p] = p + 1
	}

	cluster := 0
	for i := 0; i < n; i++ {
		start := pos[i]
		if labels[i] != Noise || !core(start) {
			continue
		}

		mark(start, cluster)
		stack := []int{start}
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !core(p) {
				continue
			}
			for q := find(lo[p]); q <= hi[p]; q = find(q) {
				mark(q, cluster)
				stack = append(stack, q)
			}
		}
		cluster++
	}

	return labels
}

func distance(a, b int64) float64 {
	return math.Abs(float64(a) - float64(b))
}
