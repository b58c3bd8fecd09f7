package analytics

import "math"

const maxIterations = 100

// KMeans partitions vectors into k groups with Lloyd's algorithm and returns
// a cluster index per vector. k is capped at len(vectors) and floored at 1.
// Callers are expected to skip clustering entirely when fewer than 2 vectors
// exist; a single vector still resolves to one group here.
func KMeans(vectors [][]float32, k int) []int {
	n := len(vectors)
	if n == 0 {
		return []int{}
	}
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	assignments := make([]int, n)
	if k == 1 {
		return assignments
	}

	dim := len(vectors[0])

	// Farthest-point initialization: start from the first vector, then pick
	// whichever vector is farthest from its nearest chosen centroid. Fully
	// deterministic, so cluster assignments are stable across page loads.
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, toFloat64(vectors[0]))
	for len(centroids) < k {
		farthest := 0
		farthestDist := -1.0
		for i, vec := range vectors {
			nearest := math.Inf(1)
			for _, centroid := range centroids {
				if d := squaredDistance(vec, centroid); d < nearest {
					nearest = d
				}
			}
			if nearest > farthestDist {
				farthestDist = nearest
				farthest = i
			}
		}
		centroids = append(centroids, toFloat64(vectors[farthest]))
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, vec := range vectors {
			best := 0
			bestDist := math.Inf(1)
			for c, centroid := range centroids {
				d := squaredDistance(vec, centroid)
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// Recompute centroids; empty clusters keep their previous position.
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, vec := range vectors {
			c := assignments[i]
			counts[c]++
			for j, v := range vec {
				if j < dim {
					sums[c][j] += float64(v)
				}
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			for j := range centroids[c] {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}

	return assignments
}

func toFloat64(vec []float32) []float64 {
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = float64(v)
	}
	return out
}

func squaredDistance(vec []float32, centroid []float64) float64 {
	total := 0.0
	for i := range centroid {
		var v float64
		if i < len(vec) {
			v = float64(vec[i])
		}
		d := v - centroid[i]
		total += d * d
	}
	return total
}

// Mode returns the most frequent non-empty label, ties broken by
// first-encountered order. Empty input returns the fallback.
func Mode(labels []string, fallback string) string {
	counts := map[string]int{}
	order := []string{}
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, seen := counts[l]; !seen {
			order = append(order, l)
		}
		counts[l]++
	}
	best := fallback
	bestCount := 0
	for _, l := range order {
		if counts[l] > bestCount {
			best = l
			bestCount = counts[l]
		}
	}
	return best
}
