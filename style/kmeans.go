package style

import (
	"math/rand"
	"sort"
)

// point is an RGB pixel in cluster space.
type point [3]float64

// cluster is a centroid with its member count.
type cluster struct {
	center point
	size   int
}

func squaredDistance(a, b point) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// kmeans clusters points into at most k groups using Lloyd's algorithm
// with a seeded random initialization. The returned clusters are sorted by
// size descending (ties by luminance) so the ordering is stable for a
// given input and seed.
func kmeans(points []point, k int, seed int64, maxIterations int) []cluster {
	if len(points) == 0 || k <= 0 {
		return nil
	}
	if k > len(points) {
		k = len(points)
	}

	rng := rand.New(rand.NewSource(seed))

	// Initialize centroids from distinct random points.
	centers := make([]point, k)
	for i, idx := range rng.Perm(len(points))[:k] {
		centers[i] = points[idx]
	}

	assignments := make([]int, len(points))
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, p := range points {
			best := 0
			bestDist := squaredDistance(p, centers[0])
			for j := 1; j < k; j++ {
				if d := squaredDistance(p, centers[j]); d < bestDist {
					best, bestDist = j, d
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

		sums := make([]point, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignments[i]
			for d := range p {
				sums[c][d] += p[d]
			}
			counts[c]++
		}
		for j := 0; j < k; j++ {
			if counts[j] == 0 {
				// Re-seed an empty cluster from a random point.
				centers[j] = points[rng.Intn(len(points))]
				continue
			}
			for d := range sums[j] {
				centers[j][d] = sums[j][d] / float64(counts[j])
			}
		}
	}

	counts := make([]int, k)
	for _, c := range assignments {
		counts[c]++
	}

	clusters := make([]cluster, k)
	for j := 0; j < k; j++ {
		clusters[j] = cluster{center: centers[j], size: counts[j]}
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].size != clusters[j].size {
			return clusters[i].size > clusters[j].size
		}
		return luminance(clusters[i].center) > luminance(clusters[j].center)
	})

	return clusters
}

func luminance(p point) float64 {
	return 0.299*p[0] + 0.587*p[1] + 0.114*p[2]
}
