package image

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/security"
)

const (
	maxSamples    = 2000
	maxIterations = 20
	// convergence is the mean centroid movement, in RGB units, below which
	// clustering stops.
	convergence = 2.0
)

// Cluster is one group of similar pixels.
type Cluster struct {
	Colour colour.RGB
	// Weight is the share of sampled pixels in the cluster, in [0, 1].
	Weight float64
}

type point struct{ r, g, b float64 }

func (p point) dist2(o point) float64 {
	dr, dg, db := p.r-o.r, p.g-o.g, p.b-o.b
	return dr*dr + dg*dg + db*db
}

func (p point) rgb() colour.RGB {
	return colour.RGB{
		R: security.SafeUint8(int(math.Round(p.r))),
		G: security.SafeUint8(int(math.Round(p.g))),
		B: security.SafeUint8(int(math.Round(p.b))),
	}
}

// Clusters groups the image's pixels into at most k colours with k-means++
// and returns them heaviest first. A nil rng uses the global source.
func Clusters(img image.Image, k int, rng *rand.Rand) ([]Cluster, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}

	points := sample(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	intN := rand.IntN
	float := rand.Float64
	if rng != nil {
		intN = rng.IntN
		float = rng.Float64
	}

	centroids := seedCentroids(points, k, intN, float)
	assignments := make([]int, len(points))

	for range maxIterations {
		for i, p := range points {
			assignments[i] = nearest(p, centroids)
		}

		next := make([]point, len(centroids))
		counts := make([]int, len(centroids))
		for i, p := range points {
			c := assignments[i]
			next[c].r += p.r
			next[c].g += p.g
			next[c].b += p.b
			counts[c]++
		}

		movement := 0.0
		for i := range next {
			if counts[i] == 0 {
				next[i] = centroids[i]
				continue
			}
			n := float64(counts[i])
			next[i] = point{next[i].r / n, next[i].g / n, next[i].b / n}
			movement += math.Sqrt(next[i].dist2(centroids[i]))
		}
		centroids = next

		if movement/float64(len(centroids)) < convergence {
			break
		}
	}

	for i, p := range points {
		assignments[i] = nearest(p, centroids)
	}
	weights := make([]float64, len(centroids))
	for _, a := range assignments {
		weights[a]++
	}

	clusters := make([]Cluster, 0, len(centroids))
	for i, c := range centroids {
		if weights[i] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{Colour: c.rgb(), Weight: weights[i] / float64(len(points))})
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Weight > clusters[j].Weight
	})
	return clusters, nil
}

// Dominant returns the centre of the largest cluster, as a hex colour.
func Dominant(img image.Image, k int, rng *rand.Rand) (string, error) {
	clusters, err := Clusters(img, k, rng)
	if err != nil {
		return "", err
	}
	return clusters[0].Colour.Hex(), nil
}

// sample reads every pixel of small images and a regular grid of large ones.
func sample(img image.Image) []point {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()

	step := 1
	if total > maxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(maxSamples))), 1)
	}

	points := make([]point, 0, min(total, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			points = append(points, point{float64(r >> 8), float64(g >> 8), float64(b >> 8)})
			if len(points) >= maxSamples {
				return points
			}
		}
	}
	return points
}

// seedCentroids picks starting centroids with k-means++: each new centroid is
// drawn with probability proportional to its squared distance from the
// nearest existing one. Fewer than k are returned when the image has fewer
// distinct colours.
func seedCentroids(points []point, k int, intN func(int) int, float func() float64) []point {
	centroids := []point{points[intN(len(points))]}
	dists := make([]float64, len(points))

	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := p.dist2(centroids[nearest(p, centroids)])
			dists[i] = d
			total += d
		}
		if total == 0 {
			break
		}

		target := float() * total
		chosen := len(points) - 1
		cumulative := 0.0
		for i, d := range dists {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}

func nearest(p point, centroids []point) int {
	best, bestDist := 0, math.MaxFloat64
	for i, c := range centroids {
		if d := p.dist2(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
