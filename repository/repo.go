package repository

// roundScale stabilizes floating distances against accumulation noise.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return float64(int64(x*roundScale+0.5)) / roundScale
}

// Repository is the immutable node store the tour engine addresses by a dense
// integer id in [0,N). Points never mutate after construction; distances are
// memoized in a symmetric cache keyed by the canonical (min,max) index pair.
type Repository struct {
	points []Point
	kind   DistanceKind
	fn     func(a, b Point) float64 // set when kind has a built-in formula
	custom func(a, b int) float64   // set when kind == Custom

	cache map[[2]int]float64 // lazy memoization, nil until first miss
	dense []float64          // eager dense cache, set by WithPrecomputedCache
}

// Size returns the number of points.
func (r *Repository) Size() int { return len(r.points) }

// Point returns the point at index i.
//
// Panics if i is out of [0,Size()) — this is an internal-invariant access, not
// a boundary check; callers that accept untrusted indices should validate
// first with ErrIndexOutOfRange semantics.
func (r *Repository) Point(i int) Point { return r.points[i] }

// Distance returns the symmetric distance between points a and b. Distance(a,a)
// is always 0. Canonicalizes the cache key as (min,max).
func (r *Repository) Distance(a, b int) float64 {
	if a == b {
		return 0
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	if r.dense != nil {
		return r.dense[lo*len(r.points)+hi]
	}

	key := [2]int{lo, hi}
	if r.cache != nil {
		if d, ok := r.cache[key]; ok {
			return d
		}
	}

	d := r.compute(lo, hi)
	if r.cache == nil {
		r.cache = make(map[[2]int]float64)
	}
	r.cache[key] = d
	return d
}

func (r *Repository) compute(a, b int) float64 {
	if r.kind == Custom {
		return round1e9(r.custom(a, b))
	}
	return round1e9(r.fn(r.points[a], r.points[b]))
}

// Kind reports the repository's configured distance kind.
func (r *Repository) Kind() DistanceKind { return r.kind }
