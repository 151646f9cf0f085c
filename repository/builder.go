package repository

// MatrixKind tells RepoBuilder how to read a precomputed cost matrix: full,
// upper-triangular, or lower-triangular.
type MatrixKind int

const (
	// MatrixFull reads dist[i][j] directly.
	MatrixFull MatrixKind = iota
	// MatrixUpper reads an upper-triangular matrix: row r holds costs for
	// columns [r, n), column index in the row maps to repository column r+col.
	MatrixUpper
	// MatrixLower reads a lower-triangular matrix: dist[row][col] is stored
	// transposed, (col,row) is the canonical key.
	MatrixLower
)

// Option configures a RepoBuilder. Functional options mirror the
// GraphOption pattern core.NewGraph uses (WithDirected, WithWeighted).
type Option func(*RepoBuilder)

// WithDistanceKind selects the coordinate-based metric for points added via
// AddPoint. Ignored once Costs has supplied a precomputed matrix.
func WithDistanceKind(kind DistanceKind) Option {
	return func(b *RepoBuilder) { b.kind = kind }
}

// WithCustomDistance installs a caller-supplied distance function, selecting
// DistanceKind Custom.
func WithCustomDistance(fn func(a, b int) float64) Option {
	return func(b *RepoBuilder) {
		b.kind = Custom
		b.custom = fn
	}
}

// WithPrecomputedCache eagerly materializes the full N×N distance table at
// build time instead of memoizing lazily, so trials sharing a read-only
// Repository never pay a first-access cache-miss cost concurrently.
func WithPrecomputedCache() Option {
	return func(b *RepoBuilder) { b.eager = true }
}

// RepoBuilder assembles a Repository from points and/or a precomputed matrix.
type RepoBuilder struct {
	points []Point
	kind   DistanceKind
	custom func(a, b int) float64
	eager  bool

	matrix    [][]float64
	matrixKnd MatrixKind
}

// NewRepoBuilder creates an empty builder with the given options applied.
func NewRepoBuilder(opts ...Option) *RepoBuilder {
	b := &RepoBuilder{kind: Undefined}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddPoint appends a point with 2D or 3D coordinates (z defaults to 0).
func (b *RepoBuilder) AddPoint(x, y, z float64) *RepoBuilder {
	b.points = append(b.points, Point{Index: len(b.points), X: x, Y: y, Z: z})
	return b
}

// Costs supplies a precomputed cost matrix in full/upper/lower triangular
// form.
func (b *RepoBuilder) Costs(matrix [][]float64, kind MatrixKind) *RepoBuilder {
	b.matrix = matrix
	b.matrixKnd = kind
	b.kind = Explicit
	return b
}

// Build validates accumulated input and returns a Repository, or an error.
func (b *RepoBuilder) Build() (*Repository, error) {
	if b.matrix != nil {
		return b.buildFromMatrix()
	}
	return b.buildFromPoints()
}

func (b *RepoBuilder) buildFromPoints() (*Repository, error) {
	if len(b.points) == 0 {
		return nil, ErrEmptyRepository
	}

	r := &Repository{points: b.points, kind: b.kind}
	switch b.kind {
	case Custom:
		if b.custom == nil {
			return nil, ErrUnknownDistanceKind
		}
		r.custom = b.custom
	default:
		fn := distanceFunc(b.kind)
		if fn == nil {
			return nil, ErrUnknownDistanceKind
		}
		r.fn = fn
	}

	if b.eager {
		r.materializeDense()
	}
	return r, nil
}

func (b *RepoBuilder) buildFromMatrix() (*Repository, error) {
	n := len(b.matrix)
	if n == 0 {
		return nil, ErrEmptyRepository
	}
	for _, row := range b.matrix {
		if len(row) != n && b.matrixKnd == MatrixFull {
			return nil, ErrNonSquare
		}
	}

	dense := make([]float64, n*n)
	set := func(i, j int, v float64) error {
		if v < 0 {
			return ErrNegativeWeight
		}
		dense[i*n+j] = v
		dense[j*n+i] = v
		return nil
	}

	switch b.matrixKnd {
	case MatrixFull:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if b.matrix[i][j] != b.matrix[j][i] {
					return nil, ErrAsymmetry
				}
				if err := set(i, j, b.matrix[i][j]); err != nil {
					return nil, err
				}
			}
		}
	case MatrixUpper:
		for row := 0; row < n; row++ {
			for col, v := range b.matrix[row] {
				j := row + col
				if j >= n || j == row {
					continue
				}
				if err := set(row, j, v); err != nil {
					return nil, err
				}
			}
		}
	case MatrixLower:
		for row := 0; row < n; row++ {
			for col, v := range b.matrix[row] {
				if col >= row {
					continue
				}
				if err := set(col, row, v); err != nil {
					return nil, err
				}
			}
		}
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{Index: i}
	}

	return &Repository{points: points, kind: Explicit, dense: dense}, nil
}

// materializeDense eagerly fills the dense cache from the configured metric.
func (r *Repository) materializeDense() {
	n := len(r.points)
	dense := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := r.compute(i, j)
			dense[i*n+j] = d
			dense[j*n+i] = d
		}
	}
	r.dense = dense
}
