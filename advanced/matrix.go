package advanced

// A dense n×n matrix indexed by point handles. The backing array is
// allocated once from the known point count, so writes never grow anything.
type Matrix[T any] struct {
	size  int
	cells []T
}

func NewMatrix[T any](size int) *Matrix[T] {
	if size < 0 {
		fatalf("matrix size must not be negative, got %d", size)
	}
	return &Matrix[T]{size: size, cells: make([]T, size*size)}
}

func (m *Matrix[T]) Size() int {
	return m.size
}

func (m *Matrix[T]) index(i, j int) int {
	if i < 0 || j < 0 || i >= m.size || j >= m.size {
		fatalf("matrix index (%d, %d) out of range for size %d", i, j, m.size)
	}
	return i*m.size + j
}

func (m *Matrix[T]) Get(i, j int) T {
	return m.cells[m.index(i, j)]
}

func (m *Matrix[T]) Set(i, j int, value T) {
	m.cells[m.index(i, j)] = value
}

// Write both (i, j) and (j, i) in one step, which keeps the matrix symmetric
// as long as every write goes through here.
func (m *Matrix[T]) SetSymmetric(i, j int, value T) {
	m.Set(i, j, value)
	m.Set(j, i, value)
}

// An unordered pair of handles, normalized so the smaller one comes first.
// Used to key edges in maps.
type pairKey struct {
	lo, hi int
}

func newPairKey(a, b int) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}
