package spline

// buffer is the uniform moment store. Both backing strategies — a
// fixed-capacity region and a growable heap slice — sit behind the same
// resize/index surface, so the encoder, solver, and evaluator are written
// once and never branch on the storage mode.
type buffer struct {
	mode StorageMode
	data []float64 // logical length = current N·D, zeroed on resize
}

// newBuffer allocates a buffer for the given mode, pre-sized to hold
// capacity float64 values. A negative capacity is treated as zero.
func newBuffer(mode StorageMode, capacity int) buffer {
	if capacity < 0 {
		capacity = 0
	}

	return buffer{mode: mode, data: make([]float64, 0, capacity)}
}

// fits reports whether resize(n) would succeed. Used by Set to reject
// oversized rebinds before any state is mutated.
func (b *buffer) fits(n int) bool {
	if b.mode == StorageFixed {
		return n <= cap(b.data)
	}

	return true
}

// resize sets the logical length to n and zeroes the contents.
// Under StorageFixed a request beyond capacity fails with
// ErrStorageExceeded; the other modes reallocate as needed.
func (b *buffer) resize(n int) error {
	if b.mode == StorageFixed && n > cap(b.data) {
		return ErrStorageExceeded
	}
	if n > cap(b.data) {
		b.data = make([]float64, n)

		return nil
	}
	b.data = b.data[:n]
	for i := range b.data {
		b.data[i] = 0
	}

	return nil
}

// vals exposes the backing slice for in-place kernels (encoder, solver).
func (b *buffer) vals() []float64 { return b.data }

// at reads the value at flat index i.
func (b *buffer) at(i int) float64 { return b.data[i] }
