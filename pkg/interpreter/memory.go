package interpreter

import "fmt"

// MaxCells bounds the region when no limit is configured
const MaxCells = 1 << 24

// Memory is the addressable region. It grows on writes past its bound and
// never shrinks; unwritten cells read as 0.
type Memory struct {
	cells []int64
	limit int // maximum length
}

// NewMemory creates an empty region holding at most limit cells (0 = MaxCells)
func NewMemory(limit int) *Memory {
	if limit <= 0 {
		limit = MaxCells
	}

	return &Memory{limit: limit}
}

// Store writes v at addr, growing the region with zeros if needed
func (m *Memory) Store(addr, v int64) error {
	if addr < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAddress, addr)
	}

	if addr >= int64(len(m.cells)) {
		if addr >= int64(m.limit) {
			return fmt.Errorf("%w: address %d, limit %d", ErrMemoryLimit, addr, m.limit)
		}
		m.grow(int(addr) + 1)
	}

	m.cells[addr] = v
	return nil
}

// grow extends the region to n cells; capacity doubles so repeated
// growth stays amortized
func (m *Memory) grow(n int) {
	if n <= cap(m.cells) {
		m.cells = m.cells[:n]
		return
	}

	grown := make([]int64, n, max(n, 2*cap(m.cells)))
	copy(grown, m.cells)
	m.cells = grown
}

// Load reads addr; out of bounds addresses read as 0 without growing
func (m *Memory) Load(addr int64) int64 {
	if addr < 0 || addr >= int64(len(m.cells)) {
		return 0
	}

	return m.cells[addr]
}

// Len returns the current length of the region
func (m *Memory) Len() int {
	return len(m.cells)
}

// Cells returns a copy of the region
func (m *Memory) Cells() []int64 {
	return append([]int64(nil), m.cells...)
}

// Reset empties the region
func (m *Memory) Reset() {
	m.cells = nil
}
