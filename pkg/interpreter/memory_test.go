package interpreter_test

import (
	"errors"
	"math"
	"testing"

	"whitespace/pkg/interpreter"
)

func TestMemoryStoreLoad(t *testing.T) {
	m := interpreter.NewMemory(0)

	if got := m.Load(3); got != 0 {
		t.Errorf("Load(3) on empty memory = %d", got)
	}
	if m.Len() != 0 {
		t.Errorf("Load grew memory to %d", m.Len())
	}

	for _, addr := range []int64{0, 7, 2, 100} {
		if err := m.Store(addr, addr*2); err != nil {
			t.Fatalf("Store(%d) failed: %v", addr, err)
		}
		if got := m.Load(addr); got != addr*2 {
			t.Errorf("Load(%d) = %d, want %d", addr, got, addr*2)
		}
	}

	if m.Len() != 101 {
		t.Errorf("Len() = %d, want 101", m.Len())
	}
	if got := m.Load(50); got != 0 {
		t.Errorf("Load(50) = %d, want 0", got)
	}
	if got := m.Load(-1); got != 0 {
		t.Errorf("Load(-1) = %d, want 0", got)
	}
}

func TestMemoryErrors(t *testing.T) {
	m := interpreter.NewMemory(8)

	if err := m.Store(-1, 1); !errors.Is(err, interpreter.ErrInvalidAddress) {
		t.Errorf("Store(-1) error = %v", err)
	}
	if err := m.Store(8, 1); !errors.Is(err, interpreter.ErrMemoryLimit) {
		t.Errorf("Store(8) error = %v", err)
	}
	if err := m.Store(7, 1); err != nil {
		t.Errorf("Store(7) failed: %v", err)
	}
	if m.Len() != 8 {
		t.Errorf("Len() = %d, want 8", m.Len())
	}
}

func TestMemoryCellsIsCopy(t *testing.T) {
	m := interpreter.NewMemory(0)
	_ = m.Store(1, 5)

	cells := m.Cells()
	cells[1] = 9
	if m.Load(1) != 5 {
		t.Errorf("Cells() aliases the region")
	}

	m.Reset()
	if m.Len() != 0 {
		t.Errorf("Len() after Reset = %d", m.Len())
	}
}

func TestMemoryDefaultCap(t *testing.T) {
	m := interpreter.NewMemory(0)

	for _, addr := range []int64{math.MaxInt64, 1 << 40, interpreter.MaxCells} {
		if err := m.Store(addr, 1); !errors.Is(err, interpreter.ErrMemoryLimit) {
			t.Errorf("Store(%d) error = %v, want ErrMemoryLimit", addr, err)
		}
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}

	capped := interpreter.NewMemory(4)
	if err := capped.Store(math.MaxInt64, 1); !errors.Is(err, interpreter.ErrMemoryLimit) {
		t.Errorf("capped Store(MaxInt64) error = %v", err)
	}
}
