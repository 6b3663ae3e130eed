package stack

type Stack[T any] struct {
	a []T
	l int
}

// NewStack creates a new stack instance, elm[0] at the bottom
func NewStack[T any](elm ...T) *Stack[T] {
	stack := Stack[T]{
		a: make([]T, 0, 64),
		l: 0,
	}

	for _, e := range elm {
		stack.l++
		stack.a = append(stack.a, e)
	}

	return &stack
}

// Push adds an element to the top of the stack
func (s *Stack[T]) Push(elm T) {
	s.l++
	s.a = append(s.a, elm)
}

// Pop removes and returns the top element of the stack
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.l < 1 {
		return zero, false
	}

	s.l--
	elm := s.a[s.l]
	s.a = s.a[:s.l]

	return elm, true
}

// Peek returns the top element of the stack without removing it
func (s *Stack[T]) Peek() (T, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the element n positions below the top (0 is the top)
func (s *Stack[T]) PeekAt(n int) (T, bool) {
	var zero T
	if n < 0 || n >= s.l {
		return zero, false
	}

	return s.a[s.l-1-n], true
}

// Swap exchanges the two topmost elements
func (s *Stack[T]) Swap() bool {
	if s.l < 2 {
		return false
	}

	s.a[s.l-1], s.a[s.l-2] = s.a[s.l-2], s.a[s.l-1]
	return true
}

// Slide removes the n elements right below the top, keeping the top
func (s *Stack[T]) Slide(n int) bool {
	if n < 0 || n >= s.l {
		return false
	}

	top := s.a[s.l-1]
	s.l -= n
	s.a = s.a[:s.l]
	s.a[s.l-1] = top

	return true
}

// Get the size of the stack
func (s *Stack[T]) Size() int {
	return s.l
}

// Clear drops every element
func (s *Stack[T]) Clear() {
	s.a = s.a[:0]
	s.l = 0
}

// Array returns a copy of the stack contents, bottom first
func (s *Stack[T]) Array() []T {
	return append([]T(nil), s.a...)
}
