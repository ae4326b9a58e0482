// Package history keeps the bounded jump history used by back-navigation.
package history

import (
	"sync"

	"globalnav/pkg/types"
)

// DefaultCapacity is used when the configured capacity is missing or invalid.
const DefaultCapacity = 50

// Stack is a fixed-capacity history of visited positions. Pushing beyond
// capacity evicts the oldest entry; popping returns the most recent entry
// that has not been popped or evicted. Eviction and popping share the same
// ring bookkeeping, so an evicted entry can never be popped and no push or
// pop ever compacts the buffer.
//
// All methods are safe for concurrent use, matching the one-navigation-at-
// a-time interactive pattern.
type Stack struct {
	mu    sync.Mutex
	buf   []types.Position
	front int // ring index of the oldest live entry
	count int // number of live entries
}

// NewStack creates a stack holding at most capacity entries.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{buf: make([]types.Position, capacity)}
}

// Push records a visited position, evicting the oldest entry at capacity.
func (s *Stack) Push(pos types.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count == len(s.buf) {
		s.front = (s.front + 1) % len(s.buf)
		s.count--
	}
	s.buf[(s.front+s.count)%len(s.buf)] = pos
	s.count++
}

// Pop removes and returns the most recently pushed live entry.
// The second return value is false when the stack is empty.
func (s *Stack) Pop() (types.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count == 0 {
		return types.Position{}, false
	}
	s.count--
	return s.buf[(s.front+s.count)%len(s.buf)], true
}

// Len returns the number of live entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Cap returns the configured capacity.
func (s *Stack) Cap() int {
	return len(s.buf)
}

// Clear empties the stack.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.front = 0
	s.count = 0
}
