// Package recent provides a fixed capacity history of the most recently
// placed items. Once full, pushing a new item evicts the oldest one.
package recent

// History is a bounded ring buffer. The zero value is not usable; call New.
type History[T comparable] struct {
	buf  []T
	head int // index of the oldest item
	size int
}

// New creates a history keeping at most capacity items.
func New[T comparable](capacity int) *History[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &History[T]{buf: make([]T, capacity)}
}

// Push appends v, evicting the oldest item when the history is full.
func (h *History[T]) Push(v T) {
	if h.size < len(h.buf) {
		h.buf[(h.head+h.size)%len(h.buf)] = v
		h.size++
		return
	}
	h.buf[h.head] = v
	h.head = (h.head + 1) % len(h.buf)
}

// Len returns the number of items held.
func (h *History[T]) Len() int { return h.size }

// Last returns up to n of the most recent items, oldest first.
func (h *History[T]) Last(n int) []T {
	if n > h.size {
		n = h.size
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	start := h.size - n
	for i := 0; i < n; i++ {
		out[i] = h.buf[(h.head+start+i)%len(h.buf)]
	}
	return out
}

// ContainsRecent reports whether v is among the n most recent items.
func (h *History[T]) ContainsRecent(v T, n int) bool {
	for _, x := range h.Last(n) {
		if x == v {
			return true
		}
	}
	return false
}

// Exclude returns the items of all that are not among the n most recent
// entries, preserving order. When the filter would leave nothing, all is
// returned unchanged.
func (h *History[T]) Exclude(all []T, n int) []T {
	if h.size == 0 || n <= 0 {
		return all
	}
	out := make([]T, 0, len(all))
	for _, v := range all {
		if !h.ContainsRecent(v, n) {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}
