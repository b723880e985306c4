package arena

// Buffer is an owned, growable byte vector with doubling capacity
// growth.
type Buffer struct {
	b []byte
}

// NewBuffer returns a Buffer with at least cap bytes of capacity
// preallocated.
func NewBuffer(cap int) *Buffer {
	return &Buffer{b: make([]byte, 0, cap)}
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.b) }

// Bytes returns the buffer's current contents. The slice is only valid
// until the next mutating call.
func (b *Buffer) Bytes() []byte { return b.b }

// String renders the buffer's contents as a string.
func (b *Buffer) String() string { return string(b.b) }

// Write appends p, growing storage by doubling when needed, and
// implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.grow(len(p))
	b.b = append(b.b, p...)
	return len(p), nil
}

// WriteString appends s, growing storage by doubling when needed.
func (b *Buffer) WriteString(s string) (int, error) {
	b.grow(len(s))
	b.b = append(b.b, s...)
	return len(s), nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	b.grow(1)
	b.b = append(b.b, c)
	return nil
}

// Truncate discards bytes past the first n, leaving the first n bytes
// (must have 0 <= n <= Len()).
func (b *Buffer) Truncate(n int) {
	b.b = b.b[:n]
}

// TrimTrailing removes trailing bytes for which pred returns true.
func (b *Buffer) TrimTrailing(pred func(byte) bool) {
	n := len(b.b)
	for n > 0 && pred(b.b[n-1]) {
		n--
	}
	b.b = b.b[:n]
}

// Release hands off ownership of the internal storage, resetting the
// buffer to empty. The caller must not use the returned slice after
// writing to the buffer again.
func (b *Buffer) Release() []byte {
	out := b.b
	b.b = nil
	return out
}

func (b *Buffer) grow(extra int) {
	if need := len(b.b) + extra; need > cap(b.b) {
		newCap := cap(b.b)
		if newCap == 0 {
			newCap = 64
		}
		for newCap < need {
			newCap *= 2
		}
		nb := make([]byte, len(b.b), newCap)
		copy(nb, b.b)
		b.b = nb
	}
}
