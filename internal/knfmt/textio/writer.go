// Package textio provides small io.Writer combinators used to report
// diagnostics and write formatted output: a buffered writer with a
// flush policy, an error-latching writer, and a line-prefixing writer.
package textio

import "bytes"

// WriteBuffer combines a byte buffer with a destination writer and a
// flush policy.
//
//	var buf WriteBuffer
//	buf.To = os.Stderr
//	fmt.Fprintln(&buf, "diagnostic")
//	buf.MaybeFlush()
//	buf.Flush()
type WriteBuffer struct {
	FlushPolicy
	To Writer
	bytes.Buffer
}

// Writer is the subset of io.Writer WriteBuffer requires; kept local so
// callers don't need to import io just to satisfy this field.
type Writer interface {
	Write(p []byte) (int, error)
}

// FlushPolicy determines when MaybeFlush should drain the buffer.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc adapts a function to FlushPolicy.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush calls the receiver function.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// Flush writes all buffered bytes to To, regardless of FlushPolicy.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes the prefix of the buffer that FlushPolicy (default
// FlushLineChunks) says is ready, discarding it from the buffer.
func (buf *WriteBuffer) MaybeFlush() error {
	if buf.FlushPolicy == nil {
		buf.FlushPolicy = FlushPolicyFunc(FlushLineChunks)
	}
	b := buf.Bytes()
	if n := buf.ShouldFlush(b); n > 0 {
		m, err := buf.To.Write(b[:n])
		buf.Next(m)
		return err
	}
	return nil
}

// FlushLineChunks flushes through the last written newline byte.
func FlushLineChunks(b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// ErrWriter wraps a writer, latching the first write error and
// discarding subsequent writes once one has occurred.
type ErrWriter struct {
	Writer
	Err error
}

// Write passes through to the wrapped Writer while Err is nil.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer prepending prefix before every line
// written through it. Callers should Close it to flush any partial
// final line.
func PrefixWriter(prefix string, w Writer) *Prefixer {
	var p Prefixer
	p.Buffer.To = w
	p.Prefix = prefix
	return &p
}

// Prefixer writes prefix before every line written to an underlying
// writer. Set Skip true for a one-shot "skip the next prefix".
type Prefixer struct {
	Prefix string
	Skip   bool
	Buffer WriteBuffer
}

// Close flushes any buffered bytes to the underlying writer.
func (p *Prefixer) Close() error { return p.Buffer.Flush() }

// Flush flushes any buffered bytes to the underlying writer.
func (p *Prefixer) Flush() error { return p.Buffer.Flush() }

// Write implements io.Writer, inserting Prefix before every line.
func (p *Prefixer) Write(b []byte) (n int, err error) {
	first := true
	for len(b) > 0 {
		if !first {
			p.addPrefix()
		} else if i := p.Buffer.Len() - 1; i < 0 || p.Buffer.Bytes()[i] == '\n' {
			p.addPrefix()
			first = false
		} else {
			first = false
		}

		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
		} else {
			b = nil
		}
		m, _ := p.Buffer.Write(line)
		n += m
	}
	return n, p.Buffer.MaybeFlush()
}

func (p *Prefixer) addPrefix() {
	if p.Skip {
		p.Skip = false
	} else {
		p.Buffer.WriteString(p.Prefix)
	}
}
