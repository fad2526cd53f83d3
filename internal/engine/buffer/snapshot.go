package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrCapacityExceeded is returned when a snapshot is requested into an
// output smaller than the content.
var ErrCapacityExceeded = errors.New("output capacity exceeded")

// CapacityError reports a snapshot request that could not fit the content.
type CapacityError struct {
	Need int // Logical length of the buffer
	Have int // Requested output capacity
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("snapshot needs %d bytes, output holds %d: %v", e.Need, e.Have, ErrCapacityExceeded)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// Snapshot returns the logical content as one contiguous slice. It fails with
// a *CapacityError wrapping ErrCapacityExceeded when outCapacity is smaller
// than Len(); content is never truncated.
func (g *GapBuffer) Snapshot(outCapacity int) ([]byte, error) {
	n := g.Len()
	if outCapacity < n {
		return nil, &CapacityError{Need: n, Have: outCapacity}
	}

	out := make([]byte, n)
	copy(out, g.buf[:g.gapStart])
	copy(out[g.gapStart:], g.buf[g.gapEnd:])
	return out, nil
}

// Bytes returns the logical content. It is Snapshot sized exactly to Len().
func (g *GapBuffer) Bytes() []byte {
	out, _ := g.Snapshot(g.Len())
	return out
}

// WriteTo writes the raw logical content to w: the prefix before the gap
// followed by the suffix after it. No header or metadata is written.
func (g *GapBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := w.Write(g.buf[:g.gapStart])
	total += int64(n)
	if err != nil {
		return total, err
	}

	n, err = w.Write(g.buf[g.gapEnd:])
	total += int64(n)
	return total, err
}

// Load reads r to EOF, inserting every byte at the gap. The effect is the
// same as calling Insert for each byte in order.
func (g *GapBuffer) Load(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	chunk := make([]byte, 4096)
	total := 0

	for {
		n, err := br.Read(chunk)
		if n > 0 {
			g.insertBytes(chunk[:n])
			total += n
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("loading buffer: %w", err)
		}
	}
}
