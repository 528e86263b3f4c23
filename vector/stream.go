// File: vector/stream.go
// Author: momentics <momentics@gmail.com>
//
// Whitespace-token text I/O over the default fmt verbs.

package vector

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the elements in index order, separated by single spaces
// and terminated by one line break. An empty vector writes just the line
// break.
func (v *Vector[T]) Fprint(w io.Writer) error {
	for i, e := range v.buf.Live() {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%v", e); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Fscan reads exactly Len() whitespace-delimited tokens from r into the
// existing elements in index order. The vector is never grown or shrunk;
// the caller sizes it first. On a malformed or short input the elements
// scanned so far are kept and the scan error is returned with the failing
// index.
func (v *Vector[T]) Fscan(r io.Reader) error {
	live := v.buf.Live()
	ptrs := make([]any, len(live))
	for i := range live {
		ptrs[i] = &live[i]
	}
	if n, err := fmt.Fscan(r, ptrs...); err != nil {
		return fmt.Errorf("scan element %d: %w", n, err)
	}
	return nil
}

// String renders the same single line as Fprint without the trailing line
// break.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	_ = v.Fprint(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}
