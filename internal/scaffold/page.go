package scaffold

import (
	"fmt"
	"io"
)

// Page is the placeholder for page generation. It writes a notice and
// touches nothing.
func Page(w io.Writer) error {
	_, err := fmt.Fprintln(w, "not implemented")
	return err
}
