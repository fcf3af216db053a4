package ordmap

import (
	"fmt"
	"io"

	"github.com/npillmayer/ordmap/treeviz"
)

// WriteDot outputs the internal tree of c in Graphviz DOT format
// (for debugging purposes).
func (c *Container[K, P]) WriteDot(w io.Writer) error {
	return treeviz.WriteDot(w, c.tree, label[P])
}

// Fprint writes the internal tree of c to w as a text diagram. If config is
// nil, it is derived from the terminal.
func (c *Container[K, P]) Fprint(w io.Writer, config *treeviz.Config) error {
	return treeviz.Fprint(w, c.tree, label[P], config)
}

func label[P any](p P) string {
	return fmt.Sprint(p)
}
