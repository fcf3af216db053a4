/*
Package treeviz renders sentinel trees for debugging: as Graphviz DOT input or
as an indented, optionally colored, text diagram for terminals.

Both renderers take a label function which turns a payload into text. Labels
are escaped for DOT output and truncated to a maximum display width for console
output. Display width is measured in fixed-width cells, honoring East Asian wide
characters and grapheme clusters.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package treeviz

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
