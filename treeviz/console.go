package treeviz

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/npillmayer/ordmap/sentinel"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls console output.
type Config struct {
	LineWidth int            // maximum display width of a line, in fixed-width cells
	Indent    int            // cells per tree level
	Colors    bool           // highlight the header and the extreme nodes
	Context   *uax11.Context // context for measuring display width
}

// DefaultIndent is the indentation per tree level if Config.Indent is unset.
const DefaultIndent = 4

// Palette colors the parts of a console diagram.
type Palette struct {
	Header, Leftmost, Rightmost, Links *color.Color
}

// DefaultPalette is used by Fprint.
var DefaultPalette = Palette{
	Header:    color.New(color.FgYellow, color.Bold),
	Leftmost:  color.New(color.FgGreen),
	Rightmost: color.New(color.FgRed),
	Links:     color.New(color.FgBlue),
}

var setupGraphemes sync.Once

// Fprint writes tree t to w as a diagram rotated by 90 degrees: the root is in
// the leftmost column, right subtrees are printed above their parent, left
// subtrees below. In-order sequence thus reads from bottom to top.
//
// If config is nil, a configuration is derived from the terminal connected to
// stdout, if any.
func Fprint[P any](w io.Writer, t *sentinel.Tree[P], label func(P) string, config *Config) error {
	if t == nil {
		return sentinel.ErrNilTree
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	if label == nil {
		label = func(p P) string { return fmt.Sprint(p) }
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	indent := config.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}
	paint := func(c *color.Color, s string) string {
		if !config.Colors {
			return s
		}
		c.EnableColor()
		return c.Sprint(s)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(paint(DefaultPalette.Header,
		fmt.Sprintf("header (%s elements, height %d)", humanize.Comma(int64(t.Len())), t.Height())))
	bw.WriteByte('\n')
	// reverse in-order walk, right subtrees first
	type frame struct {
		node  *sentinel.Node[P]
		depth int
	}
	var stack []frame
	push := func(n *sentinel.Node[P], depth int) {
		for ; n != nil; n = t.Right(n) {
			stack = append(stack, frame{n, depth})
			depth++
		}
	}
	if !t.IsEmpty() {
		push(t.Root(), 0)
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node
		prefix := strings.Repeat(" ", f.depth*indent)
		branch := "─── "
		if f.depth > 0 {
			if p := t.Parent(n); p != nil && t.Right(p) == n {
				branch = "┌── "
			} else {
				branch = "└── "
			}
		}
		room := config.LineWidth - f.depth*indent - 4
		text := Truncate(label(n.Payload), room, ctx)
		switch n {
		case t.Leftmost():
			text = paint(DefaultPalette.Leftmost, text)
		case t.Rightmost():
			text = paint(DefaultPalette.Rightmost, text)
		}
		bw.WriteString(prefix)
		bw.WriteString(paint(DefaultPalette.Links, branch))
		bw.WriteString(text)
		bw.WriteByte('\n')
		push(t.Left(n), f.depth+1)
	}
	if err := bw.Flush(); err != nil {
		tracer().Errorf("tree print: %s", err.Error())
		return err
	}
	return nil
}

// Truncate shortens s to at most width display cells, ending it with an
// ellipsis if anything has been cut. Grapheme clusters are never split.
// A width < 1 leaves s unchanged.
func Truncate(s string, width int, ctx *uax11.Context) string {
	if width < 1 {
		return s
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, ctx) <= width {
		return s
	}
	var b strings.Builder
	for i := 0; i < gstr.Len(); i++ {
		next := b.String() + gstr.Nth(i)
		if uax11.StringWidth(grapheme.StringFromString(next), ctx)+1 > width {
			break
		}
		b.WriteString(gstr.Nth(i))
	}
	return b.String() + "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are enabled for
// terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{
		Indent:  DefaultIndent,
		Context: uax11.ContextFromEnvironment(),
	}
	if term.IsTerminal(1) {
		config.Colors = true
		w, _, err := term.GetSize(1)
		if err != nil || w <= 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 80
	}
	tracer().Debugf("tree print: line width %d, colors=%v", config.LineWidth, config.Colors)
	return config
}
