package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls the rendering of tree nodes.
type Config struct {
	Color    bool // highlight pending effects and padding nodes
	MaxDepth int  // do not print nodes deeper than MaxDepth; negative: no limit
	Padding  bool // print nodes covering padding leaves only
	Width    int  // truncate lines to Width columns; 0: no limit

	// Context decides the display width of East-Asian ambiguous characters.
	// If nil, uax11.LatinContext is used.
	Context *uax11.Context
}

// Option modifies a Config.
type Option func(*Config)

// WithColor switches highlighting on or off, regardless of the output device.
func WithColor(on bool) Option {
	return func(c *Config) { c.Color = on }
}

// WithMaxDepth limits output to nodes of depth ≤ depth, the root having depth 0.
func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.MaxDepth = depth }
}

// WithPadding includes nodes covering padding leaves only.
func WithPadding(on bool) Option {
	return func(c *Config) { c.Padding = on }
}

// WithWidth truncates output lines to width columns.
func WithWidth(width int) Option {
	return func(c *Config) { c.Width = width }
}

// WithContext sets the context for measuring the display width of lines.
func WithContext(context *uax11.Context) Option {
	return func(c *Config) { c.Context = context }
}

// ConfigFor creates a configuration suitable for w. If w is a terminal,
// colors are switched on, the line width is set to the terminal's width and
// character widths are measured in a context derived from the user's
// environment.
func ConfigFor(w io.Writer) Config {
	config := Config{MaxDepth: -1}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return config
	}
	config.Color = true
	config.Context = uax11.ContextFromEnvironment()
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		config.Width = width
	} else {
		tracer().Debugf("inspect: cannot determine terminal width: %v", err)
	}
	return config
}

// Fprint writes the nodes of a tree to w, in pre-order. each is the tree's
// Each method, which makes Fprint usable with both segtree.Tree and
// segtree.LazyTree:
//
//	inspect.Fprint(os.Stdout, tree.Each)
//
// Options override settings derived from w, see ConfigFor.
func Fprint[T, U any](w io.Writer, each func(func(segtree.NodeInfo[T, U]) bool), opts ...Option) error {
	config := ConfigFor(w)
	for _, opt := range opts {
		opt(&config)
	}
	p := newPrinter(w, config)
	each(func(n segtree.NodeInfo[T, U]) bool {
		if config.MaxDepth >= 0 && n.Depth > config.MaxDepth {
			return true
		}
		if n.Padding && !config.Padding {
			return true
		}
		pending := ""
		if n.Deferred {
			pending = fmt.Sprintf("%v", n.Pending)
		}
		p.node(n.Depth, n.From, n.To, fmt.Sprintf("%v", n.Value), pending, n.Padding)
		return p.err == nil
	})
	return p.err
}

type printer struct {
	w       io.Writer
	config  Config
	effect  *color.Color
	padding *color.Color
	err     error
}

var setupGraphemes sync.Once

func newPrinter(w io.Writer, config Config) *printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	p := &printer{
		w:       w,
		config:  config,
		effect:  color.New(color.FgYellow, color.Bold),
		padding: color.New(color.FgHiBlack),
	}
	if config.Color {
		p.effect.EnableColor()
		p.padding.EnableColor()
	} else {
		p.effect.DisableColor()
		p.padding.DisableColor()
	}
	return p
}

// node prints a single node line.
//
// Lines too long for the configured width are truncated and printed without
// highlighting.
func (p *printer) node(depth, from, to int, value, pending string, padding bool) {
	if p.err != nil {
		return
	}
	label := fmt.Sprintf("%s[%d,%d) %s", strings.Repeat("  ", depth), from, to, value)
	suffix := ""
	if pending != "" {
		suffix = " ⟨" + pending + "⟩"
	}
	var line string
	switch {
	case p.config.Width > 0 && p.width(label+suffix) > p.config.Width:
		line = p.truncate(label + suffix)
	case padding:
		line = p.padding.Sprint(label) + suffix
	case suffix != "":
		line = label + p.effect.Sprint(suffix)
	default:
		line = label
	}
	_, p.err = io.WriteString(p.w, line+"\n")
}

// width returns the number of terminal columns s occupies.
func (p *printer) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.config.Context)
}

// truncate cuts s at a grapheme boundary, such that s followed by an
// ellipsis fits into the configured width.
func (p *printer) truncate(s string) string {
	const ellipsis = "…"
	room := p.config.Width - p.width(ellipsis)
	var b strings.Builder
	gstr := grapheme.StringFromString(s)
	for i := 0; i < gstr.Len(); i++ {
		cluster := gstr.Nth(i)
		w := p.width(cluster)
		if w > room {
			break
		}
		room -= w
		b.WriteString(cluster)
	}
	b.WriteString(ellipsis)
	return b.String()
}
