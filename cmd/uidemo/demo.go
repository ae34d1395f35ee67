package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	ui "github.com/grindlemire/go-ui"
	"github.com/grindlemire/go-ui/internal/debug"
)

const loremLine = "The quick brown fox jumps over the lazy dog while the layout engine wraps this line to fit."

// demo holds the widgets and state of the demo screen.
type demo struct {
	ctx    context.Context
	root   *ui.Root
	body   ui.Widget
	first  ui.Widget
	status *ui.Text
	pages  *ui.Switcher
	count  int
	quit   bool

	workSteps int
	workTick  time.Duration
}

func newDemo(ctx context.Context, root *ui.Root) *demo {
	d := &demo{ctx: ctx, root: root, workSteps: 30, workTick: 40 * time.Millisecond}

	title := ui.NewText("Layout engine demo")
	title.SetStyle(ui.NewStyle().Bold())
	title.SetAlignSelf(ui.AlignCenter)

	count := newButton("Count", d.increment)
	buttons := ui.HBox(
		count,
		newButton("Pages", d.nextPage),
		newButton("About", d.showAbout),
		newButton("Work", d.runWork),
		newButton("Quit", func() { d.quit = true }),
	)
	buttons.SetAlignSelf(ui.AlignCenter)

	d.pages = ui.NewSwitcher(gridPage(), textPage())
	d.pages.SetFlexGrow(1)

	d.status = ui.NewText("Tab moves focus, Enter activates, q quits")
	d.status.SetEllipsize(true)
	d.status.SetStyle(ui.NewStyle().Dim())

	body := ui.VBox(title, buttons, d.pages, d.status)
	body.SetAlignCross(ui.AlignStretch)
	body.SetMargin(ui.MarginAll(1))
	body.OnHotkey(ui.OnRuneStop('q', func(ui.KeyEvent) { d.quit = true }))
	body.OnHotkey(ui.OnKeyStop(ui.KeyF1, func(ui.KeyEvent) { d.showAbout() }))
	body.OnHotkey(ui.OnKey(ui.KeyF2, func(ui.KeyEvent) { d.nextPage() }))

	d.body = body
	d.first = count
	return d
}

func (d *demo) finished() bool { return d.quit }

func (d *demo) setStatus(format string, args ...any) {
	d.status.SetText(fmt.Sprintf(format, args...))
}

func (d *demo) increment() {
	d.count++
	d.setStatus("Count is %d", d.count)
}

func (d *demo) nextPage() {
	d.pages.SetCurrent((d.pages.Current() + 1) % len(d.pages.Children()))
	d.setStatus("Page %d", d.pages.Current()+1)
}

// showAbout pushes a modal popup that closes on any key or click.
func (d *demo) showAbout() {
	body := ui.VBox(
		ui.NewText("Retained layout engine"),
		ui.NewText("Press any key to close"),
	)
	opts := append(d.root.PopupOptions(), ui.WithTitle("About"))
	popup := ui.NewPopup(body, opts...)

	var layer *ui.Layer
	layer = d.root.PushLayout(popup, ui.KeymapMenu, ui.WithEventFilter(func(ev ui.Event) bool {
		switch e := ev.(type) {
		case ui.KeyEvent:
		case ui.MouseEvent:
			if e.Kind != ui.MousePress {
				return false
			}
		default:
			return false
		}
		if top := d.root.TopLayer(); top == layer {
			d.root.PopLayout()
		}
		return true
	}))
	debug.Log("demo: about popup on layer %d", layer.Generation())
}

// runWork shows a progress popup while simulated work runs. The UI keeps
// handling resize and redraws during each tick.
func (d *demo) runWork() {
	p := ui.NewProgressPopup(d.root, "Working", 30)
	defer p.Close()
	for i := 1; i <= d.workSteps; i++ {
		p.SetStatus(fmt.Sprintf("step %d of %d", i, d.workSteps))
		p.Advance()
		if err := d.root.Delay(d.ctx, d.workTick); err != nil {
			d.setStatus("Work cancelled")
			return
		}
	}
	d.setStatus("Work finished after %d steps", d.workSteps)
}

func gridPage() ui.Widget {
	g := ui.NewGrid()
	headers := []string{"Widget", "Purpose"}
	rows := [][]string{
		{"Box", "line up children"},
		{"Grid", "rows and columns"},
		{"Switcher", "one page at a time"},
		{"Scroller", "window onto tall content"},
		{"Popup", "modal frame"},
	}
	for x, h := range headers {
		t := ui.NewText(h)
		t.SetStyle(ui.NewStyle().Underline())
		t.SetMargin(ui.MarginTRBL(0, 2, 0, 0))
		g.AddChild(t, x, 0)
	}
	for y, row := range rows {
		for x, cell := range row {
			t := ui.NewText(cell)
			t.SetMargin(ui.MarginTRBL(0, 2, 0, 0))
			g.AddChild(t, x, y+1)
		}
	}
	g.SetColumnFlexGrow(1, 1)
	return g
}

func textPage() ui.Widget {
	lines := make([]string, 0, 40)
	for i := 1; i <= 40; i++ {
		lines = append(lines, fmt.Sprintf("%2d. %s", i, loremLine))
	}
	t := ui.NewText(strings.Join(lines, "\n"))
	t.SetWrap(true)
	s := ui.NewScroller(t)
	s.SetFocusable(true)
	s.SetScrollbarVisible(true)
	return s
}

// button is a focusable label that runs onPress when activated or clicked.
type button struct {
	ui.Node
	label   string
	onPress func()
	focused bool
	hovered bool
}

func newButton(label string, onPress func()) *button {
	b := &button{label: label, onPress: onPress}
	b.SetFocusable(true)
	b.SetID("button-" + strings.ToLower(label))
	b.SetMargin(ui.MarginSymmetric(0, 1))
	return b
}

func (b *button) text() string { return "[ " + b.label + " ]" }

func (b *button) SizeRequest(dim ui.Direction, _ int) ui.SizeReq {
	if dim == ui.Horizontal {
		w := ui.StringWidth(b.text())
		return ui.SizeReq{Min: w, Nat: w}
	}
	return ui.SizeReq{Min: 1, Nat: 1}
}

func (b *button) Draw(s *ui.Surface) {
	st := ui.NewStyle()
	if b.focused {
		st = st.Reverse()
	}
	if b.hovered {
		st = st.Underline()
	}
	r := b.Region()
	s.DrawText(r.X, r.Y, b.text(), st)
}

func (b *button) HandleEvent(ev ui.Event) bool {
	switch e := ev.(type) {
	case ui.FocusEvent:
		b.focused = e.In
		b.QueueRedraw()
	case ui.ActivateEvent:
		b.onPress()
		return true
	case ui.MouseEvent:
		switch e.Kind {
		case ui.MouseEnter, ui.MouseLeave:
			b.hovered = e.Kind == ui.MouseEnter
			b.QueueRedraw()
		case ui.MousePress:
			if e.Button != ui.MouseLeft {
				return false
			}
			if r := b.Owner(); r != nil {
				r.SetFocusedWidget(b)
			}
			b.onPress()
			return true
		}
	}
	return false
}
