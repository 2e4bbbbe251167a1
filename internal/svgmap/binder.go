package svgmap

import (
	"bytes"
	"errors"
	"strings"
	"sync"

	"seatly/internal/seatmap"

	"golang.org/x/net/html"
)

var (
	ErrNoSeatAtTarget  = errors.New("no seat at click target")
	ErrSeatUnavailable = errors.New("seat is unavailable")
)

const (
	seatAttr           = "data-seat"
	statusAttr         = "data-status"
	unavailableClass   = "unavailable"
	interactiveClass   = "interactive-seat-group"
	seatIDPrefix       = "seat"
	defaultFill        = "blue"
	defaultStroke      = "black"
	defaultHighlight   = "#10b981"
	defaultHighlightSt = "#059669"
)

var shapeTags = map[string]bool{
	"rect":     true,
	"circle":   true,
	"ellipse":  true,
	"path":     true,
	"polygon":  true,
	"polyline": true,
}

// Options controls how selected seats are highlighted
type Options struct {
	HighlightFill   string
	HighlightStroke string
}

func (o Options) withDefaults() Options {
	if o.HighlightFill == "" {
		o.HighlightFill = defaultHighlight
	}
	if o.HighlightStroke == "" {
		o.HighlightStroke = defaultHighlightSt
	}
	return o
}

type marker struct {
	id    seatmap.SeatID
	node  *html.Node
	shape *html.Node
}

// Binder makes a server-supplied SVG seat map interactive: it finds the seat
// markers, resolves clicks to seats and re-renders selection highlights.
type Binder struct {
	mu      sync.Mutex
	root    *html.Node
	state   *State
	opts    Options
	byID    map[seatmap.SeatID]*marker
	byNode  map[*html.Node]*marker
	ordered []*marker
}

// Bind parses template and captures every seat marker into state.
// A template that is empty, malformed or has no <svg> element yields a binder
// with no markers.
func Bind(template string, state *State, opts Options) *Binder {
	if state == nil {
		state = NewState()
	}

	b := &Binder{
		state:  state,
		opts:   opts.withDefaults(),
		byID:   make(map[seatmap.SeatID]*marker),
		byNode: make(map[*html.Node]*marker),
	}

	if strings.TrimSpace(template) == "" {
		return b
	}

	doc, err := html.Parse(strings.NewReader(template))
	if err != nil {
		return b
	}

	b.root = findElement(doc, "svg")
	if b.root == nil {
		return b
	}

	b.collect(b.root)
	return b
}

func (b *Binder) collect(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		id, ok := markerSeatID(c)
		if !ok {
			b.collect(c)
			continue
		}

		shape := c
		if !shapeTags[c.Data] {
			shape = findShape(c)
		}
		if shape == nil {
			b.collect(c)
			continue
		}

		if _, dup := b.byID[id]; dup {
			continue
		}

		m := &marker{id: id, node: c, shape: shape}
		b.prepare(m)
		b.byID[id] = m
		b.byNode[c] = m
		b.ordered = append(b.ordered, m)
	}
}

func (b *Binder) prepare(m *marker) {
	style := Style{
		Fill:   attrOr(m.shape, "fill", defaultFill),
		Stroke: attrOr(m.shape, "stroke", defaultStroke),
	}
	unavailable := hasClass(m.node, unavailableClass) ||
		hasClass(m.shape, unavailableClass) ||
		strings.EqualFold(attr(m.node, statusAttr), unavailableClass)

	b.state.capture(m.id, style, unavailable)

	for _, n := range []*html.Node{m.node, m.shape} {
		removeAttr(n, "onmouseover")
		removeAttr(n, "onmouseout")
	}
	addClass(m.node, interactiveClass)
	setStyle(m.shape, map[string]string{"cursor": "pointer"})
}

// State returns the session state the binder writes into
func (b *Binder) State() *State {
	return b.state
}

// Interactive reports whether the map has at least one seat marker
func (b *Binder) Interactive() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.ordered) > 0
}

// Seats lists the bound seats in document order
func (b *Binder) Seats() []seatmap.SeatID {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]seatmap.SeatID, 0, len(b.ordered))
	for _, m := range b.ordered {
		out = append(out, m.id)
	}
	return out
}

// Click resolves a click on target to the seat it belongs to. target is the
// id attribute of any element inside the map, or a seat id. The nearest
// enclosing seat marker wins; unavailable seats are rejected.
func (b *Binder) Click(target string) (seatmap.SeatID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.root == nil || target == "" {
		return "", ErrNoSeatAtTarget
	}

	node := findByAttr(b.root, "id", target)
	if node == nil {
		if m, ok := b.byID[seatmap.SeatID(target)]; ok {
			node = m.node
		}
	}
	if node == nil {
		return "", ErrNoSeatAtTarget
	}

	return b.clickNode(node)
}

func (b *Binder) clickNode(n *html.Node) (seatmap.SeatID, error) {
	for cur := n; cur != nil && cur != b.root.Parent; cur = cur.Parent {
		m, ok := b.byNode[cur]
		if !ok {
			continue
		}
		if status, _ := b.state.Status(m.id, seatmap.Selection{}); status == StatusUnavailable {
			return "", ErrSeatUnavailable
		}
		return m.id, nil
	}
	return "", ErrNoSeatAtTarget
}

// CanSelect reports whether id is a bound, available seat
func (b *Binder) CanSelect(id seatmap.SeatID) error {
	status, ok := b.state.Status(id, seatmap.Selection{})
	if !ok {
		return ErrNoSeatAtTarget
	}
	if status == StatusUnavailable {
		return ErrSeatUnavailable
	}
	return nil
}

// Render applies the highlight style to selected seats, restores the
// captured style on the others and serializes the map. Unavailable seats are
// never restyled. A map without an <svg> element renders as "".
func (b *Binder) Render(selection seatmap.Selection) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.root == nil {
		return ""
	}

	for _, m := range b.ordered {
		status, ok := b.state.Status(m.id, selection)
		if !ok || status == StatusUnavailable {
			continue
		}
		if status == StatusAvailableSelected {
			setStyle(m.shape, map[string]string{
				"fill":   b.opts.HighlightFill,
				"stroke": b.opts.HighlightStroke,
			})
			continue
		}
		original, _ := b.state.OriginalStyle(m.id)
		setStyle(m.shape, map[string]string{
			"fill":   original.Fill,
			"stroke": original.Stroke,
		})
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, b.root); err != nil {
		return ""
	}
	return buf.String()
}

// Teardown drops the parsed map and resets the session state
func (b *Binder) Teardown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.root = nil
	b.byID = make(map[seatmap.SeatID]*marker)
	b.byNode = make(map[*html.Node]*marker)
	b.ordered = nil
	b.state.Reset()
}

// markerSeatID returns the seat id of a marker element: the data-seat
// attribute, or an id of the form seat-A1, seat_A1 or seatA1.
func markerSeatID(n *html.Node) (seatmap.SeatID, bool) {
	if v := strings.TrimSpace(attr(n, seatAttr)); v != "" {
		return seatmap.SeatID(v), true
	}

	id := attr(n, "id")
	if !strings.HasPrefix(strings.ToLower(id), seatIDPrefix) {
		return "", false
	}
	rest := strings.TrimLeft(id[len(seatIDPrefix):], "-_")
	seat, err := seatmap.ParseSeatID(seatmap.SeatID(rest))
	if err != nil {
		return "", false
	}
	return seat.ID, true
}
