package venues

import (
	"fmt"
	"strconv"
	"strings"

	"seatly/internal/seatmap"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	DefaultSeatsPerRow = 10

	seatSize   = 24
	seatGap    = 6
	marginLeft = 40
	stageDepth = 40
	marginTop  = stageDepth + 30
)

// GenerateTemplate draws a plain grid seat map for venues created without
// artwork. Row A is nearest the stage; each seat is a <g data-seat> group
// filled with its category color.
func GenerateTemplate(categories []seatmap.SeatCategory, seatsPerRow int) (string, error) {
	if seatsPerRow <= 0 {
		seatsPerRow = DefaultSeatsPerRow
	}
	rows := seatmap.TotalRows(categories)

	width := marginLeft*2 + seatsPerRow*(seatSize+seatGap)
	height := marginTop + rows*(seatSize+seatGap) + seatGap

	svg := element("svg",
		"xmlns", "http://www.w3.org/2000/svg",
		"viewBox", fmt.Sprintf("0 0 %d %d", width, height),
		"width", strconv.Itoa(width),
		"height", strconv.Itoa(height),
	)

	stage := element("g", "class", "stage")
	stage.AppendChild(element("rect",
		"x", strconv.Itoa(marginLeft),
		"y", "0",
		"width", strconv.Itoa(width-marginLeft*2),
		"height", strconv.Itoa(stageDepth),
		"fill", "#374151",
	))
	stage.AppendChild(label(width/2, stageDepth/2+5, "STAGE", "#ffffff"))
	svg.AppendChild(stage)

	area := element("g", "class", "seating-area")
	for row := 0; row < rows; row++ {
		letter := seatmap.RowLetter(row)
		y := marginTop + row*(seatSize+seatGap)
		area.AppendChild(label(marginLeft/2, y+seatSize/2+4, letter, "#111827"))

		for n := 1; n <= seatsPerRow; n++ {
			id := seatmap.SeatID(letter + strconv.Itoa(n))
			fill := "#9ca3af"
			if cat, ok := seatmap.CategoryForSeat(id, categories); ok && cat.Color != "" {
				fill = cat.Color
			}

			x := marginLeft + (n-1)*(seatSize+seatGap)
			seat := element("g", "data-seat", string(id))
			seat.AppendChild(element("rect",
				"x", strconv.Itoa(x),
				"y", strconv.Itoa(y),
				"width", strconv.Itoa(seatSize),
				"height", strconv.Itoa(seatSize),
				"rx", "4",
				"fill", fill,
				"stroke", "#1f2937",
			))
			area.AppendChild(seat)
		}
	}
	svg.AppendChild(area)

	var b strings.Builder
	if err := html.Render(&b, svg); err != nil {
		return "", fmt.Errorf("failed to render seat map template: %w", err)
	}
	return b.String(), nil
}

func element(tag string, kv ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: atom.Lookup([]byte(tag)), Data: tag}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func label(x, y int, text, fill string) *html.Node {
	t := element("text",
		"x", strconv.Itoa(x),
		"y", strconv.Itoa(y),
		"text-anchor", "middle",
		"font-size", "12",
		"fill", fill,
	)
	t.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return t
}
