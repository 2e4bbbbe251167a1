package svgmap

import (
	"strings"

	"golang.org/x/net/html"
)

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findByAttr(n *html.Node, key, value string) *html.Node {
	if n.Type == html.ElementNode && attr(n, key) == value {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByAttr(c, key, value); found != nil {
			return found
		}
	}
	return nil
}

func findShape(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if shapeTags[c.Data] {
			return c
		}
		if found := findShape(c); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key && a.Namespace == "" {
			return a.Val
		}
	}
	return ""
}

func attrOr(n *html.Node, key, fallback string) string {
	if v := attr(n, key); v != "" {
		return v
	}
	return fallback
}

func setAttr(n *html.Node, key, value string) {
	for i, a := range n.Attr {
		if a.Key == key && a.Namespace == "" {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key == key && a.Namespace == "" {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	if hasClass(n, class) {
		return
	}
	classes := strings.TrimSpace(attr(n, "class") + " " + class)
	setAttr(n, "class", classes)
}

type declaration struct {
	property string
	value    string
}

// setStyle merges props into the inline style attribute, keeping the order
// of existing declarations.
func setStyle(n *html.Node, props map[string]string) {
	var decls []declaration
	for _, part := range strings.Split(attr(n, "style"), ";") {
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, declaration{
			property: strings.ToLower(strings.TrimSpace(property)),
			value:    strings.TrimSpace(value),
		})
	}

	for _, key := range []string{"cursor", "fill", "stroke"} {
		value, ok := props[key]
		if !ok {
			continue
		}
		replaced := false
		for i := range decls {
			if decls[i].property == key {
				decls[i].value = value
				replaced = true
			}
		}
		if !replaced {
			decls = append(decls, declaration{property: key, value: value})
		}
	}

	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.property+": "+d.value)
	}
	setAttr(n, "style", strings.Join(parts, "; "))
}
