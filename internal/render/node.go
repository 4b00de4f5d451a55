package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// element builds an element node from alternating key/value attribute pairs.
func element(tag string, kv ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func textElement(content string, kv ...string) *html.Node {
	n := element("text", kv...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: content})
	return n
}

// setAttr replaces an attribute value or appends it.
func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Attr returns the value of an attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// num formats a coordinate with the shortest exact representation.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixed1 formats v with one decimal and never prints a negative zero.
func fixed1(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}

func translate(x, y float64) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}
