// Package dom is a small in-process document model built on golang.org/x/net/html
// nodes. It provides the element builder used by every renderer, class and
// attribute helpers, and a Document that owns event listeners and serializes
// all mutations onto one event loop.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Style is one inline CSS declaration
type Style struct {
	Prop  string
	Value string
}

// Styles keeps declarations in the order they were given
type Styles []Style

// String serializes the declarations as "prop:value;" pairs.
// Keys and values are passed through verbatim.
func (s Styles) String() string {
	var sb strings.Builder
	for _, st := range s {
		sb.WriteString(st.Prop)
		sb.WriteByte(':')
		sb.WriteString(st.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}

// Options is the declarative configuration applied by Create.
// Zero-valued fields leave the matching property unset.
type Options struct {
	Text    string
	Classes []string
	Src     string
	Alt     string
	Styles  Styles // nil means no style attribute; an empty non-nil slice sets style=""
}

// Create returns a new, unattached element with opts applied.
// Only the first Options value is used; calling with none yields a bare element.
func Create(tag string, opts ...Options) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(opts) == 0 {
		return n
	}

	o := opts[0]
	if o.Text != "" {
		SetText(n, o.Text)
	}
	for _, c := range o.Classes {
		AddClass(n, c)
	}
	if o.Src != "" {
		SetAttr(n, "src", o.Src)
	}
	if o.Alt != "" {
		SetAttr(n, "alt", o.Alt)
	}
	if o.Styles != nil {
		SetAttr(n, "style", o.Styles.String())
	}
	return n
}

// Append attaches children to parent in order
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		parent.AppendChild(c)
	}
	return parent
}

// Children returns the element children of n, skipping text nodes
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// SetText replaces all children of n with a single text node
func SetText(n *html.Node, text string) {
	removeAll(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// TextContent concatenates every descendant text node
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(x *html.Node) {
		if x.Type == html.TextNode {
			sb.WriteString(x.Data)
			return
		}
		for c := x.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// Attr returns the value of key and whether it is set
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Classes returns the class list of n in order
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether class is in the class list of n
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class unless it is empty or already present
func AddClass(n *html.Node, class string) {
	if class == "" || HasClass(n, class) {
		return
	}
	SetAttr(n, "class", strings.TrimSpace(strings.Join(append(Classes(n), class), " ")))
}

// RemoveClass drops class from the class list of n
func RemoveClass(n *html.Node, class string) {
	classes := Classes(n)
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// FindFirst walks n depth-first and returns the first element matching fn
func FindFirst(n *html.Node, fn func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && fn(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindFirst(c, fn); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element under n (inclusive) matching fn, in document order
func FindAll(n *html.Node, fn func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(x *html.Node) {
		if x.Type == html.ElementNode && fn(x) {
			out = append(out, x)
		}
		for c := x.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

// ByClass matches elements carrying class
func ByClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return HasClass(n, class) }
}

// ByTag matches elements by tag name
func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

// ByAttr matches elements whose attribute key equals val
func ByAttr(key, val string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := Attr(n, key)
		return ok && v == val
	}
}

// Render serializes n and its subtree as HTML
func Render(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func removeAll(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}
