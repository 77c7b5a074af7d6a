package mapcolors

// Element is a node in a parsed markup document.
type Element struct {
	Name     string            // Local tag name, e.g. "path"
	Attrs    map[string]string // Keyed by local name, or "prefix:local" for namespaced attributes
	Children []*Element
}

// Attr returns the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// ElementsByTag returns all descendants of e named tag, in document order.
// The element itself is not included.
func (e *Element) ElementsByTag(tag string) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.Children {
			if c.Name == tag {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

// Document is a parsed markup document.
type Document struct {
	Root *Element
}

// ElementsByTag returns all elements named tag, including the root, in
// document order.
func (d *Document) ElementsByTag(tag string) []*Element {
	if d == nil || d.Root == nil {
		return nil
	}
	var out []*Element
	if d.Root.Name == tag {
		out = append(out, d.Root)
	}
	return append(out, d.Root.ElementsByTag(tag)...)
}
