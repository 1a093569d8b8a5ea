package datatable

import "fmt"

// Row is one data record keyed by field name. Row views never modify it.
type Row map[string]any

// Key returns the row's identity value for the given key field as a string.
func (r Row) Key(field string) string {
	return fmt.Sprint(r[field])
}

// AllowPropagationTag marks an element whose clicks may reach the row.
// Row click handlers only fire when the exact click target carries
// data-tag set to this value.
const AllowPropagationTag = "___datatable-allow-propagation___"

// DataTagAttr is the attribute name checked for AllowPropagationTag.
const DataTagAttr = "data-tag"

// Kind identifies what an Element represents.
type Kind uint8

const (
	KindText Kind = iota
	KindRow
	KindCell
	KindCheckbox
	KindExpander
	KindPanel
)

func (k Kind) String() string {
	switch k {
	case KindRow:
		return "row"
	case KindCell:
		return "cell"
	case KindCheckbox:
		return "checkbox"
	case KindExpander:
		return "expander"
	case KindPanel:
		return "panel"
	}
	return "text"
}

// Align controls horizontal placement of text inside its slot.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Element is a node of a rendered row tree.
type Element struct {
	Kind  Kind
	ID    string
	Key   string
	Name  string
	Role  string
	Attrs map[string]string

	Style Style
	Text  string
	Width int // fixed width in columns (0 = share remaining space)
	Align Align
	Wrap  bool // wrap Text over multiple lines instead of truncating

	Disabled bool
	Activate func() // set by interactive elements such as the expander

	Children []*Element
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	if e == nil || e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// SetAttr sets an attribute and returns the element for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string, 1)
	}
	e.Attrs[name] = value
	return e
}

// AllowPropagation tags the element so its clicks reach the row.
func (e *Element) AllowPropagation() *Element {
	return e.SetAttr(DataTagAttr, AllowPropagationTag)
}

// PropagatesClicks reports whether this exact element carries the
// allow-propagation tag. Ancestors are not consulted.
func (e *Element) PropagatesClicks() bool {
	return e.Attr(DataTagAttr) == AllowPropagationTag
}

// Walk visits e and its descendants depth-first. Returning false from fn
// stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if e == nil {
		return true
	}
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first element (depth-first) matching pred.
func (e *Element) Find(pred func(*Element) bool) *Element {
	var found *Element
	e.Walk(func(n *Element) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindKey returns the element with the given key.
func (e *Element) FindKey(key string) *Element {
	return e.Find(func(n *Element) bool { return n.Key == key })
}

// OfKind returns the direct children of the given kind, in order.
func (e *Element) OfKind(k Kind) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// RowTree is the output of one RowView render: the row and, when the row is
// expanded, the detail panel rendered directly beneath it.
type RowTree struct {
	Row     *Element
	Panel   *Element // nil when collapsed or not expandable
	Pointer bool     // show a clickable affordance while hovered
}
