package encoder

// Node is either an *Element or Text.
type Node interface {
	isNode()
}

// Text is character data inside an element.
type Text string

func (Text) isNode() {}

// Element is a named markup node. Attribute keys are unique.
type Element struct {
	Name       string
	Attributes map[string]string
	Children   []Node
}

func (*Element) isNode() {}

func NewElement(name string) *Element {
	return &Element{
		Name:       name,
		Attributes: map[string]string{},
	}
}

// NewNode returns an element holding only the text value.
func NewNode(name, value string) *Element {
	e := NewElement(name)
	e.Children = []Node{Text(value)}
	return e
}

// Merge folds other into e. Attributes of other replace those of e with the
// same key and the children of other are appended after the children of e.
func (e *Element) Merge(other *Element) {
	if len(other.Attributes) > 0 && e.Attributes == nil {
		e.Attributes = make(map[string]string, len(other.Attributes))
	}
	for k, v := range other.Attributes {
		e.Attributes[k] = v
	}
	e.Children = append(e.Children, other.Children...)
}

// Text returns the value of a text-only element.
func (e *Element) Text() (string, bool) {
	if len(e.Children) != 1 {
		return "", false
	}
	t, ok := e.Children[0].(Text)
	return string(t), ok
}

// Child returns the first child element with the given name.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c, ok := c.(*Element); ok && c.Name == name {
			return c
		}
	}
	return nil
}

// Elements returns the child elements, skipping text.
func (e *Element) Elements() []*Element {
	var elems []*Element
	for _, c := range e.Children {
		if c, ok := c.(*Element); ok {
			elems = append(elems, c)
		}
	}
	return elems
}

func (e *Element) appendChild(children ...Node) {
	e.Children = append(e.Children, children...)
}
