package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// childNames lists the names of the child elements of e in order.
func childNames(e *Element) []string {
	var names []string
	for _, c := range e.Elements() {
		names = append(names, c.Name)
	}
	return names
}

// childText returns the text of the named child, failing the test if it is
// missing.
func childText(t *testing.T, e *Element, name string) string {
	t.Helper()
	c := e.Child(name)
	require.NotNil(t, c, "%s has no %s child", e.Name, name)
	text, ok := c.Text()
	require.True(t, ok, "%s is not a text node", name)
	return text
}

func TestNewNode(t *testing.T) {
	n := NewNode("name", "UART0")
	assert.Equal(t, "name", n.Name)
	text, ok := n.Text()
	assert.True(t, ok)
	assert.Equal(t, "UART0", text)
	assert.Empty(t, n.Elements())

	_, ok = NewElement("empty").Text()
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	base := NewElement("peripheral")
	base.Attributes["derivedFrom"] = "A"
	base.Attributes["keep"] = "base"
	base.appendChild(NewNode("dim", "2"), NewNode("name", "fromBase"))

	overlay := NewElement("ignored")
	overlay.Attributes["derivedFrom"] = "B"
	overlay.Attributes["extra"] = "overlay"
	overlay.appendChild(NewNode("name", "fromOverlay"), NewNode("baseAddress", "0"))

	base.Merge(overlay)

	assert.Equal(t, "peripheral", base.Name)
	assert.Equal(t, map[string]string{
		"derivedFrom": "B",
		"keep":        "base",
		"extra":       "overlay",
	}, base.Attributes)
	assert.Equal(t, []string{"dim", "name", "name", "baseAddress"}, childNames(base))
	assert.Equal(t, "fromBase", childText(t, base, "name"))

	// The overlay is left untouched.
	assert.Len(t, overlay.Children, 2)
}

func TestMergeIntoZeroElement(t *testing.T) {
	var base Element
	overlay := NewElement("x")
	overlay.Attributes["a"] = "1"
	overlay.appendChild(Text("t"))

	base.Merge(overlay)
	assert.Equal(t, "1", base.Attributes["a"])
	assert.Equal(t, []Node{Text("t")}, base.Children)
}

func TestMergeSequence(t *testing.T) {
	dim := NewElement("dimElement")
	dim.appendChild(NewNode("dim", "4"))
	info := NewElement("peripheral")
	info.Attributes["derivedFrom"] = "TIMER0"
	info.appendChild(NewNode("name", "TIMER%s"), NewNode("baseAddress", "0"))

	base := NewElement("peripheral")
	base.Merge(dim)
	base.Merge(info)

	assert.Equal(t, []string{"dim", "name", "baseAddress"}, childNames(base))
	assert.Equal(t, "TIMER0", base.Attributes["derivedFrom"])
}
