package box

import "fmt"

var (
	_ Node = Text("")
	_ Node = Number(0)
	_ Node = Label{}
	_ Node = Container{}
	_ Node = Button{}
)

// Node is a sealed interface for box descriptors.
// Only the variants in this package can implement it.
type Node interface {
	node()
}

// Text is a raw text fragment.
type Text string

func (Text) node() {}

// Number is a raw numeric fragment.
type Number int64

func (Number) node() {}

// Label is a styled single value. Content is a Text or a Number.
type Label struct {
	Style   Style
	Content Node
}

func (Label) node() {}

// Container holds children in display order.
type Container struct {
	Style    Style
	Children []Node
}

func (Container) node() {}

// Button is an interactive element.
type Button struct {
	OnClick func() error
}

func (Button) node() {}

// Click invokes OnClick. A button without a handler is a no-op.
func (b Button) Click() error {
	if b.OnClick == nil {
		return nil
	}
	return b.OnClick()
}

// Match dispatches n to the callback for its variant.
func Match[T any](
	n Node,
	text func(Text) T,
	number func(Number) T,
	label func(Label) T,
	container func(Container) T,
	button func(Button) T,
) T {
	switch n := n.(type) {
	case Text:
		return text(n)
	case Number:
		return number(n)
	case Label:
		return label(n)
	case Container:
		return container(n)
	case Button:
		return button(n)
	default:
		// Node is sealed, so this is a bug.
		panic(fmt.Sprintf("exhaustive match fallback, node type: %T", n))
	}
}

// Walk visits n and its descendants depth-first in display order.
// Returning false from visit skips the node's descendants.
func Walk(n Node, visit func(Node) bool) {
	if !visit(n) {
		return
	}
	switch n := n.(type) {
	case Label:
		if n.Content != nil {
			Walk(n.Content, visit)
		}
	case Container:
		for _, child := range n.Children {
			Walk(child, visit)
		}
	}
}

// Buttons returns every button under n in display order.
func Buttons(n Node) []Button {
	var buttons []Button
	Walk(n, func(n Node) bool {
		if b, ok := n.(Button); ok {
			buttons = append(buttons, b)
		}
		return true
	})
	return buttons
}
