// internal/ui/node.go
package ui

import "image/color"

// Message — что отправляет нажатая кнопка
type Message int

const (
	NoMessage Message = iota
	StartClicked
)

func (m Message) String() string {
	switch m {
	case StartClicked:
		return "StartClicked"
	default:
		return "NoMessage"
	}
}

// Align — выравнивание детей колонки по горизонтали
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Node — элемент декларативного описания интерфейса
type Node interface {
	node()
}

// Text — надпись заданного кегля
type Text struct {
	Content string
	Size    int
	Color   color.RGBA
}

// Button — кнопка с подписью; при нажатии отправляет OnPress
type Button struct {
	Label    string
	Size     int
	OnPress  Message
	PaddingX int
	PaddingY int
}

// Column — вертикальный стек
type Column struct {
	Align    Align
	Spacing  int
	Children []Node
}

// Container — обёртка, растягивается на всю доступную область и центрирует ребёнка
type Container struct {
	Fill    bool
	CenterX bool
	CenterY bool
	Child   Node
}

func (Text) node()      {}
func (Button) node()    {}
func (Column) node()    {}
func (Container) node() {}

func NewText(content string, size int) Text {
	return Text{Content: content, Size: size}
}

func NewButton(label string, size int, msg Message) Button {
	return Button{Label: label, Size: size, OnPress: msg, PaddingX: 20, PaddingY: 10}
}
