package datatable

import "time"

// Point is a terminal cell position.
type Point struct {
	X, Y int
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// ClickEvent is a click or double click on a rendered row.
// Target is the exact element under the pointer, never an ancestor.
type ClickEvent struct {
	Target *Element
	Point  Point
	Time   time.Time
	Alt    bool
	Ctrl   bool
	Shift  bool
}

// DragEvent is one step of a drag gesture that started on a row.
type DragEvent struct {
	Target *Element
	Point  Point
	Time   time.Time
}

// DragInfo describes the drag gesture so far.
type DragInfo struct {
	Point  Point // current pointer position
	Delta  Point // movement since the previous drag event
	Offset Point // movement since the drag started
}
