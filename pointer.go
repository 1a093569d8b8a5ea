package datatable

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDoubleClickInterval is the longest gap between two clicks on the
// same cell that still counts as a double click.
const DefaultDoubleClickInterval = 400 * time.Millisecond

// GestureKind identifies a pointer gesture recognised by PointerTracker.
type GestureKind uint8

const (
	GestureHover GestureKind = iota
	GestureClick
	GestureDoubleClick
	GestureDrag
	GestureDragEnd
)

func (k GestureKind) String() string {
	switch k {
	case GestureClick:
		return "click"
	case GestureDoubleClick:
		return "double-click"
	case GestureDrag:
		return "drag"
	case GestureDragEnd:
		return "drag-end"
	}
	return "hover"
}

// Gesture is a recognised pointer gesture. For drags Target is the element
// the drag started on and Start is where it was pressed.
type Gesture struct {
	Kind   GestureKind
	Target *Element
	Point  Point
	Start  Point
	Info   DragInfo
	Time   time.Time

	Alt, Ctrl, Shift bool
}

// ClickEvent converts a click gesture to the event handed to row views.
func (g Gesture) ClickEvent() ClickEvent {
	return ClickEvent{Target: g.Target, Point: g.Point, Time: g.Time, Alt: g.Alt, Ctrl: g.Ctrl, Shift: g.Shift}
}

// DragEvent converts a drag gesture to the event handed to row views.
func (g Gesture) DragEvent() DragEvent {
	return DragEvent{Target: g.Target, Point: g.Point, Time: g.Time}
}

// HitTester resolves the exact element at a cell position.
type HitTester interface {
	HitTest(x, y int) *Element
}

// PointerTracker turns raw bubbletea mouse messages into gestures.
//
// A left press followed by a release without movement is a click. A second
// click on the same cell within DoubleClickInterval also produces a double
// click. Movement while pressed is a drag, and the release that ends a drag
// produces a drag end instead of a click.
type PointerTracker struct {
	DoubleClickInterval time.Duration
	Now                 func() time.Time

	pressed     bool
	dragging    bool
	pressAt     Point
	pressTarget *Element
	last        Point

	lastClickAt    time.Time
	lastClickPoint Point
}

// NewPointerTracker returns a tracker using DefaultDoubleClickInterval.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{DoubleClickInterval: DefaultDoubleClickInterval}
}

func (t *PointerTracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Pressed reports whether the left button is currently held.
func (t *PointerTracker) Pressed() bool {
	return t.pressed
}

// Update feeds one mouse message through the tracker and returns the
// gestures it completes, in order.
func (t *PointerTracker) Update(msg tea.MouseMsg, hit HitTester) []Gesture {
	pt := Point{msg.X, msg.Y}
	base := Gesture{Point: pt, Time: t.now(), Alt: msg.Alt, Ctrl: msg.Ctrl, Shift: msg.Shift}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		t.pressed = true
		t.dragging = false
		t.pressAt = pt
		t.last = pt
		t.pressTarget = hit.HitTest(pt.X, pt.Y)
		return nil

	case tea.MouseActionMotion:
		if !t.pressed {
			base.Kind = GestureHover
			base.Target = hit.HitTest(pt.X, pt.Y)
			return []Gesture{base}
		}
		if pt == t.last {
			return nil
		}
		t.dragging = true
		g := t.dragGesture(base, GestureDrag)
		t.last = pt
		return []Gesture{g}

	case tea.MouseActionRelease:
		if !t.pressed {
			return nil
		}
		t.pressed = false
		if t.dragging {
			t.dragging = false
			return []Gesture{t.dragGesture(base, GestureDragEnd)}
		}
		base.Kind = GestureClick
		base.Target = hit.HitTest(pt.X, pt.Y)
		out := []Gesture{base}

		interval := t.DoubleClickInterval
		if interval <= 0 {
			interval = DefaultDoubleClickInterval
		}
		if !t.lastClickAt.IsZero() && pt == t.lastClickPoint && base.Time.Sub(t.lastClickAt) <= interval {
			dbl := base
			dbl.Kind = GestureDoubleClick
			out = append(out, dbl)
			t.lastClickAt = time.Time{}
		} else {
			t.lastClickAt = base.Time
			t.lastClickPoint = pt
		}
		return out
	}
	return nil
}

func (t *PointerTracker) dragGesture(base Gesture, kind GestureKind) Gesture {
	base.Kind = kind
	base.Target = t.pressTarget
	base.Start = t.pressAt
	base.Info = DragInfo{
		Point:  base.Point,
		Delta:  base.Point.Sub(t.last),
		Offset: base.Point.Sub(t.pressAt),
	}
	return base
}
