// Package gesture tracks a single press→motion→release pointer sequence and
// classifies it as a click or a drag once it completes.
package gesture

import "github.com/bnema/termfab/internal/geometry"

// Button identifies which pointer button an event carries. Only the primary
// button starts a drag session; everything else is ignored.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonOther
)

// Classification is the outcome of a completed pointer sequence.
type Classification int

const (
	// ClassificationNone means no session was active when release arrived.
	ClassificationNone Classification = iota
	// ClassificationClick means the control did not move between press and
	// release. There is no jitter tolerance: any nonzero displacement
	// counts as a drag, even a single cell during a fast click.
	ClassificationClick
	// ClassificationDrag means the control moved to a new position.
	ClassificationDrag
)

// Classifier tracks one drag session at a time. It is pure coordinate
// bookkeeping: callers clamp proposed positions and apply side effects
// based on the classification.
type Classifier struct {
	active bool
	anchor geometry.Point // pointer offset from the control's origin at press
	start  geometry.Point // control position at press
}

// Press begins a session. It reports whether a session started: non-primary
// buttons and presses during an already-active session are no-ops.
func (c *Classifier) Press(button Button, pointer, position geometry.Point) bool {
	if button != ButtonPrimary || c.active {
		return false
	}
	c.active = true
	c.anchor = geometry.Point{X: pointer.X - position.X, Y: pointer.Y - position.Y}
	c.start = position
	return true
}

// Propose computes the control position implied by the current pointer
// location, preserving the press-time anchor offset so the control does not
// drift under the pointer. The second return is false when no session is
// active.
func (c *Classifier) Propose(pointer geometry.Point) (geometry.Point, bool) {
	if !c.active {
		return geometry.Point{}, false
	}
	return geometry.Point{X: pointer.X - c.anchor.X, Y: pointer.Y - c.anchor.Y}, true
}

// Release ends the session and classifies it by comparing the final control
// position against the position at press. Zero displacement is a click;
// anything else is a drag.
func (c *Classifier) Release(final geometry.Point) Classification {
	if !c.active {
		return ClassificationNone
	}
	result := ClassificationDrag
	if final == c.start {
		result = ClassificationClick
	}
	c.reset()
	return result
}

// Cancel abandons the session without classifying, e.g. when the control is
// torn down mid-drag.
func (c *Classifier) Cancel() {
	c.reset()
}

// Active reports whether a session is in progress.
func (c *Classifier) Active() bool {
	return c.active
}

// Start returns the control position recorded at press time.
func (c *Classifier) Start() geometry.Point {
	return c.start
}

func (c *Classifier) reset() {
	c.active = false
	c.anchor = geometry.Point{}
}
