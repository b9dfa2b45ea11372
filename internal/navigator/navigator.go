// Package navigator tracks which lesson section is active as the reader
// scrolls, and whether the floating section nav should be shown.
package navigator

import (
	"math"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/render"
)

const (
	DefaultNavbarHeight = 130
	DefaultTolerance    = 50
)

// Rect is an element's vertical extent relative to the viewport top.
type Rect struct {
	ID     string
	Top    float64
	Bottom float64
}

// Viewport is one scroll tick's worth of geometry.
type Viewport struct {
	Height   float64
	Sections []Rect
	// Trigger is the geometry of the element the nav is hidden behind.
	// Nil when the trigger is not rendered.
	Trigger *Rect
}

// Navigator keeps the active section between ticks. It is not safe for
// concurrent use; each reader session owns one.
type Navigator struct {
	NavbarHeight float64
	Tolerance    float64
	TriggerID    string

	active string
}

func New(triggerID string) *Navigator {
	return &Navigator{
		NavbarHeight: DefaultNavbarHeight,
		Tolerance:    DefaultTolerance,
		TriggerID:    triggerID,
	}
}

// Active returns the current active section id, or "" before any section
// has qualified.
func (n *Navigator) Active() string { return n.active }

// Update recomputes the active section from vp. When no section qualifies
// the previous value is kept. It is idempotent for identical input.
func (n *Navigator) Update(vp Viewport) string {
	if id, ok := n.pick(vp); ok {
		n.active = id
	}
	return n.active
}

func (n *Navigator) pick(vp Viewport) (string, bool) {
	h := n.NavbarHeight

	best, bestDist := "", math.Inf(1)
	for _, s := range vp.Sections {
		if s.Top <= h+n.Tolerance && s.Bottom >= h {
			if d := math.Abs(s.Top - h); d < bestDist {
				best, bestDist = s.ID, d
			}
		}
	}
	if best != "" {
		return best, true
	}

	bestTop := math.Inf(1)
	for _, s := range vp.Sections {
		if s.Top > 0 && s.Top < vp.Height/2 && s.Top < bestTop {
			best, bestTop = s.ID, s.Top
		}
	}
	return best, best != ""
}

// Visible reports whether the floating nav should be shown. Without a
// trigger the nav is always visible.
func (n *Navigator) Visible(vp Viewport) bool {
	if n.TriggerID == "" {
		return true
	}
	if vp.Trigger == nil {
		return false
	}
	return vp.Trigger.Bottom <= n.NavbarHeight
}

// ScrollTarget is the document offset that rests an element just under the
// nav bar.
func (n *Navigator) ScrollTarget(elementTop, scrollOffset float64) float64 {
	return elementTop + scrollOffset - n.NavbarHeight
}

// Block is an element positioned in document coordinates.
type Block struct {
	ID     string
	Offset float64
	Height float64
}

// Layout is a static page layout in document coordinates.
type Layout struct {
	Height   float64
	Sections []Block
	Trigger  *Block
}

// Project converts the layout to viewport geometry at scroll position scrollY.
func (l Layout) Project(scrollY float64) Viewport {
	vp := Viewport{Height: l.Height, Sections: make([]Rect, 0, len(l.Sections))}
	for _, b := range l.Sections {
		vp.Sections = append(vp.Sections, b.rect(scrollY))
	}
	if l.Trigger != nil {
		r := l.Trigger.rect(scrollY)
		vp.Trigger = &r
	}
	return vp
}

func (b Block) rect(scrollY float64) Rect {
	top := b.Offset - scrollY
	return Rect{ID: b.ID, Top: top, Bottom: top + b.Height}
}

// Entry is one item of the floating table of contents.
type Entry struct {
	ID    string
	Label string
}

// TOC lists the sections of a lesson in order, keyed by the same ids the
// renderer assigns.
func TOC(l *models.Lesson) []Entry {
	if l == nil {
		return nil
	}
	out := make([]Entry, 0, len(l.Sections))
	for i, s := range l.Sections {
		out = append(out, Entry{ID: render.SectionID(i), Label: s.Title})
	}
	return out
}
