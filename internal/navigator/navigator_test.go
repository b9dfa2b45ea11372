package navigator

import (
	"testing"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/render"
)

func threeSections() Layout {
	return Layout{
		Height: 800,
		Sections: []Block{
			{ID: "section-0", Offset: 0, Height: 500},
			{ID: "section-1", Offset: 500, Height: 500},
			{ID: "section-2", Offset: 1000, Height: 500},
		},
	}
}

func TestUpdate_ThreeSections(t *testing.T) {
	nav := New("")
	layout := threeSections()

	tests := []struct {
		scrollY float64
		want    string
	}{
		// section-0 spans the bar at the top of the page
		{0, "section-0"},
		// section-0 bottom (100) has left the bar; section-1 top is 30px from it
		{400, "section-1"},
		// section-2 rests exactly under the bar
		{870, "section-2"},
		// back up again
		{450, "section-1"},
	}
	for _, tc := range tests {
		if got := nav.Update(layout.Project(tc.scrollY)); got != tc.want {
			t.Errorf("scrollY=%v: active = %q, want %q", tc.scrollY, got, tc.want)
		}
	}
}

func TestUpdate_ClosestToNavbarWins(t *testing.T) {
	nav := New("")
	vp := Viewport{Height: 800, Sections: []Rect{
		{ID: "a", Top: 100, Bottom: 400},
		{ID: "b", Top: 170, Bottom: 600},
	}}
	// a: |100-130| = 30, b: |170-130| = 40
	if got := nav.Update(vp); got != "a" {
		t.Errorf("active = %q, want a", got)
	}
}

func TestUpdate_FallbackUpperHalf(t *testing.T) {
	nav := New("")
	vp := Viewport{Height: 800, Sections: []Rect{
		{ID: "a", Top: -900, Bottom: 100},
		{ID: "b", Top: 300, Bottom: 700},
		{ID: "c", Top: 250, Bottom: 260},
	}}
	// nothing spans the bar; c has the smallest top in (0, 400)
	if got := nav.Update(vp); got != "c" {
		t.Errorf("active = %q, want c", got)
	}
}

func TestUpdate_StickyWhenNothingQualifies(t *testing.T) {
	nav := New("")
	nav.Update(Viewport{Height: 800, Sections: []Rect{{ID: "a", Top: 120, Bottom: 500}}})

	vp := Viewport{Height: 800, Sections: []Rect{
		{ID: "a", Top: -2000, Bottom: -1000},
		{ID: "b", Top: 700, Bottom: 900},
	}}
	if got := nav.Update(vp); got != "a" {
		t.Errorf("active = %q, want sticky a", got)
	}
	if got := nav.Update(vp); got != "a" {
		t.Errorf("second tick active = %q, want a", got)
	}
}

func TestUpdate_InitiallyEmpty(t *testing.T) {
	nav := New("")
	if got := nav.Update(Viewport{Height: 800}); got != "" {
		t.Errorf("active = %q, want empty", got)
	}
}

func TestVisible(t *testing.T) {
	layout := threeSections()
	layout.Trigger = &Block{ID: "intro", Offset: 0, Height: 300}

	nav := New("intro")
	if nav.Visible(layout.Project(0)) {
		t.Error("nav visible before scrolling past the trigger")
	}
	if !nav.Visible(layout.Project(170)) {
		t.Error("nav hidden after trigger bottom reached the nav bar")
	}
	if nav.Visible(Viewport{}) {
		t.Error("nav visible while trigger is absent")
	}
	if !New("").Visible(Viewport{}) {
		t.Error("nav without trigger should always be visible")
	}
}

func TestScrollTarget(t *testing.T) {
	nav := New("")
	if got := nav.ScrollTarget(400, 1000); got != 1270 {
		t.Errorf("ScrollTarget = %v, want 1270", got)
	}
}

func TestTOC(t *testing.T) {
	l := &models.Lesson{Sections: []models.Section{{Title: "Intro"}, {Title: "Intro"}, {Title: "End"}}}
	toc := TOC(l)
	if len(toc) != 3 {
		t.Fatalf("len(TOC) = %d", len(toc))
	}
	if toc[1].ID != "section-1" || toc[1].Label != "Intro" {
		t.Errorf("toc[1] = %+v", toc[1])
	}
	if TOC(nil) != nil {
		t.Error("TOC(nil) should be nil")
	}
}

func TestUpdate_AboveAllSectionsSelectsNone(t *testing.T) {
	nav := New("lesson-intro")
	layout := Layout{
		Height:  800,
		Trigger: &Block{ID: "lesson-intro", Offset: 130, Height: 900},
		Sections: []Block{
			{ID: "section-0", Offset: 1030, Height: 600},
			{ID: "section-1", Offset: 1630, Height: 600},
		},
	}

	if got := nav.Update(layout.Project(0)); got != "" {
		t.Fatalf("scrollY=0: active = %q, want none", got)
	}
	if nav.Visible(layout.Project(0)) {
		t.Error("nav visible while the intro is on screen")
	}

	// section-0 rests under the bar
	if got := nav.Update(layout.Project(900)); got != "section-0" {
		t.Fatalf("scrollY=900: active = %q, want section-0", got)
	}
	// nothing qualifies between sections; the last pick sticks
	if got := nav.Update(layout.Project(0)); got != "section-0" {
		t.Errorf("back at top: active = %q, want section-0 (sticky)", got)
	}
}

func TestEstimate_InitialState(t *testing.T) {
	nav := New("lesson-intro")
	lesson := &render.Lesson{Sections: []render.Section{
		{ID: "section-0", Blocks: []render.Block{{Kind: models.BlockText}}},
		{ID: "section-1", Blocks: []render.Block{{Kind: models.BlockCode, Code: "a\nb"}}},
	}}

	layout := nav.Estimate(lesson, DefaultViewportHeight)
	if layout.Trigger == nil || layout.Trigger.Offset != nav.NavbarHeight {
		t.Fatalf("trigger = %+v, want intro right under the nav bar", layout.Trigger)
	}
	if len(layout.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(layout.Sections))
	}
	s0, s1 := layout.Sections[0], layout.Sections[1]
	if s1.Offset != s0.Offset+s0.Height {
		t.Errorf("section-1 offset = %v, want %v", s1.Offset, s0.Offset+s0.Height)
	}

	top := layout.Project(0)
	if got := nav.Update(top); got != "section-0" {
		t.Errorf("active at top = %q, want section-0", got)
	}
	if nav.Visible(top) {
		t.Error("nav visible while the intro is on screen")
	}
}
