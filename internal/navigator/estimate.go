package navigator

import (
	"math"
	"strings"
	"unicode/utf8"

	"portfolio-backend/internal/format"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/render"
)

// Nominal element heights used to place sections before the browser has
// measured anything.
const (
	DefaultViewportHeight = 800

	introHeight   = 220
	titleHeight   = 72
	headingHeight = 48
	lineHeight    = 28
	charsPerLine  = 90
	listItem      = 32
	codeLine      = 20
	blockMargin   = 16
	codePadding   = 48
)

// Estimate lays out a rendered lesson in document coordinates from nominal
// element heights. Content starts below the nav bar, with the trigger
// element (when set) as the lesson intro.
func (n *Navigator) Estimate(l *render.Lesson, viewportHeight float64) Layout {
	layout := Layout{Height: viewportHeight}
	offset := n.NavbarHeight
	if n.TriggerID != "" {
		layout.Trigger = &Block{ID: n.TriggerID, Offset: offset, Height: introHeight}
		offset += introHeight
	}
	if l == nil {
		return layout
	}
	for _, s := range l.Sections {
		h := float64(titleHeight)
		for _, b := range s.Blocks {
			h += blockHeight(b) + blockMargin
		}
		layout.Sections = append(layout.Sections, Block{ID: s.ID, Offset: offset, Height: h})
		offset += h
	}
	return layout
}

func blockHeight(b render.Block) float64 {
	switch b.Kind {
	case models.BlockHeading:
		return headingHeight
	case models.BlockList:
		return float64(listItem * len(b.Items))
	case models.BlockCode:
		return float64(codeLine*(strings.Count(b.Code, "\n")+1) + codePadding)
	default:
		return lineHeight * textLines(format.Plain(b.Spans))
	}
}

func textLines(s string) float64 {
	return math.Max(1, math.Ceil(float64(utf8.RuneCountInString(s))/charsPerLine))
}
