// Package glyphs holds the decorative symbols attached to lists and tasks.
package glyphs

import "math/rand/v2"

var (
	ListGlyphs = []string{"📋", "📝", "✅", "📌", "🗒️", "✏️", "📅", "📊"}
	TaskGlyphs = []string{"•", "→", "⇒", "⦿", "○", "▪", "▫", "‣"}

	// Tips are shown under the task view.
	Tips = []string{
		"Productivity is doing what needs to be done when it needs to be done.",
		"Small daily improvements lead to stunning results.",
		"The way to get started is to quit talking and begin doing.",
		"Your time is limited, don't waste it living someone else's life.",
		"The secret of getting ahead is getting started.",
	}
)

// Picker chooses one glyph from pool. Services take a Picker so tests can
// make the choice deterministic.
type Picker func(pool []string) string

// Random picks uniformly from pool; an empty pool yields "".
func Random(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rand.IntN(len(pool))]
}

// First always picks the first glyph.
func First(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[0]
}
