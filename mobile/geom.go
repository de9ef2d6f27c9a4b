package mobile

import (
	"image"

	"github.com/frizinak/inbetween-go-swipe/swipe"
	"golang.org/x/mobile/event/touch"
)

func TouchPoint(e touch.Event) swipe.Point {
	return swipe.Point{X: float64(e.X), Y: float64(e.Y)}
}

func contains(r image.Rectangle, e touch.Event) bool {
	if r.Empty() {
		return true
	}
	x, y := int(e.X), int(e.Y)
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
