package swipe

import "math"

type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"

	North     Direction = "n"
	South     Direction = "s"
	East      Direction = "e"
	West      Direction = "w"
	NorthEast Direction = "ne"
	NorthWest Direction = "nw"
	SouthEast Direction = "se"
	SouthWest Direction = "sw"
)

// Scheme selects how an angle is bucketed into directions.
type Scheme int

const (
	// SchemeCardinal reports left, right, up or down.
	SchemeCardinal Scheme = iota
	// SchemeCompass reports a 4-way compass label and an 8-way one.
	SchemeCompass
)

func (s Scheme) String() string {
	switch s {
	case SchemeCardinal:
		return "cardinal"
	case SchemeCompass:
		return "compass"
	}
	return "unknown"
}

func ParseScheme(name string) (Scheme, bool) {
	switch name {
	case "cardinal", "4":
		return SchemeCardinal, true
	case "compass", "8", "":
		return SchemeCompass, true
	}
	return SchemeCardinal, false
}

type Point struct {
	X, Y float64
}

func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// round rounds half up, -0.5 becomes 0 and not -1.
func round(f float64) int {
	return int(math.Floor(f + 0.5))
}

// Length is the euclidean distance between start and end, rounded.
func Length(start, end Point) int {
	x := end.X - start.X
	y := end.Y - start.Y
	return round(math.Sqrt(x*x + y*y))
}

// Angle returns the swipe angle in whole degrees in [0, 360).
// 0 is a swipe towards the left of the screen, 90 a swipe towards its bottom.
func Angle(start, end Point) int {
	x := start.X - end.X
	y := end.Y - start.Y
	angle := round(math.Atan2(y, x) * 180 / math.Pi)
	if angle < 0 {
		angle = 360 + angle
	}

	return NormalizeAngle(angle)
}

func NormalizeAngle(angle int) int {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return angle
}

// Cardinal buckets an angle as left, right, up or down.
// The 45 degree boundary belongs to left and (255, 315) is down.
func Cardinal(angle int) Direction {
	angle = NormalizeAngle(angle)
	switch {
	case angle <= 45 || angle >= 315:
		return Left
	case angle >= 135 && angle <= 255:
		return Right
	case angle > 45 && angle < 135:
		return Up
	}
	return Down
}

func Compass4(angle int) Direction {
	angle = NormalizeAngle(angle)
	switch {
	case angle < 45:
		return West
	case angle < 135:
		return South
	case angle < 255:
		return East
	case angle < 315:
		return North
	}
	return West
}

func Compass8(angle int) Direction {
	angle = NormalizeAngle(angle)
	switch {
	case angle < 23:
		return West
	case angle < 67:
		return SouthWest
	case angle < 113:
		return South
	case angle < 157:
		return SouthEast
	case angle < 203:
		return East
	case angle < 247:
		return NorthEast
	case angle < 293:
		return North
	case angle < 337:
		return NorthWest
	}
	return West
}

// Classify returns the primary direction for the scheme and, for
// SchemeCompass, the 8-way direction.
func Classify(s Scheme, angle int) (primary, secondary Direction) {
	if s == SchemeCompass {
		return Compass4(angle), Compass8(angle)
	}
	return Cardinal(angle), ""
}
