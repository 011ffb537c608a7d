package slicecube

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Inner is the colour of faces that never show on the outside of the puzzle.
var Inner = colornames.Black

var palette = map[Direction]color.RGBA{
	Right:    colornames.Red,
	Left:     colornames.Darkorange,
	Up:       colornames.White,
	Down:     colornames.Gold,
	Forward:  colornames.Limegreen,
	Backward: colornames.Royalblue,
}

// FaceColor picks the sticker colour for the side of a cubelet at grid cell home facing d.
func FaceColor(home [3]int, d Direction) color.RGBA {
	if home[d.Axis()] == int(d.Sign()) {
		return palette[d]
	}
	return Inner
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func shadeColor(col color.RGBA, normal, toViewer Vector3) color.RGBA {
	// minimum brightness for any surface
	const ambientLight = 0.6
	const diffuseLight = 1.0 - ambientLight

	diffuseFactor := normal.Dot(toViewer)
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	finalBrightness := ambientLight + diffuseFactor*diffuseLight

	// brightness 1.0 leaves the colour unchanged, 0.0 darkens by 240
	c := 240 - int(finalBrightness*240)

	min := 7
	return color.RGBA{
		R: uint8(clamp(int(col.R)-c, min, 255)),
		G: uint8(clamp(int(col.G)-c, min, 255)),
		B: uint8(clamp(int(col.B)-c, min, 255)),
		A: 255,
	}
}

func highlight(col color.RGBA) color.RGBA {
	const lift = 60
	return color.RGBA{
		R: uint8(clamp(int(col.R)+lift, 0, 255)),
		G: uint8(clamp(int(col.G)+lift, 0, 255)),
		B: uint8(clamp(int(col.B)+lift, 0, 255)),
		A: col.A,
	}
}
