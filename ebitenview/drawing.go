package ebitenview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/slicecube"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// PolygonSink receives projected quads in painter's order.
type PolygonSink interface {
	AddPolygon(xp, yp []float32, clr color.RGBA)
	AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32)
}

// imageSink draws straight onto an ebiten image.
type imageSink struct {
	screen *ebiten.Image
}

func (s imageSink) AddPolygon(xp, yp []float32, clr color.RGBA) {
	fillConvexPolygon(s.screen, xp, yp, clr)
}

func (s imageSink) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	fillConvexPolygon(s.screen, xp, yp, fillClr)
	drawPolygonOutline(s.screen, xp, yp, strokeWidth, strokeClr)
}

var (
	edgeColor     = color.RGBA{A: 255}
	selectedColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// paintPolygons feeds every polygon to sink; selected faces get a brighter outline.
func paintPolygons(sink PolygonSink, polys []slicecube.Polygon) {
	var xp, yp [4]float32
	for _, p := range polys {
		for i, pt := range p.Points {
			xp[i] = float32(pt.X)
			yp[i] = float32(pt.Y)
		}
		stroke, width := edgeColor, float32(1.5)
		if p.Selected {
			stroke, width = selectedColor, 3
		}
		sink.AddPolygonAndOutline(xp[:], yp[:], p.Color, stroke, width)
	}
}

func fillConvexPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	vertices := make([]ebiten.Vertex, len(xp))
	cr, cg, cb, ca := colorComponents(clr)
	for i := range xp {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, indices, whiteSub, op)
}

// drawPolygonOutline strokes the closed path through the given points.
func drawPolygonOutline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinRound,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr, cg, cb, ca := colorComponents(clr)
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func colorComponents(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255.0, float32(clr.G) / 255.0, float32(clr.B) / 255.0, float32(clr.A) / 255.0
}
