package canvasrenderer

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ByLCY/flexgeo/display"
	"github.com/ByLCY/flexgeo/geometry"
	"github.com/ByLCY/flexgeo/renderer"
	"github.com/ByLCY/flexgeo/style"
)

func sampleList() *display.List {
	accent := style.Color{R: 15, G: 98, B: 254, A: 255}
	return &display.List{
		Size: geometry.Sized(200.0, 100.0),
		Rectangles: []display.Rectangle{
			{Name: "view", Path: "view", Bounds: display.Box{Width: 200, Height: 100}, Opacity: 1},
			{
				Name: "Side", Path: "view/Side", Depth: 1, Opacity: 1,
				Bounds:     display.Box{Width: 50, Height: 100},
				Background: &accent,
				Border:     &display.Border{Widths: geometry.EdgeOffsets[float64]{Top: 1, Left: 2, Bottom: 3, Right: 4}, Color: style.Color{A: 255}},
			},
			{
				Name: "Card", Path: "view/Card", Depth: 1, Opacity: 0.5, Radius: 8,
				Bounds:     display.Box{X: 60, Y: 10, Width: 40, Height: 40},
				Background: &accent,
				Border:     &display.Border{Widths: geometry.Uniform(2.0), Color: style.Color{R: 255, A: 255}},
			},
		},
	}
}

func TestRenderPDF(t *testing.T) {
	white := style.Color{R: 255, G: 255, B: 255, A: 255}
	r := NewRenderer(Options{Background: &white, Info: Info{Title: "Panel", Keywords: []string{"a", "b"}}})
	data, err := r.Render(sampleList())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", data[:min(len(data), 16)])
	}
}

func TestRenderSVG(t *testing.T) {
	r := NewRenderer(Options{Format: renderer.FormatSVG})
	data, err := r.Render(sampleList())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "<path") {
		t.Fatalf("unexpected SVG output: %s", out)
	}
}

func TestRenderRejectsInvalidInput(t *testing.T) {
	r := NewRenderer(Options{})
	if _, err := r.Render(nil); err == nil {
		t.Fatal("expected error for nil list")
	}
	if _, err := r.Render(&display.List{}); err == nil {
		t.Fatal("expected error for empty page")
	}
	bad := NewRenderer(Options{Format: "png"})
	if _, err := bad.Render(sampleList()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestScale(t *testing.T) {
	if got := NewRenderer(Options{}).scale(); math.Abs(got-25.4/96) > 1e-12 {
		t.Fatalf("default scale = %v", got)
	}
	if got := NewRenderer(Options{DPI: 72}).scale(); math.Abs(got-25.4/72) > 1e-12 {
		t.Fatalf("72 dpi scale = %v", got)
	}
}

func TestColorFromStyleAppliesOpacity(t *testing.T) {
	r, g, b, a := colorFromStyle(style.Color{R: 255, A: 255}, 0.5).RGBA()
	if a == 0 || a > 0x8000 || g != 0 || b != 0 || r > a {
		t.Fatalf("unexpected premultiplied color: %d %d %d %d", r, g, b, a)
	}
}
