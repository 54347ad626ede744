package display

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ByLCY/flexgeo/dsl"
	"github.com/ByLCY/flexgeo/geometry"
	"github.com/ByLCY/flexgeo/layout"
	"github.com/ByLCY/flexgeo/style"
)

const sample = `
doc Panel v1 {
  resources {
    color Accent = #0F62FE
    color Line = #333333
  }
  view 200px 100px {
    background: white
    opacity: 0.5
    box Side { width: 50px; background: Accent; border: 2px solid Line }
    box Main {
      grow: 1
      padding: 10px
      radius: 50%
      box Card { width: 20px; height: 20px; background: #ff0000; opacity: 0.5 }
    }
  }
}
`

func resolved(t *testing.T, src string) *layout.Tree {
	t.Helper()
	doc, err := dsl.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tree, err := layout.Build(doc, nil, layout.BuildOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := layout.Resolve(context.Background(), tree, tree.Viewport, layout.Options{}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return tree
}

func TestBuildPaintOrder(t *testing.T) {
	list, err := Build(resolved(t, sample))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if list.Size != geometry.Sized(200.0, 100.0) {
		t.Fatalf("size = %+v", list.Size)
	}

	var paths []string
	for _, r := range list.Rectangles {
		paths = append(paths, r.Path)
	}
	want := "view,view/Side,view/Main,view/Main/Card"
	if got := strings.Join(paths, ","); got != want {
		t.Fatalf("paint order = %s, want %s", got, want)
	}

	side := list.Rectangles[1]
	if side.Bounds != (Box{X: 0, Y: 0, Width: 50, Height: 100}) || side.Depth != 1 {
		t.Fatalf("side = %+v", side)
	}
	if side.Border == nil || side.Border.Widths != geometry.Uniform(2.0) || side.Border.Color != (style.Color{R: 0x33, G: 0x33, B: 0x33, A: 255}) {
		t.Fatalf("side border = %+v", side.Border)
	}
	if side.Opacity != 0.5 {
		t.Fatalf("side opacity should inherit the root's, got %v", side.Opacity)
	}

	main := list.Rectangles[2]
	if main.Radius != 50 || main.Border != nil || main.Background != nil {
		t.Fatalf("main = %+v", main)
	}
	card := list.Rectangles[3]
	if card.Bounds != (Box{X: 60, Y: 10, Width: 20, Height: 20}) || card.Opacity != 0.25 || card.Depth != 2 {
		t.Fatalf("card = %+v", card)
	}
}

func TestHitTest(t *testing.T) {
	list, err := Build(resolved(t, sample))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	type tc struct {
		x, y float64
		path string
	}
	tests := map[string]tc{
		"card":         {x: 65, y: 15, path: "view/Main/Card"},
		"card corner":  {x: 60, y: 10, path: "view/Main/Card"},
		"main padding": {x: 55, y: 5, path: "view/Main"},
		"side":         {x: 10, y: 90, path: "view/Side"},
		"side edge":    {x: 50, y: 0, path: "view/Main"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, ok := list.HitTest(tt.x, tt.y)
			if !ok || r.Path != tt.path {
				t.Fatalf("HitTest(%v, %v) = %s, %v; want %s", tt.x, tt.y, r.Path, ok, tt.path)
			}
			if r.Tag != Tag(tt.path) {
				t.Fatalf("tag mismatch for %s", tt.path)
			}
		})
	}

	if _, ok := list.HitTest(200, 50); ok {
		t.Fatal("right edge of the viewport should miss")
	}
	if all := list.HitTestAll(65, 15); len(all) != 3 || all[2].Path != "view" {
		t.Fatalf("HitTestAll = %+v", all)
	}
}

func TestTagsAreStable(t *testing.T) {
	a, err := Build(resolved(t, sample))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	b, err := Build(resolved(t, sample))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	for i := range a.Rectangles {
		if a.Rectangles[i].Tag != b.Rectangles[i].Tag {
			t.Fatalf("tag for %s changed between builds", a.Rectangles[i].Path)
		}
	}
	if r, ok := a.Lookup(Tag("view/Side")); !ok || r.Name != "Side" {
		t.Fatalf("Lookup = %+v, %v", r, ok)
	}
	if Tag("view/Side") == Tag("view/Main") {
		t.Fatal("distinct paths should give distinct tags")
	}
}

func TestBuildRejectsUnresolved(t *testing.T) {
	doc, err := dsl.Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tree, err := layout.Build(doc, nil, layout.BuildOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := Build(tree); !errors.Is(err, ErrUnresolved) {
		t.Fatalf("Build error = %v, want ErrUnresolved", err)
	}

	full := resolved(t, sample)
	full.Root.Find("view/Main/Card").Rect.Size.Width = geometry.Undefined()
	if _, err := Build(full); !errors.Is(err, ErrUnresolved) || !strings.Contains(err.Error(), "view/Main/Card") {
		t.Fatalf("Build error = %v, want ErrUnresolved for the card", err)
	}
}

func TestVisible(t *testing.T) {
	red := style.Color{R: 255, A: 255}
	tests := map[string]struct {
		r    Rectangle
		want bool
	}{
		"filled":      {r: Rectangle{Bounds: Box{Width: 1, Height: 1}, Background: &red, Opacity: 1}, want: true},
		"transparent": {r: Rectangle{Bounds: Box{Width: 1, Height: 1}, Background: &red, Opacity: 0}, want: false},
		"empty":       {r: Rectangle{Bounds: Box{Width: 1, Height: 1}, Opacity: 1}, want: false},
		"zero size":   {r: Rectangle{Background: &red, Opacity: 1}, want: false},
		"border only": {r: Rectangle{Bounds: Box{Width: 1, Height: 1}, Border: &Border{Color: red}, Opacity: 1}, want: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.Visible(); got != tt.want {
				t.Fatalf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}
