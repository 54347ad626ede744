package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/flexgeo/display"
	"github.com/ByLCY/flexgeo/renderer"
	"github.com/ByLCY/flexgeo/style"
)

// Renderer draws display lists via github.com/tdewolff/canvas.
type Renderer struct {
	opts Options
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Format renderer.Format
	// DPI maps layout pixels to physical size; zero means style.PxPerInch.
	DPI float64
	// Background fills the page before any rectangle is drawn.
	Background *style.Color
	Info       Info
}

// Info is the PDF document information dictionary.
type Info struct {
	Title    string
	Subject  string
	Author   string
	Creator  string
	Keywords []string
}

// NewRenderer creates a canvas-based renderer. An empty format means PDF.
func NewRenderer(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = renderer.FormatPDF
	}
	if opts.DPI <= 0 {
		opts.DPI = style.PxPerInch
	}
	return &Renderer{opts: opts}
}

// Render draws every visible rectangle of list into a single page.
func (r *Renderer) Render(list *display.List) ([]byte, error) {
	if list == nil {
		return nil, fmt.Errorf("显示列表为空")
	}
	if list.Size.Width <= 0 || list.Size.Height <= 0 {
		return nil, fmt.Errorf("页面尺寸无效: %gx%g px", list.Size.Width, list.Size.Height)
	}

	k := r.scale()
	width, height := list.Size.Width*k, list.Size.Height*k
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	if bg := r.opts.Background; bg != nil {
		ctx.SetFillColor(colorFromStyle(*bg, 1))
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(0, 0, canvas.Rectangle(width, height))
	}
	for _, rect := range list.Rectangles {
		if rect.Visible() {
			r.drawRectangle(ctx, rect, k)
		}
	}

	var buf bytes.Buffer
	switch r.opts.Format {
	case renderer.FormatPDF:
		writer := pdf.New(&buf, width, height, nil)
		info := r.opts.Info
		writer.SetInfo(info.Title, info.Subject, strings.Join(info.Keywords, ", "), info.Author, info.Creator)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	case renderer.FormatSVG:
		writer := svg.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("不支持的输出格式 %q", r.opts.Format)
	}
	return buf.Bytes(), nil
}

// scale returns millimetres per layout pixel.
func (r *Renderer) scale() float64 {
	return style.MmPerInch / r.opts.DPI
}

// drawRectangle 绘制背景与边框；统一宽度的圆角边框按描边绘制，其余按四条填充带绘制。
func (r *Renderer) drawRectangle(ctx *canvas.Context, rect display.Rectangle, k float64) {
	b := rect.Bounds
	x, y, w, h := b.X*k, b.Y*k, b.Width*k, b.Height*k
	radius := rect.Radius * k

	ctx.SetStrokeColor(canvas.Transparent)
	if rect.Background != nil {
		ctx.SetFillColor(colorFromStyle(*rect.Background, rect.Opacity))
		ctx.DrawPath(x, y, shape(w, h, radius))
	}

	border := rect.Border
	if border == nil {
		return
	}
	bw := border.Widths
	ink := colorFromStyle(border.Color, rect.Opacity)
	if radius > 0 && bw.Top == bw.Left && bw.Top == bw.Bottom && bw.Top == bw.Right {
		sw := bw.Top * k
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(ink)
		ctx.SetStrokeWidth(sw)
		ctx.DrawPath(x+sw/2, y+sw/2, shape(w-sw, h-sw, math.Max(0, radius-sw/2)))
		return
	}

	ctx.SetFillColor(ink)
	top, bottom := bw.Top*k, bw.Bottom*k
	left, right := bw.Left*k, bw.Right*k
	strips := []struct{ x, y, w, h float64 }{
		{x, y, w, top},
		{x, y + h - bottom, w, bottom},
		{x, y + top, left, h - top - bottom},
		{x + w - right, y + top, right, h - top - bottom},
	}
	for _, s := range strips {
		if s.w > 0 && s.h > 0 {
			ctx.DrawPath(s.x, s.y, canvas.Rectangle(s.w, s.h))
		}
	}
}

func shape(w, h, radius float64) *canvas.Path {
	if radius > 0 {
		return canvas.RoundedRectangle(w, h, radius)
	}
	return canvas.Rectangle(w, h)
}

func colorFromStyle(c style.Color, opacity float64) color.Color {
	alpha := float64(c.A) / 255.0 * opacity
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, alpha)
}
