package renderer

import (
	"fmt"
	"strings"

	"github.com/ByLCY/flexgeo/display"
)

// Renderer 将显示列表输出为最终文件，例如 PDF 或 SVG。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(list *display.List) ([]byte, error)
}

// Format is an output encoding.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// ParseFormat accepts "pdf" or "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("不支持的输出格式 %q（可选 pdf、svg）", s)
	}
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string { return "." + string(f) }
