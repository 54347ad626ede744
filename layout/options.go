package layout

import (
	"github.com/ByLCY/flexgeo/geometry"
	"github.com/charmbracelet/log"
)

// BuildOptions 配置 DSL 到节点树的构建阶段。
type BuildOptions struct {
	// Viewport 在 view 段落未声明尺寸时使用，任一轴可以是 undefined。
	Viewport geometry.AxisSize[geometry.Number]
}

// Options tunes a layout pass.
type Options struct {
	// Parallelism bounds how many subtrees are resolved at once.
	// Zero uses GOMAXPROCS; one resolves on the calling goroutine only.
	Parallelism int
	// Logger receives per-container debug traces when set.
	Logger *log.Logger
}
