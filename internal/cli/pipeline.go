package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ByLCY/flexgeo/dsl"
	"github.com/ByLCY/flexgeo/layout"
)

// layoutOpts holds the flags shared by every command that resolves a document.
type layoutOpts struct {
	dataPath    string
	width       string
	height      string
	parallelism int
}

func (o *layoutOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.dataPath, "data", "d", "", "JSON file for ${...} bindings")
	cmd.Flags().StringVar(&o.width, "width", "", "viewport width when the view declares none (e.g. 800px)")
	cmd.Flags().StringVar(&o.height, "height", "", "viewport height when the view declares none")
	cmd.Flags().IntVarP(&o.parallelism, "parallelism", "p", -1, "concurrent subtrees (0 = GOMAXPROCS)")
}

// resolveFile parses, builds and resolves the document at path.
func (a *app) resolveFile(ctx context.Context, path string, opts layoutOpts) (*layout.Tree, error) {
	logger := loggerFromContext(ctx)

	cfg := a.cfg
	if opts.width != "" {
		cfg.Viewport.Width = opts.width
	}
	if opts.height != "" {
		cfg.Viewport.Height = opts.height
	}
	if opts.parallelism >= 0 {
		cfg.Layout.Parallelism = opts.parallelism
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fallback, err := cfg.ViewportSize()
	if err != nil {
		return nil, err
	}

	doc, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	data, err := loadData(opts.dataPath)
	if err != nil {
		return nil, err
	}

	tree, err := layout.Build(doc, data, layout.BuildOptions{Viewport: fallback})
	if err != nil {
		return nil, fmt.Errorf("构建 %s 失败: %w", path, err)
	}

	prog := newProgress(logger)
	if err := layout.Resolve(ctx, tree, tree.Viewport, layout.Options{
		Parallelism: cfg.Layout.Parallelism,
		Logger:      logger,
	}); err != nil {
		return nil, fmt.Errorf("布局 %s 失败: %w", path, err)
	}
	prog.done(fmt.Sprintf("Resolved %d boxes in %s", countBoxes(tree.Root), rootSize(tree.Root)))
	return tree, nil
}

func parseFile(path string) (*dsl.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := dsl.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("解析 %s 失败: %w", path, err)
	}
	return doc, nil
}

// loadData decodes the binding data file; an empty path means no data.
func loadData(path string) (any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("解析数据文件 %s 失败: %w", path, err)
	}
	return data, nil
}

func countBoxes(root *layout.Node) int {
	n := 0
	root.Walk(func(*layout.Node, int) bool {
		n++
		return true
	})
	return n
}

func rootSize(root *layout.Node) string {
	size := root.Rect.Size
	return fmt.Sprintf("%sx%s", size.Width, size.Height)
}

// parseCoord parses a hit-test coordinate in pixels.
func parseCoord(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("坐标 %q 无效", s)
	}
	return f, nil
}
