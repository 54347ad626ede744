package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/flexgeo/display"
	"github.com/ByLCY/flexgeo/renderer"
	canvasrenderer "github.com/ByLCY/flexgeo/renderer/canvas"
	"github.com/ByLCY/flexgeo/style"
)

type renderOpts struct {
	layoutOpts
	output     string
	format     string
	dpi        float64
	background string
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to PDF or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args[0], opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <output.dir>/<name>.<format>, - for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: pdf or svg")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", 0, "pixels per inch for the physical page size")
	cmd.Flags().StringVar(&opts.background, "background", "", "page background color (#rrggbb or name)")
	return cmd
}

func (a *app) render(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	format, err := a.cfg.Format()
	if opts.format != "" {
		format, err = renderer.ParseFormat(opts.format)
	}
	if err != nil {
		return err
	}
	dpi := a.cfg.DPI
	if opts.dpi > 0 {
		dpi = opts.dpi
	}
	var background *style.Color
	if opts.background != "" {
		c, err := style.Palette(nil).Resolve(opts.background)
		if err != nil {
			return fmt.Errorf("--background: %w", err)
		}
		background = &c
	}

	tree, err := a.resolveFile(ctx, path, opts.layoutOpts)
	if err != nil {
		return err
	}
	list, err := display.Build(tree)
	if err != nil {
		return err
	}

	meta := tree.Meta
	r := canvasrenderer.NewRenderer(canvasrenderer.Options{
		Format:     format,
		DPI:        dpi,
		Background: background,
		Info: canvasrenderer.Info{
			Title:    meta.Title,
			Subject:  meta.Subject,
			Author:   meta.Author,
			Creator:  meta.Creator,
			Keywords: meta.Keywords,
		},
	})
	prog := newProgress(logger)
	data, err := r.Render(list)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "-" {
		_, err := a.stdout.Write(data)
		return err
	}
	if out == "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out = filepath.Join(a.cfg.Output.Dir, name+format.Extension())
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d rectangles to %s", len(list.Rectangles), out))
	return nil
}
