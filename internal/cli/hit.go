package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/flexgeo/display"
)

func newHitCmd(a *app) *cobra.Command {
	var opts layoutOpts
	var all bool

	cmd := &cobra.Command{
		Use:   "hit [file] [x] [y]",
		Short: "Print the box under a point, topmost first",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord(args[1])
			if err != nil {
				return err
			}
			y, err := parseCoord(args[2])
			if err != nil {
				return err
			}
			tree, err := a.resolveFile(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			list, err := display.Build(tree)
			if err != nil {
				return err
			}

			hits := list.HitTestAll(x, y)
			if len(hits) == 0 {
				return fmt.Errorf("(%g, %g) 不在任何 box 内", x, y)
			}
			if !all {
				hits = hits[:1]
			}
			for _, r := range hits {
				b := r.Bounds
				fmt.Fprintf(a.stdout, "%s\t%s\t%g,%g %gx%g\n", r.Path, r.Tag, b.X, b.Y, b.Width, b.Height)
			}
			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every box under the point, not just the topmost")
	return cmd
}
