package cli

import (
	"github.com/spf13/cobra"

	"github.com/ByLCY/flexgeo/layout"
)

func newLayoutCmd(a *app) *cobra.Command {
	var opts layoutOpts
	var output string

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Resolve a document and print every box as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.resolveFile(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if output != "" {
				return layout.WriteDebugJSON(tree, output)
			}
			return layout.EncodeDebug(a.stdout, tree)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to a file instead of stdout")
	return cmd
}
