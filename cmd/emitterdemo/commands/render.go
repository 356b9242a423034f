package commands

import (
	"github.com/spf13/cobra"

	"github.com/Mig-uel/event-emitter-demo/internal/app"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

func renderCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the HTML of the initial component tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.NewSession(opts.cfg, opts.logger, &vdom.HTMLMounter{W: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			s.Close()
			return nil
		},
	}
	addTreeFlags(cmd, opts)
	return cmd
}
