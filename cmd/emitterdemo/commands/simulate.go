package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Mig-uel/event-emitter-demo/internal/app"
	"github.com/Mig-uel/event-emitter-demo/runtime"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

func simulateCmd(opts *options) *cobra.Command {
	var frames bool

	cmd := &cobra.Command{
		Use:   "simulate ACTION...",
		Short: "Click the child's buttons and report both counters",
		Long: "Each ACTION is increment (inc, +) or decrement (dec, -). " +
			"The actions run in order, then the parent and child counters are printed.",
		Example: "  emitterdemo simulate inc dec dec",
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := app.ParseActions(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var mounter runtime.Mounter = &vdom.HTMLMounter{W: io.Discard}
			if frames {
				mounter = &vdom.HTMLMounter{W: out}
			}

			s, err := app.NewSession(opts.cfg, opts.logger, mounter)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Run(actions, nil); err != nil {
				return err
			}

			childCount, err := s.ChildCount()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "parent=%d child=%d\n", s.Count(), childCount)
			return nil
		},
	}
	addTreeFlags(cmd, opts)
	cmd.Flags().BoolVar(&frames, "frames", false, "print the HTML after every render")
	return cmd
}
