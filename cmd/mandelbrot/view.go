package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/progressive-mandelbrot/pkg/render"
)

func viewCmd(opts *options) *cobra.Command {
	var stepInterval, presentInterval time.Duration

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch the set sharpen in the terminal",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			e, err := opts.engine(cmd.Flags())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			term, err := render.NewTerminal(cancel)
			if err != nil {
				return err
			}
			defer term.Close()

			d := render.Driver{
				Source:          e,
				Presenter:       term,
				StepInterval:    stepInterval,
				PresentInterval: presentInterval,
			}
			err = d.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if err != nil {
				return err
			}

			// Keep the settled picture up until the user quits.
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().DurationVar(&stepInterval, "step-interval", 0, "pause between iterations, 0 to iterate continuously")
	cmd.Flags().DurationVar(&presentInterval, "present-interval", render.DefaultPresentInterval, "pause between redraws")

	return cmd
}
