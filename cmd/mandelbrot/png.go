package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/willbeason/progressive-mandelbrot/pkg/render"
)

func pngCmd(opts *options) *cobra.Command {
	out := &render.PNG{}

	cmd := &cobra.Command{
		Use:   "png",
		Short: "Iterate until settled and write the result as a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			e, err := opts.engine(cmd.Flags())
			if err != nil {
				return err
			}

			log.Printf("rendering %dx%d over %v, up to %d iterations",
				opts.width, opts.height, e.Config().Window, opts.maxIterations)

			d := render.Driver{
				Source:    e,
				Presenter: out,
				Logger:    log.Default(),
			}
			err = d.Run(cmd.Context())
			if err != nil {
				return err
			}

			for _, path := range out.Written {
				log.Printf("saved %q", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out.Dir, "out", "out", "directory to write images to")
	cmd.Flags().BoolVar(&out.EveryFrame, "every-frame", false, "write every presented frame, not only the settled one")

	return cmd
}
