package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/willbeason/progressive-mandelbrot/pkg/render"
)

func watchCmd() *cobra.Command {
	var url string
	out := &render.PNG{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow a stream served by the serve command",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			log.Printf("connecting to %s", url)
			err := render.Watch(cmd.Context(), url, func(f render.Frame) error {
				log.Printf("iteration %d: %v", f.Iteration, f.Counts)

				if out.Dir == "" {
					return nil
				}
				return out.Present(context.Background(), f)
			})
			if err != nil && !render.IsClosed(err) {
				return err
			}

			for _, path := range out.Written {
				log.Printf("saved %q", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "ws://localhost:8080/ws", "stream endpoint")
	cmd.Flags().StringVar(&out.Dir, "out", "", "directory to save the settled frame to, empty to skip")

	return cmd
}
