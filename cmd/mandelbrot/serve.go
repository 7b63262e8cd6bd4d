package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/progressive-mandelbrot/pkg/render"
)

func serveCmd(opts *options) *cobra.Command {
	var (
		addr                          string
		stepInterval, presentInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream frames to websocket clients on /ws",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			e, err := opts.engine(cmd.Flags())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			stream := render.NewStream(log.Default())

			srv := &http.Server{
				Addr:              addr,
				Handler:           stream.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				log.Printf("listening on ws://%s/ws", addr)
				serveErr <- srv.ListenAndServe()
			}()

			d := render.Driver{
				Source:          e,
				Presenter:       stream,
				StepInterval:    stepInterval,
				PresentInterval: presentInterval,
				Logger:          log.Default(),
			}

			runErr := d.Run(ctx)
			if runErr == nil {
				log.Printf("settled after %d iterations; serving the final frame until interrupted", e.Iteration())
				select {
				case <-ctx.Done():
				case err := <-serveErr:
					return err
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}

			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				return runErr
			}
			if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().DurationVar(&stepInterval, "step-interval", 0, "pause between iterations, 0 to iterate continuously")
	cmd.Flags().DurationVar(&presentInterval, "present-interval", render.DefaultPresentInterval, "pause between broadcast frames")

	return cmd
}
