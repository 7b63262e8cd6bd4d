package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Progressively render the Mandelbrot set",
		Long: `Renders the Mandelbrot set one iteration at a time, so the picture sharpens
while it is computed. Points inside the main cardioid and the period-2 bulb
are filled in immediately.`,
		Args: cobra.ExactArgs(0),
	}

	opts := &options{}
	opts.register(cmd.PersistentFlags())

	cmd.AddCommand(
		pngCmd(opts),
		viewCmd(opts),
		serveCmd(opts),
		watchCmd(),
	)

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		stop()
		os.Exit(1)
	}
}
