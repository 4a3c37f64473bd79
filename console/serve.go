package console

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	routes "github.com/km-arc/expense-share/app"
	"github.com/km-arc/expense-share/framework/app"
)

func newServeCommand(envFile *string) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the screens over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, *envFile, port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides APP_PORT)")
	return cmd
}

func serve(ctx context.Context, envFile, port string) error {
	application := app.New(envFiles(envFile)...)
	application.Register(&routes.RouteServiceProvider{})
	if port != "" {
		application.Config().App.Port = port
	}
	return application.Run(ctx)
}
