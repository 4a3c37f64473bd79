package console

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	routes "github.com/km-arc/expense-share/app"
	"github.com/km-arc/expense-share/framework/app"
)

// newAboutCommand mirrors `php artisan about`: environment and what the
// container holds once the app has booted.
func newAboutCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show the application environment and container bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application := app.New(envFiles(*envFile)...)
			application.Register(&routes.RouteServiceProvider{})
			application.Boot()

			cfg := application.Config()
			out := cmd.OutOrStdout()
			row := func(k, v string) {
				fmt.Fprintf(out, "  %s %s\n", mutedStyle.Render(fmt.Sprintf("%-16s", k)), v)
			}

			fmt.Fprintln(out, titleStyle.Render("Environment"))
			row("Name", cfg.App.Name)
			row("Environment", application.Environment())
			row("Debug", fmt.Sprint(application.IsDebug()))
			row("URL", cfg.App.URL+":"+cfg.App.Port)
			row("Log", cfg.Log.Level+" ("+cfg.Log.Format+")")
			row("Screen capacity", fmt.Sprint(cfg.Screens.Capacity))

			fmt.Fprintln(out, titleStyle.Render("Container"))
			row("Bindings", strings.Join(application.Bindings(), ", "))
			row("Providers", fmt.Sprint(len(application.Providers.Providers())))
			return nil
		},
	}
}
