package console

import (
	"fmt"

	"github.com/spf13/cobra"

	routes "github.com/km-arc/expense-share/app"
	"github.com/km-arc/expense-share/framework/app"
)

func newRoutesCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the registered HTTP routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application := app.New(envFiles(*envFile)...)
			application.Register(&routes.RouteServiceProvider{})
			application.Boot()

			table, err := application.Router().Routes()
			if err != nil {
				return fmt.Errorf("walk routes: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, r := range table {
				fmt.Fprintf(out, "%s %s\n", fieldStyle.Render(fmt.Sprintf("%-7s", r.Method)), r.Pattern)
			}
			return nil
		},
	}
}
