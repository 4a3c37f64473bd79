// Package console holds the expense-share command tree, the artisan of this
// app.
package console

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// ExitError carries a process exit code out of a RunE handler.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "expense-share",
		Short:         "Expense sharing auth screens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")

	root.AddCommand(
		newServeCommand(&envFile),
		newValidateCommand(),
		newRoutesCommand(&envFile),
		newAboutCommand(&envFile),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure. Called by main.main().
func Execute() {
	err := NewRootCommand().Execute()
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(exitErr.Err.Error()))
		}
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
	os.Exit(1)
}

func envFiles(envFile string) []string {
	if envFile == "" {
		return nil
	}
	return []string{envFile}
}
