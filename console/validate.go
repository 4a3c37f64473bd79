package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/km-arc/expense-share/screens"
)

var errInvalidForm = errors.New("form is invalid")

func newValidateCommand() *cobra.Command {
	var magicLink bool

	cmd := &cobra.Command{
		Use:   "validate login|signup [field=value ...]",
		Short: "Fill a form from arguments and submit it",
		Long: `Fill a login or sign-up form from field=value arguments and submit it.
Values are taken as-is, surrounding spaces included. The exit status is 2
when the form does not validate.

  expense-share validate login email=ada@example.com password=x
  expense-share validate login --magic-link email=ada@example.com
  expense-share validate signup firstName=Ada country=Australia ...`,
		ValidArgs: []string{string(screens.KindLogin), string(screens.KindSignUp)},
		Args:      cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := screens.ParseKind(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q (want login or signup)", err, args[0])
			}
			return validate(cmd.OutOrStdout(), kind, args[1:], magicLink)
		},
	}
	cmd.Flags().BoolVar(&magicLink, "magic-link", false, "send a magic link instead of signing in (login only)")
	return cmd
}

func validate(out io.Writer, kind screens.Kind, pairs []string, magicLink bool) error {
	rec := &screens.Recorder{}
	s, err := screens.New(kind, rec, rec, nil)
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("argument %q is not field=value", pair)
		}
		if !s.Form().Has(name) {
			return fmt.Errorf("unknown field %q, want one of %s", name, strings.Join(s.Form().Fields(), ", "))
		}
		s.SetField(name, value)
	}

	var valid bool
	switch {
	case magicLink:
		login, isLogin := s.(*screens.Login)
		if !isLogin {
			return fmt.Errorf("%w: --magic-link needs the login form", screens.ErrUnsupported)
		}
		valid = login.SendMagicLink()
	default:
		valid = s.Submit()
	}

	fmt.Fprintln(out, titleStyle.Render(strings.ToUpper(string(kind))))
	errs := s.Form().Errors()
	for _, name := range s.Form().Fields() {
		if msg := errs.First(name); msg != "" {
			fmt.Fprintf(out, "%s %s: %s\n", errorStyle.Render("✗"), fieldStyle.Render(name), msg)
		}
	}
	for _, a := range rec.Drain().Alerts {
		style := successStyle
		if a.Title == screens.TitleError {
			style = errorStyle
		}
		fmt.Fprintf(out, "%s %s\n", style.Render(a.Title+":"), a.Message)
	}

	if !valid {
		return &ExitError{Code: 2, Err: errInvalidForm}
	}
	fmt.Fprintln(out, mutedStyle.Render("ok"))
	return nil
}
