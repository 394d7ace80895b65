package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"unitconv/internal/app"
	"unitconv/internal/catalog"
	"unitconv/internal/history"
	"unitconv/internal/session"
)

const interactiveHelp = `Commands:
  category <name>     switch category (units reset to its first two)
  from <unit>         set the source unit
  to <unit>           set the target unit
  value <number>      edit the input value
  converted <number>  edit the converted value
  show                print the current conversion
  units               list units of the current category
  categories          list categories
  history             list recorded conversions
  export [file]       write history as CSV (stdout when no file)
  help                show this help
  quit                leave
`

// interactive: one session, one event per input line.
func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Run an interactive conversion session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), appCtx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

type repl struct {
	sess    *session.Controller
	app     *app.App
	history history.Log
	out     io.Writer
}

func runInteractive(ctx context.Context, a *app.App, in io.Reader, out io.Writer) error {
	r := &repl{sess: a.NewSession(), app: a, out: out}
	if err := r.sess.Start(ctx); err != nil {
		return err
	}
	r.record()
	fmt.Fprintf(out, "Category: %s (edit mode: %s). Type help for commands.\n", r.sess.State().Category, r.sess.Mode())
	r.show()

	lines, scanErr := readLines(ctx, in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out)
			return <-scanErr
		}
		quit, err := r.handle(ctx, line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// readLines scans in on its own goroutine so a blocked read does not hold
// up cancellation. lines is closed at EOF or once ctx is done, after the
// scanner error has been sent on the returned error channel.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		defer func() {
			errc <- sc.Err()
			close(lines)
		}()
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines, errc
}

// handle runs one input line and reports whether the session should end.
func (r *repl) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	verb, rest := strings.ToLower(fields[0]), strings.Join(fields[1:], " ")

	var ev session.Event
	switch verb {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprint(r.out, interactiveHelp)
		return false, nil
	case "show":
		r.show()
		return false, nil
	case "units":
		fmt.Fprintln(r.out, strings.Join(r.sess.Units(), ", "))
		return false, nil
	case "categories":
		fmt.Fprintln(r.out, strings.Join(catalog.ListCategories(), ", "))
		return false, nil
	case "history":
		for i, e := range r.history.Entries() {
			fmt.Fprintf(r.out, "%d. %s\n", i+1, r.app.Printer.Tuple(e.State))
		}
		return false, nil
	case "export":
		return false, r.export(rest)
	case "category", "cat":
		ev = session.CategoryChanged{Category: rest}
	case "from":
		ev = session.FromUnitChanged{Unit: rest}
	case "to":
		ev = session.ToUnitChanged{Unit: rest}
	case "value", "v":
		f, err := parseNumber(rest)
		if err != nil {
			return false, err
		}
		ev = session.InputEdited{Value: f}
	case "converted", "c":
		f, err := parseNumber(rest)
		if err != nil {
			return false, err
		}
		ev = session.ConvertedEdited{Value: f}
	default:
		return false, fmt.Errorf("unknown command %q (type help)", fields[0])
	}

	if _, err := r.sess.Apply(ctx, ev); err != nil {
		return false, err
	}
	r.record()
	r.show()
	return false, nil
}

func (r *repl) record() { r.history.Append(r.sess.Snapshot()) }

func (r *repl) show() {
	_ = r.app.Printer.WriteState(r.out, r.sess.State())
}

func (r *repl) export(path string) error {
	if path == "" {
		return r.history.WriteCSV(r.out)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.history.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Exported %d rows to %s\n", r.history.Len(), path)
	return nil
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}
