package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"timetable/internal/bootstrap"
	"timetable/internal/platform/config"
	"timetable/internal/platform/logging"
)

type rootOptions struct {
	dataPath string
	stateDir string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "timetable",
		Short:         "Conference timetable browser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataPath, "data", "", "dataset file (YAML or JSON); empty uses the bundled dataset")
	root.PersistentFlags().StringVar(&opts.stateDir, "state", ".", "directory holding .timetable/ state")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newDaysCmd(opts))
	root.AddCommand(newGridCmd(opts))
	root.AddCommand(newSessionsCmd(opts))
	root.AddCommand(newToggleCmd(opts))
	root.AddCommand(newSelectDateCmd(opts))
	root.AddCommand(newClearCmd(opts))
	root.AddCommand(newSelectedCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newOpenCmd(opts))
	return root
}

// loadApp wires the application. logToFile sends logs to the state log file
// instead of stderr.
func loadApp(ctx context.Context, opts *rootOptions, logToFile bool) (*bootstrap.App, error) {
	cfg, err := config.New(opts.dataPath, opts.stateDir)
	if err != nil {
		return nil, err
	}
	logPath := ""
	if logToFile {
		logPath = cfg.LogPath
	}
	logger, err := logging.New(opts.logLevel, logPath)
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return app, nil
}

// withApp runs fn against a freshly wired application and closes it after.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App, w io.Writer) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := loadApp(ctx, opts, false)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(ctx, app, cmd.OutOrStdout())
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive timetable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), opts, true)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newDaysCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List conference days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App, w io.Writer) error {
				days, err := app.ScheduleCLI.Days(ctx)
				if err != nil {
					return err
				}
				selected := app.SelectionCLI.State(ctx).SelectedDate
				for _, d := range days {
					marker := " "
					if d.Date == selected {
						marker = "*"
					}
					_, _ = fmt.Fprintf(w, "%s %s\t%s\n", marker, d.Date, d.DisplayName)
				}
				return nil
			})
		},
	}
}

func newGridCmd(opts *rootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the session grid of a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App, w io.Writer) error {
				if date == "" {
					date = app.SelectionCLI.State(ctx).SelectedDate
				}
				grid, err := app.ScheduleCLI.Grid(ctx, date)
				if err != nil {
					return err
				}
				names := make([]string, len(grid.Venues))
				for i, v := range grid.Venues {
					names[i] = v.Name
				}
				_, _ = fmt.Fprintf(w, "%s %s\n", grid.Date, grid.DisplayName)
				_, _ = fmt.Fprintf(w, "slots %s..%s (%d)  venues %s\n",
					first(grid.TimeSlots), last(grid.TimeSlots), len(grid.TimeSlots), strings.Join(names, ", "))
				if len(grid.Cells) == 0 {
					_, _ = fmt.Fprintln(w, "no sessions")
					return nil
				}
				for _, c := range grid.Cells {
					_, _ = fmt.Fprintf(w, "row=%d span=%d %s %s-%s %s\n",
						c.Row, c.Span, c.Session.VenueName, c.Session.StartTime, c.Session.EndTime, c.Session.Title)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to print (default: selected day)")
	return cmd
}

func newSessionsCmd(opts *rootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List sessions of a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App, w io.Writer) error {
				state := app.SelectionCLI.State(ctx)
				if date == "" {
					date = state.SelectedDate
				}
				sessions, err := app.ScheduleCLI.ListSessions(ctx, date)
				if err != nil {
					return err
				}
				if len(sessions) == 0 {
					_, _ = fmt.Fprintln(w, "no sessions")
					return nil
				}
				for _, s := range sessions {
					marker := "[ ]"
					if state.Has(s.ID) {
						marker = "[x]"
					}
					_, _ = fmt.Fprintf(w, "%s %s\t%s-%s\t%s\t[%s] %s\n",
						marker, s.ID, s.StartTime, s.EndTime, s.VenueName, s.SessionType, s.Title)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to list (default: selected day)")
	return cmd
}

func newToggleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <session-id>...",
		Short: "Check or uncheck sessions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App, w io.Writer) error {
				for _, id := range args {
					if _, err := app.ScheduleCLI.GetSession(ctx, id); err != nil {
						return err
					}
				}
				for _, id := range args {
					state := app.SelectionCLI.Toggle(ctx, id)
					_, _ = fmt.Fprintf(w, "%s checked=%t\n", id, state.Has(id))
				}
				return nil
			})
		},
	}
}

func newSelectDateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select-date <date>",
		Short: "Select the active conference day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App, w io.Writer) error {
				state := app.SelectionCLI.SelectDate(ctx, args[0])
				_, _ = fmt.Fprintf(w, "selected %s\n", state.SelectedDate)
				return nil
			})
		},
	}
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Uncheck every session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App, w io.Writer) error {
				app.SelectionCLI.Clear(ctx)
				_, _ = fmt.Fprintln(w, "selection cleared")
				return nil
			})
		},
	}
}

func newSelectedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "selected",
		Short: "List checked sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App, w io.Writer) error {
				state := app.SelectionCLI.State(ctx)
				if state.Count() == 0 {
					_, _ = fmt.Fprintln(w, "no sessions selected")
					return nil
				}
				for _, id := range state.CheckedIDs {
					s, err := app.ScheduleCLI.GetSession(ctx, id)
					if err != nil {
						_, _ = fmt.Fprintf(w, "%s\t(unknown session)\n", id)
						continue
					}
					_, _ = fmt.Fprintf(w, "%s\t%s %s-%s\t%s\n", s.ID, s.Date, s.StartTime, s.EndTime, s.Title)
				}
				return nil
			})
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var outPath string
	var toStdout bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy checked sessions to the clipboard, print them, or write a note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App, w io.Writer) error {
				checked := app.SelectionCLI.State(ctx).CheckedIDs
				switch {
				case outPath != "":
					out, err := app.ExportCLI.WriteFile(ctx, outPath, checked)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(w, "wrote %d sessions to %s\n", out.Count, out.Path)
				case toStdout:
					out, err := app.ExportCLI.Preview(ctx, checked)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprint(w, out.Text)
				default:
					out, err := app.ExportCLI.Copy(ctx, checked)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(w, "copied %d sessions (%s)\n", out.Count, strings.Join(out.Dates, ", "))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write the export into a markdown file")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the export instead of copying it")
	return cmd
}

func newOpenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open <session-id>",
		Short: "Open a session's detail page in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App, w io.Writer) error {
				out, err := app.ScheduleCLI.OpenURL(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "opened %s\n", out.URL)
				return nil
			})
		},
	}
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

func last(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[len(items)-1]
}
