package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"photospro/internal/config"
	"photospro/internal/notify"
	"photospro/internal/persist"
	"photospro/internal/records"
	"photospro/internal/service"
	"photospro/internal/storage"
	"photospro/internal/store"
)

// app holds the state shared by every subcommand.
type app struct {
	dbPath string
	db     *sql.DB
	store  *store.Store
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "studioctl",
		Short: "Inspect and maintain the PhotosPro studio database",
		Long: `studioctl reads and edits the local PhotosPro database directly.

Do not run it against a database the API server is writing to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "path to the SQLite database (default DB_PATH)")

	root.AddCommand(
		newListCmd(a),
		newDeleteCmd(a),
		newResetCmd(a),
		newExportCmd(a),
	)
	return root
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "list <kind>",
		Short:     "Print every record of one kind as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := records.ParseKind(args[0])
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), snapshot(s)[kind])
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <kind> <id>",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := records.ParseKind(args[0])
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid record ID: %w", err)
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			found, err := deleteRecord(cmd.Context(), s, kind, id)
			if err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s record with ID %s\n", kind.Path(), id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", kind.Path(), id)
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase every record and turn off reminders",
		Long:  `Empties all five collections and disables the daily reminder. This cannot be undone.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset erases all data; pass --yes to confirm")
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			scheduler := notify.NewDailyScheduler(notify.DailyOptions{})
			settings := service.NewSettingsService(storage.NewPreferenceRepo(a.db), scheduler, s)
			if err := settings.ResetAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All records erased")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm that all data should be erased")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print all collections as one JSON object keyed by collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			out := make(map[string]any, len(records.Kinds()))
			for kind, items := range snapshot(s) {
				out[kind.Key()] = items
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

// open opens the database and loads the store on first use.
func (a *app) open(ctx context.Context) (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	path := a.dbPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		path = cfg.DBPath
	}

	db, err := storage.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	a.db = db
	a.store = store.New(ctx, persist.NewAdapter(storage.NewBlobRepo(db)), store.Options{})
	return a.store, nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db, a.store = nil, nil
	return err
}

func snapshot(s *store.Store) map[records.Kind]any {
	return map[records.Kind]any{
		records.KindPortfolio: s.Portfolio().List(),
		records.KindSessions:  s.Sessions().List(),
		records.KindClients:   s.Clients().List(),
		records.KindTasks:     s.Tasks().List(),
		records.KindFinances:  s.Finances().List(),
	}
}

func deleteRecord(ctx context.Context, s *store.Store, kind records.Kind, id uuid.UUID) (bool, error) {
	switch kind {
	case records.KindPortfolio:
		return deleteFrom(ctx, s.Portfolio(), id)
	case records.KindSessions:
		return deleteFrom(ctx, s.Sessions(), id)
	case records.KindClients:
		return deleteFrom(ctx, s.Clients(), id)
	case records.KindTasks:
		return deleteFrom(ctx, s.Tasks(), id)
	case records.KindFinances:
		return deleteFrom(ctx, s.Finances(), id)
	}
	return false, fmt.Errorf("unknown record kind %q", kind)
}

func deleteFrom[T records.Record](ctx context.Context, c *store.Collection[T], id uuid.UUID) (bool, error) {
	if _, ok := c.Get(id); !ok {
		return false, nil
	}
	return true, c.Delete(ctx, id)
}

func kindArgs() []string {
	var out []string
	for _, k := range records.Kinds() {
		out = append(out, k.Path())
	}
	return out
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
