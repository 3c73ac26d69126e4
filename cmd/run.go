package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dafoma/lingualearn/internal/app"
	"github.com/dafoma/lingualearn/internal/config"
	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/remote"
	"github.com/dafoma/lingualearn/internal/store"
)

// openService opens the store and loads the data service.
func openService(cmd *cobra.Command) (*data.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	svc, err := data.NewService(context.Background(), st)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load data: %w", err)
	}
	return svc, st, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Config not fully loaded:", err)
		cfg = config.Config{RemoteLatencyScale: 1.0, Username: "You"}
	}

	svc, st, err := openService(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if svc.Username(cmd.Context(), "") == "" && cfg.Username != "" {
		if err := svc.SetUsername(context.Background(), cfg.Username); err != nil {
			fmt.Fprintln(os.Stderr, "Could not save username:", err)
		}
	}

	client := remote.NewClient(remote.Config{LatencyScale: cfg.RemoteLatencyScale})

	return app.Run(app.Options{
		Service: svc,
		Client:  client,
	})
}
