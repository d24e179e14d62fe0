package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/h0rv/agendactl/internal/fakeapi"
	"github.com/h0rv/agendactl/internal/gql"
	"github.com/h0rv/agendactl/internal/tui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const demoOrganizationID = "org-demo"

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the TUI against a seeded in-memory backend",
		Long: `demo starts an in-memory agenda API on a local port, fills it with a
small organization and opens the TUI on it. Nothing is persisted.

With --event set to any value, the TUI opens on the seeded event.`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	srv := fakeapi.New()
	srv.Seed(demoOrganizationID)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("demo backend stopped")
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	endpoint := "http://" + ln.Addr().String() + fakeapi.Path
	log.Info().Str("endpoint", endpoint).Msg("demo backend listening")

	opts := tui.Options{
		OrganizationID: demoOrganizationID,
		WebURL:         cfg.WebURL,
	}
	if eventFlag != "" {
		opts.EventID = fakeapi.DemoEventID
		opts.EventTitle = "Spring Summit"
	}

	client := gql.NewWithToken(endpoint, "", cfg.Timeout())
	return runTUI(cmd.Context(), client, opts)
}
