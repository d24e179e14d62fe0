package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/agendactl/internal/config"
	"github.com/h0rv/agendactl/internal/gql"
	"github.com/h0rv/agendactl/internal/logging"
	"github.com/h0rv/agendactl/internal/tui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// CLI flags
	orgFlag      string
	eventFlag    string
	configFlag   string
	endpointFlag string
	debugFlag    bool

	// Resolved in PersistentPreRunE
	cfg       config.Config
	logCloser io.Closer
)

var errNoOrganization = errors.New("no organization selected")

func main() {
	rootCmd := &cobra.Command{
		Use:   "agendactl",
		Short: "Terminal admin panel for organization agenda items",
		Long: `agendactl manages the agenda items of an organization from the terminal.

Browse, filter and sort agenda items, toggle their completion with a note,
create, update and delete them, and manage agenda item categories.

Configuration is read from $XDG_CONFIG_HOME/agendactl/config.yaml:
  endpoint: https://api.example.org/graphql
  organization_id: <id>
  token_command: "pass show agenda/token"
  web_url: https://admin.example.org

AGENDA_ENDPOINT, AGENDA_ORG_ID and AGENDA_TOKEN override the file.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
		RunE:              run,
	}

	// Define CLI flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&orgFlag, "org", "", "Organization ID. Overrides organization_id from the config.")
	flags.StringVar(&eventFlag, "event", "", "Event ID. Scopes the item list to one event.")
	flags.StringVar(&configFlag, "config", "", "Path to the config file.")
	flags.StringVar(&endpointFlag, "endpoint", "", "GraphQL endpoint URL. Overrides the config.")
	flags.BoolVar(&debugFlag, "debug", false, "Log at debug level.")

	rootCmd.AddCommand(newItemsCmd(), newCategoriesCmd(), newSectionsCmd(), newDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the config and starts logging for every command.
func setup(cmd *cobra.Command, args []string) error {
	path := configFlag
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if endpointFlag != "" {
		loaded.Endpoint = endpointFlag
	}
	if orgFlag != "" {
		loaded.OrganizationID = orgFlag
	}
	cfg = loaded

	closer, err := logging.Setup(cfg.LogFile, debugFlag)
	if err != nil {
		return err
	}
	logCloser = closer

	log.Debug().Str("command", cmd.CommandPath()).Str("endpoint", cfg.Endpoint).Msg("starting")
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logCloser != nil {
		_ = logCloser.Close()
	}
}

// newClient creates the GraphQL client from the resolved config.
func newClient() (*gql.Client, error) {
	client, err := gql.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

func organizationID() (string, error) {
	if cfg.OrganizationID == "" {
		return "", fmt.Errorf("%w: pass --org or set organization_id in the config", errNoOrganization)
	}
	return cfg.OrganizationID, nil
}

func run(cmd *cobra.Command, args []string) error {
	orgID, err := organizationID()
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	return runTUI(cmd.Context(), client, tui.Options{
		OrganizationID: orgID,
		EventID:        eventFlag,
		WebURL:         cfg.WebURL,
	})
}

func runTUI(ctx context.Context, client tui.API, opts tui.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	tui.ApplyColorProfile()
	app := tui.NewAppModel(client, ctx, opts)

	// Run Bubble Tea program
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}
