// Command smoke exercises the GraphQL client against a live endpoint using
// the regular config, printing what it finds. It changes nothing.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/h0rv/agendactl/internal/config"
	"github.com/h0rv/agendactl/internal/gql"
	"github.com/h0rv/agendactl/internal/logging"
	"github.com/h0rv/agendactl/internal/store"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Attach(os.Stderr, true)

	path, err := config.DefaultPath()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve config path")
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.OrganizationID == "" {
		log.Fatal().Msgf("set organization_id in %s or %s", path, config.EnvOrgID)
	}

	client, err := gql.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create client")
	}

	ctx := context.Background()

	categories, err := client.ListCategories(ctx, cfg.OrganizationID)
	if err != nil {
		log.Fatal().Err(err).Msg("categories")
	}
	fmt.Printf("Categories (%d):\n", len(categories))
	for _, c := range categories {
		state := ""
		if c.IsDisabled {
			state = " (disabled)"
		}
		fmt.Printf("  - %s%s ID=%s\n", c.Name, state, c.ID)
	}

	members, err := client.ListMembers(ctx, cfg.OrganizationID)
	if err != nil {
		log.Fatal().Err(err).Msg("members")
	}
	fmt.Printf("\nMembers (%d):\n", len(members))
	for _, m := range members {
		fmt.Printf("  - %s ID=%s\n", m.FullName(), m.ID)
	}

	// One query per status filter, newest first
	for _, status := range []store.StatusFilter{store.StatusAll, store.StatusActive, store.StatusCompleted} {
		var f store.Filter
		f.SetStatus(status)

		items, err := client.ListAgendaItems(ctx, f.Query(cfg.OrganizationID, ""))
		if err != nil {
			log.Fatal().Err(err).Str("status", status.String()).Msg("items")
		}
		fmt.Printf("\nItems, status %s (%d):\n", status, len(items))
		for _, it := range items {
			notes, _ := store.Truncate(it.PreCompletionNotes)
			fmt.Printf("  - %s [%s] %s due %s\n", it.Assignee.FullName(), it.Category.Name, notes, it.DueDate)
		}
	}
}
