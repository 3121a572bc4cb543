package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/mirrorsync/internal/config"
	"github.com/agentstation/mirrorsync/internal/notion"
	"github.com/agentstation/mirrorsync/pkg/logging"
	"github.com/agentstation/mirrorsync/pkg/mapper"
	"github.com/agentstation/mirrorsync/pkg/syncer"
)

var (
	dryRun    bool
	rulesFile string
	pageSize  int
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass from Master to Mirror",
	Long: `Sync fetches the Mirror's live schema, indexes its pages by title, and
creates or updates one Mirror page per titled Master page. Reads NOTION_TOKEN,
MASTER_DB_ID and MIRROR_DB_ID from the environment (or a .env file).`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute the plan without writing")
	syncCmd.Flags().StringVar(&rulesFile, "renames", "", "YAML file with status rename/fallback rules")
	syncCmd.Flags().IntVar(&pageSize, "page-size", 0, "pages per query batch (default 100)")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var rules mapper.Rules
	if rulesFile != "" {
		if rules, err = mapper.LoadRules(rulesFile); err != nil {
			return err
		}
	}

	client := notion.NewClient(cfg.Token, notion.WithPageSize(pageSize))

	logging.Info().
		Str("master", notion.Obfuscate(cfg.MasterDB)).
		Str("mirror", notion.Obfuscate(cfg.MirrorDB)).
		Msg("Preflight")
	if err := client.Preflight(ctx, cfg.MasterDB, "master"); err != nil {
		return err
	}
	if err := client.Preflight(ctx, cfg.MirrorDB, "mirror"); err != nil {
		return err
	}

	s := syncer.New(client, cfg.MasterDB, cfg.MirrorDB,
		syncer.WithRules(rules),
		syncer.WithDryRun(dryRun))

	result, err := s.Run(ctx)
	if err != nil {
		return err
	}

	if result.HasWarnings() {
		logging.Warn().
			Strs("options", result.Warnings).
			Msg("Status options with no legal equivalent in Mirror were cleared")
	}
	logging.Info().Msg("Done. " + result.Summary())
	return nil
}
