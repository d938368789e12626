package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/closespark/stackscanner/internal/db"
	"github.com/closespark/stackscanner/internal/fetch"
	"github.com/closespark/stackscanner/internal/llm"
	"github.com/closespark/stackscanner/internal/outreach"
	"github.com/closespark/stackscanner/internal/rewrite"
)

var previewCmd = &cobra.Command{
	Use:   "preview <domain>",
	Short: "Compose a persona outreach email for a domain",
	Long:  "Composes the persona outreach email that would be sent to a domain for a given main technology, rotating personas and suppressing variants already used for that domain, with an optional LLM polish pass.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var (
	previewConfigPath string
	previewOut        string
	previewTech       string
	previewSupporting []string
	previewFrom       string
	previewRewrite    bool
	previewRecord     bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewConfigPath, "config", "c", "", "Path to JSON config file")
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "Write the JSON email to file instead of stdout")
	previewCmd.Flags().StringVarP(&previewTech, "tech", "t", "", "Main technology to pitch (required)")
	previewCmd.Flags().StringSliceVar(&previewSupporting, "supporting", nil, "Supporting technologies to mention")
	previewCmd.Flags().StringVar(&previewFrom, "from", "", "Sender address (overrides persona rotation)")
	previewCmd.Flags().BoolVar(&previewRewrite, "rewrite", false, "Polish the email with the configured LLM")
	previewCmd.Flags().BoolVar(&previewRecord, "record", false, "Record the variant and persona in the domain's outreach history")

	if err := previewCmd.MarkFlagRequired("tech"); err != nil {
		panic(fmt.Sprintf("failed to mark tech flag as required: %v", err))
	}

	rootCmd.AddCommand(previewCmd)
}

// previewResult is the composed email plus rewrite metadata.
type previewResult struct {
	outreach.PersonaEmail
	Rewrite rewrite.Meta `json:"rewrite"`
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(previewConfigPath)
	if err != nil {
		return err
	}

	domain := fetch.CleanDomain(args[0])

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var store *db.DB
	history := &outreach.DomainHistory{}
	if cfg.DatabaseURL != "" {
		store, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			return err
		}
		history, err = store.GetDomainHistory(ctx, domain)
		if err != nil {
			return err
		}
	}

	from := previewFrom
	if from == "" {
		from = outreach.UnusedPersona(cfg.PersonaAddresses(), history.UsedPersonas)
	}
	if from == "" {
		from = cfg.DefaultFrom()
	}

	composer := outreach.NewComposer(cfg.PersonaMap, cfg.ResolvedDefaultPersona(), cfg.Company, nil)
	email := composer.Compose(domain, previewTech, previewSupporting, from, history)

	result := previewResult{PersonaEmail: email}

	if previewRewrite {
		if cfg.APIKey == "" {
			return fmt.Errorf("--rewrite requires GEMINI_API_KEY or api_key in the config file")
		}
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return err
		}
		defer client.Close()

		r := rewrite.NewRewriter(client)
		result.Subject, result.Body, result.Rewrite = r.Rewrite(ctx, email.Subject, email.Body, rewrite.Context{
			"domain":           domain,
			"main_tech":        previewTech,
			"supporting_techs": strings.Join(previewSupporting, ", "),
			"persona_name":     email.Persona,
			"persona_role":     email.PersonaRole,
		})
	}

	if previewRecord {
		if store == nil {
			return fmt.Errorf("--record requires DATABASE_URL or database_url in the config file")
		}
		if err := store.RecordOutreach(ctx, domain, email.VariantID, from); err != nil {
			return err
		}
	}

	return writeJSON(result, previewOut)
}
