package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/intake-cli/internal/export"
	"github.com/sells-group/intake-cli/pkg/anthropic"
)

var (
	generateDoc string
	generateOut string
)

const generateSystemPrompt = "You are an experienced investment advisor representative. " +
	"Draft formal client documents exactly as instructed, using only the intake data provided."

var generateCmd = &cobra.Command{
	Use:   "generate <client-id>",
	Short: "Draft an IPS or CPS document from intake data",
	Long: "Builds the generation prompt for a client and sends it to the " +
		"Anthropic API, writing the drafted document to a file or stdout.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		doc := strings.ToUpper(generateDoc)
		if doc != "IPS" && doc != "CPS" {
			return eris.Errorf("generate: unknown document type %q (want ips or cps)", generateDoc)
		}
		if cfg.Anthropic.Key == "" {
			return eris.New("generate: INTAKE_ANTHROPIC_KEY is not set")
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rec, err := st.GetClient(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "generate")
		}

		prompt := export.BuildFor(doc, rec)

		client := anthropic.NewClient(cfg.Anthropic.Key)
		zap.L().Info("drafting document",
			zap.String("type", doc),
			zap.String("client", rec.ClientName),
			zap.String("model", cfg.Anthropic.Model),
		)

		resp, err := client.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     cfg.Anthropic.Model,
			MaxTokens: int64(cfg.Anthropic.MaxTokens),
			System:    generateSystemPrompt,
			Prompt:    prompt,
		})
		if err != nil {
			return err
		}
		resp.Usage.LogUsage(resp.Model)

		if generateOut == "-" {
			fmt.Println(resp.Text)
			return nil
		}

		out := generateOut
		if out == "" {
			out = fmt.Sprintf("%s_Draft_%s.txt", doc, export.SafeName(rec.ClientName))
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return eris.Wrap(err, "generate: create output dir")
		}
		if err := os.WriteFile(out, []byte(resp.Text), 0o644); err != nil {
			return eris.Wrap(err, "generate: write draft")
		}

		fmt.Printf("Wrote %s draft to %s\n", doc, out)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateDoc, "type", "ips", "document type: ips or cps")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output file (\"-\" for stdout)")
	rootCmd.AddCommand(generateCmd)
}
