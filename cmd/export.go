package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/intake-cli/internal/export"
	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/store"
)

var (
	exportOutDir string
	exportXLSX   bool
	exportAll    bool
)

var exportCmd = &cobra.Command{
	Use:   "export [client-id]",
	Short: "Export questionnaire data for document generation",
	Long: "Writes the IPS and CPS generation prompts plus a raw JSON backup " +
		"for one client, or for every client with --all. Add --xlsx for a " +
		"spreadsheet rendering.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if exportAll {
			return exportAllClients(cmd, st)
		}
		if len(args) == 0 {
			return eris.New("export: client id required (or --all)")
		}

		rec, err := st.GetClient(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "export")
		}
		return exportClient(rec)
	},
}

func exportAllClients(cmd *cobra.Command, st store.Store) error {
	ctx := cmd.Context()

	entries, err := st.ListClients(ctx)
	if err != nil {
		return eris.Wrap(err, "export: list clients")
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No clients to export.")
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, e := range entries {
		g.Go(func() error {
			rec, err := st.GetClient(ctx, e.ID)
			if err != nil {
				return eris.Wrapf(err, "export: client %s", e.ID)
			}
			return exportClient(rec)
		})
	}
	return g.Wait()
}

// exportClient writes the export files for one record. File names follow
// the questionnaire frontend's download names.
func exportClient(rec *model.ClientRecord) error {
	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return eris.Wrap(err, "export: create output dir")
	}

	safe := export.SafeName(rec.ClientName)

	files := map[string][]byte{
		fmt.Sprintf("IPS_LLM_%s.txt", safe): []byte(export.BuildIPS(rec)),
		fmt.Sprintf("CPS_LLM_%s.txt", safe): []byte(export.BuildCPS(rec)),
	}

	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal record")
	}
	files[fmt.Sprintf("Client_Data_%s.json", safe)] = raw

	for name, data := range files {
		path := filepath.Join(exportOutDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return eris.Wrapf(err, "export: write %s", name)
		}
		zap.L().Info("exported", zap.String("file", path))
	}

	if exportXLSX {
		path := filepath.Join(exportOutDir, fmt.Sprintf("Client_Data_%s.xlsx", safe))
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrap(err, "export: create workbook file")
		}
		defer f.Close()
		if err := export.WriteWorkbook(f, rec); err != nil {
			return err
		}
		zap.L().Info("exported", zap.String("file", path))
	}

	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportOutDir, "out", ".", "output directory")
	exportCmd.Flags().BoolVar(&exportXLSX, "xlsx", false, "also write an XLSX workbook")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every client")
	rootCmd.AddCommand(exportCmd)
}
