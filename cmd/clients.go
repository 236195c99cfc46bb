package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/sells-group/intake-cli/internal/answers"
	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/schema"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage intake clients",
	Long:  "Commands for listing, creating, inspecting, and deleting client questionnaire records.",
}

// -- clients list --

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients, most recent first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		entries, err := st.ListClients(ctx)
		if err != nil {
			return eris.Wrap(err, "clients list")
		}

		query, _ := cmd.Flags().GetString("search")
		if query != "" {
			entries = filterByName(entries, query)
		}

		if len(entries) == 0 {
			fmt.Fprintln(os.Stderr, "No clients found.")
			return nil
		}

		formatClientList(os.Stdout, entries)
		return nil
	},
}

// filterByName keeps entries whose name contains query, folding case
// and diacritics so "jose" matches "José".
func filterByName(entries []model.IndexEntry, query string) []model.IndexEntry {
	m := search.New(language.Und, search.IgnoreCase, search.IgnoreDiacritics)
	var out []model.IndexEntry
	for _, e := range entries {
		if start, _ := m.IndexString(e.Name, query); start >= 0 {
			out = append(out, e)
		}
	}
	return out
}

func formatClientList(out io.Writer, entries []model.IndexEntry) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCREATED\tUPDATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.ID, e.Name,
			time.UnixMilli(e.CreatedAt).Format("2006-01-02"),
			time.UnixMilli(e.UpdatedAt).Format("2006-01-02 15:04"),
		)
	}
	w.Flush()
}

// -- clients create --

var clientsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		id, rec, err := st.CreateClient(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "clients create")
		}

		fmt.Printf("Created client %s (%s)\n", rec.ClientName, id)
		return nil
	},
}

// -- clients show --

var clientsShowCmd = &cobra.Command{
	Use:   "show <client-id>",
	Short: "Show a client record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rec, err := st.GetClient(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "clients show")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	},
}

// -- clients progress --

var clientsProgressCmd = &cobra.Command{
	Use:   "progress <client-id>",
	Short: "Show questionnaire completion for a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rec, err := st.GetClient(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "clients progress")
		}

		formatProgress(os.Stdout, rec)
		return nil
	},
}

func formatProgress(out io.Writer, rec *model.ClientRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUESTIONNAIRE\tANSWERED\tTOTAL\tPERCENT\tNEXT UNANSWERED")
	for _, s := range []*schema.Schema{schema.IPS(), schema.CPS()} {
		next := "-"
		if qid, found := answers.FirstUnanswered(s, rec.Answers); found {
			next = qid
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\t%s\n",
			s.Name,
			answers.Answered(s, rec.Answers),
			s.QuestionCount(),
			answers.Progress(s, rec.Answers),
			next,
		)
	}
	w.Flush()
}

// -- clients delete --

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete <client-id>",
	Short: "Delete a client record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.DeleteClient(ctx, args[0]); err != nil {
			return eris.Wrap(err, "clients delete")
		}

		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	clientsListCmd.Flags().String("search", "", "filter clients by name (case and accent insensitive)")

	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsCreateCmd)
	clientsCmd.AddCommand(clientsShowCmd)
	clientsCmd.AddCommand(clientsProgressCmd)
	clientsCmd.AddCommand(clientsDeleteCmd)
	rootCmd.AddCommand(clientsCmd)
}
