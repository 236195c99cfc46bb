package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/intake-cli/internal/answers"
	"github.com/sells-group/intake-cli/internal/autosave"
	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/schema"
)

var answerStdin bool

var clientsAnswerCmd = &cobra.Command{
	Use:   "answer <client-id> [question-id value]",
	Short: "Record answers for a client",
	Long: "Records a single answer, or with --stdin a stream of tab-separated " +
		"question-id/value lines. Edits are persisted through the debounced " +
		"autosaver, so a burst of lines coalesces into few store writes.",
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if !answerStdin && len(args) != 3 {
			return eris.New("answer: question id and value required (or --stdin)")
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rec, err := st.GetClient(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "answer")
		}

		saver := autosave.New(st, time.Duration(cfg.Autosave.DebounceMillis)*time.Millisecond)

		var applyErr error
		if answerStdin {
			applyErr = applyEditStream(saver, args[0], rec, cmd.InOrStdin())
		} else {
			applyErr = applyEdit(saver, args[0], rec, args[1], args[2])
		}

		if err := saver.Close(); err != nil {
			return err
		}
		if applyErr != nil {
			return applyErr
		}

		fmt.Printf("Saved answers for %s\n", rec.ClientName)
		return nil
	},
}

// questionIndex maps every IPS and CPS question id to its definition.
// The two schemas keep disjoint id namespaces.
func questionIndex() map[string]schema.Question {
	idx := schema.IPS().QuestionMap()
	for id, q := range schema.CPS().QuestionMap() {
		idx[id] = q
	}
	return idx
}

// applyEdit applies one edit to the in-memory record and queues an
// autosave for it.
func applyEdit(saver *autosave.Saver, id string, rec *model.ClientRecord, qid, value string) error {
	q, ok := questionIndex()[qid]
	if !ok {
		return eris.Errorf("answer: unknown question id %q", qid)
	}
	rec.Answers[qid] = editAnswer(q, rec.Answers[qid], value)
	saver.Queue(id, rec)
	return nil
}

// applyEditStream reads tab-separated question-id/value lines, applying
// each through applyEdit. Blank lines are skipped.
func applyEditStream(saver *autosave.Saver, id string, rec *model.ClientRecord, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		qid, value, ok := strings.Cut(line, "\t")
		if !ok {
			return eris.Errorf("answer: malformed line %q (want question-id<TAB>value)", line)
		}
		if err := applyEdit(saver, id, rec, qid, value); err != nil {
			return err
		}
	}
	return eris.Wrap(sc.Err(), "answer: read edits")
}

// editAnswer routes a value to the right mutation for the question type.
// For option questions a value matching an option toggles it; anything
// else lands in the follow-up free text. Checkval accepts "option=value"
// to select an option and record its balance in one edit.
func editAnswer(q schema.Question, a model.Answer, value string) model.Answer {
	switch q.Type {
	case schema.TypeCombo:
		if slices.Contains(q.Options, value) {
			return answers.ToggleCombo(a, value)
		}
		return answers.SetValue(a, value)
	case schema.TypeCheck:
		if slices.Contains(q.Options, value) {
			return answers.ToggleCheck(q, a, value)
		}
		return answers.SetValue(a, value)
	case schema.TypeCheckVal:
		if opt, val, ok := strings.Cut(value, "="); ok && slices.Contains(q.Options, opt) {
			if !slices.Contains(a.Selections, opt) {
				a = answers.ToggleCheckVal(q, a, opt)
			}
			return answers.SetAccountValue(a, opt, val)
		}
		if slices.Contains(q.Options, value) {
			return answers.ToggleCheckVal(q, a, value)
		}
		return answers.SetValue(a, value)
	case schema.TypeGoals:
		g := parseGoal(value)
		rows := answers.GoalRows(a)
		if rows[len(rows)-1].Empty() {
			return answers.SetGoal(a, len(rows)-1, g)
		}
		return answers.SetGoal(answers.AddGoal(a), len(rows), g)
	case schema.TypeAssetsLiabilities:
		assets, liabilities, _ := strings.Cut(value, "|")
		a = answers.SetAssets(a, strings.TrimSpace(assets))
		return answers.SetLiabilities(a, strings.TrimSpace(liabilities))
	default:
		return answers.SetValue(a, value)
	}
}

// parseGoal splits "goal|amount|timeline"; missing parts stay blank.
func parseGoal(value string) model.Goal {
	parts := strings.SplitN(value, "|", 3)
	g := model.Goal{Goal: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		g.Amount = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		g.Timeline = strings.TrimSpace(parts[2])
	}
	return g
}

func init() {
	clientsAnswerCmd.Flags().BoolVar(&answerStdin, "stdin", false, "read tab-separated question-id/value lines from stdin")
	clientsCmd.AddCommand(clientsAnswerCmd)
}
