// Package answers implements the answer-state contract shared by the API
// server, the CLI, and any form frontend: when an answer counts as
// answered, how progress is computed, and how each question type's answer
// transitions on user interaction.
package answers

import (
	"slices"
	"strings"

	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/schema"
)

// IsAnswered reports whether an answer carries any content. It is total:
// a nil or partially-populated answer never panics, missing sub-fields
// count as empty.
func IsAnswered(a *model.Answer) bool {
	if a == nil {
		return false
	}
	if len(a.Selections) > 0 || len(a.FollowUpChecks) > 0 || len(a.AccountValues) > 0 {
		return true
	}
	if strings.TrimSpace(a.Value) != "" ||
		strings.TrimSpace(a.Assets) != "" ||
		strings.TrimSpace(a.Liabilities) != "" {
		return true
	}
	for _, g := range a.Goals {
		if !g.Empty() {
			return true
		}
	}
	return false
}

// Answered counts answered questions for one schema.
func Answered(s *schema.Schema, ans map[string]model.Answer) int {
	n := 0
	for _, id := range s.AllQuestionIDs() {
		if a, ok := ans[id]; ok && IsAnswered(&a) {
			n++
		}
	}
	return n
}

// Progress returns the completion percentage (0-100) for one schema.
// A schema with zero questions reports 0.
func Progress(s *schema.Schema, ans map[string]model.Answer) float64 {
	total := s.QuestionCount()
	if total == 0 {
		return 0
	}
	return 100 * float64(Answered(s, ans)) / float64(total)
}

// FirstUnanswered returns the first question id in schema order whose
// answer is missing or empty, and false when everything is answered.
func FirstUnanswered(s *schema.Schema, ans map[string]model.Answer) (string, bool) {
	for _, id := range s.AllQuestionIDs() {
		a, ok := ans[id]
		if !ok || !IsAnswered(&a) {
			return id, true
		}
	}
	return "", false
}

// SetValue sets the free-text value (text questions and combo/check
// follow-up text).
func SetValue(a model.Answer, v string) model.Answer {
	a.Value = v
	return a
}

// ToggleCombo applies the single-select rule: clicking the selected option
// clears the selection, clicking any other option replaces it.
func ToggleCombo(a model.Answer, opt string) model.Answer {
	if slices.Contains(a.Selections, opt) {
		a.Selections = nil
	} else {
		a.Selections = []string{opt}
	}
	return a
}

// ToggleFollowUpCheck toggles an auxiliary chip independently of the main
// selection.
func ToggleFollowUpCheck(a model.Answer, opt string) model.Answer {
	if slices.Contains(a.FollowUpChecks, opt) {
		a.FollowUpChecks = remove(a.FollowUpChecks, opt)
	} else {
		a.FollowUpChecks = append(slices.Clone(a.FollowUpChecks), opt)
	}
	return a
}

// ToggleCheck applies the multi-select rule with exclusive none options:
// deselect removes; selecting a none option discards everything else;
// selecting a regular option first evicts any selected none options.
func ToggleCheck(q schema.Question, a model.Answer, opt string) model.Answer {
	switch {
	case slices.Contains(a.Selections, opt):
		a.Selections = remove(a.Selections, opt)
	case slices.Contains(q.NoneOptions, opt):
		a.Selections = []string{opt}
	default:
		kept := withoutNone(a.Selections, q.NoneOptions)
		a.Selections = append(kept, opt)
	}
	return a
}

// ToggleCheckVal applies the check rules to a checkval question and keeps
// AccountValues consistent: deselecting drops the option's value, and a
// none selection clears every recorded value.
func ToggleCheckVal(q schema.Question, a model.Answer, opt string) model.Answer {
	vals := cloneValues(a.AccountValues)
	switch {
	case slices.Contains(a.Selections, opt):
		a.Selections = remove(a.Selections, opt)
		delete(vals, opt)
	case slices.Contains(q.NoneOptions, opt):
		a.Selections = []string{opt}
		vals = map[string]string{}
	default:
		kept := withoutNone(a.Selections, q.NoneOptions)
		a.Selections = append(kept, opt)
	}
	a.AccountValues = vals
	return a
}

// SetAccountValue records the inline value for a selected checkval option.
func SetAccountValue(a model.Answer, opt, v string) model.Answer {
	vals := cloneValues(a.AccountValues)
	vals[opt] = v
	a.AccountValues = vals
	return a
}

// GoalRows returns the goal rows to display, defaulting to a single empty
// row when the answer has none.
func GoalRows(a model.Answer) []model.Goal {
	if len(a.Goals) == 0 {
		return []model.Goal{{}}
	}
	return a.Goals
}

// SetGoal replaces the row at index i. Out-of-range indexes are ignored.
func SetGoal(a model.Answer, i int, g model.Goal) model.Answer {
	rows := slices.Clone(GoalRows(a))
	if i < 0 || i >= len(rows) {
		a.Goals = rows
		return a
	}
	rows[i] = g
	a.Goals = rows
	return a
}

// AddGoal appends an empty row.
func AddGoal(a model.Answer) model.Answer {
	a.Goals = append(slices.Clone(GoalRows(a)), model.Goal{})
	return a
}

// RemoveGoal deletes the row at index i. The list never becomes empty:
// removing the last remaining row resets it to one empty row.
func RemoveGoal(a model.Answer, i int) model.Answer {
	rows := GoalRows(a)
	if i < 0 || i >= len(rows) {
		a.Goals = slices.Clone(rows)
		return a
	}
	next := slices.Delete(slices.Clone(rows), i, i+1)
	if len(next) == 0 {
		next = []model.Goal{{}}
	}
	a.Goals = next
	return a
}

// SetAssets sets the assets half of an assets_liabilities answer.
func SetAssets(a model.Answer, v string) model.Answer {
	a.Assets = v
	return a
}

// SetLiabilities sets the liabilities half of an assets_liabilities answer.
func SetLiabilities(a model.Answer, v string) model.Answer {
	a.Liabilities = v
	return a
}

func remove(list []string, opt string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != opt {
			out = append(out, s)
		}
	}
	return out
}

func withoutNone(list, noneOptions []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if !slices.Contains(noneOptions, s) {
			out = append(out, s)
		}
	}
	return out
}

func cloneValues(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
