package answers

import (
	"testing"

	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/schema"
)

func TestIsAnswered(t *testing.T) {
	cases := []struct {
		name string
		a    *model.Answer
		want bool
	}{
		{"nil", nil, false},
		{"zero", &model.Answer{}, false},
		{"whitespace value", &model.Answer{Value: "   "}, false},
		{"value", &model.Answer{Value: "something"}, true},
		{"selection", &model.Answer{Selections: []string{"Stocks"}}, true},
		{"follow-up chip", &model.Answer{FollowUpChecks: []string{"Pension"}}, true},
		{"account value", &model.Answer{AccountValues: map[string]string{"Roth IRA": "10,000"}}, true},
		{"assets only", &model.Answer{Assets: "$500k"}, true},
		{"liabilities only", &model.Answer{Liabilities: "$120k mortgage"}, true},
		{"whitespace assets", &model.Answer{Assets: "  ", Liabilities: "\t"}, false},
		{"empty goal rows", &model.Answer{Goals: []model.Goal{{}, {}}}, false},
		{"one filled goal field", &model.Answer{Goals: []model.Goal{{Timeline: "2045"}}}, true},
	}
	for _, tc := range cases {
		if got := IsAnswered(tc.a); got != tc.want {
			t.Errorf("%s: IsAnswered = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestProgress(t *testing.T) {
	ips := schema.IPS()

	if got := Progress(ips, nil); got != 0 {
		t.Errorf("empty progress = %v, want 0", got)
	}

	ans := map[string]model.Answer{}
	for _, id := range ips.AllQuestionIDs() {
		ans[id] = model.Answer{Value: "x"}
	}
	if got := Progress(ips, ans); got != 100 {
		t.Errorf("full progress = %v, want 100", got)
	}
	if got := Answered(ips, ans); got != ips.QuestionCount() {
		t.Errorf("Answered = %d, want %d", got, ips.QuestionCount())
	}

	if _, found := FirstUnanswered(ips, ans); found {
		t.Error("FirstUnanswered reported a gap in a complete record")
	}
}

func TestFirstUnanswered_SchemaOrder(t *testing.T) {
	ips := schema.IPS()
	ids := ips.AllQuestionIDs()

	ans := map[string]model.Answer{ids[0]: {Value: "x"}, ids[2]: {Value: "x"}}
	got, found := FirstUnanswered(ips, ans)
	if !found || got != ids[1] {
		t.Errorf("FirstUnanswered = %q/%v, want %q", got, found, ids[1])
	}
}

func TestToggleCombo(t *testing.T) {
	a := model.Answer{}

	a = ToggleCombo(a, "Moderate")
	if len(a.Selections) != 1 || a.Selections[0] != "Moderate" {
		t.Fatalf("select: got %v", a.Selections)
	}

	a = ToggleCombo(a, "Aggressive")
	if len(a.Selections) != 1 || a.Selections[0] != "Aggressive" {
		t.Fatalf("replace: got %v", a.Selections)
	}

	a = ToggleCombo(a, "Aggressive")
	if len(a.Selections) != 0 {
		t.Fatalf("deselect: got %v", a.Selections)
	}
}

func TestToggleCheck_NoneOptionsExclusive(t *testing.T) {
	q := schema.Question{
		Type:        schema.TypeCheck,
		Options:     []string{"Stocks", "Bonds", "None"},
		NoneOptions: []string{"None"},
	}

	a := model.Answer{}
	a = ToggleCheck(q, a, "Stocks")
	a = ToggleCheck(q, a, "Bonds")
	if len(a.Selections) != 2 {
		t.Fatalf("multi-select: got %v", a.Selections)
	}

	// Selecting the none option discards everything else.
	a = ToggleCheck(q, a, "None")
	if len(a.Selections) != 1 || a.Selections[0] != "None" {
		t.Fatalf("none exclusivity: got %v", a.Selections)
	}

	// Selecting a regular option evicts the none option.
	a = ToggleCheck(q, a, "Stocks")
	if len(a.Selections) != 1 || a.Selections[0] != "Stocks" {
		t.Fatalf("none eviction: got %v", a.Selections)
	}

	// Deselect removes.
	a = ToggleCheck(q, a, "Stocks")
	if len(a.Selections) != 0 {
		t.Fatalf("deselect: got %v", a.Selections)
	}
}

func TestToggleCheckVal_MaintainsAccountValues(t *testing.T) {
	q := schema.Question{
		Type:        schema.TypeCheckVal,
		Options:     []string{"401(k)", "Roth IRA", "None of these"},
		NoneOptions: []string{"None of these"},
	}

	a := model.Answer{}
	a = ToggleCheckVal(q, a, "401(k)")
	a = SetAccountValue(a, "401(k)", "250,000")
	a = ToggleCheckVal(q, a, "Roth IRA")
	a = SetAccountValue(a, "Roth IRA", "50,000")

	// Deselecting drops that option's value only.
	a = ToggleCheckVal(q, a, "401(k)")
	if _, ok := a.AccountValues["401(k)"]; ok {
		t.Error("deselect kept the option's value")
	}
	if a.AccountValues["Roth IRA"] != "50,000" {
		t.Error("deselect dropped an unrelated value")
	}

	// A none selection clears every value.
	a = ToggleCheckVal(q, a, "None of these")
	if len(a.AccountValues) != 0 {
		t.Errorf("none selection kept values: %v", a.AccountValues)
	}
	if len(a.Selections) != 1 || a.Selections[0] != "None of these" {
		t.Errorf("none selection: got %v", a.Selections)
	}
}

func TestGoalRows_NeverEmpty(t *testing.T) {
	a := model.Answer{}

	rows := GoalRows(a)
	if len(rows) != 1 || !rows[0].Empty() {
		t.Fatalf("default rows: got %v", rows)
	}

	a = AddGoal(a)
	if len(a.Goals) != 2 {
		t.Fatalf("add: got %d rows", len(a.Goals))
	}

	a = SetGoal(a, 0, model.Goal{Goal: "Retire", Amount: "$2M", Timeline: "2045"})
	if a.Goals[0].Goal != "Retire" {
		t.Fatalf("set: got %v", a.Goals[0])
	}

	a = RemoveGoal(a, 1)
	a = RemoveGoal(a, 0)
	if len(a.Goals) != 1 || !a.Goals[0].Empty() {
		t.Fatalf("removing the last row must reset to one empty row, got %v", a.Goals)
	}
}

func TestSetGoal_OutOfRangeIgnored(t *testing.T) {
	a := model.Answer{Goals: []model.Goal{{Goal: "Keep"}}}
	a = SetGoal(a, 5, model.Goal{Goal: "Lost"})
	if len(a.Goals) != 1 || a.Goals[0].Goal != "Keep" {
		t.Errorf("out-of-range SetGoal mutated rows: %v", a.Goals)
	}
}

func TestToggleFollowUpCheck(t *testing.T) {
	a := model.Answer{Selections: []string{"Employed"}}

	a = ToggleFollowUpCheck(a, "Pension")
	a = ToggleFollowUpCheck(a, "Equity comp")
	if len(a.FollowUpChecks) != 2 {
		t.Fatalf("chips: got %v", a.FollowUpChecks)
	}
	if len(a.Selections) != 1 {
		t.Fatalf("chips must not touch selections: %v", a.Selections)
	}

	a = ToggleFollowUpCheck(a, "Pension")
	if len(a.FollowUpChecks) != 1 || a.FollowUpChecks[0] != "Equity comp" {
		t.Fatalf("chip deselect: got %v", a.FollowUpChecks)
	}
}

func TestMutatorsDoNotAliasInputs(t *testing.T) {
	orig := model.Answer{
		Selections:    []string{"A"},
		AccountValues: map[string]string{"A": "1"},
		Goals:         []model.Goal{{Goal: "g"}},
	}
	q := schema.Question{Options: []string{"A", "B"}}

	_ = ToggleCheckVal(q, orig, "B")
	_ = SetAccountValue(orig, "B", "2")
	_ = AddGoal(orig)

	if len(orig.Selections) != 1 || len(orig.AccountValues) != 1 || len(orig.Goals) != 1 {
		t.Errorf("mutators modified their input: %+v", orig)
	}
}
