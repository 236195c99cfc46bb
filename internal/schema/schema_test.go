package schema

import (
	"slices"
	"testing"
)

func TestQuestionCounts(t *testing.T) {
	if got := IPS().QuestionCount(); got != 54 {
		t.Errorf("IPS question count = %d, want 54", got)
	}
	if got := CPS().QuestionCount(); got != 17 {
		t.Errorf("CPS question count = %d, want 17", got)
	}
}

func TestQuestionIDsUnique(t *testing.T) {
	for _, s := range []*Schema{IPS(), CPS()} {
		seen := map[string]bool{}
		for _, id := range s.AllQuestionIDs() {
			if id == "" {
				t.Errorf("%s: empty question id", s.Name)
			}
			if seen[id] {
				t.Errorf("%s: duplicate question id %q", s.Name, id)
			}
			seen[id] = true
		}
	}
}

func TestQuestionTypesValid(t *testing.T) {
	valid := map[QuestionType]bool{
		TypeText: true, TypeCombo: true, TypeCheck: true,
		TypeGoals: true, TypeCheckVal: true, TypeAssetsLiabilities: true,
	}
	for _, s := range []*Schema{IPS(), CPS()} {
		for id, q := range s.QuestionMap() {
			if !valid[q.Type] {
				t.Errorf("%s %s: invalid type %q", s.Name, id, q.Type)
			}
			if q.Text == "" {
				t.Errorf("%s %s: empty question text", s.Name, id)
			}
		}
	}
}

func TestSelectQuestionsHaveOptions(t *testing.T) {
	for _, s := range []*Schema{IPS(), CPS()} {
		for id, q := range s.QuestionMap() {
			switch q.Type {
			case TypeCombo, TypeCheck, TypeCheckVal:
				if len(q.Options) == 0 {
					t.Errorf("%s %s: %s question with no options", s.Name, id, q.Type)
				}
			default:
				if len(q.Options) != 0 {
					t.Errorf("%s %s: %s question should not carry options", s.Name, id, q.Type)
				}
			}
		}
	}
}

func TestNoneOptionsAreSubsetOfOptions(t *testing.T) {
	for _, s := range []*Schema{IPS(), CPS()} {
		for id, q := range s.QuestionMap() {
			for _, none := range q.NoneOptions {
				if !slices.Contains(q.Options, none) {
					t.Errorf("%s %s: none option %q not in options", s.Name, id, none)
				}
			}
		}
	}
}

func TestSectionNumbersSequential(t *testing.T) {
	for _, s := range []*Schema{IPS(), CPS()} {
		for i, sec := range s.Sections {
			if sec.Num != i+1 {
				t.Errorf("%s: section %d numbered %d", s.Name, i+1, sec.Num)
			}
			if sec.Title == "" {
				t.Errorf("%s: section %d has no title", s.Name, sec.Num)
			}
		}
	}
}

func TestSectionStarts(t *testing.T) {
	ips := IPS()
	starts := ips.SectionStarts()

	if starts[1] != 1 {
		t.Errorf("IPS section 1 starts at %d, want 1", starts[1])
	}

	// Each section starts right after the previous section's questions.
	n := 0
	for _, sec := range ips.Sections {
		if starts[sec.Num] != n+1 {
			t.Errorf("IPS section %d starts at %d, want %d", sec.Num, starts[sec.Num], n+1)
		}
		for _, sub := range sec.Subsections {
			n += len(sub.Questions)
		}
	}
	if n != ips.QuestionCount() {
		t.Errorf("walked %d questions, count reports %d", n, ips.QuestionCount())
	}
}

func TestCPSIDPrefix(t *testing.T) {
	for _, id := range CPS().AllQuestionIDs() {
		if len(id) < 4 || id[:3] != "cps" {
			t.Errorf("CPS question id %q lacks cps prefix", id)
		}
	}
}
