// Package schema defines the static IPS and CPS questionnaire structures.
// The question definitions are fixed at build time; everything derived from
// them (ordinals, id sets) is computed, never maintained by hand.
package schema

// QuestionType discriminates how a question is asked and which Answer
// fields apply.
type QuestionType string

// Question types.
const (
	TypeText              QuestionType = "text"               // free-form text
	TypeCombo             QuestionType = "combo"              // single-select, click again to deselect
	TypeCheck             QuestionType = "check"              // multi-select with exclusive none options
	TypeGoals             QuestionType = "goals"              // repeating goal/amount/timeline rows
	TypeCheckVal          QuestionType = "checkval"           // multi-select with inline per-option value
	TypeAssetsLiabilities QuestionType = "assets_liabilities" // paired assets/liabilities text fields
)

// Question is one questionnaire item.
type Question struct {
	ID            string
	Text          string
	Type          QuestionType
	Options       []string // combo, check, checkval
	NoneOptions   []string // subset of Options, mutually exclusive with the rest
	FollowUp      string   // label for the auxiliary free-text field
	FollowUpCheck []string // auxiliary chip labels
}

// Subsection groups questions under an optional label.
type Subsection struct {
	Label     string
	Questions []Question
}

// Section is a numbered questionnaire section.
type Section struct {
	Num         int
	Title       string
	Subtitle    string
	Instruction string
	Subsections []Subsection
}

// Schema is an ordered questionnaire definition.
type Schema struct {
	Name     string // "IPS" or "CPS"
	Sections []Section
}

// IPS returns the Investment Policy Statement questionnaire.
func IPS() *Schema { return &ipsSchema }

// CPS returns the Custody Policy Statement questionnaire.
func CPS() *Schema { return &cpsSchema }

// AllQuestionIDs returns every question id in schema order.
func (s *Schema) AllQuestionIDs() []string {
	var ids []string
	for _, sec := range s.Sections {
		for _, sub := range sec.Subsections {
			for _, q := range sub.Questions {
				ids = append(ids, q.ID)
			}
		}
	}
	return ids
}

// QuestionCount returns the total number of questions across all sections.
func (s *Schema) QuestionCount() int {
	n := 0
	for _, sec := range s.Sections {
		for _, sub := range sec.Subsections {
			n += len(sub.Questions)
		}
	}
	return n
}

// QuestionMap returns all questions keyed by id.
func (s *Schema) QuestionMap() map[string]Question {
	m := make(map[string]Question, s.QuestionCount())
	for _, sec := range s.Sections {
		for _, sub := range sec.Subsections {
			for _, q := range sub.Questions {
				m[q.ID] = q
			}
		}
	}
	return m
}

// SectionStarts returns the 1-based ordinal of the first question in each
// section, keyed by section number. Display numbering runs across the whole
// schema and never resets between sections.
func (s *Schema) SectionStarts() map[int]int {
	starts := make(map[int]int, len(s.Sections))
	n := 0
	for _, sec := range s.Sections {
		starts[sec.Num] = n + 1
		for _, sub := range sec.Subsections {
			n += len(sub.Questions)
		}
	}
	return starts
}
