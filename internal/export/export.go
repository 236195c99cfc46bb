// Package export renders a client record against a questionnaire schema
// as the plain-text prompt consumed by the downstream document generator.
// Builders are pure: same record in, byte-identical text out.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/schema"
)

const (
	ruleWidth = 72

	// Layout mirroring the browser's toLocaleString rendering of updatedAt.
	updatedLayout = "1/2/2006, 3:04:05 PM"

	notProvided = "[Not provided]"
	noResponse  = "   → [NO RESPONSE PROVIDED]"
)

// BuildIPS renders the Investment Policy Statement intake prompt.
func BuildIPS(rec *model.ClientRecord) string {
	return build(schema.IPS(), rec,
		"INVESTMENT POLICY STATEMENT — CLIENT INTAKE DATA",
		"INSTRUCTIONS FOR IPS GENERATION",
		ipsInstructions)
}

// BuildCPS renders the Custody Policy Statement intake prompt.
func BuildCPS(rec *model.ClientRecord) string {
	return build(schema.CPS(), rec,
		"CUSTODY POLICY STATEMENT — CLIENT INTAKE DATA",
		"INSTRUCTIONS FOR CPS GENERATION",
		cpsInstructions)
}

// BuildFor selects the builder for a schema by name. Unknown names fall
// back to the IPS builder.
func BuildFor(name string, rec *model.ClientRecord) string {
	if strings.EqualFold(name, "CPS") {
		return BuildCPS(rec)
	}
	return BuildIPS(rec)
}

func build(s *schema.Schema, rec *model.ClientRecord, title, instructionsHeader string, instructions []string) string {
	var lines []string
	push := func(ls ...string) { lines = append(lines, ls...) }

	push(rule('='))
	push(title)
	push(rule('='))
	push("")
	push("Client Name: " + orNotProvided(rec.ClientName))
	push("Date: " + orNotProvided(rec.Date))
	push("Advisor: " + orNotProvided(rec.Advisor))
	push("Updated: " + time.UnixMilli(rec.UpdatedAt).Format(updatedLayout))
	push("")

	questionNumber := 0
	for _, sec := range s.Sections {
		push(rule('-'))
		push(fmt.Sprintf("SECTION %d: %s", sec.Num, strings.ToUpper(sec.Title)))
		push(rule('-'))
		push("")

		for _, sub := range sec.Subsections {
			if sub.Label != "" {
				push("### " + sub.Label)
			}
			for _, q := range sub.Questions {
				questionNumber++
				push(fmt.Sprintf("Q%d. %s", questionNumber, q.Text))
				push(answerLines(rec.Answers[q.ID])...)
				push("")
			}
		}
	}

	push(rule('='))
	push("END OF CLIENT INTAKE DATA")
	push(rule('='))
	push("")
	push(strings.Repeat("─", ruleWidth))
	push(instructionsHeader)
	push(strings.Repeat("─", ruleWidth))
	push("")
	push(instructions...)

	return strings.Join(lines, "\n")
}

// answerLines renders one answer in the fixed field order: selections
// (with per-option values when recorded), follow-up chips, free text,
// assets, liabilities, then goal rows. An answer with no content renders
// the single no-response marker.
func answerLines(a model.Answer) []string {
	selections := a.Selections
	freeText := strings.TrimSpace(a.Value)
	assets := strings.TrimSpace(a.Assets)
	liabilities := strings.TrimSpace(a.Liabilities)
	goals := nonEmptyGoals(a.Goals)
	hasValues := len(a.AccountValues) > 0

	hasAny := len(selections) > 0 || freeText != "" || len(a.FollowUpChecks) > 0 ||
		len(goals) > 0 || hasValues || assets != "" || liabilities != ""
	if !hasAny {
		return []string{noResponse}
	}

	var out []string
	if len(selections) > 0 && hasValues {
		for _, sel := range selections {
			if v := a.AccountValues[sel]; v != "" {
				out = append(out, fmt.Sprintf("   → %s: $%s", sel, v))
			} else {
				out = append(out, "   → "+sel)
			}
		}
	} else if len(selections) > 0 {
		out = append(out, "   → Selected: "+strings.Join(selections, ", "))
	}
	if len(a.FollowUpChecks) > 0 {
		out = append(out, "   → Also: "+strings.Join(a.FollowUpChecks, ", "))
	}
	if freeText != "" {
		out = append(out, "   → "+freeText)
	}
	if assets != "" {
		out = append(out, "   → Assets: "+assets)
	}
	if liabilities != "" {
		out = append(out, "   → Liabilities: "+liabilities)
	}
	for i, g := range goals {
		out = append(out, fmt.Sprintf("   → Goal %d. %s | Target: %s | Timeline: %s",
			i+1, orDefault(g.Goal, "[unnamed]"),
			orDefault(g.Amount, "[not specified]"),
			orDefault(g.Timeline, "[not specified]")))
	}
	return out
}

func nonEmptyGoals(goals []model.Goal) []model.Goal {
	var out []model.Goal
	for _, g := range goals {
		if !g.Empty() {
			out = append(out, g)
		}
	}
	return out
}

func rule(ch byte) string {
	return strings.Repeat(string(ch), ruleWidth)
}

func orNotProvided(s string) string {
	return orDefault(s, notProvided)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// SafeName mangles a client name into a filename fragment. Names with no
// usable characters fall back to "export" so downloads never end up
// named like "IPS_LLM_.txt".
func SafeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "export"
	}
	return strings.Join(fields, "_")
}
