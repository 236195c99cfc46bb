package export

import (
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/intake-cli/internal/model"
	"github.com/sells-group/intake-cli/internal/schema"
)

// WriteWorkbook writes an XLSX workbook with one sheet per questionnaire
// (IPS, CPS), one row per question. Unanswered questions get an empty
// response cell so the advisor sees the full questionnaire shape.
func WriteWorkbook(w io.Writer, rec *model.ClientRecord) error {
	file := xlsx.NewFile()
	for _, s := range []*schema.Schema{schema.IPS(), schema.CPS()} {
		if err := addSheet(file, s, rec); err != nil {
			return err
		}
	}
	return eris.Wrap(file.Write(w), "export: write workbook")
}

func addSheet(file *xlsx.File, s *schema.Schema, rec *model.ClientRecord) error {
	sheet, err := file.AddSheet(s.Name)
	if err != nil {
		return eris.Wrapf(err, "export: add sheet %s", s.Name)
	}

	header := sheet.AddRow()
	for _, h := range []string{"#", "Section", "Subsection", "Question", "Response"} {
		header.AddCell().Value = h
	}

	n := 0
	for _, sec := range s.Sections {
		for _, sub := range sec.Subsections {
			for _, q := range sub.Questions {
				n++
				row := sheet.AddRow()
				row.AddCell().Value = strconv.Itoa(n)
				row.AddCell().Value = sec.Title
				row.AddCell().Value = sub.Label
				row.AddCell().Value = q.Text
				row.AddCell().Value = responseSummary(rec.Answers[q.ID])
			}
		}
	}
	return nil
}

// responseSummary flattens an answer to a single cell, using the same
// field order as the text export.
func responseSummary(a model.Answer) string {
	lines := answerLines(a)
	if len(lines) == 1 && lines[0] == noResponse {
		return ""
	}
	var parts []string
	for _, l := range lines {
		parts = append(parts, strings.TrimPrefix(l, "   → "))
	}
	return strings.Join(parts, "; ")
}
