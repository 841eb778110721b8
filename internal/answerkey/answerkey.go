// Package answerkey exports the solutions of a question bank as a spreadsheet.
package answerkey

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/pmquiz/internal/bank"
)

// Row is one graded item: a whole multiple-choice question, a matching
// row or a labeled figure.
type Row struct {
	Question int
	Kind     string
	Title    string
	Item     string
	Keys     string
	Answer   string
}

var headers = []string{"pregunta", "tipo", "título", "ítem", "clave", "respuesta"}

// Rows flattens the answer key of qs in bank order. Questions whose
// variant fields are missing contribute no rows.
func Rows(qs []bank.Question) []Row {
	var rows []Row
	for _, q := range qs {
		base := Row{Question: q.ID, Kind: bank.KindDisplayName(q.Kind), Title: q.Title}
		switch q.Kind {
		case bank.KindMultipleChoice:
			mc := q.MultipleChoice
			if mc == nil {
				continue
			}
			texts := make([]string, len(mc.Correct))
			for i, k := range mc.Correct {
				texts[i] = bank.OptionText(mc.Options, k)
			}
			r := base
			r.Keys = strings.Join(mc.Correct, ", ")
			r.Answer = strings.Join(texts, ", ")
			rows = append(rows, r)
		case bank.KindMatching:
			m := q.Matching
			if m == nil {
				continue
			}
			for _, left := range m.Left {
				r := base
				r.Item = left.ID + ". " + left.Text
				r.Keys = m.Solution[left.ID]
				r.Answer = bank.OptionText(m.Right, r.Keys)
				rows = append(rows, r)
			}
		case bank.KindImageMatching:
			im := q.ImageMatching
			if im == nil {
				continue
			}
			for i, img := range im.Images {
				r := base
				r.Item = "Figura " + strconv.Itoa(i+1) + " (" + img.Src + ")"
				r.Keys = img.CorrectKey
				r.Answer = bank.OptionText(im.Options, img.CorrectKey)
				rows = append(rows, r)
			}
		}
	}
	return rows
}

// Export renders the answer key of b as an xlsx workbook.
func Export(b *bank.Bank) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, r := range Rows(b.All()) {
		row := i + 2
		values := []any{r.Question, r.Kind, r.Title, r.Item, r.Keys, r.Answer}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "C", "C", 24)
	_ = f.SetColWidth(sheet, "D", "D", 60)
	_ = f.SetColWidth(sheet, "E", "E", 10)
	_ = f.SetColWidth(sheet, "F", "F", 60)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write answer key: %w", err)
	}
	return buf.Bytes(), nil
}
