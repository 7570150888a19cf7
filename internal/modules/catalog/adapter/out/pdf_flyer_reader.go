package out

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"rsc.io/pdf"

	catalogout "eventdeck/internal/modules/catalog/port/out"
)

// PDFFlyerReader extracts text lines from every page of a PDF flyer.
type PDFFlyerReader struct{}

func NewPDFFlyerReader() catalogout.FlyerReader {
	return &PDFFlyerReader{}
}

func (r *PDFFlyerReader) ReadLines(ctx context.Context, path string) ([]string, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	var lines []string
	for n := 1; n <= doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := doc.Page(n)
		if page.V.IsNull() {
			continue
		}
		lines = append(lines, groupLines(page.Content().Text)...)
	}
	return lines, nil
}

// groupLines joins glyph runs that share a baseline, top of page first.
func groupLines(texts []pdf.Text) []string {
	type row struct {
		y     float64
		texts []pdf.Text
	}
	var rows []*row
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		y := math.Round(t.Y)
		var target *row
		for _, r := range rows {
			if math.Abs(r.y-y) <= 1 {
				target = r
				break
			}
		}
		if target == nil {
			target = &row{y: y}
			rows = append(rows, target)
		}
		target.texts = append(target.texts, t)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r.texts, func(i, j int) bool { return r.texts[i].X < r.texts[j].X })
		var sb strings.Builder
		lastEnd := math.Inf(-1)
		for _, t := range r.texts {
			if sb.Len() > 0 && t.X-lastEnd > t.FontSize*0.2 {
				sb.WriteByte(' ')
			}
			sb.WriteString(t.S)
			lastEnd = t.X + t.W
		}
		if line := strings.TrimSpace(sb.String()); line != "" {
			out = append(out, line)
		}
	}
	return out
}
