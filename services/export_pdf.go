package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateComparisonPDF renders a ComparisonExport as a PDF document using
// maroto/v2. It returns the raw PDF bytes or an error.
func GenerateComparisonPDF(data ComparisonExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addComparisonHeader(m, data)

	addSectionTitle(m, "Andamento offerte per round")
	addTrendHeader(m)
	for _, r := range data.TrendRows() {
		addTrendRow(m, r)
	}

	addSectionTitle(m, "Scostamenti per categoria")
	addWaterfallHeader(m)
	for _, c := range data.Waterfall.Categories {
		addWaterfallRow(m, c)
	}
	addWaterfallTotals(m, data.Waterfall)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addComparisonHeader adds the commessa title and the filter summary line.
func addComparisonHeader(m core.Maroto, data ComparisonExport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Commessa, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	meta := fmt.Sprintf("Commessa %s — %d imprese, offerte considerate %d/%d",
		data.Code,
		len(data.Summary.ImpreseAttive),
		data.Summary.OfferteConsiderate,
		data.Summary.OfferteTotali)
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(meta, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New("Generato: "+data.GeneratedAt, props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

var pdfHeaderBg = &props.Color{Red: 33, Green: 37, Blue: 41}

func pdfHeaderText(a align.Type) props.Text {
	return props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: a,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
}

func addTrendHeader(m core.Maroto) {
	headerCell := props.Cell{BackgroundColor: pdfHeaderBg}
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("Impresa", pdfHeaderText(align.Left))).WithStyle(&headerCell),
			col.New(3).Add(text.New("Round", pdfHeaderText(align.Left))).WithStyle(&headerCell),
			col.New(3).Add(text.New("Importo", pdfHeaderText(align.Center))).WithStyle(&headerCell),
			col.New(2).Add(text.New("Delta", pdfHeaderText(align.Center))).WithStyle(&headerCell),
		),
	)
}

func addTrendRow(m core.Maroto, r TrendExportRow) {
	base := props.Text{Size: 8, Align: align.Left}
	right := props.Text{Size: 8, Align: align.Right}
	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New(r.Bidder, base)),
			col.New(3).Add(text.New(r.RoundLabel, base)),
			col.New(3).Add(text.New(FormatEUR(r.Amount), right)),
			col.New(2).Add(text.New(FormatPct(r.DeltaPct), right)),
		),
	)
}

func addWaterfallHeader(m core.Maroto) {
	headerCell := props.Cell{BackgroundColor: pdfHeaderBg}
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("Categoria", pdfHeaderText(align.Left))).WithStyle(&headerCell),
			col.New(2).Add(text.New("Base d'asta", pdfHeaderText(align.Center))).WithStyle(&headerCell),
			col.New(2).Add(text.New("Offerta", pdfHeaderText(align.Center))).WithStyle(&headerCell),
			col.New(2).Add(text.New("Scostamento", pdfHeaderText(align.Center))).WithStyle(&headerCell),
			col.New(2).Add(text.New("Scost. %", pdfHeaderText(align.Center))).WithStyle(&headerCell),
		),
	)
}

func addWaterfallRow(m core.Maroto, c CategoryComparison) {
	base := props.Text{Size: 8, Align: align.Left}
	right := props.Text{Size: 8, Align: align.Right}
	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New(c.Category, base)),
			col.New(2).Add(text.New(FormatEUR(c.BaselineAmount), right)),
			col.New(2).Add(text.New(FormatEUR(c.BidAmount), right)),
			col.New(2).Add(text.New(FormatEUR(c.AbsoluteDelta), right)),
			col.New(2).Add(text.New(FormatPct(c.PercentDelta), right)),
		),
	)
}

// addWaterfallTotals adds the grand-total line computed by the builder.
func addWaterfallTotals(m core.Maroto, wf WaterfallResult) {
	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	bold := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("Totale", label)).WithStyle(summaryCell),
			col.New(2).Add(text.New(FormatEUR(wf.BaselineTotal), bold)).WithStyle(summaryCell),
			col.New(2).Add(text.New(FormatEUR(wf.BidTotal), bold)).WithStyle(summaryCell),
			col.New(2).Add(text.New(FormatEUR(wf.BidTotal-wf.BaselineTotal), bold)).WithStyle(summaryCell),
			col.New(2).Add(text.New("", bold)).WithStyle(summaryCell),
		),
	)
}
