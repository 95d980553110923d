package report

import "github.com/tianji-app/fortune-api/internal/domain"

// Tier is the color band a name score falls into. Boundaries are
// inclusive on the lower bound: [90,100] A, [80,90) B, [70,80) C,
// everything else D.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// TierFor maps a name score to its tier.
func TierFor(score int) Tier {
	switch {
	case score >= 90:
		return TierA
	case score >= 80:
		return TierB
	case score >= 70:
		return TierC
	default:
		return TierD
	}
}

// PillarColumn is one column of the chart table.
type PillarColumn struct {
	Label  string
	Stem   string
	Branch string
	NaYin  string
}

// ScoreBadge is the rendered name-score verdict.
type ScoreBadge struct {
	Score   int
	Verdict string
	Tier    Tier
}

// View is the renderable projection of a DisplayReport. Body is
// preformatted prose with line breaks preserved; Columns is nil when the
// response carried no chart, and otherwise holds exactly four columns in
// fixed year/month/day/hour order.
type View struct {
	Body    string
	Columns []PillarColumn
	Score   *ScoreBadge
}

// Present projects a DisplayReport into a View. It never mutates its
// input.
func Present(rep domain.DisplayReport) View {
	view := View{Body: rep.BodyText}
	if rep.Chart == nil {
		return view
	}

	c := rep.Chart
	view.Columns = []PillarColumn{
		{Label: "year", Stem: c.Year.Stem, Branch: c.Year.Branch, NaYin: c.Year.NaYin},
		{Label: "month", Stem: c.Month.Stem, Branch: c.Month.Branch, NaYin: c.Month.NaYin},
		{Label: "day", Stem: c.Day.Stem, Branch: c.Day.Branch, NaYin: c.Day.NaYin},
		{Label: "hour", Stem: c.Hour.Stem, Branch: c.Hour.Branch, NaYin: c.Hour.NaYin},
	}

	if na := c.NameAnalysis; na != nil {
		view.Score = &ScoreBadge{Score: na.Score, Verdict: na.Verdict, Tier: TierFor(na.Score)}
	}

	return view
}
