package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tianji-app/fortune-api/internal/domain"
	"github.com/tianji-app/fortune-api/internal/report"
)

func TestTierFor_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  report.Tier
	}{
		{100, report.TierA},
		{90, report.TierA},
		{89, report.TierB},
		{80, report.TierB},
		{79, report.TierC},
		{70, report.TierC},
		{69, report.TierD},
		{0, report.TierD},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, report.TierFor(tc.score), "score %d", tc.score)
	}
}

func TestPresent_ProseOnly(t *testing.T) {
	view := report.Present(domain.DisplayReport{BodyText: "line one\nline two"})

	assert.Equal(t, "line one\nline two", view.Body, "line breaks preserved")
	assert.Nil(t, view.Columns)
	assert.Nil(t, view.Score)
}

func TestPresent_ChartColumnsFixedOrder(t *testing.T) {
	chart := &domain.EmbeddedChart{
		Year:         domain.Pillar{Stem: "庚", Branch: "午", NaYin: "路旁土"},
		Month:        domain.Pillar{Stem: "丁", Branch: "丑"},
		Day:          domain.Pillar{Stem: "甲", Branch: "子"},
		Hour:         domain.Pillar{Stem: "丙", Branch: "寅"},
		NameAnalysis: &domain.NameAnalysis{Score: 88, Verdict: "吉"},
	}

	view := report.Present(domain.DisplayReport{BodyText: "prose", Chart: chart})

	require.Len(t, view.Columns, 4)
	labels := []string{view.Columns[0].Label, view.Columns[1].Label, view.Columns[2].Label, view.Columns[3].Label}
	assert.Equal(t, []string{"year", "month", "day", "hour"}, labels)
	assert.Equal(t, "庚", view.Columns[0].Stem)
	assert.Equal(t, "路旁土", view.Columns[0].NaYin)

	require.NotNil(t, view.Score)
	assert.Equal(t, 88, view.Score.Score)
	assert.Equal(t, report.TierB, view.Score.Tier)
	assert.Equal(t, "吉", view.Score.Verdict)
}

func TestPresent_ChartWithoutScore(t *testing.T) {
	chart := &domain.EmbeddedChart{
		Year:  domain.Pillar{Stem: "庚", Branch: "午"},
		Month: domain.Pillar{Stem: "丁", Branch: "丑"},
		Day:   domain.Pillar{Stem: "甲", Branch: "子"},
		Hour:  domain.Pillar{Stem: "丙", Branch: "寅"},
	}

	view := report.Present(domain.DisplayReport{Chart: chart})

	assert.Len(t, view.Columns, 4)
	assert.Nil(t, view.Score)
}
