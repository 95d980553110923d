// Package report turns raw oracle text into something a client can
// render: the prose body plus, when the oracle complied with the chart
// contract, the parsed four-pillar chart and name score.
package report

import (
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tianji-app/fortune-api/internal/domain"
	"github.com/tianji-app/fortune-api/internal/observability"
)

// fenceRE matches a fenced JSON block. The prompts demand the block as a
// prefix, but the oracle is not guaranteed to comply, so any position is
// accepted; only the first match is authoritative.
var fenceRE = regexp.MustCompile("```json\n([\\s\\S]*?)\n```")

// blankRunRE collapses the blank lines left behind where a block was cut
// out of the middle of the prose.
var blankRunRE = regexp.MustCompile(`\n{3,}`)

// envelope mirrors the wire format of the embedded block. Pillars are
// pointers so a missing slot is distinguishable from an empty one.
type envelope struct {
	Chart *struct {
		Year  *domain.Pillar `json:"year"`
		Month *domain.Pillar `json:"month"`
		Day   *domain.Pillar `json:"day"`
		Hour  *domain.Pillar `json:"hour"`
	} `json:"chart"`
	NameAnalysis *domain.NameAnalysis `json:"nameAnalysis"`
}

// Extract scans oracle text for an embedded chart block. Parsing never
// fails the caller: a malformed or structurally incomplete block is
// logged and discarded, and the raw text (block included) is returned
// untouched so the prose is not lost to a formatting slip by the oracle.
func Extract(text string) domain.DisplayReport {
	loc := fenceRE.FindStringSubmatchIndex(text)
	if loc == nil {
		return domain.DisplayReport{BodyText: text}
	}

	payload := text[loc[2]:loc[3]]

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		observability.Logger().Warn("embedded chart block is not valid JSON, showing raw text", "error", err)
		return domain.DisplayReport{BodyText: text}
	}

	chart, ok := buildChart(env)
	if !ok {
		observability.Logger().Warn("embedded chart block is structurally incomplete, showing raw text")
		return domain.DisplayReport{BodyText: text}
	}

	body := text[:loc[0]] + text[loc[1]:]
	body = blankRunRE.ReplaceAllString(body, "\n\n")
	body = strings.TrimSpace(body)

	return domain.DisplayReport{BodyText: body, Chart: chart}
}

// buildChart validates the parsed envelope against the contract: all four
// pillar slots present with non-empty glyphs, and the score, if any, an
// integer in [0,100].
func buildChart(env envelope) (*domain.EmbeddedChart, bool) {
	if env.Chart == nil {
		return nil, false
	}

	pillars := []*domain.Pillar{env.Chart.Year, env.Chart.Month, env.Chart.Day, env.Chart.Hour}
	for _, p := range pillars {
		if p == nil || p.Stem == "" || p.Branch == "" {
			return nil, false
		}
	}

	if na := env.NameAnalysis; na != nil && (na.Score < 0 || na.Score > 100) {
		return nil, false
	}

	return &domain.EmbeddedChart{
		Year:         *env.Chart.Year,
		Month:        *env.Chart.Month,
		Day:          *env.Chart.Day,
		Hour:         *env.Chart.Hour,
		NameAnalysis: env.NameAnalysis,
	}, true
}
