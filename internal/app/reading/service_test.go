package reading_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tianji-app/fortune-api/internal/app/reading"
	"github.com/tianji-app/fortune-api/internal/domain"
	"github.com/tianji-app/fortune-api/internal/report"
)

type fakeOracle struct {
	reply string
	err   error
	calls int
	last  domain.Query
}

func (f *fakeOracle) Generate(_ context.Context, q domain.Query) (string, error) {
	f.calls++
	f.last = q
	return f.reply, f.err
}

const chartReply = "```json\n" + `{
  "chart": {
    "year":  { "stem": "庚", "branch": "午", "naYin": "路旁土" },
    "month": { "stem": "丁", "branch": "丑", "naYin": "澗下水" },
    "day":   { "stem": "甲", "branch": "子", "naYin": "海中金" },
    "hour":  { "stem": "丙", "branch": "寅", "naYin": "爐中火" }
  },
  "nameAnalysis": { "score": 88, "verdict": "吉" }
}` + "\n```" + `

### 【日期對照】 (Date Reference)
The reading prose goes here.`

func wongMei() domain.FortuneRequest {
	return domain.FortuneRequest{
		Surname:   "Wong",
		GivenName: "Mei",
		Gender:    domain.GenderFemale,
		BloodType: domain.BloodO,
		BirthDate: "1990-01-01",
		Mode:      domain.ModeFullReport,
	}
}

func TestFortune_EndToEnd(t *testing.T) {
	oracle := &fakeOracle{reply: chartReply}
	svc := reading.NewService(oracle, 4096)

	out, err := svc.Fortune(context.Background(), wongMei(), domain.LangChinese)
	require.NoError(t, err)

	assert.Equal(t, 1, oracle.calls)

	require.Len(t, out.View.Columns, 4)
	assert.Equal(t, "year", out.View.Columns[0].Label)

	require.NotNil(t, out.View.Score)
	assert.Equal(t, 88, out.View.Score.Score)
	assert.Equal(t, report.TierB, out.View.Score.Tier)

	assert.NotContains(t, out.View.Body, "```", "no JSON artifact visible in the prose")
	assert.Contains(t, out.View.Body, "The reading prose goes here.")
}

func TestFortune_ThinkingBudgetOnlyForFullReport(t *testing.T) {
	oracle := &fakeOracle{reply: chartReply}
	svc := reading.NewService(oracle, 4096)

	_, err := svc.Fortune(context.Background(), wongMei(), domain.LangEnglish)
	require.NoError(t, err)
	assert.Equal(t, int32(4096), oracle.last.ThinkingBudget)

	req := wongMei()
	req.Mode = domain.ModeZodiac
	_, err = svc.Fortune(context.Background(), req, domain.LangEnglish)
	require.NoError(t, err)
	assert.Zero(t, oracle.last.ThinkingBudget)
}

func TestFortune_ValidationBlocksOracleCall(t *testing.T) {
	oracle := &fakeOracle{reply: chartReply}
	svc := reading.NewService(oracle, 0)

	req := wongMei()
	req.Surname = ""

	_, err := svc.Fortune(context.Background(), req, domain.LangChinese)
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Zero(t, oracle.calls, "no oracle call may be made for an invalid request")
}

func TestFortune_OracleFailure(t *testing.T) {
	oracle := &fakeOracle{err: domain.ErrOracleUnavailable}
	svc := reading.NewService(oracle, 0)

	_, err := svc.Fortune(context.Background(), wongMei(), domain.LangChinese)
	require.ErrorIs(t, err, domain.ErrOracleUnavailable)
	assert.Equal(t, 1, oracle.calls, "no internal retry")
}

func TestFortune_ProseOnlyReplyDegrades(t *testing.T) {
	oracle := &fakeOracle{reply: "Pure prose, the oracle ignored the chart contract."}
	svc := reading.NewService(oracle, 0)

	out, err := svc.Fortune(context.Background(), wongMei(), domain.LangEnglish)
	require.NoError(t, err)

	assert.Nil(t, out.View.Columns)
	assert.Nil(t, out.View.Score)
	assert.Equal(t, "Pure prose, the oracle ignored the chart contract.", out.View.Body)
}

func TestDivine_HappyPath(t *testing.T) {
	oracle := &fakeOracle{reply: "### 【解籤】\nAn auspicious draw."}
	svc := reading.NewService(oracle, 0)

	out, err := svc.Divine(context.Background(), domain.DivinationRequest{
		Tool:     domain.ToolLots,
		Question: "career change",
	}, domain.LangEnglish)
	require.NoError(t, err)

	assert.Contains(t, out.View.Body, "auspicious")
	assert.Contains(t, oracle.last.User, "career change")
	assert.Zero(t, oracle.last.ThinkingBudget)
}

func TestDivine_InvalidPayload(t *testing.T) {
	oracle := &fakeOracle{}
	svc := reading.NewService(oracle, 0)

	_, err := svc.Divine(context.Background(), domain.DivinationRequest{Tool: domain.ToolDream}, domain.LangEnglish)
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Zero(t, oracle.calls)
}

func TestPhysiognomy_ImagesForwarded(t *testing.T) {
	oracle := &fakeOracle{reply: "A strong wealth palace."}
	svc := reading.NewService(oracle, 0)

	images := []domain.Image{
		{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}},
		{MIMEType: "image/png", Data: []byte{0x89, 0x50}},
	}

	out, err := svc.Physiognomy(context.Background(), images, domain.LangChinese)
	require.NoError(t, err)

	assert.Len(t, oracle.last.Images, 2)
	assert.Contains(t, oracle.last.User, "2 image(s)")
	assert.Contains(t, out.View.Body, "wealth palace")
}

func TestPhysiognomy_ImageLimits(t *testing.T) {
	oracle := &fakeOracle{}
	svc := reading.NewService(oracle, 0)

	_, err := svc.Physiognomy(context.Background(), nil, domain.LangChinese)
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	require.ErrorIs(t, err, domain.ErrNoImages)

	five := make([]domain.Image, 5)
	for i := range five {
		five[i] = domain.Image{MIMEType: "image/jpeg", Data: []byte{1}}
	}
	_, err = svc.Physiognomy(context.Background(), five, domain.LangChinese)
	require.ErrorIs(t, err, domain.ErrTooManyImages)

	assert.Zero(t, oracle.calls)
}

func TestFortune_UnsupportedLanguageSurfaces(t *testing.T) {
	oracle := &fakeOracle{}
	svc := reading.NewService(oracle, 0)

	_, err := svc.Fortune(context.Background(), wongMei(), domain.Language("ja"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedLanguage))
	assert.Zero(t, oracle.calls)
}
