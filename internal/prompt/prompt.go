// Package prompt assembles the language- and mode-specific instructions
// sent to the oracle. Builders are pure functions of their inputs; they
// shape strings and never validate business rules beyond the closed
// language set.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/tianji-app/fortune-api/internal/domain"
)

// Prompt is a system instruction plus the content sent as the user turn.
type Prompt struct {
	System string
	User   string
}

const unknownField = "Unknown"

// chartBlockInstruction is the contract with the response extractor: the
// oracle must open its reply with a fenced JSON block holding the four
// pillars (and, for full reports, the name score) before any prose.
const chartBlockInstruction = `CRITICAL: At the very beginning of your response, BEFORE any prose, output the calculated Bazi chart in a raw JSON code block.
Include the 'naYin' (Na Yin Five Elements 納音) for each pillar (e.g. '海中金', '霹靂火', '大林木').

Structure:
` + "```json" + `
{
  "chart": {
    "year":  { "stem": "Char", "branch": "Char", "naYin": "NaYinChar" },
    "month": { "stem": "Char", "branch": "Char", "naYin": "NaYinChar" },
    "day":   { "stem": "Char", "branch": "Char", "naYin": "NaYinChar" },
    "hour":  { "stem": "Char", "branch": "Char", "naYin": "NaYinChar" }
  }
}
` + "```"

const fullReportBlockInstruction = `CRITICAL: At the very beginning of your response, BEFORE any prose (including the Date Reference), output the calculated Bazi chart AND Name Analysis Score in a raw JSON code block.
Include the 'naYin' (Na Yin Five Elements 納音) for each pillar (e.g. '海中金', '霹靂火', '大林木').
Include a name 'score' (0-100) and 'verdict' based on the name characters.

Structure:
` + "```json" + `
{
  "chart": {
    "year":  { "stem": "Char", "branch": "Char", "naYin": "NaYinChar" },
    "month": { "stem": "Char", "branch": "Char", "naYin": "NaYinChar" },
    "day":   { "stem": "Char", "branch": "Char", "naYin": "NaYinChar" },
    "hour":  { "stem": "Char", "branch": "Char", "naYin": "NaYinChar" }
  },
  "nameAnalysis": {
    "score": 95,
    "verdict": "Excellent"
  }
}
` + "```"

// Fortune builds the reading prompt for the requested mode. The caller is
// responsible for having validated the request; only the language set is
// checked here.
func Fortune(req domain.FortuneRequest, lang domain.Language, today time.Time) (Prompt, error) {
	if _, err := domain.ParseLanguage(string(lang)); err != nil {
		return Prompt{}, err
	}

	lunar := req.LunarDate
	if lunar == "" {
		lunar = unknownField + " (requires manual verification)"
	}
	todayStr := today.Format("2006-01-02")

	system := fortuneSystem(req, lang, lunar)

	var user string
	switch req.Mode {
	case domain.ModeFullReport:
		user = fullReportPrompt(req, lunar, todayStr)
	case domain.ModeBazi:
		user = baziPrompt(req, lunar, todayStr)
	case domain.ModeZodiac:
		user = zodiacPrompt(req, lunar, todayStr)
	case domain.ModeBoneWeight:
		user = boneWeightPrompt(req, lunar, todayStr)
	case domain.ModeAlmanac:
		user = almanacPrompt(req, lunar)
	default:
		user = fullReportPrompt(req, lunar, todayStr)
	}

	return Prompt{System: system, User: user}, nil
}

func fortuneSystem(req domain.FortuneRequest, lang domain.Language, lunar string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the legendary 'Eastern Culture' Fortune Telling Master (東方文化算命大師). Output Language: %s. Use Markdown for formatting.\n\n", lang.PromptName())
	b.WriteString("CRITICAL INSTRUCTION:\nFor EVERY response, you MUST include a dedicated 'Date Reference' section to verify the time.\n\n")
	b.WriteString("Format:\n### 【日期對照】 (Date Reference)\n")
	fmt.Fprintf(&b, "*   **公曆 (Gregorian):** %s %s\n", req.BirthDate, req.BirthTime)
	fmt.Fprintf(&b, "*   **出生地點 (Birth Location):** %s\n", orUnknown(req.BirthLocation))
	fmt.Fprintf(&b, "*   **農曆 (Lunar):** %s\n", lunar)
	b.WriteString("\n---\n(Then start the main analysis below)\n")
	return b.String()
}

func subjectInfo(req domain.FortuneRequest, lunar, today string) string {
	var b strings.Builder
	b.WriteString("Subject Info:\n")
	fmt.Fprintf(&b, "Surname: %s\n", req.Surname)
	fmt.Fprintf(&b, "Name: %s\n", req.GivenName)
	fmt.Fprintf(&b, "Gender: %s\n", req.Gender)
	fmt.Fprintf(&b, "Blood Type: %s\n", req.BloodType)
	fmt.Fprintf(&b, "Date: %s\n", req.BirthDate)
	fmt.Fprintf(&b, "Time: %s\n", orUnknown(req.BirthTime))
	fmt.Fprintf(&b, "Location: %s\n", orUnknown(req.BirthLocation))
	fmt.Fprintf(&b, "Lunar Date Info: %s\n", lunar)
	fmt.Fprintf(&b, "Today's Date: %s\n", today)
	return b.String()
}

func fullReportPrompt(req domain.FortuneRequest, lunar, today string) string {
	var b strings.Builder
	b.WriteString("Perform a **GRAND UNIFIED DESTINY REPORT** (全能命理報告) for the subject.\n\n")
	b.WriteString(subjectInfo(req, lunar, today))
	b.WriteString("\nThis report MUST include ALL of the following sections. Be detailed but concise in each section.\n\n")
	b.WriteString(fullReportBlockInstruction)
	b.WriteString("\n\nAfter the Date Reference, provide the analysis in this order:\n\n")
	fmt.Fprintf(&b, `# 1. 【姓名詳批】 (Name Analysis)
- **Score (姓名評分):** State the score out of 100.
- **Cultural Meaning (寓意):** Analyze the meaning of the characters %s%s.
- **Three Talents (三才配置):** Briefly analyze the Heaven, Earth, Man structure.

# 2. 【八字命盤分析】 (Bazi Analysis)
- **Na Yin Destiny (納音命格):** State the Year Pillar Na Yin and explain its meaning.
- **Main Destiny Star (命宮主星):** The Day Master.
- **Five Elements Balance (五行喜忌):** Strengths/Weaknesses.
- **Balancing Guide (五行開運):** Lucky Colors, Directions, Materials.
- **Core Personality (性格特質):** Strengths, Weaknesses, Inner vs Outer Self.
- **Love & Career (愛情與事業):** Relationship advice and career direction.
- **Current Year Fortune (流年運勢):** Prediction for the current year.

# 3. 【星座與生肖】 (Identity & Zodiac)
- **Western Zodiac (星座):** Sun sign traits.
- **Chinese Zodiac (生肖):** Animal sign characteristics.
- **Birthday Code (生日密碼):** Numerology of the birth date.

# 4. 【袁天罡稱骨算命】 (Bone Weight)
- Calculate the Bone Weight based on the Lunar Date provided (%s).
- State the Weight (e.g. 4 Liang 2 Qian).
- **The Poem (歌訣):** Provide the traditional poem.
- **Interpretation (批註):** Explain the poem's meaning for their life span and fortune.

# 5. 【黃歷提示】 (Almanac Guidance)
- Provide guidance based on the day of birth (what kind of day was it?).
- Provide a brief 'Daily Horoscope' for Today (%s) for this person.
`, req.Surname, req.GivenName, lunar, today)
	return b.String()
}

func baziPrompt(req domain.FortuneRequest, lunar, today string) string {
	var b strings.Builder
	b.WriteString("Perform a comprehensive 'Bazi' (Eight Characters) analysis for the subject.\n\n")
	b.WriteString(subjectInfo(req, lunar, today))
	b.WriteString("\n")
	b.WriteString(chartBlockInstruction)
	b.WriteString(`

Sections:
### 【納音命格】 (Na Yin Destiny)
State the specific Na Yin (e.g. 劍鋒金, 山頭火) and its implications.
### 【命宮主星】 (Main Destiny Star)
### 【五行喜忌】 (Five Elements Balance)
#### Five Elements Balancing Guide (五行開運指南)
### 【愛情提示】 (Love Tips)
### 【事業提示】 (Career Tips)
### 【財運提示】 (Wealth Tips)
### 【健康提示】 (Health Tips)
### 【性格提示】 (Personality Tips)
#### Day Master Traits (日主特質)
#### Strengths (優點)
#### Weaknesses (缺點)
#### Inner vs Outer Self (外在與內在)
### 【流年運勢】 (Current Year Fortune)
`)
	return b.String()
}

func zodiacPrompt(req domain.FortuneRequest, lunar, today string) string {
	var b strings.Builder
	b.WriteString("Perform an 'Identity & Zodiac' analysis for the subject.\n\n")
	b.WriteString(subjectInfo(req, lunar, today))
	b.WriteString("\nInclude: 【星座算命】, 【你的生肖】, 【生日密碼】, 【配對建議】.\n")
	return b.String()
}

func boneWeightPrompt(req domain.FortuneRequest, lunar, today string) string {
	var b strings.Builder
	b.WriteString("Perform a 'Bone Weight' (袁天罡稱骨算命) calculation.\n\n")
	b.WriteString(subjectInfo(req, lunar, today))
	fmt.Fprintf(&b, "\n1. Calculate weight based on LUNAR DATE: %s.\n2. State weight.\n3. Poem.\n4. Interpretation.\n", lunar)
	return b.String()
}

func almanacPrompt(req domain.FortuneRequest, lunar string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Perform an 'Almanac Query' (黃歷查詢) for the DATE provided: %s.\n", req.BirthDate)
	fmt.Fprintf(&b, "LUNAR DATE: %s\n", lunar)
	b.WriteString("Include: Heavenly Stems/Branches, 【宜】 (Good for), 【忌】 (Bad for), Daily Stars/Gods, Daily Guidance.\n")
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return unknownField
	}
	return s
}
