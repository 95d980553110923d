package domain

import (
	"fmt"
	"strings"

	"github.com/gookit/validate"
)

// Language is the closed set of output languages the service supports.
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
	LangSpanish Language = "es"
	LangRussian Language = "ru"
	LangFrench  Language = "fr"
)

// promptNames maps each language to the name the oracle is instructed with.
var promptNames = map[Language]string{
	LangEnglish: "English",
	LangChinese: "Traditional Chinese (繁體中文)",
	LangSpanish: "Spanish",
	LangRussian: "Russian",
	LangFrench:  "French",
}

// ParseLanguage resolves a BCP 47-ish tag into one of the supported
// languages. Region subtags are ignored ("zh-TW" resolves to zh).
func ParseLanguage(tag string) (Language, error) {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tag)), "-")
	l := Language(base)
	if _, ok := promptNames[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
	return l, nil
}

// PromptName returns the human-readable name used in oracle instructions.
func (l Language) PromptName() string {
	if name, ok := promptNames[l]; ok {
		return name
	}
	return string(l)
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type BloodType string

const (
	BloodA       BloodType = "A"
	BloodB       BloodType = "B"
	BloodAB      BloodType = "AB"
	BloodO       BloodType = "O"
	BloodUnknown BloodType = "unknown"
)

// ReportMode selects which reading the oracle is asked to perform.
type ReportMode string

const (
	ModeBazi       ReportMode = "bazi"
	ModeZodiac     ReportMode = "zodiac"
	ModeBoneWeight ReportMode = "bone_weight"
	ModeAlmanac    ReportMode = "almanac"
	ModeFullReport ReportMode = "full_report"
)

// FortuneRequest is the biographical input for a destiny reading. It is
// built once at submit time and never mutated after the oracle call is
// issued.
type FortuneRequest struct {
	Surname       string     `json:"surname" validate:"required"`
	GivenName     string     `json:"given_name" validate:"required"`
	Gender        Gender     `json:"gender" validate:"required|in:M,F"`
	BloodType     BloodType  `json:"blood_type" validate:"required|in:A,B,AB,O,unknown"`
	BirthDate     string     `json:"birth_date" validate:"required|date"`
	BirthTime     string     `json:"birth_time,omitempty"`
	BirthLocation string     `json:"birth_location,omitempty"`
	LunarDate     string     `json:"lunar_date,omitempty"` // client-derived, passed through verbatim
	Mode          ReportMode `json:"mode" validate:"required|in:bazi,zodiac,bone_weight,almanac,full_report"`
}

// Validate checks the rules a request must satisfy before any oracle call
// may be issued.
func (r FortuneRequest) Validate() error {
	v := validate.Struct(r)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, v.Errors.One())
	}
	return nil
}

// ToolKind identifies one of the static divination tools.
type ToolKind string

const (
	ToolDream       ToolKind = "dream"
	ToolMatchmaking ToolKind = "matchmaking"
	ToolLots        ToolKind = "lots"
	ToolNumerology  ToolKind = "numerology"
)

// DivinationRequest carries the payload for a single divination tool.
// Only the fields matching Tool are consulted.
type DivinationRequest struct {
	Tool         ToolKind `json:"tool" validate:"required|in:dream,matchmaking,lots,numerology"`
	DreamText    string   `json:"dream_text,omitempty" validate:"requiredIf:Tool,dream"`
	PersonA      string   `json:"person_a,omitempty" validate:"requiredIf:Tool,matchmaking"`
	PersonB      string   `json:"person_b,omitempty" validate:"requiredIf:Tool,matchmaking"`
	Question     string   `json:"question,omitempty" validate:"requiredIf:Tool,lots"`
	NumberString string   `json:"number,omitempty" validate:"requiredIf:Tool,numerology"`
}

func (r DivinationRequest) Validate() error {
	v := validate.Struct(r)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, v.Errors.One())
	}
	return nil
}

// Image is an opaque uploaded payload forwarded to the vision oracle.
type Image struct {
	MIMEType string
	Data     []byte
}
