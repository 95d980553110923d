package prompt

import (
	"fmt"
	"strings"

	"github.com/tianji-app/fortune-api/internal/domain"
)

// Divination builds the prompt for one of the static divination tools.
func Divination(req domain.DivinationRequest, lang domain.Language) (Prompt, error) {
	if _, err := domain.ParseLanguage(string(lang)); err != nil {
		return Prompt{}, err
	}

	system := fmt.Sprintf("You are a mystical master of Chinese Divination (玄學大師). Output Language: %s. Use Markdown.", lang.PromptName())

	var b strings.Builder
	switch req.Tool {
	case domain.ToolDream:
		fmt.Fprintf(&b, "Perform \"Duke of Zhou's Dream Interpretation\" (周公解夢).\nDream content: %q.\n", req.DreamText)
		b.WriteString("Explain the omen (Good/Bad) and what this symbol means in traditional Chinese culture.\n")
	case domain.ToolMatchmaking:
		fmt.Fprintf(&b, "Perform \"Name/Love Compatibility\" (情感配對).\nPerson 1: %s. Person 2: %s.\n", req.PersonA, req.PersonB)
		b.WriteString("Analyze the affinity based on Five Elements of the names (or general numerology).\n")
		b.WriteString("Give a \"Compatibility Score\" (0-100%) and advice.\n")
	case domain.ToolLots:
		fmt.Fprintf(&b, "Perform \"Divination Lots\" (求籤 - e.g. Guanyin or Moon Elder).\nUser's Question/Focus: %q.\n", req.Question)
		b.WriteString("1. Randomly generate a Lot Number (e.g. 籤王, 上上籤, 中籤, 下下籤).\n")
		b.WriteString("2. Provide the \"Poem\" (籤詩).\n")
		b.WriteString("3. Provide the \"Interpretation\" (解籤) relative to the user's question.\n")
	case domain.ToolNumerology:
		fmt.Fprintf(&b, "Perform \"Number Numerology\" (號碼吉凶 - 81數理).\nNumber to analyze: %q (Phone or Plate).\n", req.NumberString)
		b.WriteString("Analyze the Feng Shui energy of these digits.\nVerdict: Auspicious or Inauspicious?\n")
	default:
		return Prompt{}, fmt.Errorf("%w: unknown tool %q", domain.ErrInvalidRequest, req.Tool)
	}

	return Prompt{System: system, User: b.String()}, nil
}
