package prompt

import (
	"fmt"
	"strings"

	"github.com/tianji-app/fortune-api/internal/domain"
)

const physiognomyChecklist = `**Multi-Image Integration:**
- If multiple hands are provided, compare Left (Innate/Born) vs Right (Acquired/Current) for a complete life trajectory.
- If Face and Hand are provided, cross-reference the "Twelve Palaces" of the face with the "Mounts" of the hand for verification.

**PALMISTRY CHECKLIST (Look for these in the hand images):**
1. **The Three Main Lines (三大主紋):**
   - **Life Line (生命線):** Depth, length, and curve. Look for upward branches (Effort lines) or downward forks.
   - **Wisdom Line (智慧線):** Length and origin.
   - **Love/Emotion Line (感情線):** Curve and termination point. Look for "Phoenix Tail" (splits at the end).

2. **Wealth & Career Indicators (財運與事業):**
   - **Fate/Career Line (事業線/玉柱紋):** Does it start from the base or the Moon Mount (貴人/Help from others)? Is it broken (job change) or straight?
     *Note: Intersection with Wisdom line is approx age 35. Intersection with Love line is approx age 50-55.*
   - **Money Lines (財運線):** Vertical lines under the ring finger/little finger (Mercury/Sun mounts).
   - **Phoenix Eye (夫子眼/鳳眼紋):** An eye-shape on the thumb joint (sign of intelligence/good marriage).
   - **Ingot Shape (元寶紋):** A trapezoid shape formed by the intersection of Life, Head, and Fate lines (sign of holding wealth).
   - **M-Shape:** Do the main lines form a clear 'M'?

3. **Special Marks & Mounts (符號與宮位):**
   - **Mount of Jupiter (巽宮 - Index finger base):** Look for grids (井字紋) or fullness (Leadership/Wealth).
   - **Ming Tang (明堂 - Center of palm):** Should be slightly concave (holding water/money).
   - **Triangles (三角紋):** On any main line, usually indicates a specific event or luck.
   - **Marriage Lines (婚姻線):** On the side of the palm under the pinky. Deep vs shallow.

**FACE READING CHECKLIST (Look for these in face images):**
Analyze the 'Twelve Palaces' (十二宮), specifically:
- **Life Palace (命宮 - Between eyebrows):** Brightness and width.
- **Wealth Palace (財帛宮 - Nose):** Size of nose tip and wings.
- **Career Palace (官祿宮 - Forehead):** Smoothness and height.
- **Parents Palace (父母宮):** Forehead sides.

**Output Format:**
Start with a respectful greeting.
Then provide a structured analysis using these sections:
- **【總體印象】 (Overall Impression)**
- **【重點特徵分析】 (Key Features Analysis)**: List specific lines/marks found across all images.
- **【流年推斷】 (Timeline Prediction)**: If applicable (e.g. "Around age 35...").
- **【大師建議】 (Master's Advice)**`

// Physiognomy builds the face/palm reading prompt for n uploaded images.
func Physiognomy(imageCount int, lang domain.Language) (Prompt, error) {
	if _, err := domain.ParseLanguage(string(lang)); err != nil {
		return Prompt{}, err
	}

	system := fmt.Sprintf("Act as a grandmaster of Chinese Physiognomy (Face Reading) and Palmistry (手相). Tone: mystical, traditional, encouraging, but honest. Output Language: %s.", lang.PromptName())

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze these %d image(s) combined with extreme detail.\n\n", imageCount)
	b.WriteString(physiognomyChecklist)
	b.WriteString("\n")

	return Prompt{System: system, User: b.String()}, nil
}
