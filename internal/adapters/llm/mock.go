package llm

import (
	"context"
	"strings"

	"github.com/tianji-app/fortune-api/internal/domain"
)

// mockReading includes a well-formed chart block so local development
// exercises the full extraction path.
const mockReading = "```json\n" + `{
  "chart": {
    "year":  { "stem": "庚", "branch": "午", "naYin": "路旁土" },
    "month": { "stem": "丁", "branch": "丑", "naYin": "澗下水" },
    "day":   { "stem": "甲", "branch": "子", "naYin": "海中金" },
    "hour":  { "stem": "丙", "branch": "寅", "naYin": "爐中火" }
  },
  "nameAnalysis": { "score": 88, "verdict": "吉" }
}` + "\n```" + `

### 【日期對照】 (Date Reference)
*   **公曆 (Gregorian):** offline reading

# 1. 【姓名詳批】 (Name Analysis)
This is a canned reading produced by the mock oracle for local development.
`

const mockProse = `### 【解籤】
The mists part briefly. This is a canned divination produced by the mock oracle.`

// MockOracle implements domain.Oracle without network access.
type MockOracle struct{}

func NewMockOracle() *MockOracle {
	return &MockOracle{}
}

func (m *MockOracle) Generate(_ context.Context, q domain.Query) (string, error) {
	// Replies demanding the chart contract get a chart; everything else
	// gets plain prose.
	if strings.Contains(q.User, "```json") {
		return mockReading, nil
	}
	return mockProse, nil
}
