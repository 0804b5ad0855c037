package extract

import "strings"

// SystemPrompt is shared by every extraction call.
const SystemPrompt = "You are a financial data extraction assistant."

const extractionPrompt = `Given the following text from a company's earnings report, extract any mention of:
- Revenue
- Earnings
- Operating margin
- Revenue growth rates (year-over-year, quarter-over-quarter, etc.)
- Guidance or outlook, if present

Return the extracted data as valid JSON with the following structure, even if some fields
are missing. Return ONLY valid JSON. Do NOT include any explanation or extra text. If you
cannot find data, leave the fields blank, but keep the JSON valid:
{
  "Revenue": "...",
  "Earnings": "...",
  "OperatingMargin": "...",
  "RevenueGrowthRates": "...",
  "Guidance": "..."
}`

// BuildPrompt creates the full extraction prompt for one chunk of text.
func BuildPrompt(chunkText string) string {
	var sb strings.Builder
	sb.WriteString(extractionPrompt)
	sb.WriteString("\n\nText to analyze:\n")
	sb.WriteString(chunkText)
	return sb.String()
}
