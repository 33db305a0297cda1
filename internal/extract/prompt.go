package extract

import (
	"fmt"
	"strings"

	"github.com/votewatch-ja/stations-cli/internal/parish"
)

// maxDocChars bounds how much document text goes into a single prompt. ECJ
// directories fit comfortably; the cap guards against pathological pages.
const maxDocChars = 150_000

// systemPrompt is the shared instruction for the station extraction call.
const systemPrompt = `You are a data-entry specialist for a Jamaican election-monitoring system. You are reading official Electoral Commission of Jamaica documents to extract polling-station records.

Rules:
- Extract ONLY stations that appear in the provided document text
- Return a single valid JSON array; no commentary outside it
- Every record must name its facility and its parish exactly as tabulated below
- Station codes are the parish's 3-letter prefix plus a zero-padded 3-digit sequence (e.g. KIN007)
- If the document does not state a code, assign the next sequence number for that parish in document order
- Omit optional fields you cannot find rather than guessing
- Numbers are raw JSON numbers, never formatted strings`

// BuildSystemPrompt returns the system instruction.
func BuildSystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt assembles the one-shot extraction prompt: field schema, the
// full prefix and parish-ID tables, one example record, then the document
// text.
func BuildUserPrompt(sourceName, docText string) string {
	if len(docText) > maxDocChars {
		docText = docText[:maxDocChars]
	}

	var sb strings.Builder

	sb.WriteString("Extract every polling station from the document below into a JSON array.\n\n")

	sb.WriteString(`Fields per record:
- "stationCode": string, parish prefix + zero-padded sequence (required)
- "name": string, facility name such as a school, church or community centre (required)
- "address": string, free-text location (required when present in the document)
- "parish": string, canonical parish name from the table below (required)
- "parishId": integer, the parish's ID from the table below (required)
- "constituency", "division": strings (optional)
- "latitude", "longitude": numbers (optional)
- "capacity", "registeredVoters": integers (optional)

`)

	sb.WriteString("Parish table (prefix, name, parishId):\n")
	for _, p := range parish.All {
		fmt.Fprintf(&sb, "- %s  %s  %d\n", p.Prefix, p.Name, p.ID)
	}

	sb.WriteString(`
Example output:
[
  {"stationCode": "KIN001", "name": "Alpha Primary School", "address": "12 Church Street, Kingston", "parish": "Kingston", "parishId": 1}
]

`)

	fmt.Fprintf(&sb, "Document (%s):\n---\n%s\n---\n", sourceName, docText)

	return sb.String()
}
