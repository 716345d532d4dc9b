package coach

import "strings"

// extractJSON cleans a raw completion into something json.Unmarshal can take:
// trim, drop every ```json / ``` fence marker, trim again. Whether the result
// actually parses is the validator's problem.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
