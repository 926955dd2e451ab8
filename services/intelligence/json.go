package intelligence

import "strings"

// extractJSON pulls the JSON document out of a model reply. Gemini often
// wraps JSON in markdown fences or leads with prose, so we take everything
// between the first opening brace/bracket and its matching last closer.
func extractJSON(reply string) string {
	s := strings.TrimSpace(reply)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	objStart := strings.IndexAny(s, "{[")
	if objStart < 0 {
		return ""
	}
	var closer byte
	if s[objStart] == '{' {
		closer = '}'
	} else {
		closer = ']'
	}
	objEnd := strings.LastIndexByte(s, closer)
	if objEnd <= objStart {
		return ""
	}
	return s[objStart : objEnd+1]
}
