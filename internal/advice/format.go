package advice

import (
	"regexp"
	"strings"
)

var multiNewline = regexp.MustCompile(`\n\s*\n\s*\n`)

// FormatProfessional normalizes model output for display: bullet markers get
// their own line and runs of blank lines collapse to a single blank line.
func FormatProfessional(response string) string {
	if response == "" {
		return response
	}

	response = strings.TrimSpace(response)
	response = strings.ReplaceAll(response, "•", "\n• ")
	response = strings.ReplaceAll(response, "*", "\n• ")

	return multiNewline.ReplaceAllString(response, "\n\n")
}
