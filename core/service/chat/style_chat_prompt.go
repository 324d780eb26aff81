package chat

import (
	"fmt"
	"strings"
)

const notSpecified = "Not specified"

// FallbackResponse is returned to the user whenever generation fails.
const FallbackResponse = "I'm sorry, I encountered an error processing your message."

const promptTemplate = `As a fashion AI assistant named %s, help with: %s

User's Style Context:
- Preferred Styles: %s
- Preferred Colors: %s

Focus on:
1. Current fashion trends
2. Specific style advice incorporating user preferences
3. Practical recommendations
4. Personal styling tips

Please provide a detailed but concise response.`

// joinOrNotSpecified renders values as a comma-separated list.
func joinOrNotSpecified(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return notSpecified
	}
	return strings.Join(kept, ", ")
}

// BuildPrompt fills the assistant template.
func BuildPrompt(assistant, message, styles, colors string) string {
	return fmt.Sprintf(promptTemplate, assistant, message, styles, colors)
}
