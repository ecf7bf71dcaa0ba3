package ai

import "strings"

// promptHeader is the fixed instruction prefixed to every quote request.
// Changing it changes the textual contract with the generation service,
// so it lives in exactly one place.
const promptHeader = "You are an experienced general contractor. " +
	"Provide an itemized quote with estimated costs for the following home renovation project."

// BuildPrompt renders a project description, and optionally a reference to
// an uploaded photo, into the exact prompt sent to the generation service.
// Deterministic: the same (details, imageURL) pair always yields the same
// text, and details is embedded verbatim.
func BuildPrompt(details string, imageURL *string) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n\nProject description:\n")
	b.WriteString(details)
	if imageURL != nil && *imageURL != "" {
		b.WriteString("\n\nA photo of the project area is available at: ")
		b.WriteString(*imageURL)
	}
	return b.String()
}
