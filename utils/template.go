package utils

import "regexp"

var templateKeyPattern = regexp.MustCompile(`{{\s*(\w+)\s*}}`)

// RenderTemplate substitutes {{key}} placeholders with values from data.
// Unknown keys render as empty strings.
func RenderTemplate(template string, data map[string]string) string {
	return templateKeyPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := templateKeyPattern.FindStringSubmatch(match)[1]
		return data[key]
	})
}
