package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate("<h1>Hi {{name}}</h1><a href=\"/unsubscribe?token={{unsubscribe_token}}\">bye</a>", map[string]string{
		"name":              "Dev",
		"unsubscribe_token": "tok-123",
	})

	assert.Equal(t, "<h1>Hi Dev</h1><a href=\"/unsubscribe?token=tok-123\">bye</a>", out)
}

func TestRenderTemplateAllowsSpacesInPlaceholders(t *testing.T) {
	out := RenderTemplate("Hi {{ name }}", map[string]string{"name": "Dev"})

	assert.Equal(t, "Hi Dev", out)
}

func TestRenderTemplateUnknownKeyRendersEmpty(t *testing.T) {
	out := RenderTemplate("Hi {{name}}{{missing}}", map[string]string{"name": "Dev"})

	assert.Equal(t, "Hi Dev", out)
}
