package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		url := "https://cdn.example.com/uploads/a.png"
		a := BuildPrompt("Repaint kitchen", &url)
		b := BuildPrompt("Repaint kitchen", &url)
		assert.Equal(t, a, b)
	})

	t.Run("embeds details verbatim", func(t *testing.T) {
		details := "Knock down wall;\nadd <island> & \"lighting\""
		prompt := BuildPrompt(details, nil)
		assert.Contains(t, prompt, details)
	})

	t.Run("omits photo clause without image", func(t *testing.T) {
		prompt := BuildPrompt("Repaint kitchen", nil)
		assert.NotContains(t, prompt, "photo")
	})

	t.Run("appends photo reference when present", func(t *testing.T) {
		url := "https://cdn.example.com/uploads/a.png"
		prompt := BuildPrompt("Repaint kitchen", &url)
		assert.Contains(t, prompt, url)
	})

	t.Run("treats empty url as absent", func(t *testing.T) {
		empty := ""
		assert.Equal(t, BuildPrompt("x", nil), BuildPrompt("x", &empty))
	})
}
