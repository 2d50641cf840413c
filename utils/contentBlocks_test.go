package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyParagraphLessonHeading(t *testing.T) {
	block := ClassifyParagraph("Lesson 1: Setting up your environment")

	assert.Equal(t, BlockLessonHeading, block.Kind)
	assert.Equal(t, "Lesson 1", block.Title)
	assert.Equal(t, "Setting up your environment", block.Body)
}

func TestClassifyParagraphStepHeadingCaseInsensitive(t *testing.T) {
	block := ClassifyParagraph("step 12: Deploy to production")

	assert.Equal(t, BlockLessonHeading, block.Kind)
	assert.Equal(t, "step 12", block.Title)
}

func TestClassifyParagraphRepoLink(t *testing.T) {
	block := ClassifyParagraph("GitHub repo: https://github.com/example/demo-app for the full code")

	assert.Equal(t, BlockRepoLink, block.Kind)
	assert.Equal(t, "https://github.com/example/demo-app", block.URL)
}

func TestClassifyParagraphProTip(t *testing.T) {
	block := ClassifyParagraph("Pro tip: always run the linter before you push")

	assert.Equal(t, BlockProTip, block.Kind)
	assert.Equal(t, "always run the linter before you push", block.Body)
}

func TestClassifyParagraphPlainText(t *testing.T) {
	block := ClassifyParagraph("Nothing special about this sentence.")

	assert.Equal(t, BlockParagraph, block.Kind)
	assert.Equal(t, "Nothing special about this sentence.", block.Body)
}

func TestClassifyContentSkipsCodeFences(t *testing.T) {
	content := "Lesson 1: Intro\n\n```go\n// Pro tip: this is code, not a callout\n```\n\nPro tip: this one is real"

	blocks := ClassifyContent(content)

	assert.Len(t, blocks, 3)
	assert.Equal(t, BlockLessonHeading, blocks[0].Kind)
	assert.Equal(t, BlockParagraph, blocks[1].Kind)
	assert.Equal(t, BlockProTip, blocks[2].Kind)
}

func TestClassifyContentMultiParagraphFence(t *testing.T) {
	content := "Intro text\n\n```python\nprint('a')\n\nprint('b')\n```\n\nOutro text"

	blocks := ClassifyContent(content)

	assert.Len(t, blocks, 3)
	assert.Equal(t, BlockParagraph, blocks[1].Kind)
	assert.Contains(t, blocks[1].Body, "print('a')")
	assert.Contains(t, blocks[1].Body, "print('b')")
}
