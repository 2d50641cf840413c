package utils

import (
	"regexp"
	"strings"
)

// ContentBlock kinds recognized in free-text content fields
const (
	BlockParagraph     = "paragraph"
	BlockLessonHeading = "lesson_heading"
	BlockRepoLink      = "repo_link"
	BlockProTip        = "pro_tip"
)

// ContentBlock is a tagged variant for a recognized paragraph pattern.
// Title is set for lesson headings, URL for repo links.
type ContentBlock struct {
	Kind  string `json:"kind"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

var (
	lessonHeadingPattern = regexp.MustCompile(`(?i)^(Lesson|Step|Module|Phase)\s+\d+`)
	repoLinkPattern      = regexp.MustCompile(`(?i)github repo:\s*https?://`)
	urlPattern           = regexp.MustCompile(`https?://\S+`)
	proTipPattern        = regexp.MustCompile(`(?i)^Pro tip:`)
)

// ClassifyParagraph tags a single paragraph of content. Plain text falls
// through to BlockParagraph.
func ClassifyParagraph(text string) ContentBlock {
	text = strings.TrimSpace(text)

	if lessonHeadingPattern.MatchString(text) {
		title, rest, found := strings.Cut(text, ":")
		block := ContentBlock{Kind: BlockLessonHeading, Title: strings.TrimSpace(title)}
		if found {
			block.Body = strings.TrimSpace(rest)
		}
		return block
	}

	if repoLinkPattern.MatchString(text) {
		url := urlPattern.FindString(text)
		return ContentBlock{Kind: BlockRepoLink, Body: text, URL: url}
	}

	if proTipPattern.MatchString(text) {
		body := strings.TrimSpace(proTipPattern.ReplaceAllString(text, ""))
		return ContentBlock{Kind: BlockProTip, Body: body}
	}

	return ContentBlock{Kind: BlockParagraph, Body: text}
}

// ClassifyContent splits markdown content into paragraphs and classifies each
// one. Fenced code blocks are passed through untagged.
func ClassifyContent(content string) []ContentBlock {
	var blocks []ContentBlock
	inFence := false
	var fence []string

	for _, paragraph := range strings.Split(content, "\n\n") {
		trimmed := strings.TrimSpace(paragraph)
		if trimmed == "" {
			continue
		}

		// Track ``` fences so code is never pattern-matched
		fenceMarks := strings.Count(trimmed, "```")
		if inFence || fenceMarks%2 == 1 {
			fence = append(fence, trimmed)
			if fenceMarks%2 == 1 {
				inFence = !inFence
			}
			if !inFence {
				blocks = append(blocks, ContentBlock{Kind: BlockParagraph, Body: strings.Join(fence, "\n\n")})
				fence = nil
			}
			continue
		}
		if fenceMarks > 0 {
			// self-contained code block
			blocks = append(blocks, ContentBlock{Kind: BlockParagraph, Body: trimmed})
			continue
		}

		blocks = append(blocks, ClassifyParagraph(trimmed))
	}

	if len(fence) > 0 {
		blocks = append(blocks, ContentBlock{Kind: BlockParagraph, Body: strings.Join(fence, "\n\n")})
	}

	return blocks
}
