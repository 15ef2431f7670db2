package deck

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxSlides is the upper bound on slides produced for any input.
	MaxSlides = 5

	// MaxContentLines is the maximum number of bullet lines on a slide.
	MaxContentLines = 4

	// minSentenceLen is the trimmed length a fragment must exceed to count as a sentence.
	minSentenceLen = 10

	// minLineLen is the trimmed length a sentence must exceed to appear as a bullet.
	minLineLen = 5

	// topicLen is the number of characters of the first sentence used as the topic.
	topicLen = 50

	// DefaultTopic is used when no sentence survives segmentation.
	DefaultTopic = "Study Topic"
)

var terminators = regexp.MustCompile(`[.!?]+`)

// Slide is one titled, bulleted unit of the generated presentation.
type Slide struct {
	Title       string   `json:"title"`
	Content     []string `json:"content"`
	ImagePrompt string   `json:"imagePrompt"`
}

// Sentences splits text on runs of sentence terminators and keeps the
// fragments whose trimmed length exceeds 10 characters. Fragments are
// returned untrimmed, in input order.
func Sentences(text string) []string {
	var out []string
	for _, frag := range terminators.Split(text, -1) {
		if utf8.RuneCountInString(strings.TrimSpace(frag)) > minSentenceLen {
			out = append(out, frag)
		}
	}
	return out
}

// Topic derives the session topic label from the first sentence.
func Topic(sentences []string) string {
	if len(sentences) == 0 {
		return DefaultTopic
	}
	first := sentences[0]
	if utf8.RuneCountInString(first) > topicLen {
		first = string([]rune(first)[:topicLen])
	}
	return first + "..."
}

// ChunkSize returns how many sentences go on each slide so that at most
// MaxSlides slides are produced.
func ChunkSize(sentenceCount int) int {
	size := (sentenceCount + MaxSlides - 1) / MaxSlides
	if size < 1 {
		return 1
	}
	return size
}

// Segment groups sentences into slides. It returns nil when no sentence
// qualifies. The result depends only on text.
func Segment(text string) []Slide {
	return segmentSentences(Sentences(text))
}

func segmentSentences(sentences []string) []Slide {
	if len(sentences) == 0 {
		return nil
	}

	size := ChunkSize(len(sentences))
	slides := make([]Slide, 0, (len(sentences)+size-1)/size)
	for i := 0; i < len(sentences); i += size {
		end := min(i+size, len(sentences))
		title := fmt.Sprintf("Topic %d", i/size+1)

		var content []string
		for _, s := range sentences[i:end] {
			s = strings.TrimSpace(s)
			if utf8.RuneCountInString(s) > minLineLen {
				content = append(content, s)
			}
		}
		if len(content) > MaxContentLines {
			content = content[:MaxContentLines]
		}

		slides = append(slides, Slide{
			Title:       title,
			Content:     content,
			ImagePrompt: "Educational illustration for " + strings.ToLower(title),
		})
	}
	return slides
}

// NarrationText is the text read aloud for a slide.
func (s Slide) NarrationText() string {
	return s.Title + ". " + strings.Join(s.Content, ". ")
}
