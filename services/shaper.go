package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"wiskoro-bot/config"
)

// metaSentenceRe flags sentences where the model discloses being an AI or
// slips out of persona. Any matching sentence is dropped whole.
var metaSentenceRe = regexp.MustCompile(`(?i)(as an ai|as a language model|language model|taalmodel|ik ben een (ai|bot|chatbot|model|assistent)|als (een )?ai\b|kunstmatige intelligentie|artificial intelligence|ai.assistent|my training data)`)

// translationNoteRe strips parenthetical translation notes the model
// sometimes appends to Dutch replies.
var translationNoteRe = regexp.MustCompile(`\([^)]*(?i:vertaling|vertaald|translation|translated|in english)[^)]*\)`)

// Shaper normalizes a raw completion into a bounded, on-persona message.
// Deterministic given its input.
type Shaper struct {
	maxSentences   int
	maxChars       int
	closingMarker  string
	fallbackEmojis []string
	allowedEmojis  []string
	emptyFallback  string
}

// NewShaper builds a shaper from the configured limits and persona data.
// The emoji allow-list is the persona fallback pool plus every topic emoji.
func NewShaper(maxSentences, maxChars int, persona config.Persona, topics []Topic) *Shaper {
	allowed := make([]string, 0, len(persona.FallbackEmojis)+len(topics))
	allowed = append(allowed, persona.FallbackEmojis...)
	for _, t := range topics {
		if t.Emoji != "" {
			allowed = append(allowed, t.Emoji)
		}
	}

	return &Shaper{
		maxSentences:   maxSentences,
		maxChars:       maxChars,
		closingMarker:  persona.ClosingMarker,
		fallbackEmojis: persona.FallbackEmojis,
		allowedEmojis:  allowed,
		emptyFallback:  persona.EmptyReplyFallback,
	}
}

// Shape applies the full pass: whitespace collapse, meta-sentence strip,
// sentence cap, length cap with closing marker, emoji guarantee. Output is
// non-empty, at most maxChars long, and contains at least one allowed emoji.
func (s *Shaper) Shape(raw string, topic Topic) string {
	text := collapseWhitespace(raw)
	text = translationNoteRe.ReplaceAllString(text, "")

	var kept []string
	for _, sentence := range splitSentences(text) {
		if metaSentenceRe.MatchString(sentence) {
			continue
		}
		kept = append(kept, sentence)
	}

	if len(kept) > s.maxSentences {
		kept = kept[:s.maxSentences]
	}

	result := strings.Join(kept, " ")

	if utf8.RuneCountInString(result) > s.maxChars {
		// Leave room for the closing marker and the space before it.
		budget := s.maxChars - utf8.RuneCountInString(s.closingMarker) - 1
		for len(kept) > 1 && utf8.RuneCountInString(strings.Join(kept, " ")) > budget {
			kept = kept[:len(kept)-1]
		}
		result = strings.Join(kept, " ")
		if utf8.RuneCountInString(result) > budget {
			runes := []rune(result)
			result = strings.TrimSpace(string(runes[:budget]))
		}
		result = result + " " + s.closingMarker
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return s.emptyFallback
	}

	if !s.containsAllowedEmoji(result) {
		emoji := topic.Emoji
		if emoji == "" {
			emoji = s.fallbackEmojis[utf8.RuneCountInString(result)%len(s.fallbackEmojis)]
		}
		// Make room so the emoji never pushes the result over the cap.
		room := s.maxChars - utf8.RuneCountInString(emoji) - 1
		if utf8.RuneCountInString(result) > room {
			runes := []rune(result)
			result = strings.TrimSpace(string(runes[:room]))
		}
		result = result + " " + emoji
	}

	return result
}

func (s *Shaper) containsAllowedEmoji(text string) bool {
	for _, e := range s.allowedEmojis {
		if strings.Contains(text, e) {
			return true
		}
	}
	return false
}

// collapseWhitespace folds newlines and runs of spaces into single spaces.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// splitSentences splits on runs of sentence-ending punctuation followed by
// whitespace or end of input, keeping the punctuation with the sentence.
// Decimal points inside numbers do not split.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	i := 0

	for i < len(runes) {
		if isTerminator(runes[i]) {
			j := i
			for j+1 < len(runes) && isTerminator(runes[j+1]) {
				j++
			}
			if j+1 >= len(runes) || unicode.IsSpace(runes[j+1]) {
				if s := strings.TrimSpace(string(runes[start : j+1])); s != "" {
					sentences = append(sentences, s)
				}
				start = j + 1
			}
			i = j + 1
			continue
		}
		i++
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
