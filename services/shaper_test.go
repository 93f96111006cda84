package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiskoro-bot/config"
)

func newTestShaper(maxSentences, maxChars int) (*Shaper, []Topic) {
	topics := defaultTopics()
	return NewShaper(maxSentences, maxChars, config.DefaultPersona(), topics), topics
}

func topicByName(t *testing.T, topics []Topic, name string) Topic {
	t.Helper()
	for _, topic := range topics {
		if topic.Name == name {
			return topic
		}
	}
	t.Fatalf("no topic named %s", name)
	return TopicNone
}

func TestShapeAppendsTopicEmoji(t *testing.T) {
	s, topics := newTestShaper(2, 280)
	arithmetic := topicByName(t, topics, "arithmetic")

	assert.Equal(t, "8 🧮", s.Shape("8", arithmetic))
}

func TestShapeKeepsExistingEmoji(t *testing.T) {
	s, topics := newTestShaper(2, 280)
	arithmetic := topicByName(t, topics, "arithmetic")

	got := s.Shape("Het antwoord is 8 🔥", arithmetic)
	assert.Equal(t, "Het antwoord is 8 🔥", got)
}

func TestShapeCapsSentences(t *testing.T) {
	s, topics := newTestShaper(2, 280)
	arithmetic := topicByName(t, topics, "arithmetic")

	got := s.Shape("Een. Twee. Drie. Vier.", arithmetic)
	assert.Equal(t, "Een. Twee. 🧮", got)
}

func TestShapeStripsMetaSentences(t *testing.T) {
	s, topics := newTestShaper(2, 280)
	arithmetic := topicByName(t, topics, "arithmetic")

	tests := []string{
		"Als AI kan ik je hiermee helpen. Het antwoord is 8.",
		"Ik ben een taalmodel dus reken maar na. Het antwoord is 8.",
		"As a language model I can solve this. Het antwoord is 8.",
	}

	for _, raw := range tests {
		got := s.Shape(raw, arithmetic)
		assert.Equal(t, "Het antwoord is 8. 🧮", got, "raw: %s", raw)
	}
}

func TestShapeStripsTranslationNotes(t *testing.T) {
	s, topics := newTestShaper(2, 280)
	arithmetic := topicByName(t, topics, "arithmetic")

	got := s.Shape("Het antwoord is acht (translation: the answer is eight)", arithmetic)
	assert.NotContains(t, got, "translation")
	assert.Contains(t, got, "acht")
}

func TestShapeTruncatesWithClosingMarker(t *testing.T) {
	s, topics := newTestShaper(2, 40)
	arithmetic := topicByName(t, topics, "arithmetic")

	got := s.Shape("Dit is een behoorlijk lange eerste zin over wiskunde. En dan nog een tweede zin erachteraan.", arithmetic)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 40)
	assert.Contains(t, got, "💯")
}

func TestShapeDropsTrailingSentenceUnderLimit(t *testing.T) {
	s, topics := newTestShaper(3, 60)
	arithmetic := topicByName(t, topics, "arithmetic")

	got := s.Shape("Het antwoord is acht fam. Dit is een tweede zin die het geheel over de limiet duwt.", arithmetic)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 60)
	assert.Contains(t, got, "Het antwoord is acht fam.")
	assert.Contains(t, got, "💯")
}

func TestShapeCollapsesWhitespace(t *testing.T) {
	s, topics := newTestShaper(2, 280)
	arithmetic := topicByName(t, topics, "arithmetic")

	got := s.Shape("Regel een\n\nregel   twee", arithmetic)
	assert.NotContains(t, got, "\n")
	assert.NotContains(t, got, "  ")
}

func TestShapeEmptyInputFallsBack(t *testing.T) {
	s, topics := newTestShaper(2, 280)
	arithmetic := topicByName(t, topics, "arithmetic")

	persona := config.DefaultPersona()
	assert.Equal(t, persona.EmptyReplyFallback, s.Shape("", arithmetic))
	assert.Equal(t, persona.EmptyReplyFallback, s.Shape("   \n  ", arithmetic))
}

func TestShapeGuarantees(t *testing.T) {
	s, topics := newTestShaper(2, 120)
	geometry := topicByName(t, topics, "geometry")

	raws := []string{
		"8",
		"De oppervlakte is pi keer r kwadraat. Vul de straal in. Dan ben je klaar. Nog een zin.",
		"Als AI moet ik zeggen: " + strings.Repeat("heel ", 60) + "lang verhaal.",
		"Ik ben een chatbot.",
	}

	for _, raw := range raws {
		got := s.Shape(raw, geometry)
		require.NotEmpty(t, got, "raw: %s", raw)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 120, "raw: %s", raw)
		assert.True(t, s.containsAllowedEmoji(got), "no emoji in %q", got)
		assert.False(t, metaSentenceRe.MatchString(got), "meta left in %q", got)
		assert.LessOrEqual(t, len(splitSentences(got)), 3, "too many sentences in %q", got)
	}
}
