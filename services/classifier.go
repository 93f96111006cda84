package services

import "strings"

// Topic is a subject-matter label used to route a question to a
// contextualized prompt. The zero value is not valid; use TopicNone for
// out-of-domain input.
type Topic struct {
	Name     string
	Emoji    string
	Keywords []string
	Symbols  []string
	Hint     string
	Examples []string
}

// IsNone reports whether the topic marks out-of-domain input.
func (t Topic) IsNone() bool {
	return t.Name == "none"
}

// TopicNone is returned for input that matches no topic.
var TopicNone = Topic{Name: "none"}

// defaultTopics is the merged keyword table across all bot iterations.
// Order matters: classification is first-match-wins in declaration order,
// so a question touching two topics resolves to the earlier one.
func defaultTopics() []Topic {
	return []Topic{
		{
			Name:  "algebra",
			Emoji: "📈",
			Keywords: []string{
				"vergelijking", "equation", "los op", "solve",
				"onbekende", "formule", "algebra", "kwadraat",
				"wortel", "macht", "ontbind", "factor",
			},
			Hint: "Dit is een algebravraag. Werk stap voor stap naar de onbekende toe.",
			Examples: []string{
				"Vraag: los op 2x + 3 = 11. Antwoord: x = 4 fam, haal eerst die 3 weg en deel door 2 📈",
			},
		},
		{
			Name:  "geometry",
			Emoji: "📐",
			Keywords: []string{
				"driehoek", "triangle", "oppervlakte", "area",
				"omtrek", "cirkel", "circle", "hoek", "angle",
				"pythagoras", "meetkunde", "diameter", "straal",
				"vierkant", "rechthoek",
			},
			Hint: "Dit is een meetkundevraag. Noem de formule die je gebruikt.",
			Examples: []string{
				"Vraag: wat is de oppervlakte van een cirkel met straal 3? Antwoord: pi keer 3 kwadraat, dus ongeveer 28,3 📐",
			},
		},
		{
			Name:  "statistics",
			Emoji: "📊",
			Keywords: []string{
				"gemiddelde", "average", "mean", "mediaan", "median",
				"modus", "kans", "probability", "statistiek",
				"standaardafwijking", "spreiding",
			},
			Hint: "Dit is een statistiekvraag. Houd het concreet met de gegeven getallen.",
			Examples: []string{
				"Vraag: wat is het gemiddelde van 4, 6 en 8? Antwoord: tel op en deel door 3, dus 6 fam 📊",
			},
		},
		{
			Name:  "arithmetic",
			Emoji: "🧮",
			Keywords: []string{
				"plus", "min", "keer", "gedeeld", "optellen",
				"aftrekken", "vermenigvuldig", "delen", "breuk",
				"fraction", "procent", "percent", "reken", "som",
			},
			Symbols: []string{"+", "-", "*", "/", "=", "%", "×", "÷", "²"},
			Hint:    "Dit is een rekenvraag. Geef het antwoord direct.",
			Examples: []string{
				"Vraag: 3 + 5. Antwoord: 8, ez money 🧮",
			},
		},
	}
}

// Classifier assigns a Topic to free-text input by keyword and symbol
// membership. Pure over a static table.
type Classifier struct {
	topics []Topic
}

// NewClassifier creates a classifier over the default topic table.
func NewClassifier() *Classifier {
	return &Classifier{topics: defaultTopics()}
}

// Classify returns the first topic whose keywords or symbols appear in the
// input, or TopicNone. Keywords match as lower-cased substrings, symbols
// match verbatim.
func (c *Classifier) Classify(text string) Topic {
	lower := strings.ToLower(text)

	for _, topic := range c.topics {
		for _, kw := range topic.Keywords {
			if strings.Contains(lower, kw) {
				return topic
			}
		}
		for _, sym := range topic.Symbols {
			if strings.Contains(text, sym) {
				return topic
			}
		}
	}

	return TopicNone
}

// Topics returns the classifier's topic table in declaration order.
func (c *Classifier) Topics() []Topic {
	return c.topics
}
