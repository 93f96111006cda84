package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKeywords(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		input string
		topic string
	}{
		{"los de vergelijking 2x + 3 = 11 op", "algebra"},
		{"Hoe ontbind ik dit in factoren?", "algebra"},
		{"wat is de oppervlakte van een driehoek", "geometry"},
		{"Leg de stelling van Pythagoras uit", "geometry"},
		{"wat is het gemiddelde van 4, 6 en 8", "statistics"},
		{"hoe groot is de kans op kop", "statistics"},
		{"wat is zeven keer acht", "arithmetic"},
		{"hoeveel procent is 3 van 12", "arithmetic"},
	}

	for _, tt := range tests {
		got := c.Classify(tt.input)
		assert.Equal(t, tt.topic, got.Name, "input: %s", tt.input)
		assert.False(t, got.IsNone())
		assert.NotEmpty(t, got.Emoji)
	}
}

func TestClassifySymbols(t *testing.T) {
	c := NewClassifier()

	for _, input := range []string{"3 + 5", "10 / 2", "x = 4", "50%", "6 × 7"} {
		got := c.Classify(input)
		assert.False(t, got.IsNone(), "input: %s", input)
	}
}

func TestClassifyOutOfDomain(t *testing.T) {
	c := NewClassifier()

	for _, input := range []string{
		"wie is de beste voetballer",
		"wat vind jij van muziek",
		"hallo, hoe gaat het",
	} {
		assert.True(t, c.Classify(input).IsNone(), "input: %s", input)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := NewClassifier()

	// Touches both algebra (vergelijking) and geometry (driehoek); the
	// earlier topic in declaration order wins.
	got := c.Classify("stel een vergelijking op voor deze driehoek")
	assert.Equal(t, "algebra", got.Name)
}

func TestClassifyCaseInsensitiveKeywords(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, "geometry", c.Classify("DRIEHOEK met hoek van 90 graden").Name)
}
