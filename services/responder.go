package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"wiskoro-bot/config"
	"wiskoro-bot/models"
)

// Responder runs the full pipeline for one question: classify, consult the
// cache, build the prompt, call the completion service, shape the reply,
// and store it. Failures come back as the tagged error variants; nothing
// is ever cached on a failure path.
type Responder struct {
	classifier *Classifier
	shaper     *Shaper
	cache      *ResponseCache
	completer  Completer
	store      *ExchangeStore
	persona    config.Persona
}

// NewResponder wires the pipeline. store may be nil to disable exchange
// logging.
func NewResponder(classifier *Classifier, shaper *Shaper, cache *ResponseCache, completer Completer, store *ExchangeStore, persona config.Persona) *Responder {
	return &Responder{
		classifier: classifier,
		shaper:     shaper,
		cache:      cache,
		completer:  completer,
		store:      store,
		persona:    persona,
	}
}

// Respond answers a validated question. fromCache reports whether the
// answer was served from the cache. Out-of-domain questions get a canned
// redirect without touching the cache or the completion service.
func (r *Responder) Respond(ctx context.Context, question string) (response string, fromCache bool, err error) {
	topic := r.classifier.Classify(question)

	if topic.IsNone() {
		msg := r.outOfDomainMessage(question)
		slog.Info("Out-of-domain question", "length", len(question))
		r.logExchange(&models.ChatExchange{
			Question: question,
			Answer:   msg,
			Topic:    topic.Name,
			Status:   models.ExchangeStatusOutOfDomain,
		})
		return msg, false, nil
	}

	if cached, ok := r.cache.Get(question); ok {
		slog.Info("Cache hit", "topic", topic.Name)
		r.logExchange(&models.ChatExchange{
			Question: question,
			Answer:   cached,
			Topic:    topic.Name,
			Status:   models.ExchangeStatusCached,
			Cached:   true,
		})
		return cached, true, nil
	}

	start := time.Now()
	raw, err := r.completer.Complete(ctx, r.persona.SystemPrompt, r.buildInput(topic, question))
	duration := time.Since(start)

	if err == nil && strings.EqualFold(strings.TrimSpace(raw), strings.TrimSpace(question)) {
		err = fmt.Errorf("%w: completion echoes the question", ErrInvalidCompletion)
	}

	if err != nil {
		slog.Error("Completion failed",
			"topic", topic.Name,
			"durationMs", duration.Milliseconds(),
			"error", err,
		)
		r.logExchange(&models.ChatExchange{
			Question:   question,
			Topic:      topic.Name,
			Status:     models.ExchangeStatusFailed,
			Error:      err.Error(),
			DurationMs: duration.Milliseconds(),
		})
		return "", false, err
	}

	shaped := r.shaper.Shape(raw, topic)
	r.cache.Set(question, shaped)

	slog.Info("Question answered",
		"topic", topic.Name,
		"durationMs", duration.Milliseconds(),
		"responseLength", len(shaped),
	)
	r.logExchange(&models.ChatExchange{
		Question:   question,
		Answer:     shaped,
		Topic:      topic.Name,
		Status:     models.ExchangeStatusSuccess,
		DurationMs: duration.Milliseconds(),
	})

	return shaped, false, nil
}

// RandomFact returns either a static fact from the persona pool or an
// AI-generated one. A completion failure falls back to a static fact so
// the frontend always gets something to render.
func (r *Responder) RandomFact(ctx context.Context) *models.FactResponse {
	if rand.Intn(2) == 0 {
		return r.staticFact()
	}

	factTopic := r.persona.FactTopics[rand.Intn(len(r.persona.FactTopics))]
	raw, err := r.completer.Complete(ctx, r.persona.SystemPrompt, r.persona.FactPrompt+factTopic)
	if err != nil {
		slog.Warn("AI fact failed, falling back to static", "error", err)
		return r.staticFact()
	}

	return &models.FactResponse{
		Type:     "ai",
		Response: r.shaper.Shape(raw, TopicNone),
	}
}

func (r *Responder) staticFact() *models.FactResponse {
	facts := r.persona.StaticFacts
	return &models.FactResponse{
		Type:     "static",
		Response: facts[rand.Intn(len(facts))],
	}
}

// buildInput concatenates the topic hint, its worked examples, and the
// literal question into the user block of the completion request.
func (r *Responder) buildInput(topic Topic, question string) string {
	var b strings.Builder

	b.WriteString(topic.Hint)
	b.WriteString("\n\n")

	if len(topic.Examples) > 0 {
		b.WriteString("Voorbeelden van je stijl:\n")
		for _, example := range topic.Examples {
			b.WriteString(example)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Vraag: ")
	b.WriteString(question)

	return b.String()
}

// outOfDomainMessage picks a canned redirect, personalized when the
// question mentions a recognized off-topic interest.
func (r *Responder) outOfDomainMessage(question string) string {
	lower := strings.ToLower(question)

	interest := ""
	for keyword, label := range r.persona.InterestKeywords {
		if strings.Contains(lower, keyword) {
			interest = label
			break
		}
	}

	pool, ok := r.persona.OutOfDomainPools[interest]
	if !ok || len(pool) == 0 {
		pool = r.persona.OutOfDomainPools[""]
	}

	return pool[rand.Intn(len(pool))]
}

// logExchange appends the exchange asynchronously. Logging failures are
// swallowed; they never affect the user-visible response.
func (r *Responder) logExchange(exchange *models.ChatExchange) {
	if r.store == nil {
		return
	}

	exchange.ExchangeID = uuid.NewString()
	exchange.Timestamp = time.Now()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.store.LogExchange(ctx, exchange); err != nil {
			slog.Warn("Failed to log exchange",
				"exchangeID", exchange.ExchangeID,
				"error", err,
			)
		}
	}()
}
