package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	Response  string `json:"response"`
	Cached    bool   `json:"cached"`
	Timestamp string `json:"timestamp"`
}

// FactResponse is the body of GET /fact. Type is "static" or "ai".
type FactResponse struct {
	Type     string `json:"type"`
	Response string `json:"response"`
}

// ErrorResponse carries a user-facing stylized message for any failure.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Exchange status values stored on ChatExchange rows.
const (
	ExchangeStatusSuccess     = "success"
	ExchangeStatusCached      = "cached"
	ExchangeStatusOutOfDomain = "out_of_domain"
	ExchangeStatusFailed      = "failed"
)

// ChatExchange is one question/answer pair, appended to MongoDB after each
// /chat request. Rows are never mutated or deleted by this service.
type ChatExchange struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExchangeID string             `bson:"exchange_id" json:"exchange_id"`
	Question   string             `bson:"question" json:"question"`
	Answer     string             `bson:"answer,omitempty" json:"answer,omitempty"`
	Topic      string             `bson:"topic" json:"topic"`
	Status     string             `bson:"status" json:"status"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
	Cached     bool               `bson:"cached" json:"cached"`
	DurationMs int64              `bson:"duration_ms" json:"duration_ms"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}
