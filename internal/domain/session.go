package domain

import (
	"context"
	"time"
)

// Session is the state of one interactive session: the normalized document text
// and the last generated quiz. It is passed explicitly through the pipeline.
type Session struct {
	ID             string      `json:"id"`
	SourceName     string      `json:"source_name"`
	NormalizedText string      `json:"normalized_text"`
	LastQuiz       *QuizResult `json:"last_quiz,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewSession creates a session holding freshly normalized text.
func NewSession(id, sourceName, normalizedText string) *Session {
	now := time.Now()
	return &Session{
		ID:             id,
		SourceName:     sourceName,
		NormalizedText: normalizedText,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithQuiz returns a copy of the session holding quiz as its last result.
// The previous quiz, if any, is discarded.
func (s *Session) WithQuiz(quiz *QuizResult) *Session {
	next := *s
	next.LastQuiz = quiz
	next.UpdatedAt = time.Now()
	return &next
}

// SessionStore defines the port for session state.
type SessionStore interface {
	// Get returns ErrSessionNotFound (matched with errors.Is) for unknown or expired IDs.
	Get(ctx context.Context, id string) (*Session, error)

	// Save creates or replaces a session.
	Save(ctx context.Context, session *Session) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}
