package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prepmimo/backend/internal/model"
)

// CreateFeedbackRequest is the body of POST /api/feedback. Transcript is kept
// raw so a non-list value can be reported as a validation error.
type CreateFeedbackRequest struct {
	UserID      string          `json:"userId"`
	InterviewID string          `json:"interviewId"`
	Transcript  json.RawMessage `json:"transcript"`
}

type FeedbackDTO struct {
	ID          uuid.UUID `json:"id"`
	InterviewID uuid.UUID `json:"interviewId"`
	UserID      string    `json:"userId"`
	model.Evaluation
	CreatedAt time.Time `json:"createdAt"`
}

func NewFeedbackDTO(f *model.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:          f.ID,
		InterviewID: f.InterviewID,
		UserID:      f.UserID,
		Evaluation:  *f.Evaluation(),
		CreatedAt:   f.CreatedAt,
	}
}
