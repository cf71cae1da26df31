package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prepmimo/backend/internal/apperror"
	"github.com/prepmimo/backend/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db}
}

// Create inserts one feedback row after checking that its interview and user
// exist. Rows for the same interview and user are not deduplicated.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Interview{}, "interview", feedback.InterviewID); err != nil {
			return err
		}
		if err := requireRow(tx, &model.User{}, "user", feedback.UserID); err != nil {
			return err
		}
		if err := tx.Omit("Interview", "User").Create(feedback).Error; err != nil {
			return translateWriteError(err, "interview", feedback.InterviewID)
		}
		return nil
	})
}

// FindByInterviewAndUser returns the oldest feedback row for the pair.
func (r *FeedbackRepository) FindByInterviewAndUser(ctx context.Context, interviewID uuid.UUID, userID string) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.db.WithContext(ctx).
		Where("interview_id = ? AND user_id = ?", interviewID, userID).
		Order("created_at ASC").
		First(&feedback).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperror.NotFoundError{Entity: "feedback", ID: interviewID.String()}
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepository) CountByInterviewAndUser(ctx context.Context, interviewID uuid.UUID, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Where("interview_id = ? AND user_id = ?", interviewID, userID).
		Count(&count).Error
	return count, err
}
