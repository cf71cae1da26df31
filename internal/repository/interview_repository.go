package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prepmimo/backend/internal/apperror"
	"github.com/prepmimo/backend/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) Create(ctx context.Context, interview *model.Interview) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.User{}, "user", interview.UserID); err != nil {
			return err
		}
		if err := tx.Omit("User").Create(interview).Error; err != nil {
			return translateWriteError(err, "user", interview.UserID)
		}
		return nil
	})
}

func (r *InterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.WithContext(ctx).First(&interview, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperror.NotFoundError{Entity: "interview", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// FindByUser returns a user's interviews, newest first, with the total row count.
// A non-positive pageSize returns every row.
func (r *InterviewRepository) FindByUser(ctx context.Context, userID string, page, pageSize int) ([]model.Interview, int64, error) {
	byUser := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Interview{}).Where("user_id = ?", userID)
	}

	var total int64
	if err := byUser().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	interviews := []model.Interview{}
	query := byUser().Order("created_at DESC")
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	if err := query.Find(&interviews).Error; err != nil {
		return nil, 0, err
	}
	return interviews, total, nil
}
