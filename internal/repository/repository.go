package repository

import (
	"errors"
	"fmt"

	"github.com/prepmimo/backend/internal/apperror"
	"gorm.io/gorm"
)

// requireRow fails with a ReferentialIntegrityError when no row of model has the given id.
func requireRow(tx *gorm.DB, model any, entity string, id any) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check %s %v: %w", entity, id, err)
	}
	if count == 0 {
		return &apperror.ReferentialIntegrityError{Entity: entity, ID: fmt.Sprint(id)}
	}
	return nil
}

// translateWriteError turns a foreign-key violation raised by the database
// into a ReferentialIntegrityError.
func translateWriteError(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &apperror.ReferentialIntegrityError{Entity: entity, ID: fmt.Sprint(id), Err: err}
	}
	return err
}
