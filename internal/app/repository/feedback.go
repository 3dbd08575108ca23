package repository

import (
	"solarbackend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для отзывов

func (r *Repository) CreateFeedback(fb *ds.Feedback) error {
	return r.db.Create(fb).Error
}

// Одобренные отзывы для публичной витрины
func (r *Repository) GetApprovedFeedback(limit int) ([]ds.Feedback, error) {
	var feedbacks []ds.Feedback
	query := r.db.Preload("User").Where("is_approved = ?", true).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&feedbacks).Error
	return feedbacks, err
}

func (r *Repository) GetAllFeedback() ([]ds.Feedback, error) {
	var feedbacks []ds.Feedback
	err := r.db.Preload("User").Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (r *Repository) ApproveFeedback(id uint) error {
	result := r.db.Model(&ds.Feedback{}).Where("id = ?", id).Update("is_approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
