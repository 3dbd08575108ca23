package repository

import (
	"errors"
	"time"

	"solarbackend/internal/app/ds"
	"solarbackend/internal/app/intake"

	"gorm.io/gorm"
)

// Методы для заявок на подключение

const referenceRetries = 5

// CreateApplication сохраняет заявку. Суффикс номера случайный, поэтому при
// конфликте по уникальному индексу номер генерируется заново.
func (r *Repository) CreateApplication(app *ds.MeteringApplication) error {
	var err error
	for i := 0; i < referenceRetries; i++ {
		err = r.db.Create(app).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		app.ID = 0
		app.ReferenceNumber = intake.GenerateReference(app.ApplicationType, app.SubmittedAt)
	}
	return err
}

func (r *Repository) GetApplicationByID(id uint) (*ds.MeteringApplication, error) {
	var app ds.MeteringApplication
	err := r.db.Preload("User").First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *Repository) GetApplicationByReference(reference string) (*ds.MeteringApplication, error) {
	var app ds.MeteringApplication
	err := r.db.Where("reference_number = ?", reference).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Заявки пользователя, свежие первыми
func (r *Repository) GetApplicationsByUser(userID uint) ([]ds.MeteringApplication, error) {
	var apps []ds.MeteringApplication
	err := r.db.Where("user_id = ?", userID).Order("submitted_at DESC").Find(&apps).Error
	return apps, err
}

// Все заявки для администратора, опционально по статусу
func (r *Repository) GetApplications(status string) ([]ds.MeteringApplication, error) {
	query := r.db.Preload("User").Order("submitted_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var apps []ds.MeteringApplication
	err := query.Find(&apps).Error
	return apps, err
}

// UpdateApplicationStatus перезаписывает статус и заметки администратора.
// Повторное применение той же пары меняет только updated_at.
func (r *Repository) UpdateApplicationStatus(id uint, status, adminNotes string) error {
	result := r.db.Model(&ds.MeteringApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"admin_notes": adminNotes,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) CountApplicationsByStatus(status string) int64 {
	var count int64
	if err := r.db.Model(&ds.MeteringApplication{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0
	}
	return count
}

func (r *Repository) GetRecentApplications(limit int) ([]ds.MeteringApplication, error) {
	var apps []ds.MeteringApplication
	err := r.db.Preload("User").Order("submitted_at DESC").Limit(limit).Find(&apps).Error
	return apps, err
}
