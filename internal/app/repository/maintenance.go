package repository

import (
	"solarbackend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для заявок на обслуживание

func (r *Repository) CreateMaintenanceRequest(req *ds.MaintenanceRequest) error {
	return r.db.Create(req).Error
}

func (r *Repository) GetMaintenanceRequestsByUser(userID uint) ([]ds.MaintenanceRequest, error) {
	var reqs []ds.MaintenanceRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *Repository) GetMaintenanceRequests(status string) ([]ds.MaintenanceRequest, error) {
	query := r.db.Preload("User").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reqs []ds.MaintenanceRequest
	err := query.Find(&reqs).Error
	return reqs, err
}

func (r *Repository) UpdateMaintenanceStatus(id uint, status, adminNotes string) error {
	result := r.db.Model(&ds.MaintenanceRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"admin_notes": adminNotes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) CountMaintenanceByStatus(status string) int64 {
	var count int64
	if err := r.db.Model(&ds.MaintenanceRequest{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0
	}
	return count
}
