package repository

import (
	"solarbackend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для галереи проектов

func (r *Repository) GetGalleryProjects(category string) ([]ds.GalleryProject, error) {
	query := r.db.Order("completion_date DESC")
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var projects []ds.GalleryProject
	err := query.Find(&projects).Error
	return projects, err
}

func (r *Repository) GetGalleryProjectByID(id uint) (*ds.GalleryProject, error) {
	var project ds.GalleryProject
	err := r.db.First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *Repository) CreateGalleryProject(project *ds.GalleryProject) error {
	return r.db.Create(project).Error
}

func (r *Repository) UpdateGalleryProject(project *ds.GalleryProject) error {
	return r.db.Save(project).Error
}

func (r *Repository) DeleteGalleryProject(id uint) error {
	result := r.db.Delete(&ds.GalleryProject{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) CountGalleryProjects() int64 {
	var count int64
	if err := r.db.Model(&ds.GalleryProject{}).Count(&count).Error; err != nil {
		return 0
	}
	return count
}

// Суммарная установленная мощность по всем проектам, кВт
func (r *Repository) TotalInstalledCapacity() float64 {
	var total float64
	if err := r.db.Model(&ds.GalleryProject{}).
		Select("COALESCE(SUM(system_capacity), 0)").Scan(&total).Error; err != nil {
		return 0
	}
	return total
}
