package ds

import "time"

// Выполненные проекты для галереи
type GalleryProject struct {
	ID             uint       `gorm:"primaryKey"`
	Title          string     `gorm:"type:varchar(100);not null"`
	Description    string     `gorm:"type:text"`
	Location       string     `gorm:"type:varchar(100)"`
	SystemCapacity float64    `gorm:"type:decimal(6,2)"` // кВт
	CompletionDate *time.Time `gorm:"type:date"`
	Images         StringList `gorm:"type:text"`
	Category       string     `gorm:"type:varchar(50)"` // residential, commercial, industrial
	CreatedAt      time.Time
}
