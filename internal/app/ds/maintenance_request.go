package ds

import "time"

// Заявка на обслуживание установленной системы
type MaintenanceRequest struct {
	ID               uint       `gorm:"primaryKey"`
	UserID           uint       `gorm:"not null;index"`
	RequestType      string     `gorm:"type:varchar(50);not null"` // cleaning, repair, inspection, upgrade
	SystemCapacity   *float64   `gorm:"type:decimal(6,2)"`
	InstallationDate *time.Time `gorm:"type:date"`
	IssueDescription string     `gorm:"type:text;not null"`
	PreferredDate    *time.Time `gorm:"type:date"`
	Status           string     `gorm:"type:varchar(20);default:'pending'"` // pending, scheduled, in_progress, completed, cancelled
	AdminNotes       string     `gorm:"type:text"`
	CreatedAt        time.Time

	User User `gorm:"foreignKey:UserID"`
}
