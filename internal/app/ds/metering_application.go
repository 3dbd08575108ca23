package ds

import "time"

// Заявка на подключение: net metering, gross metering или простая установка
type MeteringApplication struct {
	ID               uint        `gorm:"primaryKey"`
	UserID           uint        `gorm:"not null;index"`
	ApplicationType  string      `gorm:"type:varchar(20);not null"` // net, gross, simple_solar
	SystemCapacity   float64     `gorm:"type:decimal(6,2);not null"` // кВт, 1-50
	ConsumptionUnits int         `gorm:"type:int;default:0"`
	PropertyType     string      `gorm:"type:varchar(50)"` // residential, commercial, industrial
	PropertyAddress  string      `gorm:"type:varchar(200);not null"`
	OwnershipType    string      `gorm:"type:varchar(20);default:'owner'"` // owner, tenant
	ReferenceNumber  string      `gorm:"type:varchar(20);uniqueIndex"`
	Status           string      `gorm:"type:varchar(20);default:'pending'"` // pending, under_review, approved, rejected, completed
	SubmittedAt      time.Time   `gorm:"not null"`
	UpdatedAt        time.Time   `gorm:"not null"`
	Documents        DocumentMap `gorm:"type:text"`
	NOCMessage       string      `gorm:"type:text;column:noc_message"`
	AdminNotes       string      `gorm:"type:text"`
	EstimatedCost    float64     `gorm:"type:decimal(12,2)"`

	User User `gorm:"foreignKey:UserID"`
}
