package ds

import "time"

// Отзывы клиентов
type Feedback struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Rating      int    `gorm:"type:int;not null"` // 1-5
	Comment     string `gorm:"type:text;not null"`
	ServiceType string `gorm:"type:varchar(50)"` // installation, product, maintenance, general
	IsApproved  bool   `gorm:"type:boolean;default:false;not null"`
	CreatedAt   time.Time

	User User `gorm:"foreignKey:UserID"`
}
