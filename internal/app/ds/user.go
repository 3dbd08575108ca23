package ds

import "time"

// Таблица пользователей (клиенты и администраторы)
type User struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(120);unique;not null"`
	Phone     string `gorm:"type:varchar(20);not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	Role      int    `gorm:"type:int;default:0;not null"` // 0 - client, 1 - admin
	Address   string `gorm:"type:varchar(200)"`
	City      string `gorm:"type:varchar(50);default:'Rawalpindi'"`
	IsActive  bool   `gorm:"type:boolean;default:true;not null"`
	CreatedAt time.Time
}
