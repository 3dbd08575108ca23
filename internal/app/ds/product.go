package ds

import "time"

// Таблица товаров (солнечное оборудование)
type Product struct {
	ID             uint    `gorm:"primaryKey"`
	Name           string  `gorm:"type:varchar(100);not null"`
	Description    string  `gorm:"type:text;not null"`
	Category       string  `gorm:"type:varchar(50);not null"` // panel, inverter, battery, controller, mounting, cables
	Price          float64 `gorm:"type:decimal(12,2);not null"`
	StockQuantity  int     `gorm:"type:int;default:0"`
	Image          *string `gorm:"type:varchar(255)"` // Nullable
	Specifications SpecMap `gorm:"type:text"`
	Wattage        *int    `gorm:"type:int"` // только для панелей
	IsActive       bool    `gorm:"type:boolean;default:true;not null"`
	CreatedAt      time.Time
}
