package ds

import "time"

// Таблица заказов товаров
type Order struct {
	ID              uint    `gorm:"primaryKey"`
	UserID          uint    `gorm:"not null;index"`
	OrderNumber     string  `gorm:"type:varchar(20);uniqueIndex"`
	TotalAmount     float64 `gorm:"type:decimal(12,2);not null"`
	Status          string  `gorm:"type:varchar(20);default:'pending'"` // pending, confirmed, shipped, delivered, cancelled
	PaymentStatus   string  `gorm:"type:varchar(20);default:'pending'"` // pending, paid, failed
	ShippingAddress string  `gorm:"type:varchar(200);not null"`
	CreatedAt       time.Time

	User  User        `gorm:"foreignKey:UserID"`
	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// Позиции заказа
type OrderItem struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"type:decimal(12,2);not null"`

	Product Product `gorm:"foreignKey:ProductID"`
}
