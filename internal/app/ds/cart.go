package ds

import "time"

// Корзина: по строке на пару пользователь-товар
type CartItem struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index;uniqueIndex:idx_cart_user_product"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int  `gorm:"type:int;default:1"`
	AddedAt   time.Time

	Product Product `gorm:"foreignKey:ProductID"`
}
