package repository

import (
	"errors"

	"solarbackend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для корзины

func (r *Repository) GetCartItems(userID uint) ([]ds.CartItem, error) {
	var items []ds.CartItem
	err := r.db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// AddToCart добавляет товар в корзину; если он уже там, увеличивает количество
func (r *Repository) AddToCart(userID, productID uint, quantity int) error {
	var item ds.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err == nil {
		return r.db.Model(&item).Update("quantity", item.Quantity+quantity).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	item = ds.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return r.db.Create(&item).Error
}

// UpdateCartItem меняет количество; ноль и меньше удаляет позицию
func (r *Repository) UpdateCartItem(userID, cartID uint, quantity int) error {
	var item ds.CartItem
	err := r.db.Where("id = ? AND user_id = ?", cartID, userID).First(&item).Error
	if err != nil {
		return err
	}

	if quantity <= 0 {
		return r.db.Delete(&item).Error
	}
	return r.db.Model(&item).Update("quantity", quantity).Error
}

func (r *Repository) RemoveCartItem(userID, cartID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", cartID, userID).Delete(&ds.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) GetCartCount(userID uint) int {
	var count int64
	if err := r.db.Model(&ds.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0
	}
	return int(count)
}
