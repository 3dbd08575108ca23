package repository

import (
	"errors"

	"solarbackend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для заказов

var ErrEmptyCart = errors.New("cart is empty")

// Checkout оформляет заказ из корзины пользователя одной транзакцией:
// заказ и позиции создаются, остатки списываются, корзина очищается.
// Любая ошибка откатывает все целиком.
func (r *Repository) Checkout(userID uint, orderNumber, shippingAddress string) (*ds.Order, error) {
	var order *ds.Order

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cartItems []ds.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		total := 0.0
		for _, item := range cartItems {
			total += item.Product.Price * float64(item.Quantity)
		}

		newOrder := ds.Order{
			UserID:          userID,
			OrderNumber:     orderNumber,
			TotalAmount:     total,
			Status:          "pending",
			PaymentStatus:   "pending",
			ShippingAddress: shippingAddress,
		}
		if err := tx.Create(&newOrder).Error; err != nil {
			return err
		}

		for _, item := range cartItems {
			orderItem := ds.OrderItem{
				OrderID:   newOrder.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			orderItem.Product = item.Product
			newOrder.Items = append(newOrder.Items, orderItem)

			if err := tx.Model(&ds.Product{}).Where("id = ?", item.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&ds.CartItem{}).Error; err != nil {
			return err
		}

		order = &newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) GetOrderByID(id uint) (*ds.Order, error) {
	var order ds.Order
	err := r.db.Preload("Items").Preload("Items.Product").Preload("User").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) GetOrdersByUser(userID uint) ([]ds.Order, error) {
	var orders []ds.Order
	err := r.db.Preload("Items").Preload("Items.Product").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// Все заказы для администратора, опционально по статусу
func (r *Repository) GetOrders(status string) ([]ds.Order, error) {
	query := r.db.Preload("User").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []ds.Order
	err := query.Find(&orders).Error
	return orders, err
}

func (r *Repository) UpdateOrderStatus(id uint, status, paymentStatus string) error {
	result := r.db.Model(&ds.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         status,
			"payment_status": paymentStatus,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) CountOrders() int64 {
	var count int64
	if err := r.db.Model(&ds.Order{}).Count(&count).Error; err != nil {
		return 0
	}
	return count
}

func (r *Repository) GetRecentOrders(limit int) ([]ds.Order, error) {
	var orders []ds.Order
	err := r.db.Preload("User").Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}
