package handler

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"solarbackend/internal/app/ds"
	"solarbackend/internal/app/dto"
	"solarbackend/internal/app/repository"
	"solarbackend/internal/app/role"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КОРЗИНЫ И ЗАКАЗОВ ============

// generateOrderNumber возвращает номер заказа вида AME-20240115-12345
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("AME-%s-%d", now.Format("20060102"), 10000+rand.Intn(90000))
}

func toCartResponse(items []ds.CartItem) dto.CartResponse {
	resp := dto.CartResponse{Items: make([]dto.CartItemResponse, len(items))}
	for i, item := range items {
		subtotal := float64(item.Quantity) * item.Product.Price
		resp.Items[i] = dto.CartItemResponse{
			ID:       item.ID,
			Product:  toProductResponse(item.Product),
			Quantity: item.Quantity,
			SubTotal: subtotal,
		}
		resp.Total += subtotal
	}
	return resp
}

func toOrderResponse(order ds.Order, includeItems bool) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt,
		Customer:        order.User.FullName,
	}
	if includeItems {
		resp.Items = make([]dto.OrderItemResponse, len(order.Items))
		for i, item := range order.Items {
			resp.Items[i] = dto.OrderItemResponse{
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			}
		}
	}
	return resp
}

// GetCart возвращает корзину текущего пользователя
// @Summary Корзина пользователя
// @Description Возвращает позиции корзины с итоговой суммой
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cart [get]
func (h *APIHandler) GetCart(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	items, err := h.Repository.GetCartItems(userID)
	if err != nil {
		logrus.Error("Error getting cart: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return
	}

	ctx.JSON(http.StatusOK, toCartResponse(items))
}

// AddToCart добавляет товар в корзину
// @Summary Добавление в корзину
// @Description Добавляет товар или увеличивает количество уже добавленного
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.AddToCartRequest false "Количество (по умолчанию 1)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cart/{id} [post]
func (h *APIHandler) AddToCart(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	idStr := ctx.Param("id")
	productID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || productID == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	exists, err := h.Repository.ProductExists(uint(productID))
	if err != nil || !exists {
		h.errorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	// Тело запроса необязательно: без него количество равно 1
	var req dto.AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.errorResponse(ctx, http.StatusBadRequest, "Quantity must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.Repository.AddToCart(userID, uint(productID), req.Quantity); err != nil {
		logrus.Error("Error adding to cart: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Added to cart", gin.H{
		"cart_count": h.Repository.GetCartCount(userID),
	})
}

// UpdateCartItem меняет количество позиции в корзине
// @Summary Изменение позиции корзины
// @Description Устанавливает количество; ноль и меньше удаляет позицию
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID позиции корзины"
// @Param request body dto.UpdateCartRequest true "Новое количество"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/cart/{id} [put]
func (h *APIHandler) UpdateCartItem(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	idStr := ctx.Param("id")
	cartID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || cartID == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	var req dto.UpdateCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.Repository.UpdateCartItem(userID, uint(cartID), req.Quantity); err != nil {
		h.domainError(ctx, err, "Failed to update cart")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Cart updated", nil)
}

// RemoveCartItem убирает позицию из корзины
// @Summary Удаление из корзины
// @Description Удаляет позицию корзины по ее ID
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID позиции корзины"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/cart/{id} [delete]
func (h *APIHandler) RemoveCartItem(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	idStr := ctx.Param("id")
	cartID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || cartID == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	if err := h.Repository.RemoveCartItem(userID, uint(cartID)); err != nil {
		h.domainError(ctx, err, "Failed to remove cart item")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Removed from cart", nil)
}

// Checkout оформляет заказ из корзины
// @Summary Оформление заказа
// @Description Создает заказ из корзины одной транзакцией: позиции, списание остатков, очистка корзины
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckoutRequest true "Адрес доставки"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/checkout [post]
func (h *APIHandler) Checkout(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Shipping address is required")
		return
	}

	order, err := h.Repository.Checkout(userID, generateOrderNumber(time.Now()), req.ShippingAddress)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyCart) {
			h.errorResponse(ctx, http.StatusBadRequest, "Cart is empty")
			return
		}
		logrus.Error("Error during checkout: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
		return
	}

	ctx.JSON(http.StatusCreated, toOrderResponse(*order, true))
}

// GetMyOrders возвращает заказы текущего пользователя
// @Summary Заказы пользователя
// @Description Возвращает заказы пользователя, свежие первыми
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders/my [get]
func (h *APIHandler) GetMyOrders(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	orders, err := h.Repository.GetOrdersByUser(userID)
	if err != nil {
		logrus.Error("Error getting orders: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	dtoOrders := make([]dto.OrderResponse, len(orders))
	for i, order := range orders {
		dtoOrders[i] = toOrderResponse(order, true)
	}

	ctx.JSON(http.StatusOK, dto.OrderListResponse{Orders: dtoOrders, Total: len(dtoOrders)})
}

// GetOrder возвращает заказ по ID (владелец или администратор)
// @Summary Детали заказа
// @Description Возвращает заказ с позициями; доступно владельцу и администратору
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *APIHandler) GetOrder(ctx *gin.Context) {
	userID, userRole, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.Repository.GetOrderByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	if order.UserID != userID && userRole != role.Admin {
		h.errorResponse(ctx, http.StatusForbidden, "Access denied")
		return
	}

	ctx.JSON(http.StatusOK, toOrderResponse(*order, true))
}

// GetOrders возвращает все заказы для администратора
// @Summary Список заказов
// @Description Все заказы с фильтром по статусу (только администратор)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} dto.OrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/orders [get]
func (h *APIHandler) GetOrders(ctx *gin.Context) {
	status := ctx.Query("status")
	if status == "all" {
		status = ""
	}

	orders, err := h.Repository.GetOrders(status)
	if err != nil {
		logrus.Error("Error getting orders: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	dtoOrders := make([]dto.OrderResponse, len(orders))
	for i, order := range orders {
		dtoOrders[i] = toOrderResponse(order, false)
	}

	ctx.JSON(http.StatusOK, dto.OrderListResponse{Orders: dtoOrders, Total: len(dtoOrders)})
}

// UpdateOrder обновляет статусы заказа
// @Summary Обновление заказа администратором
// @Description Перезаписывает статус заказа и статус оплаты
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Param request body dto.UpdateOrderRequest true "Новые статусы"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/orders/{id} [put]
func (h *APIHandler) UpdateOrder(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req dto.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.Repository.UpdateOrderStatus(uint(id), req.Status, req.PaymentStatus); err != nil {
		h.domainError(ctx, err, "Failed to update order")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Order updated successfully", nil)
}
