package handler

import (
	"io"
	"net/http"
	"solarbackend/internal/app/ds"
	"solarbackend/internal/app/dto"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ТОВАРОВ ============

func toProductResponse(product ds.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Category:       product.Category,
		Price:          product.Price,
		StockQuantity:  product.StockQuantity,
		Specifications: product.Specifications,
		Wattage:        product.Wattage,
	}
	if product.Image != nil {
		resp.Image = *product.Image
	}
	return resp
}

func toProductResponses(products []ds.Product) []dto.ProductResponse {
	result := make([]dto.ProductResponse, len(products))
	for i, product := range products {
		result[i] = toProductResponse(product)
	}
	return result
}

// GetProducts возвращает каталог товаров
// @Summary Каталог товаров
// @Description Возвращает активные товары с фильтром по категории
// @Tags Products
// @Produce json
// @Param category query string false "Категория (panel, inverter, battery, controller, mounting, cables)"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products [get]
func (h *APIHandler) GetProducts(ctx *gin.Context) {
	category := ctx.Query("category")
	if category == "all" {
		category = ""
	}

	products, err := h.Repository.GetProducts(category)
	if err != nil {
		logrus.Error("Error getting products: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load products")
		return
	}

	ctx.JSON(http.StatusOK, dto.ProductListResponse{
		Products: toProductResponses(products),
		Total:    len(products),
	})
}

// GetProduct возвращает товар и похожие позиции той же категории
// @Summary Карточка товара
// @Description Возвращает товар по ID вместе с похожими товарами категории
// @Tags Products
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [get]
func (h *APIHandler) GetProduct(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.Repository.GetProductByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	related, err := h.Repository.GetRelatedProducts(product.Category, product.ID, 4)
	if err != nil {
		logrus.Error("Error getting related products: ", err)
		related = nil
	}

	ctx.JSON(http.StatusOK, gin.H{
		"product": toProductResponse(*product),
		"related": toProductResponses(related),
	})
}

// GetFeaturedProducts возвращает товары для главной страницы
// @Summary Рекомендуемые товары
// @Description Возвращает подборку товаров для витрины
// @Tags Products
// @Produce json
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/products/featured [get]
func (h *APIHandler) GetFeaturedProducts(ctx *gin.Context) {
	products, err := h.Repository.GetFeaturedProducts(6)
	if err != nil {
		logrus.Error("Error getting featured products: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load products")
		return
	}

	ctx.JSON(http.StatusOK, dto.ProductListResponse{
		Products: toProductResponses(products),
		Total:    len(products),
	})
}

// CreateProduct добавляет товар в каталог
// @Summary Создание товара
// @Description Добавляет новый товар (только администратор)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductRequest true "Данные товара"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/products [post]
func (h *APIHandler) CreateProduct(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	product := ds.Product{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Price:          req.Price,
		StockQuantity:  req.StockQuantity,
		Specifications: req.Specifications,
		Wattage:        req.Wattage,
		IsActive:       true,
	}

	if err := h.Repository.CreateProduct(&product); err != nil {
		logrus.Error("Error creating product: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to create product")
		return
	}

	ctx.JSON(http.StatusCreated, toProductResponse(product))
}

// UpdateProduct изменяет товар
// @Summary Обновление товара
// @Description Частично обновляет поля товара (только администратор)
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.UpdateProductRequest true "Изменяемые поля"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/products/{id} [put]
func (h *APIHandler) UpdateProduct(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	product, err := h.Repository.GetProductByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Specifications != nil {
		product.Specifications = req.Specifications
	}
	if req.Wattage != nil {
		product.Wattage = req.Wattage
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.Repository.UpdateProduct(product); err != nil {
		logrus.Error("Error updating product: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to update product")
		return
	}

	ctx.JSON(http.StatusOK, toProductResponse(*product))
}

// DeleteProduct снимает товар с продажи
// @Summary Удаление товара
// @Description Помечает товар неактивным, из каталога он исчезает (только администратор)
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/products/{id} [delete]
func (h *APIHandler) DeleteProduct(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	exists, err := h.Repository.ProductExists(uint(id))
	if err != nil || !exists {
		h.errorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.Repository.DeleteProduct(uint(id)); err != nil {
		logrus.Error("Error deleting product: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Product deleted successfully", nil)
}

// UploadProductImage загружает изображение товара в MinIO
// @Summary Загрузка изображения товара
// @Description Принимает файл изображения и привязывает его к товару (только администратор)
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/products/{id}/image [post]
func (h *APIHandler) UploadProductImage(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	exists, err := h.Repository.ProductExists(uint(id))
	if err != nil || !exists {
		h.errorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Image file is required")
		return
	}

	opened, err := file.Open()
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to read image")
		return
	}
	defer opened.Close()

	data, err := io.ReadAll(opened)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to read image")
		return
	}

	object, err := h.MinIOClient.UploadImage(ctx.Request.Context(), data, file.Filename)
	if err != nil {
		logrus.Error("Error uploading image: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	if err := h.Repository.UpdateProductImage(uint(id), object); err != nil {
		logrus.Error("Error saving image reference: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to save image")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Image uploaded successfully", gin.H{"image": object})
}
