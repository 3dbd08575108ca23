package repository

import (
	"solarbackend/internal/app/ds"
)

// Методы для каталога товаров

func (r *Repository) GetProducts(category string) ([]ds.Product, error) {
	query := r.db.Where("is_active = ?", true)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var products []ds.Product
	err := query.Find(&products).Error
	return products, err
}

func (r *Repository) GetProductByID(id uint) (*ds.Product, error) {
	var product ds.Product
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Товары той же категории для блока "похожие"
func (r *Repository) GetRelatedProducts(category string, excludeID uint, limit int) ([]ds.Product, error) {
	var products []ds.Product
	err := r.db.Where("category = ? AND id != ? AND is_active = ?", category, excludeID, true).
		Limit(limit).Find(&products).Error
	return products, err
}

func (r *Repository) GetFeaturedProducts(limit int) ([]ds.Product, error) {
	var products []ds.Product
	err := r.db.Where("is_active = ?", true).Limit(limit).Find(&products).Error
	return products, err
}

func (r *Repository) ProductExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Product{}).Where("id = ? AND is_active = ?", id, true).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateProduct(product *ds.Product) error {
	return r.db.Create(product).Error
}

func (r *Repository) UpdateProduct(product *ds.Product) error {
	return r.db.Save(product).Error
}

// Логическое удаление товара
func (r *Repository) DeleteProduct(id uint) error {
	return r.db.Model(&ds.Product{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *Repository) UpdateProductImage(id uint, image string) error {
	return r.db.Model(&ds.Product{}).Where("id = ?", id).Update("image", image).Error
}

func (r *Repository) CountProducts() int64 {
	var count int64
	if err := r.db.Model(&ds.Product{}).Count(&count).Error; err != nil {
		return 0
	}
	return count
}
