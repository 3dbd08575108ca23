package repository

import (
	"solarbackend/internal/app/ds"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByEmail(email string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(fullName, email, phone, password, address string, userRole int) (*ds.User, error) {
	user := ds.User{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Password: password,
		Address:  address,
		City:     "Rawalpindi",
		Role:     userRole,
		IsActive: true,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpdateUser(userID uint, fullName, password, address *string) error {
	updates := map[string]interface{}{}
	if fullName != nil {
		updates["full_name"] = *fullName
	}
	if password != nil {
		updates["password"] = *password
	}
	if address != nil {
		updates["address"] = *address
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.User{}).Where("id = ?", userID).Updates(updates).Error
}

// Количество клиентов (для статистики на дашборде)
func (r *Repository) CountClients() int64 {
	var count int64
	if err := r.db.Model(&ds.User{}).Where("role = ?", 0).Count(&count).Error; err != nil {
		return 0
	}
	return count
}
