package handler

import (
	"net/http"
	"solarbackend/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// UpdateProfile обновляет профиль текущего пользователя
// @Summary Обновление профиля
// @Description Меняет имя, адрес или пароль текущего пользователя
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/profile [put]
func (h *APIHandler) UpdateProfile(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var fullName, password, address *string
	if req.FullName != "" {
		fullName = &req.FullName
	}
	if req.Password != "" {
		hashed := generateHashString(req.Password)
		password = &hashed
	}
	if req.Address != "" {
		address = &req.Address
	}

	if err := h.Repository.UpdateUser(userID, fullName, password, address); err != nil {
		h.domainError(ctx, err, "Failed to update profile")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Profile updated successfully", nil)
}
