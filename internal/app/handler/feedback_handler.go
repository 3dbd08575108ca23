package handler

import (
	"net/http"
	"solarbackend/internal/app/ds"
	"solarbackend/internal/app/dto"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ОТЗЫВОВ ============

func toFeedbackResponse(fb ds.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:          fb.ID,
		Rating:      fb.Rating,
		Comment:     fb.Comment,
		ServiceType: fb.ServiceType,
		IsApproved:  fb.IsApproved,
		CreatedAt:   fb.CreatedAt,
		Author:      fb.User.FullName,
	}
}

// CreateFeedback сохраняет отзыв клиента
// @Summary Отправка отзыва
// @Description Создает отзыв; на витрину он попадает после одобрения администратором
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeedbackRequest true "Оценка и комментарий"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/feedback [post]
func (h *APIHandler) CreateFeedback(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = "general"
	}

	fb := ds.Feedback{
		UserID:      userID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ServiceType: serviceType,
		CreatedAt:   time.Now(),
	}

	if err := h.Repository.CreateFeedback(&fb); err != nil {
		logrus.Error("Error creating feedback: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to submit feedback")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "Thank you for your feedback", nil)
}

// GetApprovedFeedback возвращает одобренные отзывы для витрины
// @Summary Одобренные отзывы
// @Description Публичный список одобренных отзывов, свежие первыми
// @Tags Feedback
// @Produce json
// @Success 200 {array} dto.FeedbackResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/feedback [get]
func (h *APIHandler) GetApprovedFeedback(ctx *gin.Context) {
	feedback, err := h.Repository.GetApprovedFeedback(10)
	if err != nil {
		logrus.Error("Error getting feedback: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load feedback")
		return
	}

	result := make([]dto.FeedbackResponse, len(feedback))
	for i, fb := range feedback {
		result[i] = toFeedbackResponse(fb)
	}

	ctx.JSON(http.StatusOK, result)
}

// GetAllFeedback возвращает все отзывы, включая неодобренные
// @Summary Все отзывы
// @Description Полный список отзывов для модерации (только администратор)
// @Tags Feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FeedbackResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/feedback [get]
func (h *APIHandler) GetAllFeedback(ctx *gin.Context) {
	feedback, err := h.Repository.GetAllFeedback()
	if err != nil {
		logrus.Error("Error getting feedback: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load feedback")
		return
	}

	result := make([]dto.FeedbackResponse, len(feedback))
	for i, fb := range feedback {
		result[i] = toFeedbackResponse(fb)
	}

	ctx.JSON(http.StatusOK, result)
}

// ApproveFeedback одобряет отзыв для показа на витрине
// @Summary Одобрение отзыва
// @Description Помечает отзыв одобренным (только администратор)
// @Tags Feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID отзыва"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/feedback/{id}/approve [put]
func (h *APIHandler) ApproveFeedback(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	if err := h.Repository.ApproveFeedback(uint(id)); err != nil {
		h.domainError(ctx, err, "Failed to approve feedback")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Feedback approved", nil)
}
