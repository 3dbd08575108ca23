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

// ============ ДОМЕН ОБСЛУЖИВАНИЯ ============

const dateLayout = "2006-01-02"

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func toMaintenanceResponse(req ds.MaintenanceRequest) dto.MaintenanceResponse {
	return dto.MaintenanceResponse{
		ID:               req.ID,
		RequestType:      req.RequestType,
		SystemCapacity:   req.SystemCapacity,
		InstallationDate: formatDate(req.InstallationDate),
		IssueDescription: req.IssueDescription,
		PreferredDate:    formatDate(req.PreferredDate),
		Status:           req.Status,
		AdminNotes:       req.AdminNotes,
		CreatedAt:        req.CreatedAt,
		Customer:         req.User.FullName,
	}
}

// CreateMaintenanceRequest создает заявку на обслуживание
// @Summary Заявка на обслуживание
// @Description Создает заявку на чистку, ремонт, инспекцию или модернизацию системы
// @Tags Maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMaintenanceRequest true "Данные заявки"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/maintenance [post]
func (h *APIHandler) CreateMaintenanceRequest(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.CreateMaintenanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	request := ds.MaintenanceRequest{
		UserID:           userID,
		RequestType:      req.RequestType,
		SystemCapacity:   req.SystemCapacity,
		InstallationDate: parseDate(req.InstallationDate),
		IssueDescription: req.IssueDescription,
		PreferredDate:    parseDate(req.PreferredDate),
		Status:           "pending",
		CreatedAt:        time.Now(),
	}

	if err := h.Repository.CreateMaintenanceRequest(&request); err != nil {
		logrus.Error("Error creating maintenance request: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to submit request")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "Maintenance request submitted", gin.H{"id": request.ID})
}

// GetMyMaintenanceRequests возвращает заявки на обслуживание пользователя
// @Summary Заявки на обслуживание пользователя
// @Description Возвращает заявки текущего пользователя, свежие первыми
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MaintenanceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/maintenance/my [get]
func (h *APIHandler) GetMyMaintenanceRequests(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	requests, err := h.Repository.GetMaintenanceRequestsByUser(userID)
	if err != nil {
		logrus.Error("Error getting maintenance requests: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load requests")
		return
	}

	result := make([]dto.MaintenanceResponse, len(requests))
	for i, request := range requests {
		result[i] = toMaintenanceResponse(request)
	}

	ctx.JSON(http.StatusOK, result)
}

// GetMaintenanceRequests возвращает все заявки на обслуживание
// @Summary Список заявок на обслуживание
// @Description Все заявки с фильтром по статусу (только администратор)
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Success 200 {array} dto.MaintenanceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/maintenance [get]
func (h *APIHandler) GetMaintenanceRequests(ctx *gin.Context) {
	status := ctx.Query("status")
	if status == "all" {
		status = ""
	}

	requests, err := h.Repository.GetMaintenanceRequests(status)
	if err != nil {
		logrus.Error("Error getting maintenance requests: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load requests")
		return
	}

	result := make([]dto.MaintenanceResponse, len(requests))
	for i, request := range requests {
		result[i] = toMaintenanceResponse(request)
	}

	ctx.JSON(http.StatusOK, result)
}

// UpdateMaintenanceRequest обновляет статус заявки на обслуживание
// @Summary Обновление заявки на обслуживание
// @Description Перезаписывает статус и заметки администратора
// @Tags Maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Param request body dto.UpdateMaintenanceRequest true "Новый статус и заметки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/maintenance/{id} [put]
func (h *APIHandler) UpdateMaintenanceRequest(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req dto.UpdateMaintenanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.Repository.UpdateMaintenanceStatus(uint(id), req.Status, req.AdminNotes); err != nil {
		h.domainError(ctx, err, "Failed to update request")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Request updated successfully", nil)
}
