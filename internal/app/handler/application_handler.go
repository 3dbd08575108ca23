package handler

import (
	"io"
	"net/http"
	"solarbackend/internal/app/ds"
	"solarbackend/internal/app/dto"
	"solarbackend/internal/app/intake"
	"solarbackend/internal/app/role"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЗАЯВКИ НА ПОДКЛЮЧЕНИЕ ============

// uploadedDocument — документ из multipart формы до отправки в хранилище
type uploadedDocument struct {
	kind     string
	filename string
	data     []byte
}

// collectDocuments вычитывает файлы документов из формы.
// Отсутствие файла не ошибка: полноту комплекта проверяет intake.Validate.
func (h *APIHandler) collectDocuments(ctx *gin.Context, kinds []string) ([]uploadedDocument, error) {
	var docs []uploadedDocument
	for _, kind := range kinds {
		file, err := ctx.FormFile(kind)
		if err != nil {
			continue
		}

		opened, err := file.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(opened)
		opened.Close()
		if err != nil {
			return nil, err
		}

		docs = append(docs, uploadedDocument{
			kind:     kind,
			filename: file.Filename,
			data:     data,
		})
	}
	return docs, nil
}

// createApplication — общий путь создания заявки. Валидация идет до
// обращения к хранилищу; если после загрузки документов запись не
// сохранилась, загруженные объекты удаляются, частичных заявок не остается.
func (h *APIHandler) createApplication(ctx *gin.Context, applicationType string) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	if applicationType == "" {
		applicationType = ctx.PostForm("application_type")
	}

	capacity, _ := strconv.ParseFloat(ctx.PostForm("system_capacity"), 64)
	consumptionUnits, _ := strconv.Atoi(ctx.PostForm("consumption_units"))

	ownershipType := ctx.PostForm("ownership_type")
	if ownershipType == "" || applicationType == intake.TypeSimpleSolar {
		ownershipType = "owner"
	}

	propertyType := ctx.PostForm("property_type")
	if propertyType == "" {
		propertyType = "residential"
	}

	input := intake.CreateInput{
		ApplicationType:  applicationType,
		SystemCapacity:   capacity,
		ConsumptionUnits: consumptionUnits,
		PropertyType:     propertyType,
		PropertyAddress:  ctx.PostForm("property_address"),
		OwnershipType:    ownershipType,
		NOCMessage:       ctx.PostForm("noc_message"),
	}

	// Возможные виды документов для этой комбинации
	kinds := intake.RequiredDocuments(applicationType, ownershipType)
	if applicationType != intake.TypeSimpleSolar && ownershipType == "tenant" {
		kinds = append(kinds, intake.DocNOC)
	}

	docs, err := h.collectDocuments(ctx, kinds)
	if err != nil {
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to read uploaded files")
		return
	}

	// Проверяем комплект до записи в хранилище
	input.Documents = ds.DocumentMap{}
	for _, doc := range docs {
		input.Documents[doc.kind] = doc.filename
	}
	if err := intake.Validate(input); err != nil {
		h.domainError(ctx, err, "Validation failed")
		return
	}

	// Загружаем документы; ссылки подменяют имена файлов
	var stored []string
	cleanup := func() {
		for _, object := range stored {
			if delErr := h.MinIOClient.DeleteFile(ctx.Request.Context(), object); delErr != nil {
				logrus.Warnf("Failed to clean up document %s: %v", object, delErr)
			}
		}
	}

	for _, doc := range docs {
		object, err := h.MinIOClient.UploadDocument(ctx.Request.Context(), doc.kind, doc.data, doc.filename)
		if err != nil {
			logrus.Error("Error uploading document: ", err)
			cleanup()
			h.errorResponse(ctx, http.StatusInternalServerError, "Failed to store documents")
			return
		}
		stored = append(stored, object)
		input.Documents[doc.kind] = object
	}

	application := intake.NewApplication(userID, input, time.Now())
	if err := h.Repository.CreateApplication(&application); err != nil {
		logrus.Error("Error creating application: ", err)
		cleanup()
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to submit application")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "Application submitted successfully", gin.H{
		"reference_number": application.ReferenceNumber,
		"status":           application.Status,
		"estimated_cost":   application.EstimatedCost,
	})
}

// CreateMeteringApplication создает заявку на net или gross metering
// @Summary Подача заявки на метеринг
// @Description Создает заявку net/gross metering с загрузкой документов
// @Tags Applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param application_type formData string true "Тип заявки (net или gross)"
// @Param system_capacity formData number true "Мощность системы, кВт"
// @Param property_address formData string true "Адрес объекта"
// @Param ownership_type formData string false "Тип владения (owner или tenant)"
// @Param noc_message formData string false "NOC сообщение для арендаторов"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/applications [post]
func (h *APIHandler) CreateMeteringApplication(ctx *gin.Context) {
	h.createApplication(ctx, "")
}

// CreateSolarSetupApplication создает заявку на простую установку.
// Нужны только счет за электричество и CNIC, без NOC и документов на землю.
// @Summary Подача заявки на простую установку
// @Description Создает заявку simple_solar с минимальным комплектом документов
// @Tags Applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param system_capacity formData number true "Мощность системы, кВт"
// @Param property_address formData string true "Адрес объекта"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/applications/solar-setup [post]
func (h *APIHandler) CreateSolarSetupApplication(ctx *gin.Context) {
	h.createApplication(ctx, intake.TypeSimpleSolar)
}

func toApplicationResponse(app ds.MeteringApplication, includeDetails bool) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:               app.ID,
		ReferenceNumber:  app.ReferenceNumber,
		ApplicationType:  app.ApplicationType,
		SystemCapacity:   app.SystemCapacity,
		ConsumptionUnits: app.ConsumptionUnits,
		PropertyType:     app.PropertyType,
		PropertyAddress:  app.PropertyAddress,
		OwnershipType:    app.OwnershipType,
		Status:           app.Status,
		SubmittedAt:      app.SubmittedAt,
		UpdatedAt:        app.UpdatedAt,
		EstimatedCost:    app.EstimatedCost,
		Applicant:        app.User.FullName,
	}
	if includeDetails {
		resp.Documents = app.Documents
		resp.NOCMessage = app.NOCMessage
		resp.AdminNotes = app.AdminNotes
	}
	return resp
}

// GetMyApplications возвращает заявки текущего пользователя
// @Summary Заявки текущего пользователя
// @Description Возвращает заявки пользователя, свежие первыми
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApplicationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/applications/my [get]
func (h *APIHandler) GetMyApplications(ctx *gin.Context) {
	userID, _, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	apps, err := h.Repository.GetApplicationsByUser(userID)
	if err != nil {
		logrus.Error("Error getting applications: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load applications")
		return
	}

	dtoApps := make([]dto.ApplicationResponse, len(apps))
	for i, app := range apps {
		dtoApps[i] = toApplicationResponse(app, false)
	}

	ctx.JSON(http.StatusOK, dto.ApplicationListResponse{
		Applications: dtoApps,
		Total:        len(dtoApps),
	})
}

// GetApplication возвращает заявку по ID (владелец или администратор)
// @Summary Получение заявки по ID
// @Description Детали заявки с документами; доступно владельцу и администратору
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/applications/{id} [get]
func (h *APIHandler) GetApplication(ctx *gin.Context) {
	userID, userRole, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := h.Repository.GetApplicationByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "Application not found")
		return
	}

	// Заявку видит только владелец или администратор
	if app.UserID != userID && userRole != role.Admin {
		h.errorResponse(ctx, http.StatusForbidden, "Access denied")
		return
	}

	ctx.JSON(http.StatusOK, toApplicationResponse(*app, true))
}

// GetApplicationDocumentURL выдает временную ссылку на документ заявки
// @Summary Ссылка на документ заявки
// @Description Возвращает presigned URL для скачивания документа (1 час)
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Param kind path string true "Вид документа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/applications/{id}/documents/{kind} [get]
func (h *APIHandler) GetApplicationDocumentURL(ctx *gin.Context) {
	userID, userRole, err := h.getUserFromContext(ctx)
	if err != nil || userID == 0 {
		h.errorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := h.Repository.GetApplicationByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "Application not found")
		return
	}

	if app.UserID != userID && userRole != role.Admin {
		h.errorResponse(ctx, http.StatusForbidden, "Access denied")
		return
	}

	object, ok := app.Documents[ctx.Param("kind")]
	if !ok {
		h.errorResponse(ctx, http.StatusNotFound, "Document not found")
		return
	}

	url, err := h.MinIOClient.GetFileURL(ctx.Request.Context(), object)
	if err != nil {
		logrus.Error("Error generating document URL: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to generate document URL")
		return
	}

	h.successResponse(ctx, http.StatusOK, "", gin.H{"url": url})
}

// GetApplicationStatus — публичная проверка статуса по номеру заявки
// @Summary Проверка статуса заявки
// @Description Возвращает статус заявки по ее номеру без авторизации
// @Tags Applications
// @Produce json
// @Param reference path string true "Номер заявки"
// @Success 200 {object} dto.ApplicationStatusResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/application-status/{reference} [get]
func (h *APIHandler) GetApplicationStatus(ctx *gin.Context) {
	reference := ctx.Param("reference")

	app, err := h.Repository.GetApplicationByReference(reference)
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "Application not found")
		return
	}

	ctx.JSON(http.StatusOK, dto.ApplicationStatusResponse{
		ReferenceNumber: app.ReferenceNumber,
		Type:            app.ApplicationType,
		Capacity:        app.SystemCapacity,
		Status:          app.Status,
		SubmittedAt:     app.SubmittedAt.Format("2006-01-02"),
		UpdatedAt:       app.UpdatedAt.Format("2006-01-02"),
	})
}

// GetApplications возвращает все заявки для администратора
// @Summary Список заявок
// @Description Все заявки с фильтром по статусу, свежие первыми (только администратор)
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} dto.ApplicationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/applications [get]
func (h *APIHandler) GetApplications(ctx *gin.Context) {
	status := ctx.Query("status")
	if status == "all" {
		status = ""
	}
	if status != "" && !intake.ValidStatus(status) {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid status value")
		return
	}

	apps, err := h.Repository.GetApplications(status)
	if err != nil {
		logrus.Error("Error getting applications: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load applications")
		return
	}

	dtoApps := make([]dto.ApplicationResponse, len(apps))
	for i, app := range apps {
		dtoApps[i] = toApplicationResponse(app, true)
	}

	ctx.JSON(http.StatusOK, dto.ApplicationListResponse{
		Applications: dtoApps,
		Total:        len(dtoApps),
	})
}

// UpdateApplication обновляет статус и заметки заявки
// @Summary Обновление заявки администратором
// @Description Перезаписывает статус и заметки; граф переходов не проверяется
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Param request body dto.UpdateApplicationRequest true "Новый статус и заметки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/applications/{id} [put]
func (h *APIHandler) UpdateApplication(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req dto.UpdateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if !intake.ValidStatus(req.Status) {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid status value")
		return
	}

	err = h.Repository.UpdateApplicationStatus(uint(id), req.Status, req.AdminNotes)
	if err != nil {
		h.domainError(ctx, err, "Failed to update application")
		return
	}

	h.successResponse(ctx, http.StatusOK, "Application updated successfully", nil)
}
