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

// ============ ДОМЕН ГАЛЕРЕИ ПРОЕКТОВ ============

func toGalleryResponse(project ds.GalleryProject) dto.GalleryProjectResponse {
	images := project.Images
	if images == nil {
		images = ds.StringList{}
	}
	return dto.GalleryProjectResponse{
		ID:             project.ID,
		Title:          project.Title,
		Description:    project.Description,
		Location:       project.Location,
		SystemCapacity: project.SystemCapacity,
		CompletionDate: formatDate(project.CompletionDate),
		Images:         images,
		Category:       project.Category,
	}
}

// GetGalleryProjects возвращает выполненные проекты
// @Summary Галерея проектов
// @Description Публичный список выполненных установок с фильтром по категории
// @Tags Gallery
// @Produce json
// @Param category query string false "Категория (residential, commercial, industrial)"
// @Success 200 {object} dto.GalleryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/gallery [get]
func (h *APIHandler) GetGalleryProjects(ctx *gin.Context) {
	category := ctx.Query("category")
	if category == "all" {
		category = ""
	}

	projects, err := h.Repository.GetGalleryProjects(category)
	if err != nil {
		logrus.Error("Error getting gallery projects: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to load gallery")
		return
	}

	result := make([]dto.GalleryProjectResponse, len(projects))
	for i, project := range projects {
		result[i] = toGalleryResponse(project)
	}

	ctx.JSON(http.StatusOK, dto.GalleryListResponse{Projects: result, Total: len(result)})
}

// CreateGalleryProject добавляет проект в галерею
// @Summary Добавление проекта в галерею
// @Description Создает проект с загрузкой нескольких изображений (только администратор)
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Название проекта"
// @Param description formData string false "Описание"
// @Param location formData string false "Расположение"
// @Param system_capacity formData number false "Мощность системы, кВт"
// @Param completion_date formData string false "Дата завершения (YYYY-MM-DD)"
// @Param category formData string false "Категория"
// @Param images formData file false "Изображения проекта"
// @Success 201 {object} dto.GalleryProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/gallery [post]
func (h *APIHandler) CreateGalleryProject(ctx *gin.Context) {
	title := ctx.PostForm("title")
	if title == "" {
		h.errorResponse(ctx, http.StatusBadRequest, "Title is required")
		return
	}

	capacity, _ := strconv.ParseFloat(ctx.PostForm("system_capacity"), 64)
	category := ctx.PostForm("category")
	if category == "" {
		category = "residential"
	}

	project := ds.GalleryProject{
		Title:          title,
		Description:    ctx.PostForm("description"),
		Location:       ctx.PostForm("location"),
		SystemCapacity: capacity,
		CompletionDate: parseDate(ctx.PostForm("completion_date")),
		Images:         ds.StringList{},
		Category:       category,
	}

	form, err := ctx.MultipartForm()
	if err == nil && form != nil {
		for _, file := range form.File["images"] {
			opened, err := file.Open()
			if err != nil {
				continue
			}
			data, err := io.ReadAll(opened)
			opened.Close()
			if err != nil {
				continue
			}

			object, err := h.MinIOClient.UploadImage(ctx.Request.Context(), data, file.Filename)
			if err != nil {
				logrus.Error("Error uploading gallery image: ", err)
				continue
			}
			project.Images = append(project.Images, object)
		}
	}

	if err := h.Repository.CreateGalleryProject(&project); err != nil {
		logrus.Error("Error creating gallery project: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to create project")
		return
	}

	ctx.JSON(http.StatusCreated, toGalleryResponse(project))
}

// UpdateGalleryProject изменяет описание проекта
// @Summary Обновление проекта галереи
// @Description Меняет текстовые поля проекта; изображения не трогает (только администратор)
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param title formData string false "Название проекта"
// @Param description formData string false "Описание"
// @Param location formData string false "Расположение"
// @Param system_capacity formData number false "Мощность системы, кВт"
// @Param completion_date formData string false "Дата завершения (YYYY-MM-DD)"
// @Param category formData string false "Категория"
// @Success 200 {object} dto.GalleryProjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/gallery/{id} [put]
func (h *APIHandler) UpdateGalleryProject(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.Repository.GetGalleryProjectByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "Project not found")
		return
	}

	if v := ctx.PostForm("title"); v != "" {
		project.Title = v
	}
	if v := ctx.PostForm("description"); v != "" {
		project.Description = v
	}
	if v := ctx.PostForm("location"); v != "" {
		project.Location = v
	}
	if v := ctx.PostForm("system_capacity"); v != "" {
		if capacity, err := strconv.ParseFloat(v, 64); err == nil {
			project.SystemCapacity = capacity
		}
	}
	if v := ctx.PostForm("completion_date"); v != "" {
		project.CompletionDate = parseDate(v)
	}
	if v := ctx.PostForm("category"); v != "" {
		project.Category = v
	}

	if err := h.Repository.UpdateGalleryProject(project); err != nil {
		logrus.Error("Error updating gallery project: ", err)
		h.errorResponse(ctx, http.StatusInternalServerError, "Failed to update project")
		return
	}

	ctx.JSON(http.StatusOK, toGalleryResponse(*project))
}

// DeleteGalleryProject удаляет проект из галереи
// @Summary Удаление проекта из галереи
// @Description Удаляет проект и его изображения из хранилища (только администратор)
// @Tags Gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/gallery/{id} [delete]
func (h *APIHandler) DeleteGalleryProject(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.Repository.GetGalleryProjectByID(uint(id))
	if err != nil {
		h.errorResponse(ctx, http.StatusNotFound, "Project not found")
		return
	}

	if err := h.Repository.DeleteGalleryProject(uint(id)); err != nil {
		h.domainError(ctx, err, "Failed to delete project")
		return
	}

	// Осиротевшие изображения подчищаем после удаления записи
	for _, image := range project.Images {
		if err := h.MinIOClient.DeleteFile(ctx.Request.Context(), image); err != nil {
			logrus.Warnf("Failed to delete gallery image %s: %v", image, err)
		}
	}

	h.successResponse(ctx, http.StatusOK, "Project deleted successfully", nil)
}
