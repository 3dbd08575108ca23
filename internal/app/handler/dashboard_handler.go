package handler

import (
	"net/http"
	"solarbackend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДАШБОРД И ПУБЛИЧНАЯ СТАТИСТИКА ============

// GetDashboard возвращает сводку для админ-панели
// @Summary Админ-дашборд
// @Description Счетчики по клиентам, товарам, заказам и заявкам плюс последние поступления
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/dashboard [get]
func (h *APIHandler) GetDashboard(ctx *gin.Context) {
	stats := dto.DashboardStatsResponse{
		Clients:             h.Repository.CountClients(),
		Products:            h.Repository.CountProducts(),
		Orders:              h.Repository.CountOrders(),
		PendingApplications: h.Repository.CountApplicationsByStatus("pending"),
		PendingMaintenance:  h.Repository.CountMaintenanceByStatus("pending"),
	}

	recentApps, err := h.Repository.GetRecentApplications(5)
	if err != nil {
		logrus.Error("Error getting recent applications: ", err)
		recentApps = nil
	}

	recentOrders, err := h.Repository.GetRecentOrders(5)
	if err != nil {
		logrus.Error("Error getting recent orders: ", err)
		recentOrders = nil
	}

	resp := dto.DashboardResponse{Stats: stats}
	resp.RecentApplications = make([]dto.ApplicationResponse, len(recentApps))
	for i, app := range recentApps {
		resp.RecentApplications[i] = toApplicationResponse(app, false)
	}
	resp.RecentOrders = make([]dto.OrderResponse, len(recentOrders))
	for i, order := range recentOrders {
		resp.RecentOrders[i] = toOrderResponse(order, false)
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetSiteStats возвращает цифры для публичной витрины
// @Summary Публичная статистика
// @Description Количество установок, клиентов и суммарная установленная мощность
// @Tags Stats
// @Produce json
// @Success 200 {object} dto.SiteStatsResponse
// @Router /api/stats [get]
func (h *APIHandler) GetSiteStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SiteStatsResponse{
		Installations: h.Repository.CountGalleryProjects(),
		Clients:       h.Repository.CountClients(),
		CapacityKW:    h.Repository.TotalInstalledCapacity(),
	})
}
