package handler

import (
	"net/http"
	"solarbackend/internal/app/dto"
	"solarbackend/internal/app/solar"

	"github.com/gin-gonic/gin"
)

// CalculateSolarSystem подбирает солнечную систему по счету и площади крыши
// @Summary Калькулятор солнечной системы
// @Description Рассчитывает мощность, стоимость, экономию и окупаемость по среднему счету и площади крыши
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body dto.CalculatorRequest true "Средний счет и площадь крыши"
// @Success 200 {object} solar.Recommendation
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/solar-calculator [post]
func (h *APIHandler) CalculateSolarSystem(ctx *gin.Context) {
	var req dto.CalculatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Monthly bill and roof area must be positive numbers")
		return
	}

	propertyType := req.PropertyType
	if propertyType == "" {
		propertyType = "residential"
	}

	ctx.JSON(http.StatusOK, solar.Estimate(req.MonthlyBill, req.RoofArea, propertyType))
}
