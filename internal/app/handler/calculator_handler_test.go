package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"solarbackend/internal/app/solar"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalculatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &APIHandler{}
	router := gin.New()
	router.POST("/api/solar-calculator", h.CalculateSolarSystem)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateSolarSystem(t *testing.T) {
	router := newCalculatorRouter()

	w := postJSON(router, "/api/solar-calculator", `{"monthly_bill": 25000, "roof_area": 10000}`)
	require.Equal(t, http.StatusOK, w.Code)

	var rec solar.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

	assert.Equal(t, 10, rec.RecommendedCapacity)
	assert.Equal(t, 800000.0, rec.EstimatedCost)
	assert.True(t, rec.NetMeteringEligible)
}

func TestCalculateSolarSystem_RejectsNonPositiveInput(t *testing.T) {
	router := newCalculatorRouter()

	for _, body := range []string{
		`{"monthly_bill": 0, "roof_area": 100}`,
		`{"monthly_bill": 5000, "roof_area": -1}`,
		`{"roof_area": 100}`,
		`not json`,
	} {
		w := postJSON(router, "/api/solar-calculator", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		number := generateOrderNumber(now)
		assert.Regexp(t, regexp.MustCompile(`^AME-20240115-[1-9][0-9]{4}$`), number)
	}
}
