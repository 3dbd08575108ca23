package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_StandardSizing(t *testing.T) {
	// 25000 PKR в месяц = 1000 единиц; расчетная мощность 7.58 кВт -> 10 кВт
	rec := Estimate(25000, 10000, "residential")

	assert.Equal(t, 10, rec.RecommendedCapacity)
	assert.Equal(t, 1000.0, rec.MonthlyConsumption)
	assert.Equal(t, 800000.0, rec.EstimatedCost)
	assert.Equal(t, 1320.0, rec.MonthlyGeneration)
	assert.Equal(t, 33000.0, rec.MonthlySavings)
	assert.Equal(t, 396000.0, rec.AnnualSavings)
	assert.Equal(t, 2.0, rec.PaybackPeriod)
	assert.Equal(t, 7.18, rec.CarbonOffset)
	assert.Equal(t, 1000.0, rec.RequiredArea)
	assert.True(t, rec.NetMeteringEligible)
}

func TestEstimate_CapacityLadder(t *testing.T) {
	tests := []struct {
		name string
		bill float64
		want int
	}{
		{"small bill rounds up to 1kW", 1000, 1},
		{"exact ladder step stays on it", 9900, 3}, // расчетная мощность ровно 3 кВт
		{"between steps rounds up", 12000, 5},
		{"huge bill capped at 50kW", 10000000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Estimate(tt.bill, 100000, "residential")
			assert.Equal(t, tt.want, rec.RecommendedCapacity)
		})
	}
}

func TestEstimate_RoofAreaOverride(t *testing.T) {
	// Счет требует 40 кВт, но на крыше 250 кв. футов помещается только 2 кВт
	rec := Estimate(100000, 250, "residential")

	assert.Equal(t, 2, rec.RecommendedCapacity)
	assert.Equal(t, 160000.0, rec.EstimatedCost)
	assert.False(t, rec.NetMeteringEligible)
	// Площадь отражает расчет от счета, а не урезанную систему
	assert.Equal(t, 4000.0, rec.RequiredArea)
	assert.Equal(t, 264.0, rec.MonthlyGeneration)
	assert.Equal(t, 2.0, rec.PaybackPeriod)
}

func TestEstimate_TinyRoofStillGetsOneKW(t *testing.T) {
	rec := Estimate(1000, 10, "residential")

	assert.Equal(t, 1, rec.RecommendedCapacity)
	assert.False(t, rec.NetMeteringEligible)
}

func TestEstimate_NetMeteringBoundary(t *testing.T) {
	// 12000 PKR дает 5 кВт — минимальный размер для net metering
	rec := Estimate(12000, 100000, "residential")

	assert.Equal(t, 5, rec.RecommendedCapacity)
	assert.True(t, rec.NetMeteringEligible)

	// Шаг ниже по лестнице уже не проходит
	rec = Estimate(9900, 100000, "residential")
	assert.Equal(t, 3, rec.RecommendedCapacity)
	assert.False(t, rec.NetMeteringEligible)
}

func TestEstimate_Rounding(t *testing.T) {
	// 1000 PKR = 40 единиц; генерация 1 кВт = 132 кВт*ч в месяц
	rec := Estimate(1000, 10000, "residential")

	assert.Equal(t, 40.0, rec.MonthlyConsumption)
	assert.Equal(t, 132.0, rec.MonthlyGeneration)
	assert.Equal(t, 3300.0, rec.MonthlySavings)
	assert.Equal(t, 39600.0, rec.AnnualSavings)
	// 80000 / 39600 = 2.0202 -> 2.0
	assert.Equal(t, 2.0, rec.PaybackPeriod)
	// 132 * 12 * 0.453592 / 1000 = 0.71849 -> 0.72
	assert.Equal(t, 0.72, rec.CarbonOffset)
}
