package solar

import "math"

// Константы расчета для региона Равалпинди
const (
	electricityRate  = 25.0    // PKR за единицу
	peakSunHours     = 5.5     // среднее по региону
	systemLossFactor = 0.8     // потери системы
	costPerKW        = 80000.0 // средняя стоимость установки за кВт
	areaPerKW        = 100.0   // кв. футов на кВт
	carbonPerKWh     = 0.453592
)

// Стандартные размеры систем, кВт
var standardCapacities = []int{1, 2, 3, 5, 7, 10, 15, 20, 25, 30, 40, 50}

// Recommendation — результат подбора солнечной системы
type Recommendation struct {
	RecommendedCapacity int     `json:"recommended_capacity"` // кВт
	MonthlyConsumption  float64 `json:"monthly_consumption"`  // единиц
	EstimatedCost       float64 `json:"estimated_cost"`       // PKR
	MonthlySavings      float64 `json:"monthly_savings"`
	AnnualSavings       float64 `json:"annual_savings"`
	PaybackPeriod       float64 `json:"payback_period"` // лет
	CarbonOffset        float64 `json:"carbon_offset"`  // тонн CO2 в год
	NetMeteringEligible bool    `json:"net_metering_eligible"`
	RequiredArea        float64 `json:"required_area"` // кв. футов
	MonthlyGeneration   float64 `json:"monthly_generation"` // кВт*ч
}

// Estimate подбирает систему по месячному счету за электричество и площади крыши.
// Расчет детерминированный, без I/O. Положительность входов проверяет вызывающий.
func Estimate(monthlyBill, roofArea float64, propertyType string) Recommendation {
	monthlyUnits := monthlyBill / electricityRate
	dailyUnits := monthlyUnits / 30

	requiredCapacity := dailyUnits / (peakSunHours * systemLossFactor)

	// Округляем вверх до стандартного размера; больше 50 кВт не предлагаем
	recommended := standardCapacities[len(standardCapacities)-1]
	for _, c := range standardCapacities {
		if float64(c) >= requiredCapacity {
			recommended = c
			break
		}
	}

	// Площадь считается от подобранного стандартного размера, до ограничения по крыше
	requiredArea := float64(recommended) * areaPerKW

	// Ограничение по крыше всегда важнее расчета от счета
	if requiredArea > roofArea {
		recommended = int(roofArea / areaPerKW)
		if recommended < 1 {
			recommended = 1
		}
	}

	totalCost := float64(recommended) * costPerKW

	monthlyGeneration := float64(recommended) * peakSunHours * 30 * systemLossFactor
	monthlySavings := monthlyGeneration * electricityRate
	annualSavings := monthlySavings * 12

	paybackYears := 0.0
	if annualSavings > 0 {
		paybackYears = totalCost / annualSavings
	}

	annualCarbonOffset := monthlyGeneration * 12 * carbonPerKWh / 1000

	return Recommendation{
		RecommendedCapacity: recommended,
		MonthlyConsumption:  round2(monthlyUnits),
		EstimatedCost:       totalCost,
		MonthlySavings:      round2(monthlySavings),
		AnnualSavings:       round2(annualSavings),
		PaybackPeriod:       round1(paybackYears),
		CarbonOffset:        round2(annualCarbonOffset),
		NetMeteringEligible: recommended >= 5,
		RequiredArea:        requiredArea,
		MonthlyGeneration:   round2(monthlyGeneration),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
