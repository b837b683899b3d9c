package roi

import "math"

// Uplift assumptions baked into every projection. These mirror the figures
// quoted on the marketing site and are part of the contract, not tunables.
const (
	trafficUplift    = 0.40
	conversionUplift = 0.25
)

// Inputs are the visitor-supplied business metrics.
type Inputs struct {
	MonthlyTraffic    float64 `json:"monthlyTraffic"`
	ConversionRate    float64 `json:"conversionRate"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// Projection is the full revenue projection derived from one set of inputs.
type Projection struct {
	MonthlyTraffic    float64 `json:"monthlyTraffic"`
	ConversionRate    float64 `json:"conversionRate"`
	AverageOrderValue float64 `json:"averageOrderValue"`

	CurrentRevenue          float64 `json:"currentRevenue"`
	ProjectedTraffic        float64 `json:"projectedTraffic"`
	ProjectedConversionRate float64 `json:"projectedConversionRate"`
	ProjectedRevenue        float64 `json:"projectedRevenue"`
	MonthlyGain             float64 `json:"monthlyROI"`
	YearlyGain              float64 `json:"yearlyROI"`

	TrafficIncreasePct    float64 `json:"projectedTrafficIncrease"`
	ConversionIncreasePct float64 `json:"projectedConversionIncrease"`
}

// Validate rejects non-finite or out-of-range metrics. The UI clamps its
// sliders to valid ranges already, but the API must not rely on that.
func (in Inputs) Validate() error {
	for _, v := range []float64{in.MonthlyTraffic, in.ConversionRate, in.AverageOrderValue} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidInputs
		}
	}
	if in.MonthlyTraffic <= 0 || in.AverageOrderValue <= 0 {
		return ErrInvalidInputs
	}
	if in.ConversionRate < 0 || in.ConversionRate > 100 {
		return ErrInvalidInputs
	}
	return nil
}

// Estimate computes the revenue projection. Pure and deterministic: identical
// inputs always produce identical output.
func Estimate(in Inputs) (Projection, error) {
	if err := in.Validate(); err != nil {
		return Projection{}, err
	}

	conversion := in.ConversionRate / 100
	currentRevenue := in.MonthlyTraffic * conversion * in.AverageOrderValue

	projectedTraffic := in.MonthlyTraffic * (1 + trafficUplift)
	projectedConversion := conversion * (1 + conversionUplift)
	projectedRevenue := projectedTraffic * projectedConversion * in.AverageOrderValue

	monthlyGain := projectedRevenue - currentRevenue

	return Projection{
		MonthlyTraffic:    in.MonthlyTraffic,
		ConversionRate:    in.ConversionRate,
		AverageOrderValue: in.AverageOrderValue,

		CurrentRevenue:          currentRevenue,
		ProjectedTraffic:        projectedTraffic,
		ProjectedConversionRate: projectedConversion * 100,
		ProjectedRevenue:        projectedRevenue,
		MonthlyGain:             monthlyGain,
		YearlyGain:              monthlyGain * 12,

		TrafficIncreasePct:    trafficUplift * 100,
		ConversionIncreasePct: conversionUplift * 100,
	}, nil
}
