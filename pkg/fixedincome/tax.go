// Package fixedincome implements the calculation core for simulating
// Brazilian fixed-income investments: the regressive withholding tax table,
// conversion of annual yield regimes into effective monthly rates, and the
// month-by-month balance projection with terminal tax deduction.
package fixedincome

// Regressive withholding tax schedule for taxable instruments. Band upper
// bounds are inclusive and expressed in calendar days held.
const (
	taxBand1MaxDays = 180
	taxBand2MaxDays = 360
	taxBand3MaxDays = 720

	taxBand1Rate = 0.225
	taxBand2Rate = 0.20
	taxBand3Rate = 0.175
	taxBand4Rate = 0.15
)

// ResolveTaxRate returns the withholding tax rate for a taxable instrument
// held for termDays. The schedule is regressive: the rate steps down as the
// holding period grows. Defined for any non-negative term; the rate only
// applies when the instrument itself is taxable.
func ResolveTaxRate(termDays int) float64 {
	switch {
	case termDays <= taxBand1MaxDays:
		return taxBand1Rate
	case termDays <= taxBand2MaxDays:
		return taxBand2Rate
	case termDays <= taxBand3MaxDays:
		return taxBand3Rate
	default:
		return taxBand4Rate
	}
}
