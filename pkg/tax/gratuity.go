package tax

import (
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// MinimumGratuityService is the continuous service, in years, after which
// gratuity becomes payable on resignation.
const MinimumGratuityService = 5

// GratuityResult is the gratuity due on leaving an employer.
type GratuityResult struct {
	MonthlySalary       float64 `json:"monthlySalary"`
	ServiceYears        float64 `json:"serviceYears"`
	Amount              float64 `json:"amount"`
	Capped              bool    `json:"capped"`
	MeetsMinimumService bool    `json:"meetsMinimumService"`
}

// Gratuity computes 15 days of salary per year of service on a 26 day month,
// capped at the statutory ceiling. Salary is the last drawn basic plus DA.
func Gratuity(monthlySalary, serviceYears float64) GratuityResult {
	if !mathutil.IsFinite(monthlySalary) || !mathutil.IsFinite(serviceYears) || monthlySalary <= 0 || serviceYears <= 0 {
		return GratuityResult{}
	}
	amount := mathutil.Round2(monthlySalary * constants.GratuityDaysPerYear * serviceYears / constants.GratuityDaysPerMonth)
	capped := amount > constants.GratuityCap
	if capped {
		amount = constants.GratuityCap
	}
	return GratuityResult{
		MonthlySalary:       mathutil.Round2(monthlySalary),
		ServiceYears:        serviceYears,
		Amount:              amount,
		Capped:              capped,
		MeetsMinimumService: serviceYears >= MinimumGratuityService,
	}
}

// GratuityForService counts a part year of six months or more as a full year
// of service before computing gratuity.
func GratuityForService(monthlySalary float64, years, months int) GratuityResult {
	if years < 0 || months < 0 || months >= constants.MonthsPerYear {
		return GratuityResult{}
	}
	if months >= constants.MonthsPerYear/2 {
		years++
	}
	return Gratuity(monthlySalary, float64(years))
}
