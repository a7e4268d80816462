package growth

import (
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// EPF contribution defaults. The employer's 12% is split and only the part
// left after the pension scheme share reaches the provident fund.
const (
	DefaultEPFEmployeePercent = 12.0
	DefaultEPFEmployerPercent = 3.67
	DefaultEPFRetirementAge   = 58
)

// EPFInput describes an employee's provident fund account.
type EPFInput struct {
	MonthlySalary               float64 `json:"monthlySalary" yaml:"monthlySalary"`
	CurrentAge                  int     `json:"currentAge" yaml:"currentAge"`
	RetirementAge               int     `json:"retirementAge" yaml:"retirementAge"`
	EmployeeContributionPercent float64 `json:"employeeContributionPercent" yaml:"employeeContributionPercent"`
	EmployerContributionPercent float64 `json:"employerContributionPercent" yaml:"employerContributionPercent"`
	AnnualIncreasePercent       float64 `json:"annualIncreasePercent" yaml:"annualIncreasePercent"`
	AnnualRatePercent           float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	CurrentBalance              float64 `json:"currentBalance" yaml:"currentBalance"`
}

// EPFYear is one financial year of an EPF projection.
type EPFYear struct {
	Year                 int     `json:"year"`
	Age                  int     `json:"age"`
	MonthlySalary        float64 `json:"monthlySalary"`
	EmployeeContribution float64 `json:"employeeContribution"`
	EmployerContribution float64 `json:"employerContribution"`
	Interest             float64 `json:"interest"`
	ClosingBalance       float64 `json:"closingBalance"`
}

// EPFResult is the projected provident fund corpus at retirement.
type EPFResult struct {
	IsValid                   bool      `json:"isValid"`
	Years                     int       `json:"years"`
	TotalEmployeeContribution float64   `json:"totalEmployeeContribution"`
	TotalEmployerContribution float64   `json:"totalEmployerContribution"`
	TotalInterest             float64   `json:"totalInterest"`
	MaturityAmount            float64   `json:"maturityAmount"`
	Yearly                    []EPFYear `json:"yearly"`
}

// EPF projects an EPF account until retirement. Interest accrues monthly on
// the running balance and is credited once at the end of each year, after
// which the salary grows by AnnualIncreasePercent.
func EPF(in EPFInput) EPFResult {
	if in.RetirementAge == 0 {
		in.RetirementAge = DefaultEPFRetirementAge
	}
	if in.EmployeeContributionPercent == 0 {
		in.EmployeeContributionPercent = DefaultEPFEmployeePercent
	}
	if in.EmployerContributionPercent == 0 {
		in.EmployerContributionPercent = DefaultEPFEmployerPercent
	}
	years := in.RetirementAge - in.CurrentAge
	if !validInputs(in.MonthlySalary, in.AnnualRatePercent, float64(years)) || in.CurrentAge <= 0 ||
		in.CurrentBalance < 0 || in.AnnualIncreasePercent < 0 ||
		in.EmployeeContributionPercent < 0 || in.EmployeeContributionPercent > constants.PercentageMultiplier ||
		in.EmployerContributionPercent < 0 || in.EmployerContributionPercent > constants.PercentageMultiplier {
		return EPFResult{Yearly: []EPFYear{}}
	}

	rate := periodicRate(in.AnnualRatePercent, constants.MonthsPerYear)
	result := EPFResult{IsValid: true, Years: years, Yearly: make([]EPFYear, 0, years)}

	balance := in.CurrentBalance
	salary := in.MonthlySalary
	var employeeTotal, employerTotal, interestTotal float64
	for year := 1; year <= years; year++ {
		employee := mathutil.ApplyPercentage(salary, in.EmployeeContributionPercent)
		employer := mathutil.ApplyPercentage(salary, in.EmployerContributionPercent)

		interest := 0.0
		for month := 0; month < constants.MonthsPerYear; month++ {
			balance += employee + employer
			interest += balance * rate
		}
		balance += interest

		employeeTotal += employee * constants.MonthsPerYear
		employerTotal += employer * constants.MonthsPerYear
		interestTotal += interest
		result.Yearly = append(result.Yearly, EPFYear{
			Year:                 year,
			Age:                  in.CurrentAge + year,
			MonthlySalary:        mathutil.Round2(salary),
			EmployeeContribution: mathutil.Round2(employee * constants.MonthsPerYear),
			EmployerContribution: mathutil.Round2(employer * constants.MonthsPerYear),
			Interest:             mathutil.Round2(interest),
			ClosingBalance:       mathutil.Round2(balance),
		})
		salary += mathutil.ApplyPercentage(salary, in.AnnualIncreasePercent)
	}

	result.TotalEmployeeContribution = mathutil.Round2(employeeTotal)
	result.TotalEmployerContribution = mathutil.Round2(employerTotal)
	result.TotalInterest = mathutil.Round2(interestTotal)
	result.MaturityAmount = mathutil.Round2(balance)
	return result
}
