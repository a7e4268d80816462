package loans

import (
	"math"

	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// tenureEpsilon absorbs floating-point noise so an exact whole number of
// months is not pushed up to the next month by math.Ceil.
const tenureEpsilon = 1e-9

// PrepaymentResult describes a loan after a one-off part prepayment.
// NewEMI is nil when the prepayment settles the loan. NewTenureMonths is nil
// when the loan is settled or when the EMI can no longer amortize the balance.
type PrepaymentResult struct {
	IsValid               bool     `json:"isValid"`
	OriginalEMI           float64  `json:"originalEmi"`
	BalanceAtPrepayment   float64  `json:"balanceAtPrepayment"`
	BalanceAfterPrepay    float64  `json:"balanceAfterPrepayment"`
	RemainingMonths       int      `json:"remainingMonths"`
	NewEMI                *float64 `json:"newEmi,omitempty"`
	NewTenureMonths       *int     `json:"newTenureMonths,omitempty"`
	TenureReduction       int      `json:"tenureReduction"`
	OriginalTotalInterest float64  `json:"originalTotalInterest"`
	NewTotalInterest      float64  `json:"newTotalInterest"`
	InterestSaved         float64  `json:"interestSaved"`
	Settled               bool     `json:"settled"`
}

// MoratoriumResult describes a loan after an interest-only grace period.
// ExtendedTenureMonths is the tenure needed if the original EMI is kept
// instead; it is nil when that EMI cannot amortize the inflated principal.
type MoratoriumResult struct {
	IsValid                  bool    `json:"isValid"`
	OriginalEMI              float64 `json:"originalEmi"`
	InterestAccrued          float64 `json:"interestAccrued"`
	PrincipalAfterMoratorium float64 `json:"principalAfterMoratorium"`
	NewEMI                   float64 `json:"newEmi"`
	ExtendedTenureMonths     *int    `json:"extendedTenureMonths,omitempty"`
	OriginalTotalInterest    float64 `json:"originalTotalInterest"`
	NewTotalInterest         float64 `json:"newTotalInterest"`
	AdditionalInterest       float64 `json:"additionalInterest"`
}

// RateChangeResult compares a loan before and after its interest rate changes.
type RateChangeResult struct {
	IsValid               bool    `json:"isValid"`
	OriginalEMI           float64 `json:"originalEmi"`
	NewEMI                float64 `json:"newEmi"`
	EMIDifference         float64 `json:"emiDifference"`
	OutstandingBalance    float64 `json:"outstandingBalance"`
	RemainingMonths       int     `json:"remainingMonths"`
	NewTenureMonths       *int    `json:"newTenureMonths,omitempty"`
	OriginalTotalInterest float64 `json:"originalTotalInterest"`
	NewTotalInterest      float64 `json:"newTotalInterest"`
	InterestDifference    float64 `json:"interestDifference"`
}

// OutstandingBalance projects the balance left after afterMonths instalments
// using the closed-form annuity balance. The result never goes below zero.
func OutstandingBalance(principal, annualRatePercent float64, tenureMonths, afterMonths int) float64 {
	emi := ComputeEMI(principal, annualRatePercent, tenureMonths)
	if emi == 0 || afterMonths < 0 {
		return 0
	}
	balance := projectBalance(principal, mathutil.MonthlyRate(annualRatePercent), emi, afterMonths)
	return mathutil.Max(0, mathutil.Round2(balance))
}

// SolveTenure returns the number of months a fixed EMI needs to retire balance
// at annualRatePercent. It reports false when no finite tenure exists, which
// happens whenever the EMI does not exceed the first month's interest.
func SolveTenure(balance, annualRatePercent, emi float64) (int, bool) {
	if !mathutil.IsFinite(balance) || !mathutil.IsFinite(emi) || balance <= 0 || emi <= 0 || annualRatePercent < 0 {
		return 0, false
	}
	rate := mathutil.MonthlyRate(annualRatePercent)
	if rate == 0 {
		return int(math.Ceil(balance/emi - tenureEpsilon)), true
	}
	monthlyInterest := balance * rate
	if emi <= monthlyInterest {
		return 0, false
	}
	months := math.Log(1+monthlyInterest/(emi-monthlyInterest)) / math.Log(1+rate)
	return int(math.Ceil(months - tenureEpsilon)), true
}

// PrepayReduceEMI applies prepaymentAmount after prepaymentMonth instalments
// and keeps the remaining tenure, lowering the EMI instead.
func PrepayReduceEMI(principal, annualRatePercent float64, tenureMonths int, prepaymentAmount float64, prepaymentMonth int) PrepaymentResult {
	result, balance, ok := prepare(principal, annualRatePercent, tenureMonths, prepaymentAmount, prepaymentMonth)
	if !ok || result.Settled {
		return result
	}

	newEMI := ComputeEMI(balance, annualRatePercent, result.RemainingMonths)
	result.NewEMI = &newEMI
	remainingTenure := result.RemainingMonths
	result.NewTenureMonths = &remainingTenure

	paid := result.OriginalEMI*float64(prepaymentMonth) + prepaymentAmount + newEMI*float64(result.RemainingMonths)
	result.finish(principal, paid)
	return result
}

// PrepayReduceTenure applies prepaymentAmount after prepaymentMonth instalments
// and keeps the EMI, shortening the tenure instead.
func PrepayReduceTenure(principal, annualRatePercent float64, tenureMonths int, prepaymentAmount float64, prepaymentMonth int) PrepaymentResult {
	result, balance, ok := prepare(principal, annualRatePercent, tenureMonths, prepaymentAmount, prepaymentMonth)
	if !ok || result.Settled {
		return result
	}

	months, ok := SolveTenure(balance, annualRatePercent, result.OriginalEMI)
	if !ok {
		return result
	}
	result.NewTenureMonths = &months
	emi := result.OriginalEMI
	result.NewEMI = &emi
	result.TenureReduction = result.RemainingMonths - months

	// the last instalment only covers what is left after months-1 payments
	rate := mathutil.MonthlyRate(annualRatePercent)
	lastPayment := mathutil.Max(0, projectBalance(balance, rate, emi, months-1)) * (1 + rate)
	paid := emi*float64(prepaymentMonth) + prepaymentAmount + emi*float64(months-1) + lastPayment
	result.finish(principal, paid)
	return result
}

// prepare validates prepayment input and fills the fields shared by both
// prepayment strategies. The returned balance is unrounded.
func prepare(principal, annualRatePercent float64, tenureMonths int, prepaymentAmount float64, prepaymentMonth int) (PrepaymentResult, float64, bool) {
	var result PrepaymentResult
	emi := ComputeEMI(principal, annualRatePercent, tenureMonths)
	if emi == 0 || !mathutil.IsFinite(prepaymentAmount) || prepaymentAmount < 0 ||
		prepaymentMonth < 0 || prepaymentMonth > tenureMonths {
		return result, 0, false
	}

	rate := mathutil.MonthlyRate(annualRatePercent)
	balance := mathutil.Max(0, projectBalance(principal, rate, emi, prepaymentMonth))
	after := balance - prepaymentAmount

	result.IsValid = true
	result.OriginalEMI = emi
	result.OriginalTotalInterest = ComputeTotalInterest(principal, ComputeTotalAmount(emi, tenureMonths))
	result.BalanceAtPrepayment = mathutil.Round2(balance)
	result.BalanceAfterPrepay = mathutil.Max(0, mathutil.Round2(after))
	result.RemainingMonths = tenureMonths - prepaymentMonth

	// a balance within a paisa of zero counts as settled
	if !mathutil.IsPositive(after) || result.RemainingMonths <= 0 {
		result.Settled = true
		result.BalanceAfterPrepay = 0
		result.TenureReduction = result.RemainingMonths
		paid := emi*float64(prepaymentMonth) + balance
		result.finish(principal, paid)
		return result, 0, true
	}
	return result, after, true
}

func (r *PrepaymentResult) finish(principal, totalPaid float64) {
	r.NewTotalInterest = mathutil.Max(0, mathutil.Round2(totalPaid-principal))
	r.InterestSaved = mathutil.Round2(r.OriginalTotalInterest - r.NewTotalInterest)
}

// Moratorium models a grace period of moratoriumMonths during which interest
// compounds monthly onto the principal and no instalments are paid.
func Moratorium(principal, annualRatePercent float64, tenureMonths, moratoriumMonths int) MoratoriumResult {
	emi := ComputeEMI(principal, annualRatePercent, tenureMonths)
	if emi == 0 || moratoriumMonths < 0 {
		return MoratoriumResult{}
	}

	rate := mathutil.MonthlyRate(annualRatePercent)
	inflated := principal * math.Pow(1+rate, float64(moratoriumMonths))
	newEMI := ComputeEMI(inflated, annualRatePercent, tenureMonths)

	result := MoratoriumResult{
		IsValid:                  true,
		OriginalEMI:              emi,
		InterestAccrued:          mathutil.Round2(inflated - principal),
		PrincipalAfterMoratorium: mathutil.Round2(inflated),
		NewEMI:                   newEMI,
		OriginalTotalInterest:    ComputeTotalInterest(principal, ComputeTotalAmount(emi, tenureMonths)),
		NewTotalInterest:         ComputeTotalInterest(principal, ComputeTotalAmount(newEMI, tenureMonths)),
	}
	result.AdditionalInterest = mathutil.Round2(result.NewTotalInterest - result.OriginalTotalInterest)
	if months, ok := SolveTenure(inflated, annualRatePercent, emi); ok {
		result.ExtendedTenureMonths = &months
	}
	return result
}

// RateChange re-prices a loan at newRatePercent. With afterMonths of zero the
// whole tenure is re-projected at the new rate. Otherwise the balance left
// after afterMonths instalments at the old rate is re-amortized over the
// months that remain.
func RateChange(principal, oldRatePercent, newRatePercent float64, tenureMonths, afterMonths int) RateChangeResult {
	emi := ComputeEMI(principal, oldRatePercent, tenureMonths)
	if emi == 0 || !mathutil.IsFinite(newRatePercent) || newRatePercent < 0 ||
		afterMonths < 0 || afterMonths >= tenureMonths {
		return RateChangeResult{}
	}

	oldRate := mathutil.MonthlyRate(oldRatePercent)
	balance := principal
	if afterMonths > 0 {
		balance = mathutil.Max(0, projectBalance(principal, oldRate, emi, afterMonths))
	}
	remaining := tenureMonths - afterMonths
	newEMI := ComputeEMI(balance, newRatePercent, remaining)

	result := RateChangeResult{
		IsValid:               true,
		OriginalEMI:           emi,
		NewEMI:                newEMI,
		EMIDifference:         mathutil.Round2(newEMI - emi),
		OutstandingBalance:    mathutil.Round2(balance),
		RemainingMonths:       remaining,
		OriginalTotalInterest: ComputeTotalInterest(principal, ComputeTotalAmount(emi, tenureMonths)),
	}
	paid := emi*float64(afterMonths) + newEMI*float64(remaining)
	result.NewTotalInterest = mathutil.Round2(paid - principal)
	result.InterestDifference = mathutil.Round2(result.NewTotalInterest - result.OriginalTotalInterest)
	if months, ok := SolveTenure(balance, newRatePercent, emi); ok {
		result.NewTenureMonths = &months
	}
	return result
}
