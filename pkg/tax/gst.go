package tax

import (
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
)

// GSTResult splits an amount into its base and GST. Intra-state supplies
// split the tax equally into CGST and SGST; inter-state supplies carry it all
// as IGST.
type GSTResult struct {
	BaseAmount  float64 `json:"baseAmount"`
	RatePercent float64 `json:"ratePercent"`
	TaxAmount   float64 `json:"taxAmount"`
	TotalAmount float64 `json:"totalAmount"`
	InterState  bool    `json:"interState"`
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	IGST        float64 `json:"igst"`
}

// VATResult splits an amount into its base and VAT.
type VATResult struct {
	BaseAmount  float64 `json:"baseAmount"`
	RatePercent float64 `json:"ratePercent"`
	TaxAmount   float64 `json:"taxAmount"`
	TotalAmount float64 `json:"totalAmount"`
}

// GSTFromBase adds GST at ratePercent to a pre-tax amount.
func GSTFromBase(base, ratePercent float64, interState bool) GSTResult {
	if !validRate(base, ratePercent) {
		return GSTResult{}
	}
	tax := mathutil.ApplyPercentage(base, ratePercent)
	return splitGST(base, base+tax, ratePercent, interState)
}

// GSTFromTotal extracts GST at ratePercent from a tax-inclusive amount.
func GSTFromTotal(total, ratePercent float64, interState bool) GSTResult {
	if !validRate(total, ratePercent) {
		return GSTResult{}
	}
	base := total / (1 + ratePercent/constants.PercentageMultiplier)
	return splitGST(base, total, ratePercent, interState)
}

// VATFromBase adds VAT at ratePercent to a pre-tax amount.
func VATFromBase(base, ratePercent float64) VATResult {
	if !validRate(base, ratePercent) {
		return VATResult{}
	}
	tax := mathutil.ApplyPercentage(base, ratePercent)
	return vatResult(base, base+tax, ratePercent)
}

// VATFromTotal extracts VAT at ratePercent from a tax-inclusive amount.
func VATFromTotal(total, ratePercent float64) VATResult {
	if !validRate(total, ratePercent) {
		return VATResult{}
	}
	base := total / (1 + ratePercent/constants.PercentageMultiplier)
	return vatResult(base, total, ratePercent)
}

func validRate(amount, ratePercent float64) bool {
	return mathutil.IsFinite(amount) && mathutil.IsFinite(ratePercent) && amount >= 0 &&
		ratePercent >= 0 && ratePercent <= constants.PercentageMultiplier
}

func splitGST(base, total, ratePercent float64, interState bool) GSTResult {
	tax := mathutil.Round2(total - base)
	result := GSTResult{
		BaseAmount:  mathutil.Round2(base),
		RatePercent: ratePercent,
		TaxAmount:   tax,
		TotalAmount: mathutil.Round2(total),
		InterState:  interState,
	}
	if interState {
		result.IGST = tax
		return result
	}
	result.CGST = mathutil.Round2(tax / 2)
	result.SGST = mathutil.Round2(tax - result.CGST)
	return result
}

func vatResult(base, total, ratePercent float64) VATResult {
	return VATResult{
		BaseAmount:  mathutil.Round2(base),
		RatePercent: ratePercent,
		TaxAmount:   mathutil.Round2(total - base),
		TotalAmount: mathutil.Round2(total),
	}
}
