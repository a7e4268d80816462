// Package constants provides shared constants for the finance-calculator application.
package constants

// DateTimeLayout is the month format accepted for schedule start dates and
// used for schedule row labels.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// MonthsPerQuarter is the number of months in a compounding quarter
	MonthsPerQuarter = 3

	// DecimalPlaces is the number of decimal places kept on currency outputs
	DecimalPlaces = 2

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MonthlyRateDivisor converts an annual percentage rate into a monthly fraction
	MonthlyRateDivisor = PercentageMultiplier * MonthsPerYear

	// QuarterlyRateDivisor converts an annual percentage rate into a quarterly fraction
	QuarterlyRateDivisor = PercentageMultiplier * 4

	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01
)

// Tax and benefit constants
const (
	// CessPercent is the health and education cess applied on computed income tax
	CessPercent = 4.0

	// GratuityCap is the statutory ceiling on gratuity payouts
	GratuityCap = 2000000.0

	// GratuityDaysPerMonth is the working-day divisor used in the gratuity formula
	GratuityDaysPerMonth = 26.0

	// GratuityDaysPerYear is the number of days of wages paid per year of service
	GratuityDaysPerYear = 15.0

	// APYRetirementAge is the age at which Atal Pension Yojana contributions stop
	APYRetirementAge = 60

	// DefaultFOIRPercent is the fixed-obligation-to-income ratio assumed for eligibility
	DefaultFOIRPercent = 50.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "FINCALC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024

	// DefaultRateLimitRPS is the default sustained request rate per client
	DefaultRateLimitRPS = 10.0

	// DefaultRateLimitBurst is the default burst size per client
	DefaultRateLimitBurst = 20

	// DefaultServiceName is the service name reported on traces
	DefaultServiceName = "finance-calculator"
)

// Calculation types
const (
	TypeEMI              = "emi"
	TypeAmortization     = "amortization"
	TypePrepaymentEMI    = "prepayment-emi"
	TypePrepaymentTenure = "prepayment-tenure"
	TypeMoratorium       = "moratorium"
	TypeRateChange       = "rate-change"
	TypeEligibility      = "eligibility"
	TypeFD               = "fd"
	TypeRD               = "rd"
	TypeSIP              = "sip"
	TypeStepUpSIP        = "stepup-sip"
	TypePPF              = "ppf"
	TypeLumpsum          = "lumpsum"
	TypeEPF              = "epf"
	TypeInflation        = "inflation"
	TypeSimpleInterest   = "simple-interest"
	TypeCompoundInterest = "compound-interest"
	TypeIncomeTax        = "income-tax"
	TypeGST              = "gst"
	TypeVAT              = "vat"
	TypeGratuity         = "gratuity"
	TypeAPY              = "apy"
	TypeWords            = "words"
	TypeDenomination     = "denomination"
	TypeCurrencyConvert  = "currency-convert"
)

// CalculationTypes lists every supported calculation type in display order.
var CalculationTypes = []string{
	TypeEMI, TypeAmortization, TypePrepaymentEMI, TypePrepaymentTenure, TypeMoratorium,
	TypeRateChange, TypeEligibility, TypeFD, TypeRD, TypeSIP, TypeStepUpSIP, TypePPF,
	TypeLumpsum, TypeEPF, TypeInflation, TypeSimpleInterest, TypeCompoundInterest,
	TypeIncomeTax, TypeGST, TypeVAT, TypeGratuity, TypeAPY, TypeWords, TypeDenomination,
	TypeCurrencyConvert,
}

// Input sanity thresholds used for configuration warnings
const (
	// HighRateWarningPercent is the annual rate above which a warning is raised
	HighRateWarningPercent = 36.0

	// LongTenureWarningMonths is the tenure above which a warning is raised
	LongTenureWarningMonths = 600
)
