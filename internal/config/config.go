// Package config defines the data structures related to configuration and
// includes functions for loading and validating a batch of calculations.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculator/pkg/cash"
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// DateTimeLayout is the month format accepted for schedule start dates.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for finance-calculator.
type Configuration struct {
	Calculations []Calculation `yaml:"calculations" json:"calculations" validate:"required,min=1,dive"`
	Logging      LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty" json:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // pretty, csv
	Locale string `yaml:"locale,omitempty" json:"locale,omitempty"` // digit grouping of the pretty report, default en-IN
}

// Calculation is one requested calculation. Type selects the calculator and
// decides which of the parameters are read; the rest are ignored.
type Calculation struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Type     string `yaml:"type" json:"type" validate:"required,calctype"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`

	// Loans and deposits
	Principal    float64 `yaml:"principal,omitempty" json:"principal,omitempty" validate:"gte=0"`
	Rate         float64 `yaml:"rate,omitempty" json:"rate,omitempty" validate:"gte=0,lte=100"`
	TenureMonths int     `yaml:"tenureMonths,omitempty" json:"tenureMonths,omitempty" validate:"gte=0"`
	Years        float64 `yaml:"years,omitempty" json:"years,omitempty" validate:"gte=0"`
	Frequency    string  `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	StartDate    string  `yaml:"startDate,omitempty" json:"startDate,omitempty"`

	// Loan adjustments
	NewRate          float64 `yaml:"newRate,omitempty" json:"newRate,omitempty" validate:"gte=0,lte=100"`
	PrepaymentAmount float64 `yaml:"prepaymentAmount,omitempty" json:"prepaymentAmount,omitempty" validate:"gte=0"`
	PrepaymentMonth  int     `yaml:"prepaymentMonth,omitempty" json:"prepaymentMonth,omitempty" validate:"gte=0"`
	MoratoriumMonths int     `yaml:"moratoriumMonths,omitempty" json:"moratoriumMonths,omitempty" validate:"gte=0"`
	AfterMonths      int     `yaml:"afterMonths,omitempty" json:"afterMonths,omitempty" validate:"gte=0"`

	// Eligibility
	MonthlyIncome float64 `yaml:"monthlyIncome,omitempty" json:"monthlyIncome,omitempty" validate:"gte=0"`
	ExistingEMI   float64 `yaml:"existingEmi,omitempty" json:"existingEmi,omitempty" validate:"gte=0"`
	FOIRPercent   float64 `yaml:"foirPercent,omitempty" json:"foirPercent,omitempty" validate:"gte=0,lte=100"`

	// Recurring investments; Amount is the periodic deposit, the taxable
	// income, the salary, the GST/VAT amount or the amount to narrate.
	Amount        float64 `yaml:"amount,omitempty" json:"amount,omitempty"`
	StepUpPercent float64 `yaml:"stepUpPercent,omitempty" json:"stepUpPercent,omitempty" validate:"gte=0"`

	// EPF
	Age                         int     `yaml:"age,omitempty" json:"age,omitempty" validate:"gte=0"`
	RetirementAge               int     `yaml:"retirementAge,omitempty" json:"retirementAge,omitempty" validate:"gte=0"`
	AnnualIncreasePercent       float64 `yaml:"annualIncreasePercent,omitempty" json:"annualIncreasePercent,omitempty" validate:"gte=0"`
	EmployeeContributionPercent float64 `yaml:"employeeContributionPercent,omitempty" json:"employeeContributionPercent,omitempty" validate:"gte=0,lte=100"`
	EmployerContributionPercent float64 `yaml:"employerContributionPercent,omitempty" json:"employerContributionPercent,omitempty" validate:"gte=0,lte=100"`
	CurrentBalance              float64 `yaml:"currentBalance,omitempty" json:"currentBalance,omitempty" validate:"gte=0"`

	// Tax and benefits
	Regime        string  `yaml:"regime,omitempty" json:"regime,omitempty" validate:"omitempty,oneof=new old"`
	Deductions    float64 `yaml:"deductions,omitempty" json:"deductions,omitempty" validate:"gte=0"`
	InterState    bool    `yaml:"interState,omitempty" json:"interState,omitempty"`
	Inclusive     bool    `yaml:"inclusive,omitempty" json:"inclusive,omitempty"`
	ServiceMonths int     `yaml:"serviceMonths,omitempty" json:"serviceMonths,omitempty" validate:"gte=0,lt=12"`
	PensionAmount int     `yaml:"pensionAmount,omitempty" json:"pensionAmount,omitempty" validate:"gte=0"`

	// Cash
	Denominations []cash.DenominationItem `yaml:"denominations,omitempty" json:"denominations,omitempty"`
	ExchangeRate  float64                 `yaml:"exchangeRate,omitempty" json:"exchangeRate,omitempty" validate:"gte=0"`
	Currency      string                  `yaml:"currency,omitempty" json:"currency,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys can be overridden with FINCALC_ prefixed
// environment variables, e.g. FINCALC_LOGGING_LEVEL.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}
