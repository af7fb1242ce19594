// Package mortgage computes fixed-rate loan repayments.
package mortgage

import (
	"errors"
	"fmt"
	"math"
)

// Input bounds accepted by Calculate.
const (
	MinLoan        = 100_000
	MaxLoan        = 100_000_000
	MaxDownPayment = 0.9
	MinRate        = 5.0
	MaxRate        = 20.0
	MinYears       = 1
	MaxYears       = 30
)

// ErrOutOfRange is wrapped by every validation failure.
var ErrOutOfRange = errors.New("mortgage: value out of range")

// Params describe a loan. LoanAmount is the property value; the down payment
// is subtracted from it to get the principal.
type Params struct {
	LoanAmount   float64
	DownPayment  float64
	InterestRate float64 // annual, percent
	Years        int
}

// Result is a repayment schedule summary.
type Result struct {
	Principal        float64
	MonthlyPayment   float64
	TotalPayment     float64
	TotalInterest    float64
	PrincipalPercent float64
	InterestPercent  float64
}

// Validate checks p against the accepted bounds.
func (p Params) Validate() error {
	if math.IsNaN(p.LoanAmount) || p.LoanAmount < MinLoan || p.LoanAmount > MaxLoan {
		return fmt.Errorf("%w: loan amount %.0f not in [%d, %d]", ErrOutOfRange, p.LoanAmount, MinLoan, MaxLoan)
	}
	if maxDown := p.LoanAmount * MaxDownPayment; math.IsNaN(p.DownPayment) || p.DownPayment < 0 || p.DownPayment > maxDown {
		return fmt.Errorf("%w: down payment %.0f not in [0, %.0f]", ErrOutOfRange, p.DownPayment, maxDown)
	}
	if math.IsNaN(p.InterestRate) || p.InterestRate < MinRate || p.InterestRate > MaxRate {
		return fmt.Errorf("%w: interest rate %.2f not in [%.0f, %.0f]", ErrOutOfRange, p.InterestRate, MinRate, MaxRate)
	}
	if p.Years < MinYears || p.Years > MaxYears {
		return fmt.Errorf("%w: term %d years not in [%d, %d]", ErrOutOfRange, p.Years, MinYears, MaxYears)
	}
	return nil
}

// Calculate validates p and returns the amortized repayment.
func Calculate(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	return amortize(p.LoanAmount-p.DownPayment, p.InterestRate, p.Years), nil
}

// amortize applies the standard annuity formula. A zero rate divides the
// principal evenly.
func amortize(principal, annualRate float64, years int) Result {
	r := annualRate / 100 / 12
	n := float64(years * 12)

	var monthly float64
	if r == 0 {
		monthly = principal / n
	} else {
		x := math.Pow(1+r, n)
		monthly = principal * x * r / (x - 1)
	}
	total := monthly * n
	res := Result{
		Principal:      principal,
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  total - principal,
	}
	if total > 0 {
		res.PrincipalPercent = principal / total * 100
		res.InterestPercent = res.TotalInterest / total * 100
	}
	return res
}

// ForProperty builds params for a listing price using a down payment share
// (0..0.9) of the price. The loan amount is clamped into range.
func ForProperty(price int64, downPct, rate float64, years int) Params {
	loan := math.Min(math.Max(float64(price), MinLoan), MaxLoan)
	downPct = math.Min(math.Max(downPct, 0), MaxDownPayment)
	return Params{
		LoanAmount:   loan,
		DownPayment:  math.Round(loan * downPct),
		InterestRate: rate,
		Years:        years,
	}
}
