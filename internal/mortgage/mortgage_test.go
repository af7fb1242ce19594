package mortgage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateDefaults(t *testing.T) {
	res, err := Calculate(Params{LoanAmount: 5000000, DownPayment: 1000000, InterestRate: 8.5, Years: 20})
	require.NoError(t, err)
	require.Equal(t, 4000000.0, res.Principal)
	require.InDelta(t, 34713.0, res.MonthlyPayment, 1.0)
	require.InDelta(t, res.MonthlyPayment*240, res.TotalPayment, 1e-6)
	require.InDelta(t, res.TotalPayment-res.Principal, res.TotalInterest, 1e-6)
	require.InDelta(t, 100.0, res.PrincipalPercent+res.InterestPercent, 1e-9)
	require.Greater(t, res.InterestPercent, 50.0)
}

func TestAmortizeZeroRate(t *testing.T) {
	res := amortize(1200000, 0, 10)
	require.InDelta(t, 10000.0, res.MonthlyPayment, 1e-9)
	require.InDelta(t, 0.0, res.TotalInterest, 1e-6)
	require.InDelta(t, 100.0, res.PrincipalPercent, 1e-9)
}

func TestValidateBounds(t *testing.T) {
	valid := Params{LoanAmount: 5000000, DownPayment: 1000000, InterestRate: 8.5, Years: 20}
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"loan too small", func(p *Params) { p.LoanAmount = 99999; p.DownPayment = 0 }},
		{"loan too large", func(p *Params) { p.LoanAmount = 100000001 }},
		{"down payment over 90%", func(p *Params) { p.DownPayment = 4500001 }},
		{"negative down payment", func(p *Params) { p.DownPayment = -1 }},
		{"rate too low", func(p *Params) { p.InterestRate = 4.99 }},
		{"rate too high", func(p *Params) { p.InterestRate = 20.5 }},
		{"term too short", func(p *Params) { p.Years = 0 }},
		{"term too long", func(p *Params) { p.Years = 31 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			_, err := Calculate(p)
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}
	require.NoError(t, valid.Validate())
}

func TestForProperty(t *testing.T) {
	p := ForProperty(9500000, 0.2, 8.5, 20)
	require.Equal(t, 9500000.0, p.LoanAmount)
	require.Equal(t, 1900000.0, p.DownPayment)
	require.NoError(t, p.Validate())

	p = ForProperty(50000, 1.5, 8.5, 20)
	require.Equal(t, float64(MinLoan), p.LoanAmount)
	require.Equal(t, 90000.0, p.DownPayment)
	require.NoError(t, p.Validate())
}
