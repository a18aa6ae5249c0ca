package calculation

import (
	"fmt"
	"math"

	"github.com/loanlens/prepay-calculator/internal/domain"
	"github.com/loanlens/prepay-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ComputeSchedule generates the month-by-month amortization schedule for the
// given terms. The schedule runs until the balance reaches exactly zero,
// which is at most terms.ScheduledMonths() rows and fewer when extra annual
// payments accelerate payoff.
func ComputeSchedule(terms domain.LoanTerms) (*domain.AmortizationResult, error) {
	if err := validateLoanTerms(terms); err != nil {
		return nil, err
	}

	n := terms.ScheduledMonths()
	monthlyRate := terms.MonthlyRate()
	emi := monthlyInstallment(terms.Principal, monthlyRate, n)

	rows := make([]domain.AmortizationRow, 0, n)
	balance := terms.Principal
	cumInterest := decimal.Zero
	cumPrincipal := decimal.Zero

	for month := 1; month <= n; month++ {
		interest := balance.Mul(monthlyRate)
		principal := emi.Sub(interest)

		// Extra payment lands on principal once per 12-month cycle.
		if terms.ExtraAnnualPayment.IsPositive() && month%12 == 0 {
			principal = principal.Add(terms.ExtraAnnualPayment)
		}

		// Final scheduled month retires whatever balance remains, so the
		// installment rounding error never leaves a residual.
		if month == n {
			principal = balance
		}

		balance = balance.Sub(principal)
		if balance.IsNegative() {
			// Early payoff: trim the overshoot and land exactly at zero.
			principal = principal.Add(balance)
			balance = decimal.Zero
		}

		cumInterest = cumInterest.Add(interest)
		cumPrincipal = cumPrincipal.Add(principal)

		row := domain.AmortizationRow{
			Month:               month,
			Payment:             principal.Add(interest),
			Principal:           principal,
			Interest:            interest,
			Balance:             balance,
			CumulativePrincipal: cumPrincipal,
			CumulativeInterest:  cumInterest,
		}
		if !terms.StartDate.IsZero() {
			row.Date = dateutil.AddMonths(terms.StartDate, month)
		}
		rows = append(rows, row)

		if balance.IsZero() {
			break
		}
	}

	return &domain.AmortizationResult{
		Rows:          rows,
		EMI:           emi,
		TotalInterest: cumInterest,
		TotalMonths:   len(rows),
	}, nil
}

// monthlyInstallment computes the fixed EMI. Zero-rate loans amortize
// linearly; the standard formula would divide by zero there.
func monthlyInstallment(principal, monthlyRate decimal.Decimal, n int) decimal.Decimal {
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n)))
	}

	// EMI = P * r * (1+r)^n / ((1+r)^n - 1). The power factor is computed in
	// float64; monetary arithmetic stays in decimal.
	r := monthlyRate.InexactFloat64()
	factor := math.Pow(1+r, float64(n))
	return principal.Mul(decimal.NewFromFloat(r * factor / (factor - 1)))
}

func validateLoanTerms(terms domain.LoanTerms) error {
	if !terms.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidLoanTerms, terms.Principal)
	}
	if terms.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("%w: annual interest rate cannot be negative, got %s%%", ErrInvalidLoanTerms, terms.AnnualRatePercent)
	}
	if terms.TenureYears <= 0 {
		return fmt.Errorf("%w: tenure must be a positive number of years, got %d", ErrInvalidLoanTerms, terms.TenureYears)
	}
	if terms.ExtraAnnualPayment.IsNegative() {
		return fmt.Errorf("%w: extra annual payment cannot be negative, got %s", ErrInvalidLoanTerms, terms.ExtraAnnualPayment)
	}
	return nil
}
