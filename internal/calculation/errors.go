package calculation

import "errors"

// Validation failures at the boundary of the pure functions. Callers reject
// the run entirely; no partial schedule is ever produced.
var (
	ErrInvalidLoanTerms     = errors.New("invalid loan terms")
	ErrInvalidAnnuityParams = errors.New("invalid annuity parameters")
)
