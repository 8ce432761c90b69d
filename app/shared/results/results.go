// Package results defines the success-or-failure envelope service
// operations return. A failure is a domain outcome (bad input, missing
// record) carried as data; transport and infrastructure problems travel
// as plain errors instead.
package results

// OperationResult carries either a success or a failure payload. Both
// nil means the operation was short-circuited (for example by a panic
// recovery).
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

func (r OperationResult[S, F]) IsSuccess() bool { return r.Success != nil }

func (r OperationResult[S, F]) IsFailure() bool { return r.Failure != nil }

// SuccessResult wraps a success payload.
func SuccessResult[S any, F any](s S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &s}
}

// FailureResult wraps a failure payload.
func FailureResult[S any, F any](f F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &f}
}
