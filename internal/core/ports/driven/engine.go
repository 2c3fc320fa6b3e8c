package driven

// ExpressionEngine evaluates conventional infix arithmetic.
// Implementations accept "+ - * / %", parentheses and the function
// call sqrt(...). They return the numeric result, or an error when the
// expression is malformed. Infinite and NaN results are returned as
// values, not errors.
type ExpressionEngine interface {
	// Evaluate computes the value of expression.
	Evaluate(expression string) (float64, error)
}
