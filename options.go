package wcag

// DefaultTolerance is the ratio difference CrossCheck accepts by default.
// Remote checkers round the ratio to two decimals and quantize channels to
// 8 bits, so exact agreement is not expected.
const DefaultTolerance = 0.05

// CrossCheckOption configures CrossCheck.
//
// Example:
//
//	res, err := wcag.CrossCheck(ctx, client, fg, bg,
//	    wcag.WithTolerance(0.01),
//	    wcag.WithStrictVerdicts(),
//	)
type CrossCheckOption func(*crossCheckOptions)

// crossCheckOptions holds optional configuration for CrossCheck.
type crossCheckOptions struct {
	tolerance      float64
	strictVerdicts bool
}

// defaultCrossCheckOptions returns the default cross-check options.
func defaultCrossCheckOptions() crossCheckOptions {
	return crossCheckOptions{
		tolerance: DefaultTolerance,
	}
}

// WithTolerance sets the largest accepted absolute ratio difference.
// Negative values are treated as zero.
func WithTolerance(tol float64) CrossCheckOption {
	return func(o *crossCheckOptions) {
		if tol < 0 {
			tol = 0
		}
		o.tolerance = tol
	}
}

// WithStrictVerdicts makes every verdict difference a mismatch.
//
// By default a verdict difference is ignored when the local ratio lies
// within the tolerance of that verdict's threshold, where rounding on the
// remote side can legitimately flip the outcome.
func WithStrictVerdicts() CrossCheckOption {
	return func(o *crossCheckOptions) {
		o.strictVerdicts = true
	}
}
