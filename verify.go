package wcag

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Verifier is an independent source of contrast reports used to
// cross-validate the local computation. Implementations may block and
// fail; the pure functions of this package never call one.
type Verifier interface {
	Verify(ctx context.Context, fg, bg Color) (Report, error)
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context, fg, bg Color) (Report, error)

// Verify calls f(ctx, fg, bg).
func (f VerifierFunc) Verify(ctx context.Context, fg, bg Color) (Report, error) {
	return f(ctx, fg, bg)
}

// CrossCheck computes the contrast of fg on bg locally and compares it with
// the report from v. It returns the local result. On disagreement the error
// is a *MismatchError; verifier failures are wrapped and returned as is.
func CrossCheck(ctx context.Context, v Verifier, fg, bg Color, opts ...CrossCheckOption) (Result, error) {
	o := defaultCrossCheckOptions()
	for _, opt := range opts {
		opt(&o)
	}

	local, err := CheckContrast(fg, bg)
	if err != nil {
		return Result{}, err
	}

	report, err := v.Verify(ctx, fg, bg)
	if err != nil {
		return local, fmt.Errorf("wcag: verify: %w", err)
	}
	remote, err := report.Result()
	if err != nil {
		return local, fmt.Errorf("wcag: verify: %w", err)
	}

	fields := compareResults(local, remote, o)
	if len(fields) == 0 {
		Logger().Debug("wcag: cross-check agreed",
			slog.Float64("local", local.Ratio),
			slog.Float64("remote", remote.Ratio))
		return local, nil
	}

	Logger().Debug("wcag: cross-check mismatch",
		slog.Any("fields", fields),
		slog.Float64("local", local.Ratio),
		slog.Float64("remote", remote.Ratio))
	return local, &MismatchError{Local: local, Remote: remote, Fields: fields}
}

// compareResults lists the fields on which local and remote disagree.
func compareResults(local, remote Result, o crossCheckOptions) []string {
	var fields []string
	if math.Abs(local.Ratio-remote.Ratio) > o.tolerance {
		fields = append(fields, "ratio")
	}

	thresholds := [4]float64{
		ThresholdAANormal,
		ThresholdAALarge,
		ThresholdAAANormal,
		ThresholdAAALarge,
	}
	lf, rf := verdictFields(local.Verdict), verdictFields(remote.Verdict)
	for i := range lf {
		if lf[i].pass == rf[i].pass {
			continue
		}
		if !o.strictVerdicts && math.Abs(local.Ratio-thresholds[i]) <= o.tolerance {
			continue
		}
		fields = append(fields, lf[i].name)
	}
	return fields
}
