package wcag

import "fmt"

// Result is a contrast ratio together with its verdict.
type Result struct {
	Ratio   float64
	Verdict Verdict
}

// Report converts the result to the external wire vocabulary.
func (r Result) Report() Report {
	return Report{
		Ratio:    r.Ratio,
		AA:       outcome(r.Verdict.AANormal),
		AALarge:  outcome(r.Verdict.AALarge),
		AAA:      outcome(r.Verdict.AAANormal),
		AAALarge: outcome(r.Verdict.AAALarge),
	}
}

// CheckContrast computes the contrast ratio between a foreground and a
// background color and classifies it.
func CheckContrast(fg, bg Color) (Result, error) {
	lf, err := RelativeLuminance(fg)
	if err != nil {
		return Result{}, fmt.Errorf("foreground: %w", err)
	}
	lb, err := RelativeLuminance(bg)
	if err != nil {
		return Result{}, fmt.Errorf("background: %w", err)
	}
	ratio, err := ContrastRatio(lf, lb)
	if err != nil {
		return Result{}, err
	}
	return Result{Ratio: ratio, Verdict: Classify(ratio)}, nil
}
