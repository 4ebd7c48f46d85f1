package wcag

import (
	"fmt"
	"math"
)

// Outcome is the pass/fail vocabulary of the WebAIM contrast checker API.
type Outcome string

const (
	// Pass means the ratio meets the level's threshold.
	Pass Outcome = "pass"
	// Fail means it does not.
	Fail Outcome = "fail"
)

func outcome(pass bool) Outcome {
	if pass {
		return Pass
	}
	return Fail
}

// Bool converts the outcome to a boolean, failing on anything other than
// "pass" or "fail".
func (o Outcome) Bool() (bool, error) {
	switch o {
	case Pass:
		return true, nil
	case Fail:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unknown outcome %q", ErrInvalidReport, string(o))
	}
}

// Report is a contrast result in the external wire vocabulary:
//
//	{"ratio":8.59,"AA":"pass","AALarge":"pass","AAA":"pass","AAALarge":"pass"}
type Report struct {
	Ratio    float64 `json:"ratio"`
	AA       Outcome `json:"AA"`
	AALarge  Outcome `json:"AALarge"`
	AAA      Outcome `json:"AAA"`
	AAALarge Outcome `json:"AAALarge"`
}

// Result converts the report back to a Result. The verdict is taken from
// the report as is, not recomputed from the ratio.
func (r Report) Result() (Result, error) {
	if math.IsNaN(r.Ratio) || r.Ratio < MinContrastRatio || r.Ratio > MaxContrastRatio {
		return Result{}, fmt.Errorf("%w: ratio %v outside [1,21]", ErrInvalidReport, r.Ratio)
	}
	var (
		v   Verdict
		err error
	)
	fields := []struct {
		dst  *bool
		name string
		o    Outcome
	}{
		{&v.AANormal, "AA", r.AA},
		{&v.AALarge, "AALarge", r.AALarge},
		{&v.AAANormal, "AAA", r.AAA},
		{&v.AAALarge, "AAALarge", r.AAALarge},
	}
	for _, f := range fields {
		if *f.dst, err = f.o.Bool(); err != nil {
			return Result{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return Result{Ratio: r.Ratio, Verdict: v}, nil
}
