package wcag

import "strings"

// WCAG 2.0 minimum contrast ratios (success criteria 1.4.3 and 1.4.6).
// A ratio equal to a threshold passes.
//
// The thresholds nest: AAA normal is stricter than AA normal, which is
// stricter than AA large. AAA large and AA normal share 4.5, so those two
// verdicts always agree.
const (
	ThresholdAANormal  = 4.5
	ThresholdAALarge   = 3.0
	ThresholdAAANormal = 7.0
	ThresholdAAALarge  = 4.5
)

// Level is a WCAG conformance level.
type Level uint8

const (
	// LevelAA is the minimum contrast level (1.4.3).
	LevelAA Level = iota
	// LevelAAA is the enhanced contrast level (1.4.6).
	LevelAAA
)

// String returns "AA" or "AAA".
func (l Level) String() string {
	if l == LevelAAA {
		return "AAA"
	}
	return "AA"
}

// TextSize distinguishes normal text from large text (at least 18pt, or
// 14pt bold), which gets a lower threshold.
type TextSize uint8

const (
	// TextNormal is body-sized text.
	TextNormal TextSize = iota
	// TextLarge is text at least 18pt regular or 14pt bold.
	TextLarge
)

// String returns "normal" or "large".
func (s TextSize) String() string {
	if s == TextLarge {
		return "large"
	}
	return "normal"
}

// Threshold returns the minimum contrast ratio for level and size.
func Threshold(level Level, size TextSize) float64 {
	switch {
	case level == LevelAAA && size == TextLarge:
		return ThresholdAAALarge
	case level == LevelAAA:
		return ThresholdAAANormal
	case size == TextLarge:
		return ThresholdAALarge
	default:
		return ThresholdAANormal
	}
}

// Verdict holds the pass/fail outcome for each conformance level.
// Each field is computed on its own from the ratio and its threshold.
type Verdict struct {
	AANormal  bool
	AALarge   bool
	AAANormal bool
	AAALarge  bool
}

// Classify compares a contrast ratio against the four WCAG thresholds.
func Classify(ratio float64) Verdict {
	return Verdict{
		AANormal:  ratio >= ThresholdAANormal,
		AALarge:   ratio >= ThresholdAALarge,
		AAANormal: ratio >= ThresholdAAANormal,
		AAALarge:  ratio >= ThresholdAAALarge,
	}
}

// Passes reports the verdict for one level and text size.
func (v Verdict) Passes(level Level, size TextSize) bool {
	switch {
	case level == LevelAAA && size == TextLarge:
		return v.AAALarge
	case level == LevelAAA:
		return v.AAANormal
	case size == TextLarge:
		return v.AALarge
	default:
		return v.AANormal
	}
}

// String formats the verdict as "AA=pass AALarge=pass AAA=fail AAALarge=pass".
func (v Verdict) String() string {
	var b strings.Builder
	for i, f := range verdictFields(v) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.name)
		b.WriteByte('=')
		b.WriteString(string(outcome(f.pass)))
	}
	return b.String()
}

type verdictField struct {
	name string
	pass bool
}

// verdictFields lists the verdict in Report field order.
func verdictFields(v Verdict) [4]verdictField {
	return [4]verdictField{
		{"AA", v.AANormal},
		{"AALarge", v.AALarge},
		{"AAA", v.AAANormal},
		{"AAALarge", v.AAALarge},
	}
}
