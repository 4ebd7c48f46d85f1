// Package wcag computes WCAG 2.0 relative luminance and contrast ratios and
// classifies them against the AA and AAA conformance thresholds.
//
// # Overview
//
// The package is a small pipeline of pure functions:
//
//	Color ─▶ Linearize (×3) ─▶ RelativeLuminance ─▶ ContrastRatio ─▶ Classify ─▶ Verdict
//
// Every stage is stateless and safe for concurrent use. Nothing blocks and
// nothing is cached; callers that want caching wrap the functions themselves.
//
// # Quick Start
//
//	import "github.com/gogpu/wcag"
//
//	fg := wcag.RGB8(0x33, 0x33, 0x33)
//	bg := wcag.RGB8(0xff, 0xff, 0xff)
//
//	res, err := wcag.CheckContrast(fg, bg)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%.2f:1 AA=%v\n", res.Ratio, res.Verdict.AANormal)
//
// # Colors
//
// A Color is three sRGB channel intensities in [0,1]. The package does not
// parse hex strings or other notations. Use [NewColor] for float channels,
// [RGB8] for 8-bit channels and [FromColor] for any image/color.Color.
//
// # Errors
//
// Out-of-range or non-finite input is rejected, never clamped. Channel
// errors match [ErrInvalidChannelValue] and luminance errors match
// [ErrInvalidLuminance] under errors.Is.
//
// # Cross-validation
//
// A [Verifier] is any independent source of contrast reports, such as the
// WebAIM contrast checker client in package oracle. [CrossCheck] compares
// the local computation against one.
package wcag

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
