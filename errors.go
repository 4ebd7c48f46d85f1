package wcag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidChannelValue is returned when a color channel is outside
	// [0,1] or is not a finite number.
	ErrInvalidChannelValue = errors.New("wcag: invalid channel value")

	// ErrInvalidLuminance is returned when a luminance is negative or not
	// a finite number.
	ErrInvalidLuminance = errors.New("wcag: invalid luminance")

	// ErrInvalidReport is returned when a Report carries an unknown outcome
	// or an unusable ratio.
	ErrInvalidReport = errors.New("wcag: invalid report")

	// ErrMismatch is returned by CrossCheck when the verifier disagrees
	// with the local computation.
	ErrMismatch = errors.New("wcag: cross-check mismatch")
)

// ChannelError describes a rejected channel intensity.
type ChannelError struct {
	// Channel is "red", "green" or "blue", or empty when the value was
	// passed to Linearize directly.
	Channel string
	Value   float64
}

func (e *ChannelError) Error() string {
	if e.Channel == "" {
		return fmt.Sprintf("wcag: channel value %v outside [0,1]", e.Value)
	}
	return fmt.Sprintf("wcag: %s channel value %v outside [0,1]", e.Channel, e.Value)
}

// Unwrap returns ErrInvalidChannelValue.
func (e *ChannelError) Unwrap() error { return ErrInvalidChannelValue }

// LuminanceError describes a rejected luminance value.
type LuminanceError struct {
	Value float64
}

func (e *LuminanceError) Error() string {
	return fmt.Sprintf("wcag: luminance %v is negative or not finite", e.Value)
}

// Unwrap returns ErrInvalidLuminance.
func (e *LuminanceError) Unwrap() error { return ErrInvalidLuminance }

// MismatchError reports how a verifier's result differs from the local one.
type MismatchError struct {
	Local  Result
	Remote Result
	// Fields lists what differs, using Report field names
	// ("ratio", "AA", "AALarge", "AAA", "AAALarge").
	Fields []string
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	b.WriteString("wcag: cross-check mismatch on ")
	b.WriteString(strings.Join(e.Fields, ", "))
	b.WriteString(": local ")
	b.WriteString(strconv.FormatFloat(e.Local.Ratio, 'f', 2, 64))
	b.WriteString(" (")
	b.WriteString(e.Local.Verdict.String())
	b.WriteString("), remote ")
	b.WriteString(strconv.FormatFloat(e.Remote.Ratio, 'f', 2, 64))
	b.WriteString(" (")
	b.WriteString(e.Remote.Verdict.String())
	b.WriteString(")")
	return b.String()
}

// Unwrap returns ErrMismatch.
func (e *MismatchError) Unwrap() error { return ErrMismatch }
