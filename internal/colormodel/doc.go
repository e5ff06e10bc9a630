// Package colormodel converts between the color representations used by the
// theme editor and computes WCAG accessibility metrics over them.
//
// Every function in this package is pure: it reads only its arguments, holds
// no state, and is safe to call from any number of goroutines.
//
// # Color Representation
//
// The canonical interchange format is the HSL string used in theme state and
// CSS custom properties:
//
//	"265 85% 50%"   // hue degrees, saturation percent, lightness percent
//
// Hex values are "#RRGGBB", accepted in any case and produced in uppercase.
// RGB triples are an intermediate form only.
//
// # Malformed Input
//
// Conversions degrade instead of failing:
//   - HSLToHex returns FallbackHex ("#000000") when no HSL triple is found
//   - HexToHSL does not validate; unreadable channels read as 0
//
// Callers that accept hex from users should check ValidateHexColor first, or
// use ParseHex, which reports errors.
//
// # Contrast
//
// ContrastRatio follows WCAG 2.0: each channel is linearized, relative
// luminance is 0.2126 R + 0.7152 G + 0.0722 B, and the ratio is
// (lighter + 0.05) / (darker + 0.05). The result ranges from 1 to 21.
package colormodel
