package conversion

import (
	"strconv"
	"strings"

	"hexen/internal/diagnostics"
	"hexen/internal/types"
)

// ParseIntLexeme parses a scanner-preserved integer lexeme (decimal,
// 0x hex, or 0b binary) into an int64. The lexeme is trusted to be
// well-formed — the scanner only ever emits lexemes matching one of
// these three shapes.
func ParseIntLexeme(lexeme string) (int64, error) {
	switch {
	case strings.HasPrefix(lexeme, "0x") || strings.HasPrefix(lexeme, "0X"):
		return strconv.ParseInt(lexeme[2:], 16, 64)
	case strings.HasPrefix(lexeme, "0b") || strings.HasPrefix(lexeme, "0B"):
		return strconv.ParseInt(lexeme[2:], 2, 64)
	default:
		return strconv.ParseInt(lexeme, 10, 64)
	}
}

// CheckIntOverflow validates that an integer literal's value fits the
// concrete target it is being resolved against, returning a
// LiteralOverflow diagnostic on failure. target must be a concrete
// integer kind; callers are expected to have already resolved
// comptime_int down to one before calling this.
func CheckIntOverflow(lexeme string, target *types.Type, pos diagnostics.Position) *diagnostics.Diagnostic {
	v, err := ParseIntLexeme(lexeme)
	if err != nil {
		return diagnostics.New(diagnostics.LiteralOverflow, pos,
			"integer literal %q exceeds the range of any integer type", lexeme)
	}
	min, max, ok := types.IntBounds(target.Kind)
	if !ok || types.FitsInt(v, target.Kind) {
		return nil
	}
	return diagnostics.New(diagnostics.LiteralOverflow, pos,
		"literal %s does not fit in %s", lexeme, target.Kind).
		WithHint("expected range %s..%s; use an explicit conversion to a wider type or adjust the literal",
			diagnostics.FormatCount(min), diagnostics.FormatCount(max))
}
