package measure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Conversion errors
var (
	ErrInvalidUnitFormat   = shared.NewDomainError("INVALID_UNIT_FORMAT", "Input cannot be split into a number and a unit")
	ErrNonPositiveQuantity = shared.NewDomainError("NON_POSITIVE_QUANTITY", "Quantity must be positive")
)

// compactQuantityPattern matches inputs like "5kg" or "100г" where the unit
// letters immediately follow the digits
var compactQuantityPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*(\p{L}+)$`)

// ParseQuantity splits a free-text quantity expression into its numeric value
// and unit token. Two shapes are accepted: "<number> <unit>" and
// "<number><unit>". Anything else fails with ErrInvalidUnitFormat.
func ParseQuantity(input string) (decimal.Decimal, string, error) {
	input = strings.TrimSpace(input)

	if parts := strings.Fields(input); len(parts) == 2 {
		value, err := decimal.NewFromString(parts[0])
		if err != nil {
			return decimal.Zero, "", ErrInvalidUnitFormat
		}
		return value, parts[1], nil
	}

	match := compactQuantityPattern.FindStringSubmatch(input)
	if match == nil {
		return decimal.Zero, "", ErrInvalidUnitFormat
	}
	value, err := decimal.NewFromString(match[1])
	if err != nil {
		return decimal.Zero, "", ErrInvalidUnitFormat
	}
	return value, match[2], nil
}

// Convert normalizes a (value, unit) pair into the item's canonical storage
// unit. The conversion policy is ordered, first match wins:
//
//  1. Weight/volume units convert by their fixed gram factor, truncated to
//     integer grams.
//  2. Piece units convert via the item's per-piece weight when known,
//     otherwise the piece count is stored directly.
//  3. Package units expand to pieces via the package breakdown, then to
//     grams when a per-piece weight is also known.
//  4. Unrecognized units store the raw value unchanged and flag the result,
//     so an unknown unit never blocks the workflow.
func Convert(value decimal.Decimal, unit string, meta ItemMetadata) (Quantity, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return Quantity{}, ErrNonPositiveQuantity
	}

	unitToken := strings.TrimSpace(unit)
	if unitToken == "" {
		return Quantity{}, ErrInvalidUnitFormat
	}
	unitLower := strings.ToLower(unitToken)

	q := Quantity{
		OriginalValue: value,
		OriginalUnit:  unitToken,
		Recognized:    true,
	}

	if factor, ok := weightFactors[unitLower]; ok {
		grams := value.Mul(decimal.NewFromInt(factor)).IntPart()
		q.Canonical = grams
		q.Unit = UnitGrams
		switch {
		case kilogramUnits[unitLower]:
			q.Display = fmt.Sprintf("%dg (%skg)", grams, value.String())
		case literUnits[unitLower]:
			q.Display = fmt.Sprintf("%dg (%sL)", grams, value.String())
		default:
			q.Display = fmt.Sprintf("%dg", grams)
		}
		return q, nil
	}

	if pieceUnits[unitLower] {
		if meta.HasPerUnitWeight() {
			grams := value.Mul(decimal.NewFromInt(meta.PerUnitWeight)).Round(0).IntPart()
			q.Canonical = grams
			q.Unit = UnitGrams
			q.Display = fmt.Sprintf("%dg (%d pieces)", grams, value.IntPart())
			return q, nil
		}
		// Piece-tracked item: store the count directly
		q.Canonical = value.IntPart()
		q.Unit = UnitPieces
		q.Display = fmt.Sprintf("%d pieces", q.Canonical)
		return q, nil
	}

	if packageUnits[unitLower] {
		if meta.HasUnitsPerPackage() {
			packages := value.IntPart()
			totalPieces := value.Mul(decimal.NewFromInt(meta.UnitsPerPackage)).IntPart()
			if meta.HasPerUnitWeight() {
				grams := totalPieces * meta.PerUnitWeight
				q.Canonical = grams
				q.Unit = UnitGrams
				q.Display = fmt.Sprintf("%dg (%d packages, %d pieces)", grams, packages, totalPieces)
				return q, nil
			}
			q.Canonical = totalPieces
			q.Unit = UnitPieces
			q.Display = fmt.Sprintf("%d pieces (%d packages)", totalPieces, packages)
			return q, nil
		}
		// No package breakdown defined: treat one package as one piece
		q.Canonical = value.IntPart()
		q.Unit = UnitPieces
		q.Display = fmt.Sprintf("%d packages", q.Canonical)
		return q, nil
	}

	// Unknown unit: store the value as-is under the literal unit label
	q.Canonical = value.IntPart()
	q.Unit = UnitPieces
	q.Display = fmt.Sprintf("%d %s", q.Canonical, unitToken)
	q.Recognized = false
	return q, nil
}

// ConvertInput parses a free-text expression and converts it in one step
func ConvertInput(input string, meta ItemMetadata) (Quantity, error) {
	value, unit, err := ParseQuantity(input)
	if err != nil {
		return Quantity{}, err
	}
	return Convert(value, unit, meta)
}
