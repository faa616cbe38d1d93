package measure

// CanonicalUnit is the single storage unit an item's stock is recorded in.
// Weight-tracked items store grams; discrete items store pieces.
type CanonicalUnit string

const (
	// UnitGrams is the canonical unit for weight-tracked items
	UnitGrams CanonicalUnit = "g"
	// UnitPieces is the canonical unit for piece-tracked items
	UnitPieces CanonicalUnit = "pcs"
)

// String returns the string representation of the canonical unit
func (u CanonicalUnit) String() string {
	return string(u)
}

// weightFactors maps weight/volume unit spellings to their gram-equivalent
// factor. Milliliters are treated 1:1 with grams for liquids.
var weightFactors = map[string]int64{
	// grams
	"г": 1, "грамм": 1, "граммы": 1, "граммов": 1,
	"g": 1, "gram": 1, "grams": 1,
	// kilograms
	"кг": 1000, "килограмм": 1000, "килограммы": 1000, "килограммов": 1000,
	"kg": 1000, "kilogram": 1000, "kilograms": 1000,
	// milliliters
	"мл": 1, "миллилитр": 1, "миллилитры": 1, "миллилитров": 1,
	"ml": 1, "milliliter": 1, "milliliters": 1,
	// liters
	"л": 1000, "литр": 1000, "литры": 1000, "литров": 1000,
	"l": 1000, "liter": 1000, "liters": 1000,
}

// kilogramUnits are the spellings displayed back as "<n>kg"
var kilogramUnits = map[string]bool{
	"кг": true, "килограмм": true, "килограммы": true, "килограммов": true,
	"kg": true, "kilogram": true, "kilograms": true,
}

// literUnits are the spellings displayed back as "<n>L"
var literUnits = map[string]bool{
	"л": true, "литр": true, "литры": true, "литров": true,
	"l": true, "liter": true, "liters": true,
}

// pieceUnits are the discrete-piece unit spellings
var pieceUnits = map[string]bool{
	"штука": true, "штуки": true, "штук": true, "шт": true,
	"piece": true, "pieces": true, "pc": true, "pcs": true,
}

// packageUnits are the box/pack unit spellings
var packageUnits = map[string]bool{
	"коробка": true, "коробки": true, "коробок": true, "box": true, "boxes": true,
	"пачка": true, "пачки": true, "пачек": true, "pack": true, "packs": true,
}
