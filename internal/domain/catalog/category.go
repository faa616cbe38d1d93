package catalog

// Category classifies an item within the shop's assortment. One category is
// reserved for administrative expense tracking and is hidden from regular
// staff.
type Category string

const (
	CategoryBars          Category = "bars"
	CategoryCandies       Category = "candies"
	CategoryGiftSets      Category = "gift_sets"
	CategoryDragee        Category = "dragee"
	CategoryMarshmallow   Category = "marshmallow"
	CategoryMarmalade     Category = "marmalade"
	CategoryIngredients   Category = "ingredients"
	CategoryPackaging     Category = "packaging"
	CategoryDrinks        Category = "drinks"
	CategoryOther         Category = "other"
	CategoryAdminExpenses Category = "admin_expenses"
)

var allCategories = []Category{
	CategoryBars,
	CategoryCandies,
	CategoryGiftSets,
	CategoryDragee,
	CategoryMarshmallow,
	CategoryMarmalade,
	CategoryIngredients,
	CategoryPackaging,
	CategoryDrinks,
	CategoryOther,
	CategoryAdminExpenses,
}

// AllCategories returns every defined category
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// PublicCategories returns the categories visible to regular staff
func PublicCategories() []Category {
	out := make([]Category, 0, len(allCategories)-1)
	for _, c := range allCategories {
		if !c.IsAdminOnly() {
			out = append(out, c)
		}
	}
	return out
}

// IsValid returns true if the category is one of the defined values
func (c Category) IsValid() bool {
	for _, candidate := range allCategories {
		if c == candidate {
			return true
		}
	}
	return false
}

// IsAdminOnly returns true if the category is restricted to administrators
func (c Category) IsAdminOnly() bool {
	return c == CategoryAdminExpenses
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}
