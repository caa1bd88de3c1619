package product

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Category classifies products in the catalog. The set is closed: filtering
// and display logic may assume no categories exist beyond these.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	CategoryUnknown Category = iota

	// CategoryElectronics covers phones, audio gear and similar devices.
	CategoryElectronics

	// CategoryClothing covers apparel.
	CategoryClothing

	// CategoryFootwear covers shoes and sneakers.
	CategoryFootwear

	// CategoryBooks covers printed books and book sets.
	CategoryBooks

	// CategoryHealth covers supplements and personal health products.
	CategoryHealth

	// CategoryHome covers household goods.
	CategoryHome

	// CategoryOther covers everything else.
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:     "Unknown",
		CategoryElectronics: "Electronics",
		CategoryClothing:    "Clothing",
		CategoryFootwear:    "Footwear",
		CategoryBooks:       "Books",
		CategoryHealth:      "Health",
		CategoryHome:        "Home",
		CategoryOther:       "Other",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryElectronics: "Electronics",
		CategoryClothing:    "Clothing",
		CategoryFootwear:    "Footwear",
		CategoryBooks:       "Books",
		CategoryHealth:      "Health",
		CategoryHome:        "Home",
		CategoryOther:       "Other",
	}
}

// String returns the human-readable name of the category, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Category is one of the defined categories.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// CategoryFromString parses a category from its string name, matching the
// String representation. Used by the catalog listing filters.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category", fmt.Errorf("%q is not a valid category name", s))
}
