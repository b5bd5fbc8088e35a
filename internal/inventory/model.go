package inventory

import (
	"encoding/json"
	"time"
)

// Category classifies an ingredient. The reference data and the UI use the
// Korean labels, the API uses the stable codes.
type Category string

const (
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryProtein   Category = "protein"
	CategoryDairy     Category = "dairy"
	CategoryDelivery  Category = "delivery"
	CategoryOther     Category = "other"
)

var categoryLabels = map[string]Category{
	"vegetable": CategoryVegetable,
	"fruit":     CategoryFruit,
	"protein":   CategoryProtein,
	"dairy":     CategoryDairy,
	"delivery":  CategoryDelivery,
	"other":     CategoryOther,

	// Labels as they appear in food_data.csv and the original UI.
	"채소":   CategoryVegetable,
	"과일":   CategoryFruit,
	"단백질":  CategoryProtein,
	"유제품":  CategoryDairy,
	"배달음식": CategoryDelivery,
	"기타":   CategoryOther,
}

// ParseCategory accepts either a category code or its Korean label.
func ParseCategory(s string) (Category, bool) {
	c, ok := categoryLabels[s]
	return c, ok
}

type Ingredient struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	Quantity     int       `json:"quantity"`
	ExpiryDate   time.Time `json:"expiry_date"`
	StorageTip   string    `json:"storage_tip,omitempty"`
	DisposalRule string    `json:"disposal_rule,omitempty"`
}

// ExpiresOn satisfies expiry.Item.
func (i *Ingredient) ExpiresOn() time.Time {
	return i.ExpiryDate
}

// MarshalJSON renders expiry_date as a plain date, matching the YYYY-MM-DD
// format requests use.
func (i Ingredient) MarshalJSON() ([]byte, error) {
	type alias Ingredient
	return json.Marshal(struct {
		alias
		ExpiryDate string `json:"expiry_date"`
	}{alias(i), i.ExpiryDate.Format("2006-01-02")})
}

func (i *Ingredient) UnmarshalJSON(data []byte) error {
	type alias Ingredient
	aux := struct {
		*alias
		ExpiryDate string `json:"expiry_date"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.ExpiryDate == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", aux.ExpiryDate)
	if err != nil {
		return err
	}
	i.ExpiryDate = d
	return nil
}
