package entity

// Product category constants
const (
	CategoryElectronics  = "electronics"
	CategoryAppliances   = "appliances"
	CategoryAutomotive   = "automotive"
	CategoryHomeGarden   = "home_garden"
	CategoryClothing     = "clothing"
	CategoryFurniture    = "furniture"
	CategoryTools        = "tools"
	CategorySports       = "sports"
	CategoryHealthBeauty = "health_beauty"
	CategoryOther        = "other"
)

var validCategories = map[string]bool{
	CategoryElectronics:  true,
	CategoryAppliances:   true,
	CategoryAutomotive:   true,
	CategoryHomeGarden:   true,
	CategoryClothing:     true,
	CategoryFurniture:    true,
	CategoryTools:        true,
	CategorySports:       true,
	CategoryHealthBeauty: true,
	CategoryOther:        true,
}

// IsValidCategory returns true if the category is one of the fixed set.
func IsValidCategory(category string) bool {
	return validCategories[category]
}

// Currency constants
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
	CurrencyCAD = "CAD"
)

var validCurrencies = map[string]bool{
	CurrencyUSD: true,
	CurrencyEUR: true,
	CurrencyGBP: true,
	CurrencyCAD: true,
}

// IsValidCurrency returns true if the currency is supported.
func IsValidCurrency(currency string) bool {
	return validCurrencies[currency]
}

// Warranty period bounds, enforced at input validation only.
const (
	MinWarrantyPeriodMonths = 0
	MaxWarrantyPeriodMonths = 120
)
