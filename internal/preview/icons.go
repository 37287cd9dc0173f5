package preview

import "strings"

// Icon identifiers for structural nodes.
const (
	iconShop           = "store"
	iconCurrencies     = "coins"
	iconCurrency       = "currency"
	iconCategories     = "folder-tree"
	iconCategory       = "folder"
	iconOffers         = "package"
	iconOffer          = "box"
	iconCharacteristic = "tag"
	iconField          = "field"
	iconPicture        = "image"
	iconPrice          = "banknote"
	iconDescription    = "file-text"
)

// characteristicIcons maps language-tagged keyword sets to icon
// identifiers for characteristic nodes. Lookup is by keyword match on
// the lower-cased characteristic name.
var characteristicIcons = []struct {
	icon     string
	keywords []string
}{
	{icon: "palette", keywords: []string{"color", "colour", "колір", "цвет"}},
	{icon: "calendar", keywords: []string{"season", "сезон"}},
	{icon: "ruler", keywords: []string{"size", "розмір", "размер"}},
	{icon: "layers", keywords: []string{"material", "матеріал", "материал"}},
}

func characteristicIcon(name string) string {
	lowered := strings.ToLower(name)
	for _, entry := range characteristicIcons {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.icon
			}
		}
	}
	return iconCharacteristic
}

func fieldIcon(name string) string {
	switch name {
	case "picture":
		return iconPicture
	case "price", "price_old", "price_promo":
		return iconPrice
	case "description", "description_ua":
		return iconDescription
	default:
		return iconField
	}
}
