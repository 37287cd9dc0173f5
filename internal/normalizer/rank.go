package normalizer

import (
	"sort"
	"strings"

	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

// unrankedField sorts fields absent from the rank tables last within
// their bucket.
const unrankedField = 9999

// categoryOrder fixes the bucket order of parameter categories.
var categoryOrder = map[models.ParameterCategory]int{
	models.CategoryParameter:      1,
	models.CategoryCurrency:       2,
	models.CategoryCategory:       3,
	models.CategoryOffer:          4,
	models.CategoryCharacteristic: 5,
}

// fieldRanks supply per-field priorities within a bucket, matching the
// natural document order of a standard feed. Characteristics have no
// fixed ranks, they are feed-specific and keep traversal order.
var fieldRanks = map[models.ParameterCategory]map[string]int{
	models.CategoryParameter: {
		"name":    1,
		"company": 2,
		"url":     3,
	},
	models.CategoryCurrency: {
		"id":   1,
		"rate": 2,
	},
	models.CategoryCategory: {
		"id":   1,
		"name": 2,
	},
	models.CategoryOffer: {
		"id":             1,
		"available":      2,
		"price":          3,
		"price_old":      4,
		"price_promo":    5,
		"currencyId":     6,
		"categoryId":     7,
		"picture":        8,
		"vendor":         9,
		"article":        10,
		"stock_quantity": 11,
		"name":           12,
		"name_ua":        13,
		"description":    14,
		"description_ua": 15,
		"url":            16,
	},
}

// Rank returns ordering priority of a field name within its category
// bucket. Pure function of its arguments.
func Rank(category models.ParameterCategory, field string) int {
	ranks, ok := fieldRanks[category]
	if !ok {
		return unrankedField
	}

	rank, ok := ranks[field]
	if !ok {
		return unrankedField
	}

	return rank
}

// InferCategory derives a parameter category from an xml path string by
// matching path fragments in priority order. It is also applied post-hoc
// to copied or imported parameters whose category was never pinned, so
// the result depends on the path alone.
func InferCategory(xmlPath string) models.ParameterCategory {
	switch {
	case strings.Contains(xmlPath, "currency"):
		return models.CategoryCurrency
	case strings.Contains(xmlPath, "category"):
		return models.CategoryCategory
	case strings.Contains(xmlPath, "offer"):
		return models.CategoryOffer
	case strings.Contains(xmlPath, "param"), strings.Contains(xmlPath, "characteristic"):
		return models.CategoryCharacteristic
	default:
		return models.CategoryParameter
	}
}

// sortParameters applies the canonical two-level ordering: category
// bucket first, then per-field rank, with display order and name as
// final tie-breaks. The sort is stable and never drops or duplicates
// a parameter.
func sortParameters(params []models.ParsedParameter) {
	sort.SliceStable(params, func(i, j int) bool {
		a, b := &params[i], &params[j]

		if categoryOrder[a.Category] != categoryOrder[b.Category] {
			return categoryOrder[a.Category] < categoryOrder[b.Category]
		}

		rankA, rankB := Rank(a.Category, a.Name), Rank(b.Category, b.Name)
		if rankA != rankB {
			return rankA < rankB
		}

		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}

		return a.Name < b.Name
	})
}
