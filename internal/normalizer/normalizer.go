package normalizer

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

// Normalizer flattens parsed structures into ordered parameter lists.
type Normalizer struct{}

// Normalize flattens the structure into the canonical ordered parameter
// list. Display order is assigned strictly increasing during a single
// traversal (shop, currencies, categories, offer fields, characteristics)
// and the result is deterministic for identical input. Schema derivation
// uses exactly one representative offer, the first one in the document.
func (n Normalizer) Normalize(structure *models.ParsedStructure) []models.ParsedParameter {
	var params []models.ParsedParameter
	next := 0

	params, next = appendShopParameters(params, next, &structure.Shop)
	params, next = appendCurrencyParameters(params, next, structure.Currencies)
	params, next = appendCategoryParameters(params, next, structure.Categories)
	if len(structure.Offers) > 0 {
		params, next = appendOfferParameters(params, next, &structure.Offers[0])
		params, _ = appendCharacteristicParameters(params, next, structure.Offers[0].Characteristics)
	}

	sortParameters(params)

	return params
}

// appendParameter stamps display order onto the parameter and appends it,
// returning the grown list with the next free order value.
func appendParameter(
	params []models.ParsedParameter,
	next int,
	param models.ParsedParameter,
) ([]models.ParsedParameter, int) {
	param.DisplayOrder = next
	param.IsActive = true

	return append(params, param), next + 1
}

func appendShopParameters(
	params []models.ParsedParameter,
	next int,
	shop *models.ShopInfo,
) ([]models.ParsedParameter, int) {
	params, next = appendParameter(params, next, models.ParsedParameter{
		Name:       "name",
		Value:      lo.ToPtr(shop.Name),
		Type:       models.TypeText,
		Category:   models.CategoryParameter,
		XMLPath:    "shop/name",
		IsRequired: true,
	})
	params, next = appendParameter(params, next, models.ParsedParameter{
		Name:     "company",
		Value:    lo.ToPtr(shop.Company),
		Type:     models.TypeText,
		Category: models.CategoryParameter,
		XMLPath:  "shop/company",
	})
	params, next = appendParameter(params, next, models.ParsedParameter{
		Name:     "url",
		Value:    lo.ToPtr(shop.URL),
		Type:     models.TypeURL,
		Category: models.CategoryParameter,
		XMLPath:  "shop/url",
	})

	return params, next
}

func appendCurrencyParameters(
	params []models.ParsedParameter,
	next int,
	currencies []models.Currency,
) ([]models.ParsedParameter, int) {
	for ix := range currencies {
		params, next = appendParameter(params, next, models.ParsedParameter{
			Name:     fmt.Sprintf("currency_%s", currencies[ix].ID),
			Value:    lo.ToPtr(currencies[ix].Rate),
			Type:     models.TypeText,
			Category: models.CategoryCurrency,
			XMLPath:  "shop/currencies/currency",
		})
	}

	return params, next
}

func appendCategoryParameters(
	params []models.ParsedParameter,
	next int,
	categories []models.Category,
) ([]models.ParsedParameter, int) {
	for ix := range categories {
		var parent *string
		if categories[ix].ParentID != nil {
			parent = lo.ToPtr(fmt.Sprintf("category_%s", *categories[ix].ParentID))
		}

		params, next = appendParameter(params, next, models.ParsedParameter{
			Name:     fmt.Sprintf("category_%s", categories[ix].ID),
			Value:    lo.ToPtr(categories[ix].Name),
			Type:     models.TypeText,
			Category: models.CategoryCategory,
			XMLPath:  "shop/categories/category",
			Parent:   parent,
		})
	}

	return params, next
}

// appendOfferParameters walks the offer's scalar children in document
// order, first seen tag wins, a repeated sibling tag is not emitted
// twice for schema derivation.
func appendOfferParameters(
	params []models.ParsedParameter,
	next int,
	offer *models.Offer,
) ([]models.ParsedParameter, int) {
	seen := make(map[string]struct{}, len(offer.Fields))

	for ix := range offer.Fields {
		field := &offer.Fields[ix]
		if _, ok := seen[field.Name]; ok {
			continue
		}
		seen[field.Name] = struct{}{}

		params, next = appendParameter(params, next, models.ParsedParameter{
			Name:       field.Name,
			Value:      lo.ToPtr(field.Value),
			Type:       offerFieldType(field.Name),
			Category:   models.CategoryOffer,
			XMLPath:    fmt.Sprintf("shop/offers/offer/%s", field.Name),
			IsRequired: field.Name == "name" || field.Name == "price",
		})
	}

	return params, next
}

func offerFieldType(field string) models.ParameterType {
	switch field {
	case "price", "stock_quantity":
		return models.TypeNumber
	case "picture":
		return models.TypeURL
	case "description", "description_ua":
		return models.TypeTextarea
	default:
		return models.TypeText
	}
}

// appendCharacteristicParameters groups characteristics by name keeping
// first-seen order. Language-tagged instances of one name collapse into
// nested values with the first value as the representative one, no
// instance is discarded.
func appendCharacteristicParameters(
	params []models.ParsedParameter,
	next int,
	characteristics []models.Characteristic,
) ([]models.ParsedParameter, int) {
	names := make([]string, 0, len(characteristics))
	grouped := make(map[string][]models.Characteristic, len(characteristics))

	for ix := range characteristics {
		name := characteristics[ix].Name
		if _, ok := grouped[name]; !ok {
			names = append(names, name)
		}
		grouped[name] = append(grouped[name], characteristics[ix])
	}

	for _, name := range names {
		group := grouped[name]

		param := models.ParsedParameter{
			Name:     fmt.Sprintf("param_%s", name),
			Value:    lo.ToPtr(group[0].Value),
			Type:     models.TypeText,
			Category: models.CategoryCharacteristic,
			XMLPath:  "shop/offers/offer/param",
		}

		if len(group) > 1 || group[0].Language != nil {
			param.NestedValues = lo.Map(group, func(c models.Characteristic, _ int) models.NestedValue {
				return models.NestedValue{Language: c.Language, Value: c.Value}
			})
		}

		params, next = appendParameter(params, next, param)
	}

	return params, next
}
