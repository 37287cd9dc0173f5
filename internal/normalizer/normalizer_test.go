package normalizer_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supplyhub/yml-feed-parser/internal/normalizer"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

func testStructure() *models.ParsedStructure {
	return &models.ParsedStructure{
		Shop: models.ShopInfo{
			Name:    "Склад Електроніки",
			Company: "Elektronika LLC",
			URL:     "https://elektronika.example.com",
		},
		Currencies: []models.Currency{
			{ID: "UAH", Rate: "1"},
			{ID: "USD", Rate: "41.5"},
		},
		Categories: []models.Category{
			{ID: "1", Name: "Телефони"},
			{ID: "2", Name: "Чохли", ParentID: lo.ToPtr("1")},
		},
		Offers: []models.Offer{
			{
				ID:        "P-1",
				Available: "true",
				Fields: []models.OfferField{
					{Name: "name", Value: "Смартфон"},
					{Name: "price", Value: "9999.5"},
					{Name: "vendor", Value: "Apple"},
					{Name: "picture", Value: "https://example.com/1.jpg"},
					{Name: "picture", Value: "https://example.com/2.jpg"},
					{Name: "description", Value: "<p>Опис</p>", CDATA: true},
				},
				Characteristics: []models.Characteristic{
					{Name: "Колір", Value: "Чорний", Language: lo.ToPtr("uk")},
					{Name: "Колір", Value: "Черный", Language: lo.ToPtr("ru")},
					{Name: "Розмір", Value: "42"},
				},
			},
			{
				ID: "P-2",
				Fields: []models.OfferField{
					{Name: "article", Value: "never-used"},
				},
			},
		},
	}
}

func TestUnitNormalize(t *testing.T) {
	want := []models.ParsedParameter{
		{
			Name: "name", Value: lo.ToPtr("Склад Електроніки"),
			Type: models.TypeText, Category: models.CategoryParameter,
			XMLPath: "shop/name", IsRequired: true, IsActive: true, DisplayOrder: 0,
		},
		{
			Name: "company", Value: lo.ToPtr("Elektronika LLC"),
			Type: models.TypeText, Category: models.CategoryParameter,
			XMLPath: "shop/company", IsActive: true, DisplayOrder: 1,
		},
		{
			Name: "url", Value: lo.ToPtr("https://elektronika.example.com"),
			Type: models.TypeURL, Category: models.CategoryParameter,
			XMLPath: "shop/url", IsActive: true, DisplayOrder: 2,
		},
		{
			Name: "currency_UAH", Value: lo.ToPtr("1"),
			Type: models.TypeText, Category: models.CategoryCurrency,
			XMLPath: "shop/currencies/currency", IsActive: true, DisplayOrder: 3,
		},
		{
			Name: "currency_USD", Value: lo.ToPtr("41.5"),
			Type: models.TypeText, Category: models.CategoryCurrency,
			XMLPath: "shop/currencies/currency", IsActive: true, DisplayOrder: 4,
		},
		{
			Name: "category_1", Value: lo.ToPtr("Телефони"),
			Type: models.TypeText, Category: models.CategoryCategory,
			XMLPath: "shop/categories/category", IsActive: true, DisplayOrder: 5,
		},
		{
			Name: "category_2", Value: lo.ToPtr("Чохли"),
			Type: models.TypeText, Category: models.CategoryCategory,
			XMLPath: "shop/categories/category", IsActive: true, DisplayOrder: 6,
			Parent: lo.ToPtr("category_1"),
		},
		{
			Name: "price", Value: lo.ToPtr("9999.5"),
			Type: models.TypeNumber, Category: models.CategoryOffer,
			XMLPath: "shop/offers/offer/price", IsRequired: true, IsActive: true, DisplayOrder: 8,
		},
		{
			Name: "picture", Value: lo.ToPtr("https://example.com/1.jpg"),
			Type: models.TypeURL, Category: models.CategoryOffer,
			XMLPath: "shop/offers/offer/picture", IsActive: true, DisplayOrder: 10,
		},
		{
			Name: "vendor", Value: lo.ToPtr("Apple"),
			Type: models.TypeText, Category: models.CategoryOffer,
			XMLPath: "shop/offers/offer/vendor", IsActive: true, DisplayOrder: 9,
		},
		{
			Name: "name", Value: lo.ToPtr("Смартфон"),
			Type: models.TypeText, Category: models.CategoryOffer,
			XMLPath: "shop/offers/offer/name", IsRequired: true, IsActive: true, DisplayOrder: 7,
		},
		{
			Name: "description", Value: lo.ToPtr("<p>Опис</p>"),
			Type: models.TypeTextarea, Category: models.CategoryOffer,
			XMLPath: "shop/offers/offer/description", IsActive: true, DisplayOrder: 11,
		},
		{
			Name: "param_Колір", Value: lo.ToPtr("Чорний"),
			Type: models.TypeText, Category: models.CategoryCharacteristic,
			XMLPath: "shop/offers/offer/param", IsActive: true, DisplayOrder: 12,
			NestedValues: []models.NestedValue{
				{Language: lo.ToPtr("uk"), Value: "Чорний"},
				{Language: lo.ToPtr("ru"), Value: "Черный"},
			},
		},
		{
			Name: "param_Розмір", Value: lo.ToPtr("42"),
			Type: models.TypeText, Category: models.CategoryCharacteristic,
			XMLPath: "shop/offers/offer/param", IsActive: true, DisplayOrder: 13,
		},
	}

	norm := normalizer.Normalizer{}

	params := norm.Normalize(testStructure())

	assert.Equal(t, want, params, "should produce the canonical ordered parameter list")
}

func TestUnitNormalizeDeterminism(t *testing.T) {
	norm := normalizer.Normalizer{}

	first := norm.Normalize(testStructure())
	second := norm.Normalize(testStructure())

	assert.Equal(t, first, second, "identical input should produce identical output")
}

func TestUnitNormalizeFirstOfferOnly(t *testing.T) {
	norm := normalizer.Normalizer{}

	params := norm.Normalize(testStructure())

	for ix := range params {
		assert.NotEqual(t, "article", params[ix].Name,
			"fields of offers after the first should not contribute to the schema")
	}
}

func TestUnitNormalizeNoOffers(t *testing.T) {
	structure := testStructure()
	structure.Offers = nil

	norm := normalizer.Normalizer{}

	params := norm.Normalize(structure)

	require.Len(t, params, 7, "should keep shop, currency and category parameters")
	for ix := range params {
		assert.NotEqual(t, models.CategoryOffer, params[ix].Category, "should have no offer parameters")
		assert.NotEqual(t, models.CategoryCharacteristic, params[ix].Category,
			"should have no characteristic parameters")
	}
}

func TestUnitNormalizeRepeatedFieldFirstWins(t *testing.T) {
	structure := &models.ParsedStructure{
		Offers: []models.Offer{
			{
				Fields: []models.OfferField{
					{Name: "picture", Value: "first"},
					{Name: "picture", Value: "second"},
					{Name: "picture", Value: "third"},
				},
			},
		},
	}

	norm := normalizer.Normalizer{}

	params := norm.Normalize(structure)

	pictures := lo.Filter(params, func(p models.ParsedParameter, _ int) bool { return p.Name == "picture" })

	require.Len(t, pictures, 1, "repeated sibling tag should map to a single parameter")
	assert.Equal(t, "first", *pictures[0].Value, "first instance should provide the value")
}

func TestUnitNormalizeCharacteristicCompleteness(t *testing.T) {
	structure := testStructure()

	norm := normalizer.Normalizer{}

	params := norm.Normalize(structure)

	instances := 0
	for ix := range params {
		if params[ix].Category != models.CategoryCharacteristic {
			continue
		}
		if len(params[ix].NestedValues) > 0 {
			instances += len(params[ix].NestedValues)
		} else {
			instances++
		}
	}

	assert.Equal(t, len(structure.Offers[0].Characteristics), instances,
		"every characteristic instance should survive normalization",
	)
}

func TestUnitInferCategory(t *testing.T) {
	tests := map[string]struct {
		xmlPath string
		want    models.ParameterCategory
	}{
		"currency path":       {"shop/currencies/currency", models.CategoryCurrency},
		"category path":       {"shop/categories/category", models.CategoryCategory},
		"offer field path":    {"shop/offers/offer/price", models.CategoryOffer},
		"characteristic path": {"characteristics/param", models.CategoryCharacteristic},
		"shop field path":     {"shop/name", models.CategoryParameter},
		"empty path":          {"", models.CategoryParameter},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizer.InferCategory(tt.xmlPath), "should infer correct category")
			assert.Equal(t, tt.want, normalizer.InferCategory(tt.xmlPath), "repeated calls should agree")
		})
	}
}

func TestUnitRank(t *testing.T) {
	assert.Equal(t, 1, normalizer.Rank(models.CategoryOffer, "id"))
	assert.Equal(t, 3, normalizer.Rank(models.CategoryOffer, "price"))
	assert.Equal(t, 16, normalizer.Rank(models.CategoryOffer, "url"))
	assert.Equal(t, 1, normalizer.Rank(models.CategoryParameter, "name"))
	assert.Equal(t, 9999, normalizer.Rank(models.CategoryOffer, "nonexistent"))
	assert.Equal(t, 9999, normalizer.Rank(models.CategoryCharacteristic, "param_Колір"))
}
