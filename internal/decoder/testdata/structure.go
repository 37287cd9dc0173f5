package testdata

import (
	"github.com/samber/lo"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

// Structure is the expected result of decoding feed.xml.
var Structure = models.ParsedStructure{
	Shop: models.ShopInfo{
		Name:    "Склад Електроніки",
		Company: "Elektronika LLC",
		URL:     "https://elektronika.example.com",
	},
	Currencies: []models.Currency{
		{ID: "UAH", Rate: "1"},
		{ID: "CURRENCY_2", Rate: "41.5"},
	},
	Categories: []models.Category{
		{ID: "1", Name: "Телевізори"},
		{ID: "2", Name: "LED", ParentID: lo.ToPtr("1")},
	},
	Offers: []models.Offer{
		{
			ID:         "TV-1",
			Available:  "true",
			Price:      12999.99,
			CurrencyID: "UAH",
			CategoryID: "2",
			Pictures: []string{
				"https://elektronika.example.com/img/tv-1-front.jpg",
				"https://elektronika.example.com/img/tv-1-back.jpg",
			},
			Vendor:        lo.ToPtr("LG"),
			Article:       lo.ToPtr("TV-1-ART"),
			StockQuantity: 7,
			Name:          "LED TV 42",
			NameUA:        lo.ToPtr("LED Телевізор 42"),
			Description:   lo.ToPtr("<p>Great TV</p>"),
			Characteristics: []models.Characteristic{
				{Name: "Колір", Value: "Чорний", Language: lo.ToPtr("uk")},
				{Name: "Колір", Value: "Черный", Language: lo.ToPtr("ru")},
				{Name: "Діагональ", Value: "42", Unit: lo.ToPtr("дюйм")},
			},
			Fields: []models.OfferField{
				{Name: "name", Value: "LED TV 42"},
				{Name: "name_ua", Value: "LED Телевізор 42"},
				{Name: "price", Value: "12999.99"},
				{Name: "currencyId", Value: "UAH"},
				{Name: "categoryId", Value: "2"},
				{Name: "picture", Value: "https://elektronika.example.com/img/tv-1-front.jpg"},
				{Name: "picture", Value: "https://elektronika.example.com/img/tv-1-back.jpg"},
				{Name: "vendor", Value: "LG"},
				{Name: "article", Value: "TV-1-ART"},
				{Name: "stock_quantity", Value: "7"},
				{Name: "description", Value: "<p>Great TV</p>", CDATA: true},
			},
		},
		{
			ID:            "TV-2",
			Available:     "true",
			Vendor:        lo.ToPtr("Samsung"),
			StockQuantity: 3,
			Name:          "LED TV 50",
			Fields: []models.OfferField{
				{Name: "name", Value: "LED TV 50"},
				{Name: "price", Value: "oops"},
				{Name: "brand", Value: "Samsung"},
				{Name: "quantity", Value: "3"},
			},
		},
	},
}
