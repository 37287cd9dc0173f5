package modelstesting

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

// FakeParsedParameter returns models.ParsedParameter with fake data.
func FakeParsedParameter(ops ...func(p *models.ParsedParameter)) models.ParsedParameter {
	param := models.ParsedParameter{
		Name:         faker.Word(),
		Value:        lo.ToPtr(faker.Word()),
		Type:         models.TypeText,
		Category:     models.CategoryOffer,
		XMLPath:      "yml_catalog/shop/offers/offer/" + faker.Word(),
		IsActive:     true,
		DisplayOrder: rand.Intn(100),
	}

	for _, op := range ops {
		op(&param)
	}

	return param
}

// FakeOffer returns models.Offer with fake data and random number of fake characteristics.
func FakeOffer(ops ...func(o *models.Offer)) models.Offer {
	offer := models.Offer{
		ID:              faker.Word(),
		Available:       "true",
		Price:           float64(rand.Intn(10000)) / 100,
		CurrencyID:      "UAH",
		CategoryID:      faker.Word(),
		Pictures:        fakePictures(),
		Vendor:          lo.ToPtr(faker.Word()),
		Article:         lo.ToPtr(faker.Word()),
		StockQuantity:   rand.Intn(100),
		Name:            faker.Word(),
		NameUA:          lo.ToPtr(faker.Word()),
		Description:     lo.ToPtr(faker.Sentence()),
		DescriptionUA:   lo.ToPtr(faker.Sentence()),
		Characteristics: fakeCharacteristics(),
	}

	for _, op := range ops {
		op(&offer)
	}

	return offer
}

// FakeCharacteristic returns models.Characteristic with fake data.
func FakeCharacteristic(ops ...func(c *models.Characteristic)) models.Characteristic {
	characteristic := models.Characteristic{
		Name:  faker.Word(),
		Value: faker.Word(),
	}

	for _, op := range ops {
		op(&characteristic)
	}

	return characteristic
}

// FakeStructure returns models.ParsedStructure with fake shop data and random number of fake offers.
func FakeStructure(ops ...func(s *models.ParsedStructure)) models.ParsedStructure {
	structure := models.ParsedStructure{
		Shop: models.ShopInfo{
			Name:    faker.Word(),
			Company: faker.Word(),
			URL:     faker.URL(),
		},
		Currencies: []models.Currency{{ID: "UAH", Rate: "1"}},
		Categories: []models.Category{{ID: "1", Name: faker.Word()}},
		Offers:     fakeOffers(),
	}

	for _, op := range ops {
		op(&structure)
	}

	return structure
}

func fakePictures() []string {
	picturesLen := rand.Intn(5)
	pictures := make([]string, 0, picturesLen)
	for range picturesLen {
		pictures = append(pictures, faker.URL())
	}

	return pictures
}

func fakeCharacteristics() []models.Characteristic {
	characteristicsLen := rand.Intn(5)
	characteristics := make([]models.Characteristic, 0, characteristicsLen)
	for range characteristicsLen {
		characteristics = append(characteristics, FakeCharacteristic())
	}

	return characteristics
}

func fakeOffers() []models.Offer {
	offersLen := 1 + rand.Intn(4)
	offers := make([]models.Offer, 0, offersLen)
	for range offersLen {
		offers = append(offers, FakeOffer())
	}

	return offers
}
