package decoder

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

// Default values for shop fields missing from the document.
const (
	defaultShopName = "Unknown shop"
	defaultCompany  = "Unknown company"
)

func decodeXML(content []byte) (*models.ParsedStructure, error) {
	rootName, root, err := newDocDecoder(string(content)).decode()
	if err != nil {
		return nil, fmt.Errorf("can't parse xml: %w", err)
	}

	shop := root
	switch rootName {
	case "yml_catalog":
		if shop = root.childByName("shop"); shop == nil {
			return nil, ErrNoShopElement
		}
	case "shop":
	default:
		return nil, ErrNoShopElement
	}

	return &models.ParsedStructure{
		Shop: models.ShopInfo{
			Name:    shop.fieldText("name", defaultShopName),
			Company: shop.fieldText("company", defaultCompany),
			URL:     shop.fieldText("url", ""),
		},
		Currencies: decodeCurrencies(shop),
		Categories: decodeCategories(shop),
		Offers:     decodeOffers(shop),
	}, nil
}

func decodeCurrencies(shop *node) []models.Currency {
	group := shop.childByName("currencies")
	if group == nil {
		return nil
	}

	var currencies []models.Currency
	for ix, cur := range group.childList("currency") {
		id := cur.fieldText("id", "")
		if id == "" {
			id = fmt.Sprintf("CURRENCY_%d", ix+1)
		}
		currencies = append(currencies, models.Currency{
			ID:   id,
			Rate: cur.fieldText("rate", "1"),
		})
	}

	return currencies
}

func decodeCategories(shop *node) []models.Category {
	group := shop.childByName("categories")
	if group == nil {
		return nil
	}

	var categories []models.Category
	for ix, cat := range group.childList("category") {
		// category name is the element text, id is the attribute
		id := cat.attr("id")
		if id == "" {
			id = fmt.Sprintf("CAT_%d", ix+1)
		}

		name := cat.text
		if name == "" {
			name = cat.attr("name")
		}

		var parentID *string
		if parent := cat.attr("parentId"); parent != "" {
			parentID = lo.ToPtr(parent)
		}

		categories = append(categories, models.Category{
			ID:       id,
			Name:     name,
			ParentID: parentID,
		})
	}

	return categories
}

func decodeOffers(shop *node) []models.Offer {
	group := shop.childByName("offers")
	if group == nil {
		return nil
	}

	var offers []models.Offer
	for _, of := range group.childList("offer") {
		offers = append(offers, *decodeOffer(of))
	}

	return offers
}

func decodeOffer(of *node) *models.Offer {
	offer := models.Offer{
		ID:        of.attr("id"),
		Available: of.attr("available"),
	}

	if offer.ID == "" {
		offer.ID = of.fieldText("id", "")
	}
	if offer.Available == "" {
		offer.Available = "true"
	}

	for _, ch := range of.children {
		if ch.name == "param" {
			offer.Characteristics = append(offer.Characteristics, decodeCharacteristics(ch.node)...)
			continue
		}

		offer.Fields = append(offer.Fields, models.OfferField{
			Name:  ch.name,
			Value: ch.node.text,
			CDATA: ch.node.cdata,
		})

		setOfferField(&offer, ch.name, ch.node.text)
	}

	return &offer
}

// setOfferField maps one scalar child element onto the typed offer shape.
// Numeric fields which fail to coerce default instead of aborting the parse.
func setOfferField(offer *models.Offer, name, value string) {
	switch name {
	case "price":
		offer.Price = parseFloat(value)
	case "currencyId":
		offer.CurrencyID = value
	case "categoryId":
		offer.CategoryID = value
	case "picture":
		offer.Pictures = append(offer.Pictures, value)
	case "vendor", "brand":
		if offer.Vendor == nil {
			offer.Vendor = lo.ToPtr(value)
		}
	case "article", "sku":
		if offer.Article == nil {
			offer.Article = lo.ToPtr(value)
		}
	case "stock_quantity", "quantity":
		if offer.StockQuantity == 0 {
			offer.StockQuantity = parseInt(value)
		}
	case "name":
		offer.Name = value
	case "name_ua":
		offer.NameUA = lo.ToPtr(value)
	case "description":
		offer.Description = lo.ToPtr(value)
	case "description_ua":
		offer.DescriptionUA = lo.ToPtr(value)
	}
}

// decodeCharacteristics expands one param element. A param with nested
// value children yields one characteristic per value, each tagged with
// its lang attribute. A param without them yields exactly one
// characteristic from the param's own text.
func decodeCharacteristics(param *node) []models.Characteristic {
	name := param.attr("name")
	if name == "" {
		name = param.text
	}

	values := param.childList("value")
	if len(values) == 0 {
		var unit *string
		if u := param.attr("unit"); u != "" {
			unit = lo.ToPtr(u)
		}
		return []models.Characteristic{{
			Name:  name,
			Value: param.text,
			Unit:  unit,
		}}
	}

	characteristics := make([]models.Characteristic, 0, len(values))
	for _, value := range values {
		var lang *string
		if l := value.attr("lang"); l != "" {
			lang = lo.ToPtr(l)
		}
		characteristics = append(characteristics, models.Characteristic{
			Name:     name,
			Value:    value.text,
			Language: lang,
		})
	}

	return characteristics
}

func parseFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func parseInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}
