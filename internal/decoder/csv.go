package decoder

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

// defaultCurrencyID is assumed when a csv row has no currency column.
const defaultCurrencyID = "UAH"

func decodeCSV(content []byte) (*models.ParsedStructure, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	lines := strings.Split(text, "\n")
	header, rows := splitHeader(lines)
	if header == nil {
		return nil, ErrEmptyDocument
	}

	columns := make(map[string]int, len(header))
	for ix, name := range header {
		columns[name] = ix
	}

	// a document without both columns cannot describe offers at all,
	// fail before any row is processed
	var missing []string
	for _, required := range []string{"name", "price"} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	structure := &models.ParsedStructure{
		Shop: models.ShopInfo{
			Name:    defaultShopName,
			Company: defaultCompany,
		},
	}

	for _, line := range rows {
		if strings.TrimSpace(line) == "" {
			continue
		}
		structure.Offers = append(structure.Offers, *decodeCSVRow(header, columns, splitLine(line)))
	}

	return structure, nil
}

// splitHeader returns the lower-cased, trimmed header columns and the
// remaining data lines, or nil when the document has no non-empty line.
func splitHeader(lines []string) ([]string, []string) {
	for ix, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		header := splitLine(line)
		for hx := range header {
			header[hx] = strings.ToLower(strings.TrimSpace(header[hx]))
		}
		return header, lines[ix+1:]
	}
	return nil, nil
}

func decodeCSVRow(header []string, columns map[string]int, fields []string) *models.Offer {
	get := func(column string) string {
		ix, ok := columns[column]
		if !ok || ix >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[ix])
	}

	offer := models.Offer{
		ID:         get("id"),
		Available:  get("available"),
		Price:      parseFloat(get("price")),
		CurrencyID: get("currency"),
		CategoryID: get("category"),
		Name:       get("name"),
	}

	if offer.Available == "" {
		offer.Available = "true"
	}
	if offer.CurrencyID == "" {
		offer.CurrencyID = defaultCurrencyID
	}
	if description := get("description"); description != "" {
		offer.Description = lo.ToPtr(description)
	}
	if vendor := firstNonEmpty(get("vendor"), get("brand")); vendor != "" {
		offer.Vendor = lo.ToPtr(vendor)
	}
	if article := firstNonEmpty(get("article"), get("sku")); article != "" {
		offer.Article = lo.ToPtr(article)
	}
	offer.StockQuantity = parseInt(firstNonEmpty(get("stock_quantity"), get("quantity")))

	// images column splits into the ordered picture list
	if images := get("images"); images != "" {
		for _, url := range strings.Split(images, ";") {
			if url = strings.TrimSpace(url); url != "" {
				offer.Pictures = append(offer.Pictures, url)
			}
		}
	}

	// attributes column holds name:value pairs separated by semicolons
	if attributes := get("attributes"); attributes != "" {
		for _, pair := range strings.Split(attributes, ";") {
			name, value, found := strings.Cut(pair, ":")
			if !found {
				continue
			}
			offer.Characteristics = append(offer.Characteristics, models.Characteristic{
				Name:  strings.TrimSpace(name),
				Value: strings.TrimSpace(value),
			})
		}
	}

	// keep populated columns in header order so schema derivation sees
	// csv offers the same way as xml ones
	for _, column := range header {
		if column == "images" || column == "attributes" {
			continue
		}
		if value := get(column); value != "" {
			offer.Fields = append(offer.Fields, models.OfferField{Name: column, Value: value})
		}
	}

	return &offer
}

// splitLine tokenizes one csv line, splitting on commas only outside
// double-quoted sections and stripping wrapping quotes from field values.
func splitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, stripQuotes(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, stripQuotes(current.String()))

	return fields
}

func stripQuotes(field string) string {
	field = strings.TrimSpace(field)
	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		field = field[1 : len(field)-1]
	}
	return field
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
