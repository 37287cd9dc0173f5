package models

import "time"

// FeedFormat is format of a feed document, resolved from the feed URL extension.
type FeedFormat string

// Supported feed formats.
const (
	FormatXML     FeedFormat = "xml"
	FormatCSV     FeedFormat = "csv"
	FormatUnknown FeedFormat = "unknown"
)

// ParameterType is display/storage type of a normalized parameter.
type ParameterType string

// Parameter types.
const (
	TypeText     ParameterType = "text"
	TypeNumber   ParameterType = "number"
	TypeURL      ParameterType = "url"
	TypeBoolean  ParameterType = "boolean"
	TypeTextarea ParameterType = "textarea"
)

// ParameterCategory is structural origin of a normalized parameter.
// The set is closed, nothing outside it is ever inferred.
type ParameterCategory string

// Parameter categories.
const (
	CategoryParameter      ParameterCategory = "parameter"
	CategoryCurrency       ParameterCategory = "currency"
	CategoryCategory       ParameterCategory = "category"
	CategoryOffer          ParameterCategory = "offer"
	CategoryCharacteristic ParameterCategory = "characteristic"
)

// ShopInfo is shop header of a feed document.
type ShopInfo struct {
	Name    string
	Company string
	URL     string
}

// Currency is currency entry of a feed document.
type Currency struct {
	ID   string
	Rate string
}

// Category is category entry of a feed document. ParentID may reference
// a category which is not present in the document, dangling references
// are kept as-is.
type Category struct {
	ID       string
	Name     string
	ParentID *string
}

// Characteristic is a named, possibly language-tagged attribute of an offer.
// A single name may repeat across languages, each instance is kept.
type Characteristic struct {
	Name     string
	Value    string
	Unit     *string
	Language *string
}

// OfferField is one scalar child element of an offer in document order.
// The decoder keeps raw values here so schema derivation can walk offer
// children exactly as they appeared in the document.
type OfferField struct {
	Name  string
	Value string
	CDATA bool
}

// Offer is one product entry of a feed document.
type Offer struct {
	ID              string
	Available       string
	Price           float64
	CurrencyID      string
	CategoryID      string
	Pictures        []string
	Vendor          *string
	Article         *string
	StockQuantity   int
	Name            string
	NameUA          *string
	Description     *string
	DescriptionUA   *string
	Characteristics []Characteristic
	Fields          []OfferField
}

// ParsedStructure is intermediate representation of one decoded feed document.
type ParsedStructure struct {
	Shop       ShopInfo
	Currencies []Currency
	Categories []Category
	Offers     []Offer
}

// NestedValue is one language-tagged characteristic value.
type NestedValue struct {
	Language *string `json:"lang,omitempty"`
	Value    string  `json:"value"`
}

// ParsedParameter is one normalized, flattened feed field.
type ParsedParameter struct {
	Name         string
	Value        *string
	Type         ParameterType
	Category     ParameterCategory
	XMLPath      string
	IsRequired   bool
	IsActive     bool
	DisplayOrder int
	Parent       *string
	NestedValues []NestedValue
}

// ParseCommand is a request to ingest one feed. TemplateID and StoreID are
// opaque to the pipeline, they only stamp persisted parameter rows.
type ParseCommand struct {
	FeedURL    string `json:"feedUrl"`
	TemplateID string `json:"templateId,omitempty"`
	StoreID    string `json:"storeId,omitempty"`
}

// Feed is registered feed source model.
type Feed struct {
	ID        int
	URL       string
	CreatedAt time.Time
	DeletedAt *time.Time

	LastRuns []Run
}

// Run is feed ingestion run model.
type Run struct {
	ID                int
	FeedID            int
	CreatedAt         time.Time
	FinishedAt        *time.Time
	IsSuccess         *bool
	StatusMessage     *string
	CreatedParameters *int32
	UpdatedParameters *int32
	DeletedParameters *int32
	ParametersVersion int64
}

// PreviewNode is one node of the preview tree shown to the operator
// before parameters are committed.
type PreviewNode struct {
	Icon         string        `json:"icon"`
	Label        string        `json:"label"`
	Value        *string       `json:"value,omitempty"`
	CDATA        bool          `json:"cdata,omitempty"`
	Multilingual bool          `json:"multilingual,omitempty"`
	Children     []PreviewNode `json:"children,omitempty"`
}

// PreviewStats are aggregate counts over one preview tree.
type PreviewStats struct {
	TotalNodes        int `json:"totalNodes"`
	ParameterNodes    int `json:"parameterNodes"`
	MultilingualNodes int `json:"multilingualNodes"`
	CDATANodes        int `json:"cdataNodes"`
}
