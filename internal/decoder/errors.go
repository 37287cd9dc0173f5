package decoder

import "errors"

var (
	// ErrNoShopElement is returned when neither yml_catalog nor shop root element can be located.
	ErrNoShopElement = errors.New("no yml_catalog or shop root element found")
	// ErrMissingColumns is returned when csv header lacks required columns.
	ErrMissingColumns = errors.New("csv header is missing required columns")
	// ErrEmptyDocument is returned when the document has no content at all.
	ErrEmptyDocument = errors.New("document is empty")
	// ErrFormatNotSupported is returned when the feed format is not xml or csv.
	ErrFormatNotSupported = errors.New("feed format not supported")
)
