package decoder

import (
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
)

// Decoder decodes feed documents into parsed structures.
type Decoder struct{}

// Decode decodes content of the provided format into a parsed structure.
// Structural failures abort the whole decode, no partial structure is
// ever returned. Field-level coercion issues degrade to defaults instead.
func (d Decoder) Decode(format models.FeedFormat, content []byte) (*models.ParsedStructure, error) {
	switch format {
	case models.FormatXML:
		return decodeXML(content)
	case models.FormatCSV:
		return decodeCSV(content)
	default:
		return nil, ErrFormatNotSupported
	}
}
