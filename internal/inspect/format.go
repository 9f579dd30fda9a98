// Package inspect turns gen codes and steam:// inspect links into items.
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/meur/cs2inspect/internal/models"
)

// Format is the kind of input handed to Parse
type Format int

const (
	FormatUnknown Format = iota
	FormatGenCode
	FormatInspectLink
)

const (
	genCodeToken = "!g"
	steamScheme  = "steam://"
)

var (
	ErrUnknownFormat = errors.New("invalid format. Use !g code or steam:// link")
	ErrParseFailed   = errors.New("failed to parse item info")
)

func (f Format) String() string {
	switch f {
	case FormatGenCode:
		return "gencode"
	case FormatInspectLink:
		return "inspectlink"
	default:
		return "unknown"
	}
}

// Detect classifies raw input by its prefix. Gen codes win over links.
func Detect(raw string) Format {
	switch {
	case strings.HasPrefix(raw, genCodeToken):
		return FormatGenCode
	case strings.HasPrefix(raw, steamScheme):
		return FormatInspectLink
	default:
		return FormatUnknown
	}
}

// Parse detects the format of raw and runs the matching parser.
// Errors wrap either ErrUnknownFormat or ErrParseFailed.
func Parse(raw string) (models.Item, Format, error) {
	format := Detect(raw)

	switch format {
	case FormatGenCode:
		item, err := ParseGenCode(raw)
		return item, format, err
	case FormatInspectLink:
		link, err := ParseInspectLink(raw)
		if err != nil {
			return models.Item{}, format, err
		}
		return link.Item(), format, nil
	default:
		return models.Item{}, format, ErrUnknownFormat
	}
}

func parseFailed(cause error) error {
	return fmt.Errorf("%w: %w", ErrParseFailed, cause)
}
