package inspect

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/meur/cs2inspect/internal/models"
)

// minGenCodeFields is defindex, paintindex, paintseed and float. Anything
// after those (stickers, keychains) is ignored.
const minGenCodeFields = 4

// ParseGenCode parses "!g <defindex> <paintindex> <paintseed> <float> ...".
// The "!g " prefix is optional. Gen codes carry no asset id, so ItemID is
// always models.NoItemID.
func ParseGenCode(code string) (models.Item, error) {
	code = strings.TrimPrefix(code, genCodeToken+" ")
	fields := strings.Fields(code)
	if len(fields) < minGenCodeFields {
		return models.Item{}, parseFailed(fmt.Errorf("gen code needs %d fields, got %d", minGenCodeFields, len(fields)))
	}

	defIndex, err := parseIndex("defindex", fields[0])
	if err != nil {
		return models.Item{}, parseFailed(err)
	}

	paintIndex, err := parseIndex("paintindex", fields[1])
	if err != nil {
		return models.Item{}, parseFailed(err)
	}

	paintSeed, err := parseIndex("paintseed", fields[2])
	if err != nil {
		return models.Item{}, parseFailed(err)
	}

	floatValue, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return models.Item{}, parseFailed(fmt.Errorf("floatvalue %q: %w", fields[3], err))
	}
	// JSON has no NaN or Inf
	if math.IsNaN(floatValue) || math.IsInf(floatValue, 0) {
		return models.Item{}, parseFailed(fmt.Errorf("floatvalue %q is not finite", fields[3]))
	}

	return models.Item{
		DefIndex:   defIndex,
		PaintIndex: paintIndex,
		PaintSeed:  paintSeed,
		FloatValue: floatValue,
		ItemID:     models.NoItemID,
	}, nil
}

func parseIndex(name, field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, field, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s %q: %w", name, field, errNegative)
	}
	return n, nil
}

var errNegative = errors.New("must not be negative")
