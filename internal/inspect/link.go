package inspect

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/meur/cs2inspect/internal/models"
)

// Owner marks whose item an inspect link points at
type Owner string

const (
	OwnerInventory Owner = "S"
	OwnerMarket    Owner = "M"
)

// inspectLinkPattern matches
//
//	steam://rungame/730/<appowner>/+csgo_econ_action_preview S<owner>A<asset>D<d>
//
// The separator before the action is "+" or a space, since a "+" inside a
// query string arrives decoded as a space. Only the prefix is anchored.
var inspectLinkPattern = regexp.MustCompile(`^steam://rungame/730/\d+/[+ ]csgo_econ_action_preview ([SM])(\d+)A(\d+)D(\d+)`)

var errNoMatch = errors.New("not a csgo_econ_action_preview link")

// Link is a decoded inspect link
type Link struct {
	Owner    Owner
	OwnerID  string
	AssetID  string
	DefIndex int
}

// ParseInspectLink percent-decodes link and extracts its asset id and
// definition index.
func ParseInspectLink(link string) (Link, error) {
	decoded, err := url.PathUnescape(link)
	if err != nil {
		return Link{}, parseFailed(fmt.Errorf("decode inspect link: %w", err))
	}

	m := inspectLinkPattern.FindStringSubmatch(decoded)
	if m == nil {
		return Link{}, parseFailed(errNoMatch)
	}

	defIndex, err := strconv.Atoi(m[4])
	if err != nil {
		return Link{}, parseFailed(fmt.Errorf("defindex %q: %w", m[4], err))
	}

	return Link{
		Owner:    Owner(m[1]),
		OwnerID:  m[2],
		AssetID:  m[3],
		DefIndex: defIndex,
	}, nil
}

// Item converts the link into an item. Inspect links carry no paint data;
// that lives in the game coordinator, so those fields stay zero.
func (l Link) Item() models.Item {
	return models.Item{
		DefIndex: l.DefIndex,
		ItemID:   l.AssetID,
	}
}
