package models

// Classification values sent with every item. They are not derived from the
// input and stand for "unknown/default" on the plugin side.
const (
	DefaultRarity  = 4
	DefaultQuality = 4
	DefaultOrigin  = 8
)

// NoItemID is the asset id reported for inputs that carry none (gen codes)
const NoItemID = "0"

// Item describes a single cosmetic item variant parsed from a gen code or an
// inspect link. ItemID stays a string so 64-bit asset ids survive untouched.
type Item struct {
	DefIndex   int     `json:"defindex"`
	PaintIndex int     `json:"paintindex"`
	PaintSeed  int     `json:"paintseed"`
	FloatValue float64 `json:"floatvalue"`
	ItemID     string  `json:"itemid"`
}

// ItemInfo is the item as returned to callers, with classification fields
type ItemInfo struct {
	Item
	Rarity  int `json:"rarity"`
	Quality int `json:"quality"`
	Origin  int `json:"origin"`
}

// ItemInfoResponse is the response envelope for a parsed item
type ItemInfoResponse struct {
	ItemInfo ItemInfo `json:"iteminfo"`
}

// NewItemInfoResponse wraps an item with the default classification values
func NewItemInfoResponse(item Item) ItemInfoResponse {
	return ItemInfoResponse{
		ItemInfo: ItemInfo{
			Item:    item,
			Rarity:  DefaultRarity,
			Quality: DefaultQuality,
			Origin:  DefaultOrigin,
		},
	}
}
