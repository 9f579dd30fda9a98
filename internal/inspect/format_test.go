package inspect

import (
	"testing"

	"github.com/meur/cs2inspect/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want Format
	}{
		{name: "GenCode", raw: "!g 7 12 5 0.45", want: FormatGenCode},
		{name: "GenCodeNoSpace", raw: "!g7", want: FormatGenCode},
		{name: "BareToken", raw: "!g", want: FormatGenCode},
		{name: "InspectLink", raw: "steam://rungame/730/1/+csgo_econ_action_preview S1A2D3", want: FormatInspectLink},
		{name: "OtherSteamLink", raw: "steam://open/games", want: FormatInspectLink},
		{name: "Banana", raw: "banana", want: FormatUnknown},
		{name: "LeadingSpace", raw: " !g 7 12 5 0.45", want: FormatUnknown},
		{name: "UpperCase", raw: "!G 7 12 5 0.45", want: FormatUnknown},
		{name: "HTTPLink", raw: "https://steamcommunity.com", want: FormatUnknown},
		{name: "Empty", raw: "", want: FormatUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Detect(tc.raw))
		})
	}
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "gencode", FormatGenCode.String())
	require.Equal(t, "inspectlink", FormatInspectLink.String())
	require.Equal(t, "unknown", FormatUnknown.String())
}

func TestParse(t *testing.T) {
	t.Run("GenCode", func(t *testing.T) {
		item, format, err := Parse("!g 7 12 5 0.45")
		require.NoError(t, err)
		require.Equal(t, FormatGenCode, format)
		require.Equal(t, models.Item{DefIndex: 7, PaintIndex: 12, PaintSeed: 5, FloatValue: 0.45, ItemID: "0"}, item)
	})

	t.Run("InspectLink", func(t *testing.T) {
		item, format, err := Parse("steam://rungame/730/76561202255233023/+csgo_econ_action_preview S76561198000000000A123456789D7")
		require.NoError(t, err)
		require.Equal(t, FormatInspectLink, format)
		require.Equal(t, models.Item{DefIndex: 7, ItemID: "123456789"}, item)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, format, err := Parse("banana")
		require.ErrorIs(t, err, ErrUnknownFormat)
		require.Equal(t, FormatUnknown, format)
	})

	t.Run("BadGenCode", func(t *testing.T) {
		_, format, err := Parse("!g 7 12")
		require.ErrorIs(t, err, ErrParseFailed)
		require.Equal(t, FormatGenCode, format)
	})

	t.Run("BadInspectLink", func(t *testing.T) {
		_, format, err := Parse("steam://rungame/730/1/+csgo_econ_action_preview X1A2D3")
		require.ErrorIs(t, err, ErrParseFailed)
		require.Equal(t, FormatInspectLink, format)
	})
}
