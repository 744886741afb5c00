package postgres

import (
	"testing"

	"tourgenius/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDecodeJSONColumn_PlainArray(t *testing.T) {
	var days []entity.DayPlan
	data := datatypes.JSON(`[{"day":1,"destinations":[{"name":"Uluwatu Temple","price_per_person":100000}]}]`)

	require.NoError(t, decodeJSONColumn(data, &days))
	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "Uluwatu Temple", days[0].Destinations[0].Name)
}

func TestDecodeJSONColumn_DoubleEncoded(t *testing.T) {
	var days []entity.DayPlan
	// the array serialized once more as a JSON string
	data := datatypes.JSON(`"[{\"day\":1,\"destinations\":[{\"name\":\"Uluwatu Temple\",\"price_per_person\":100000}]}]"`)

	require.NoError(t, decodeJSONColumn(data, &days))
	require.Len(t, days, 1)
	assert.Equal(t, "Uluwatu Temple", days[0].Destinations[0].Name)
}

func TestDecodeJSONColumn_EmptyAndNull(t *testing.T) {
	var guides []entity.TourGuide

	require.NoError(t, decodeJSONColumn(nil, &guides))
	assert.Empty(t, guides)

	require.NoError(t, decodeJSONColumn(datatypes.JSON(`null`), &guides))
	assert.Empty(t, guides)
}

func TestEncodeJSONColumn_NilSliceBecomesEmptyArray(t *testing.T) {
	var guides []entity.TourGuide

	data, err := encodeJSONColumn(guides)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	guides := []entity.TourGuide{{Name: "Made Wira", Expertise: "Culture", PricePerDay: 150000}}

	data, err := encodeJSONColumn(guides)
	require.NoError(t, err)

	var decoded []entity.TourGuide
	require.NoError(t, decodeJSONColumn(data, &decoded))
	assert.Equal(t, guides, decoded)
}
