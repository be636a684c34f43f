package jsonapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"string id", `"42"`, 42},
		{"numeric id", `42`, 42},
		{"float id", `42.0`, 42},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &id))
}

func TestIDMarshal(t *testing.T) {
	out, err := json.Marshal(ID(7))
	require.NoError(t, err)
	assert.Equal(t, `"7"`, string(out))
}

func TestNumberUnmarshal(t *testing.T) {
	var n Number
	require.NoError(t, json.Unmarshal([]byte(`"3.50"`), &n))
	assert.Equal(t, Number(3.5), n)

	require.NoError(t, json.Unmarshal([]byte(`12.49`), &n))
	assert.Equal(t, Number(12.49), n)

	// Malformed values degrade to zero instead of failing the document.
	require.NoError(t, json.Unmarshal([]byte(`"n/a"`), &n))
	assert.Equal(t, Number(0), n)
}

func TestMoneyMarshal(t *testing.T) {
	out, err := json.Marshal(Money(3.5))
	require.NoError(t, err)
	assert.Equal(t, `3.50`, string(out))

	out, err = json.Marshal(Money(0))
	require.NoError(t, err)
	assert.Equal(t, `0.00`, string(out))
}

func TestDecodeMany(t *testing.T) {
	body := []byte(`{
		"data": [
			{"type": "orders", "id": "1", "attributes": {"status": "Pending"}},
			{"type": "orders", "id": 2, "attributes": {"status": "Ready"}}
		],
		"included": [
			{"type": "menu_item", "id": "5", "attributes": {"name": "Pad Thai"}}
		]
	}`)

	resources, included := DecodeMany(body)
	require.Len(t, resources, 2)
	assert.Equal(t, ID(1), resources[0].ID)
	assert.Equal(t, ID(2), resources[1].ID)

	m := IncludedMap(included)
	inc, ok := m["menu_item:5"]
	require.True(t, ok)
	assert.Equal(t, "menu_item", inc.Type)
}

func TestDecodeManyMalformed(t *testing.T) {
	resources, included := DecodeMany([]byte(`not json`))
	assert.Empty(t, resources)
	assert.Empty(t, included)

	resources, _ = DecodeMany([]byte(`{"data": {"type": "orders", "id": "1"}}`))
	assert.Empty(t, resources)
}

func TestDecodeOne(t *testing.T) {
	r := DecodeOne([]byte(`{"data": {"type": "restaurant", "id": "3", "attributes": {"name": "Siam Garden"}}}`))
	assert.Equal(t, ID(3), r.ID)
	assert.Equal(t, "restaurant", r.Type)

	assert.Equal(t, Resource{}, DecodeOne([]byte(`{}`)))
	assert.Equal(t, Resource{}, DecodeOne([]byte(`garbage`)))
}

func TestEncodeOneRoundTrip(t *testing.T) {
	attrs, _ := json.Marshal(map[string]any{"name": "Espresso"})
	body, err := EncodeOne(Resource{Type: "menu_item", ID: 9, Attributes: attrs})
	require.NoError(t, err)

	got := DecodeOne(body)
	assert.Equal(t, ID(9), got.ID)
	assert.Equal(t, "menu_item", got.Type)
}
