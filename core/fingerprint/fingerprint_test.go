package fingerprint_test

import (
	"testing"

	"wowsync/core/fingerprint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_KeyOrderStable(t *testing.T) {
	a := []byte(`{"auctions":[{"id":1,"item":{"id":190},"quantity":5,"unit_price":100}],"_links":{"self":{"href":"x"}}}`)
	b := []byte(`{
		"_links": {"self": {"href": "x"}},
		"auctions": [{"unit_price": 100, "quantity": 5, "item": {"id": 190}, "id": 1}]
	}`)

	oa, err := fingerprint.Compute(a)
	require.NoError(t, err)
	ob, err := fingerprint.Compute(b)
	require.NoError(t, err)

	assert.Equal(t, oa, ob)
	assert.Len(t, string(oa), 64)
}

func TestCompute_DistinctPayloads(t *testing.T) {
	payloads := []string{
		`{"auctions":[]}`,
		`{"auctions":[{"id":1}]}`,
		`{"auctions":[{"id":2}]}`,
		`{"auctions":[{"id":1},{"id":2}]}`,
		`{"auctions":[{"id":2},{"id":1}]}`,
		`{"auctions":[{"id":1.0}]}`,
	}

	seen := map[fingerprint.Origin]string{}
	for _, p := range payloads {
		origin, err := fingerprint.Compute([]byte(p))
		require.NoError(t, err)
		if prev, ok := seen[origin]; ok {
			t.Fatalf("collision between %s and %s", prev, p)
		}
		seen[origin] = p
	}
}

func TestCompute_PreservesLargeNumbers(t *testing.T) {
	a, err := fingerprint.Compute([]byte(`{"unit_price":9007199254740993}`))
	require.NoError(t, err)
	b, err := fingerprint.Compute([]byte(`{"unit_price":9007199254740992}`))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCompute_InvalidPayload(t *testing.T) {
	_, err := fingerprint.Compute([]byte(`{"auctions":`))
	assert.Error(t, err)
}

func TestOf(t *testing.T) {
	type listing struct {
		Item  int64 `json:"item"`
		Price int64 `json:"unit_price"`
	}

	fromStruct, err := fingerprint.Of(listing{Item: 190, Price: 100})
	require.NoError(t, err)
	fromJSON, err := fingerprint.Compute([]byte(`{"unit_price":100,"item":190}`))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromStruct)
}
