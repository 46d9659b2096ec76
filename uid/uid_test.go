package uid

import (
	"encoding/json"
	"testing"

	"gotest.tools/v3/assert"
)

func TestIDTextRoundTrip(t *testing.T) {
	id := New()
	assert.Assert(t, id != 0)

	parsed, err := Parse([]byte(id.String()))
	assert.NilError(t, err)
	assert.Equal(t, id, parsed)
}

func TestIDJSON(t *testing.T) {
	type doc struct {
		ID ID `json:"id"`
	}

	id := New()
	raw, err := json.Marshal(doc{ID: id})
	assert.NilError(t, err)
	assert.Equal(t, string(raw), `{"id":"`+id.String()+`"}`)

	var out doc
	assert.NilError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, out.ID, id)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("0OI~"))
	assert.ErrorContains(t, err, "invalid id")
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[ID]struct{})
	for i := 0; i < 1000; i++ {
		id := New()
		_, ok := seen[id]
		assert.Assert(t, !ok, "duplicate id %v", id)
		seen[id] = struct{}{}
	}
}
