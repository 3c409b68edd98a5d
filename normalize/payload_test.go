package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		p := DecodePayload([]byte(`[{"cve_id":"CVE-1"},{"cve_id":"CVE-2"}]`))
		assert.Equal(t, ShapeBare, p.Shape)
		require.Len(t, p.Elements, 2)
		assert.Equal(t, "CVE-1", p.Elements[0].Raw["cve_id"])
	})

	t.Run("wrapped result array", func(t *testing.T) {
		p := DecodePayload([]byte(`{"result":[{"cve_id":"CVE-1"}]}`))
		assert.Equal(t, ShapeWrapped, p.Shape)
		require.Len(t, p.Elements, 1)
		assert.Empty(t, p.Elements[0].Key)
	})

	t.Run("keyed result mapping sorts keys", func(t *testing.T) {
		p := DecodePayload([]byte(`{"result":{"CVE-9":{"summary":"b"},"CVE-1":{"summary":"a"}}}`))
		assert.Equal(t, ShapeKeyed, p.Shape)
		require.Len(t, p.Elements, 2)
		assert.Equal(t, "CVE-1", p.Elements[0].Key)
		assert.Equal(t, "CVE-9", p.Elements[1].Key)
	})

	t.Run("single object without result key is a one-element batch", func(t *testing.T) {
		p := DecodePayload([]byte(`{"cve_id":"CVE-1"}`))
		assert.Equal(t, ShapeBare, p.Shape)
		require.Len(t, p.Elements, 1)
	})

	t.Run("non-object list entries are dropped", func(t *testing.T) {
		p := DecodePayload([]byte(`[{"cve_id":"CVE-1"},"junk",42]`))
		assert.Len(t, p.Elements, 1)
	})

	t.Run("nonsense decodes to empty payload", func(t *testing.T) {
		assert.Empty(t, DecodePayload([]byte(`"just a string"`)).Elements)
		assert.Empty(t, DecodePayload([]byte(`42`)).Elements)
		assert.Empty(t, DecodePayload([]byte(`{{{`)).Elements)
		assert.Empty(t, DecodePayload(nil).Elements)
	})

	t.Run("result of unexpected type decodes to empty payload", func(t *testing.T) {
		assert.Empty(t, DecodePayload([]byte(`{"result":"oops"}`)).Elements)
	})
}
