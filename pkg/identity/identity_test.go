package identity_test

import (
	"testing"

	"github.com/aretw0/contentpub/pkg/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_ValidAndUnique(t *testing.T) {
	gen := identity.NewUUID()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id, err := gen.NewID()
		require.NoError(t, err)

		parsed, err := uuid.Parse(id)
		require.NoError(t, err, "generated id must parse as UUID")
		assert.Equal(t, uuid.Version(4), parsed.Version())

		assert.False(t, seen[id], "id %s generated twice", id)
		seen[id] = true
	}
}

func TestFixed(t *testing.T) {
	id, err := identity.Fixed("content-id").NewID()
	require.NoError(t, err)
	assert.Equal(t, "content-id", id)
}

func TestSequence(t *testing.T) {
	seq := identity.NewSequence("a", "b")

	first, err := seq.NewID()
	require.NoError(t, err)
	second, err := seq.NewID()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, []string{first, second})

	_, err = seq.NewID()
	assert.Error(t, err)
}
