package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResourcesUnified(t *testing.T) {
	root, format, err := DecodeResources([]byte(`{"type":"folder","children":[{"type":"file","name":"X","url":"u"}]}`), NewID)
	require.NoError(t, err)
	assert.Equal(t, ResourcesFormatUnified, format)
	assert.Equal(t, 1, Count(root))
	assert.NotEmpty(t, root.ID)
	assert.NotEmpty(t, root.Children[0].ID)
}

func TestDecodeResourcesLegacy(t *testing.T) {
	root, format, err := DecodeResources([]byte(`{"notes":[{"title":"A","url":"u"}]}`), NewID)
	require.NoError(t, err)
	assert.Equal(t, ResourcesFormatLegacy, format)
	assert.Equal(t, RootName, root.Name)
	assert.Equal(t, 1, Count(root))
}

func TestDecodeResourcesLegacyNullList(t *testing.T) {
	tests := map[string]string{
		"null list":    `{"notes": null}`,
		"empty list":   `{"notes": []}`,
		"null and key": `{"notes": null, "other": 1}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			root, format, err := DecodeResources([]byte(doc), NewID)
			require.NoError(t, err)
			assert.Equal(t, ResourcesFormatLegacy, format)
			require.Len(t, root.Children, 1)
			assert.Equal(t, "Notes", root.Children[0].Name)
			assert.True(t, root.Children[0].HasChildren())
			assert.Equal(t, 0, Count(root))
		})
	}
}

func TestDecodeResourcesFallsBackToLegacy(t *testing.T) {
	tests := map[string]string{
		"null":             `null`,
		"empty object":     `{}`,
		"folder no array":  `{"type":"folder","children":"x"}`,
		"file root":        `{"type":"file","name":"x","url":"u"}`,
		"missing children": `{"type":"folder","name":"x"}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			root, format, err := DecodeResources([]byte(doc), NewID)
			require.NoError(t, err)
			assert.Equal(t, ResourcesFormatLegacy, format)
			assert.Equal(t, RootName, root.Name)
			assert.Empty(t, root.Children)
		})
	}
}

func TestDecodeResourcesMalformed(t *testing.T) {
	tests := map[string]string{
		"array":         `[1,2]`,
		"string":        `"resources"`,
		"broken json":   `{"type":`,
		"null child":    `{"type":"folder","children":[null]}`,
		"bad legacy":    `{"notes":"abc"}`,
		"number child":  `{"type":"folder","children":[1]}`,
		"empty payload": ``,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeResources([]byte(doc), NewID)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedTree)
		})
	}
}
