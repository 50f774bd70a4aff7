package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[last_run]

[last_login]
user = 1
user2 = 2

[banner]
color = "white"
command = "date"

[docker]
"/blah" = "blah"
`

func TestNewTOMLCursor_TableOrder(t *testing.T) {
	c, err := NewTOMLCursor([]byte(sampleTOML))
	require.NoError(t, err)

	var entries []Entry
	for c.Next() {
		entries = append(entries, Entry{Key: c.Key(), Value: c.Value()})
	}
	require.NoError(t, c.Err())

	require.Len(t, entries, 4)
	assert.Equal(t, "last_run", entries[0].Key)
	assert.Equal(t, map[string]any{}, entries[0].Value)
	assert.Equal(t, "last_login", entries[1].Key)
	assert.Equal(t, map[string]any{"user": int64(1), "user2": int64(2)}, entries[1].Value)
	assert.Equal(t, "banner", entries[2].Key)
	assert.Equal(t, map[string]any{"color": "white", "command": "date"}, entries[2].Value)
	assert.Equal(t, "docker", entries[3].Key)
	assert.Equal(t, map[string]any{"/blah": "blah"}, entries[3].Value)
}

func TestNewTOMLCursor_MixedKeyStyles(t *testing.T) {
	doc := `
# root pairs come before any table header
docker = { "/data" = "label" }
banner.color = "red"
banner.command = "hostname"

[last_run]

[filesystems]
root = "/"

[last_login.alice]
# a sub-table still counts as the root key it hangs from
`
	c, err := NewTOMLCursor([]byte(doc))
	require.NoError(t, err)

	keys, err := Keys(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"docker", "banner", "last_run", "filesystems", "last_login"}, keys)
}

func TestNewTOMLCursor_TableKeysDoNotLeakToRoot(t *testing.T) {
	doc := `
[banner]
color = "red"
command = "date"
docker = "not a root key"
`
	c, err := NewTOMLCursor([]byte(doc))
	require.NoError(t, err)

	keys, err := Keys(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"banner"}, keys)
}

func TestNewTOMLCursor_Empty(t *testing.T) {
	for _, doc := range []string{"", "   \n\t\n", "# only a comment\n\n# and another\n"} {
		c, err := NewTOMLCursor([]byte(doc))
		require.NoError(t, err, "doc %q", doc)
		assert.False(t, c.Next(), "doc %q should have no keys", doc)
	}
}

func TestNewTOMLCursor_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":        "[banner\ncolor = ",
		"redefinition":  "[banner]\ncolor = \"red\"\n[banner]\ncolor = \"blue\"\n",
		"duplicate key": "docker = {}\ndocker = {}\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewTOMLCursor([]byte(doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parsing TOML document")
		})
	}
}
