package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key    string
		want   Kind
		wantOK bool
	}{
		{key: "banner", want: KindBanner, wantOK: true},
		{key: "Banner", want: KindBanner, wantOK: true},
		{key: "docker", want: KindDocker, wantOK: true},
		{key: "last_login", want: KindLastLogin, wantOK: true},
		{key: "LastLogin", want: KindLastLogin, wantOK: true},
		{key: "last-login", want: KindLastLogin, wantOK: true},
		{key: "LAST_LOGIN", want: KindLastLogin, wantOK: true},
		{key: " last_run ", want: KindLastRun, wantOK: true},
		{key: "filesystems", want: KindFilesystems, wantOK: true},
		{key: "foo", wantOK: false},
		{key: "", wantOK: false},
		{key: "lastlogin", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Lookup(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKinds_RegistryInLockStep(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, len(registry), "every registry entry needs a Kinds() entry")

	for _, k := range kinds {
		got, ok := Lookup(k.String())
		require.True(t, ok, "kind %d has no registry entry", int(k))
		assert.Equal(t, k, got)
		assert.NotEqual(t, "Invalid", k.Title())

		_, err := Decode(k, nil)
		var decErr *DecodeError
		if err != nil {
			// A missing schema surfaces as a plain error, not a DecodeError.
			require.ErrorAs(t, err, &decErr, "kind %s has no schema", k)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"LastLogin":   "last_login",
		"lightBlue":   "light_blue",
		"light-blue":  "light_blue",
		"light blue":  "light_blue",
		"LIGHT_BLUE":  "light_blue",
		"already_ok":  "already_ok",
		"  padded  ":  "padded",
		"ipv4Address": "ipv4_address",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}
