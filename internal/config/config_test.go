package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todokit/internal/ui"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "todokit.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Config
		wantErr string
	}{
		{
			name: "partial override keeps defaults",
			body: "theme: neon\ntitle: Groceries\n",
			want: func() Config {
				c := Default()
				c.Theme = "neon"
				c.Title = "Groceries"
				return c
			}(),
		},
		{
			name: "colors",
			body: "color: never\nadd_color: \"#00ff00\"\ndelete_color: \"9\"\n",
			want: func() Config {
				c := Default()
				c.Color = ui.ColorNever
				c.AddColor = "#00ff00"
				c.DeleteColor = "9"
				return c
			}(),
		},
		{name: "bad color mode", body: "color: sometimes\n", wantErr: "invalid color mode"},
		{name: "bad theme", body: "theme: vapor\n", wantErr: "unknown theme"},
		{name: "bad yaml", body: "theme: [\n", wantErr: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tt.body), true)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	assert.ErrorContains(t, err, "read config")

	cfg, err = Load("", true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
