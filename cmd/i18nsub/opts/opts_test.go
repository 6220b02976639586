package opts

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/i18nsub/pkg/rules"
)

func TestRootOpts_LoadConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults_without_config_file", func(t *testing.T) {
		cfg, err := (&RootOpts{}).LoadConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(rules.DefaultTarget), cfg.Target)
		assert.Equal(t, rules.Home(), cfg.EffectiveRules())
		assert.False(t, cfg.Backup)
	})

	t.Run("flags_override_config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "i18nsub.yaml")
		require.NoError(t, os.WriteFile(path, []byte("target: a/Home.tsx\natomic: true\n"), 0644))

		cfg, err := (&RootOpts{ConfigFile: path, Target: "b/Home.tsx", Strict: true}).LoadConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("b/Home.tsx"), cfg.Target, "flag target should win")
		assert.True(t, cfg.Atomic, "config value should survive")
		assert.True(t, cfg.Strict, "flag value should be applied")
	})

	t.Run("missing_config_file", func(t *testing.T) {
		_, err := (&RootOpts{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}).LoadConfig(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading config")
	})

	t.Run("logs_effective_config_at_debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ctx := zerolog.New(buf).Level(zerolog.DebugLevel).WithContext(context.Background())

		_, err := (&RootOpts{Target: "src/pages/Home.tsx"}).LoadConfig(ctx)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"message":"config loaded"`)
		assert.Contains(t, buf.String(), "(14 rules)")
	})
}
