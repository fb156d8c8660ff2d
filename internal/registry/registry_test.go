package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shapemotion/internal/config"
)

func TestBuiltinPresetsRegistered(t *testing.T) {
	list := List()
	require.GreaterOrEqual(t, len(list), 2)
	assert.Equal(t, PresetInfo{ID: "asteroids", Title: "Asteroids"}, list[0])
	assert.Equal(t, PresetInfo{ID: "bounce", Title: "Bounce"}, list[1])

	assert.True(t, Exists("asteroids"))
	assert.False(t, Exists("tetris"))
}

func TestLoadPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("bounce", "")
	require.NoError(t, err)
	assert.Equal(t, "Bounce", cfg.Title)

	_, err = config.Build(cfg)
	assert.NoError(t, err)

	_, err = Load("tetris", "")
	assert.ErrorContains(t, err, "unknown preset")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("bounce", "Again", config.LoadBounce)
	})
}

func TestListSorted(t *testing.T) {
	Register("zz-test", "Last", config.LoadBounce)
	t.Cleanup(func() {
		mu.Lock()
		delete(factories, "zz-test")
		delete(titles, "zz-test")
		mu.Unlock()
	})

	list := List()
	assert.Equal(t, "zz-test", list[len(list)-1].ID)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
