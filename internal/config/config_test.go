package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxpick/internal/domain"
	"boxpick/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Policy = domain.PolicyToggle
	cfg.UISettings.ShowFullHelp = true
	cfg.Log.Level = "debug"
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `policy = ['"]toggle['"]`, string(data))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("policy = \"toggle\"\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyToggle, cfg.Policy)
	assert.True(t, cfg.UISettings.AltScreen)
	assert.Equal(t, "boxpick.log", cfg.Log.File)
}

func TestInvalidPolicyIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("policy = \"flip\"\n"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPolicy)
}

func TestNewerVersionIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0644))

	_, err := NewConfigService(path).Load()
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestVersionBelowOneIsRejected(t *testing.T) {
	for _, v := range []int{0, -1} {
		cfg := DefaultConfig()
		cfg.Version = v
		assert.ErrorIs(t, cfg.Validate(), ErrUnsupportedVersion, "version %d", v)
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 0\n"), 0644))

	_, err := NewConfigService(path).Load()
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("policy = [\n"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestServicePublishesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	saved := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { saved <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceWithBus(path, bus)

	_, err := svc.Load()
	require.NoError(t, err)
	require.NoError(t, svc.Save(DefaultConfig()))

	select {
	case e := <-saved:
		assert.Equal(t, eventbus.ConfigSavedEvent{Path: path}, e)
	case <-time.After(time.Second):
		t.Fatal("no ConfigSaved event")
	}
}
