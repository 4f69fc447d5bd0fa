package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := &Config{
		NodeType:               Validator,
		DataDir:                dir,
		UDPGossipAddress:       "127.0.0.1:9000",
		BootstrapNodeAddresses: []string{"127.0.0.1:9001"},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Validator, loaded.NodeType)
	assert.Equal(t, dir, loaded.DataDir)
	assert.Equal(t, []string{"127.0.0.1:9001"}, loaded.BootstrapNodeAddresses)
}

func TestLoadDefaultsKeypairPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := &Config{NodeType: Full, DataDir: dir}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir+"/keypair.hex", loaded.KeypairPath)
}

func TestLoadOrCreateKeypairPersistsWithRestrictedMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keypair.hex")

	kp, err := LoadOrCreateKeypair(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	kp2, err := LoadOrCreateKeypair(path)
	require.NoError(t, err)
	assert.Equal(t, kp.SerializedPublic(), kp2.SerializedPublic())
}

func TestNodeTypeUnknownValueFailsToUnmarshal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("node_type: bogus\ndata_dir: "+dir+"\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
