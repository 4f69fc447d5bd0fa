package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLevelDBInMemoryPutGet(t *testing.T) {
	store, err := OpenLevelDB("")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put([]byte("k1"), []byte("v1")))

	val, err := store.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), val)

	has, err := store.Has([]byte("k1"))
	require.NoError(t, err)
	assert.True(t, has)
}

func TestDeleteRemovesKey(t *testing.T) {
	store, err := OpenLevelDB("")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put([]byte("k2"), []byte("v2")))
	require.NoError(t, store.Delete([]byte("k2")))

	has, err := store.Has([]byte("k2"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSnapshotIsolatesLaterWrites(t *testing.T) {
	store, err := OpenLevelDB("")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put([]byte("k3"), []byte("v3")))
	snap := store.Snapshot()
	defer snap.Release()

	require.NoError(t, store.Put([]byte("k3"), []byte("v3-updated")))

	val, err := snap.Get([]byte("k3"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v3"), val)
}

func TestIterateWalksKeyRange(t *testing.T) {
	store, err := OpenLevelDB("")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put([]byte("a"), []byte("1")))
	require.NoError(t, store.Put([]byte("b"), []byte("2")))
	require.NoError(t, store.Put([]byte("c"), []byte("3")))

	it := store.Iterate(nil, nil)
	defer it.Release()

	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	require.NoError(t, it.Error())
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
