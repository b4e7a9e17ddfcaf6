package recording

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run1")
	r, err := NewRecorder(path)
	require.NoError(t, err)

	entries := []AccessEntry{
		{Seq: 1, Kind: "R", Address: 0x00, Tag: 0, SetIndex: 0, ByteOffset: 0, Hit: false, MemRefs: 1},
		{Seq: 2, Kind: "W", Address: 0x04, Tag: 0, SetIndex: 0, ByteOffset: 4, Hit: true, MemRefs: 1},
	}
	for _, e := range entries {
		require.NoError(t, r.InsertAccess(e))
	}
	require.NoError(t, r.Close())

	db, err := sql.Open("sqlite3", r.Path())
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query("SELECT Seq, Kind, Hit, MemRefs FROM accesses ORDER BY Seq")
	require.NoError(t, err)
	defer rows.Close()

	var got []AccessEntry
	for rows.Next() {
		var e AccessEntry
		require.NoError(t, rows.Scan(&e.Seq, &e.Kind, &e.Hit, &e.MemRefs))
		got = append(got, e)
	}
	require.NoError(t, rows.Err())

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Seq)
	assert.Equal(t, "R", got[0].Kind)
	assert.False(t, got[0].Hit)
	assert.Equal(t, "W", got[1].Kind)
	assert.True(t, got[1].Hit)
	assert.Equal(t, 1, got[1].MemRefs)
}

func TestRecorder_RefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup")
	r, err := NewRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = NewRecorder(path)
	assert.Error(t, err)
}

func TestRecorder_GeneratedName(t *testing.T) {
	// t.Chdir requires Go 1.24+; emulate it for older toolchains.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	r, err := NewRecorder("")
	require.NoError(t, err)
	defer r.Close()

	assert.Contains(t, r.Path(), "cachesim_")
	assert.Contains(t, r.Path(), ".sqlite3")
}
