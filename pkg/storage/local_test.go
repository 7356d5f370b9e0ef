package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	key := NewKey(PrefixResumes, ".pdf")
	data := []byte("%PDF-1.4 body")
	handle, err := store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, key, handle)

	rc, err := store.Open(ctx, handle)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.Delete(ctx, handle))
	_, err = store.Open(ctx, handle)
	assert.ErrorIs(t, err, ErrBlobNotFound)
	assert.NoError(t, store.Delete(ctx, handle))
}

func TestLocalStoreRejectsSizeMismatch(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	key := NewKey(PrefixApplications, ".pdf")
	_, err = store.Put(ctx, key, strings.NewReader("longer than declared"), 4, "application/pdf")
	assert.Error(t, err)
	_, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestLocalStoreRefusesEscapes(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, handle := range []string{"../secret", "/etc/passwd", "", ".", "resumes/../../x"} {
		_, err := store.Open(ctx, handle)
		assert.ErrorIs(t, err, ErrInvalidHandle, handle)
	}
}

func TestNewKey(t *testing.T) {
	a := NewKey(PrefixResumes, "PDF")
	b := NewKey(PrefixResumes, ".pdf")
	assert.True(t, strings.HasPrefix(a, "resumes/"))
	assert.True(t, strings.HasSuffix(a, ".pdf"))
	assert.NotEqual(t, a, b)
	assert.NotContains(t, NewKey(PrefixApplications, ""), ".")
}
