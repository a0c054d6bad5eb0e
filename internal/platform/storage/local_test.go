package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fundacion-admin/backend/internal/platform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "receipts/r1.pdf", []byte("pdfdata"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/receipts/r1.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "receipts", "r1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pdfdata"), data)

	require.NoError(t, store.Delete(context.Background(), "receipts/r1.pdf"))
	_, err = os.Stat(filepath.Join(dir, "receipts", "r1.pdf"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(context.Background(), "receipts/r1.pdf"))
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "../outside.txt", []byte("x"), "text/plain")
	assert.Error(t, err)

	_, err = store.Save(context.Background(), "", []byte("x"), "text/plain")
	assert.Error(t, err)
}
