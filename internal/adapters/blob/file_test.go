package blob

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conftrack/internal/domain"
)

func TestFileStore_ReadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data", "conferences.json"))
	_, err := s.Read(context.Background())
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}

func TestFileStore_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "conferences.json")
	s := NewFileStore(path)

	require.NoError(t, s.Write(ctx, []byte(`{"conferences":[]}`)))
	data, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"conferences":[]}`, string(data))

	// a write replaces the whole blob
	require.NoError(t, s.Write(ctx, []byte(`[]`)))
	data, err = s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}
