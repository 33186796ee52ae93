package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgraf/mdship/storage"
)

func TestMemoryStoresObjects(t *testing.T) {
	m := NewMemory()

	ack, err := m.PutObject(context.Background(), storage.Object{
		Bucket:      "b",
		Key:         "assets/1-x.png",
		Body:        []byte("png"),
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ack.ETag)

	obj, ok := m.Get("b", "assets/1-x.png")
	require.True(t, ok)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, []string{"assets/1-x.png"}, m.Calls())
}

func TestMemoryFailure(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")
	m.Fail = func(storage.Object) error { return boom }

	_, err := m.PutObject(context.Background(), storage.Object{Bucket: "b", Key: "k"})
	assert.ErrorIs(t, err, boom)

	_, ok := m.Get("b", "k")
	assert.False(t, ok)
	assert.Equal(t, []string{"k"}, m.Calls())
}
