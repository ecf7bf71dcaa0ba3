package s3

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutAPI struct {
	calls  int
	lastIn *awss3.PutObjectInput
	err    error
}

func (f *fakePutAPI) PutObject(_ context.Context, params *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	f.calls++
	f.lastIn = params
	if f.err != nil {
		return nil, f.err
	}
	return &awss3.PutObjectOutput{}, nil
}

func TestStore_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("writes under a generated key, never the caller filename", func(t *testing.T) {
		api := &fakePutAPI{}
		store := NewWithClient(api, "uploads", "us-east-1", "https://cdn.example.com")

		url, err := store.Store(ctx, []byte{0x89, 0x50}, "../../etc/passwd.png")
		require.NoError(t, err)
		require.Equal(t, 1, api.calls)

		key := *api.lastIn.Key
		assert.NotContains(t, key, "..")
		assert.NotContains(t, key, "passwd")
		assert.Regexp(t, regexp.MustCompile(`^uploads/\d{4}/\d{2}/\d{2}/[0-9a-f-]{36}\.png$`), key)
		assert.Equal(t, "https://cdn.example.com/uploads/"+key, url)
	})

	t.Run("keys are collision-safe across identical filenames", func(t *testing.T) {
		api := &fakePutAPI{}
		store := NewWithClient(api, "uploads", "us-east-1", "https://cdn.example.com")

		_, err := store.Store(ctx, []byte{1}, "photo.jpg")
		require.NoError(t, err)
		first := *api.lastIn.Key

		_, err = store.Store(ctx, []byte{1}, "photo.jpg")
		require.NoError(t, err)
		second := *api.lastIn.Key

		assert.NotEqual(t, first, second)
	})

	t.Run("uploads the exact bytes", func(t *testing.T) {
		api := &fakePutAPI{}
		store := NewWithClient(api, "uploads", "us-east-1", "")

		data := []byte{0xff, 0xd8, 0xff}
		_, err := store.Store(ctx, data, "photo.jpeg")
		require.NoError(t, err)

		uploaded, err := io.ReadAll(api.lastIn.Body)
		require.NoError(t, err)
		assert.Equal(t, data, uploaded)
		assert.Equal(t, "uploads", *api.lastIn.Bucket)
	})

	t.Run("rejects disallowed extensions without touching the bucket", func(t *testing.T) {
		api := &fakePutAPI{}
		store := NewWithClient(api, "uploads", "us-east-1", "")

		_, err := store.Store(ctx, []byte{1}, "malware.exe")
		require.Error(t, err)
		assert.Equal(t, 0, api.calls)
	})

	t.Run("returns no reference on a failed write", func(t *testing.T) {
		api := &fakePutAPI{err: errors.New("access denied")}
		store := NewWithClient(api, "uploads", "us-east-1", "")

		url, err := store.Store(ctx, []byte{1}, "a.png")
		require.Error(t, err)
		assert.Empty(t, url)
	})

	t.Run("falls back to the amazon url without a public base", func(t *testing.T) {
		api := &fakePutAPI{}
		store := NewWithClient(api, "uploads", "eu-west-1", "")

		url, err := store.Store(ctx, []byte{1}, "a.png")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "https://uploads.s3.eu-west-1.amazonaws.com/"))
	})
}
