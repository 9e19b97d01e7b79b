package repo

import (
	"context"
	"os"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// drivers for the supported bucket url schemes
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// ContentTypeJSON content type of every written document
const ContentTypeJSON = "application/json"

// BlobStorage implements Storage using gocloud.dev/blob.
// Collections are objects below an optional prefix, e.g. gs://site-data/data/events.json
type BlobStorage struct {
	bucket *blob.Bucket
	prefix string
}

// NewBlobStorage opens the bucket behind bucketURL ("gs://bucket", "s3://bucket", "azblob://container").
func NewBlobStorage(ctx context.Context, bucketURL, prefix string) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, err
	}
	return NewBlobStorageFromBucket(bucket, prefix), nil
}

// NewBlobStorageFromBucket wraps an already opened bucket, e.g. a memblob in tests.
func NewBlobStorageFromBucket(bucket *blob.Bucket, prefix string) *BlobStorage {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &BlobStorage{
		bucket: bucket,
		prefix: prefix,
	}
}

func (b *BlobStorage) Write(ctx context.Context, key string, data []byte) error {
	return b.bucket.WriteAll(ctx, b.prefix+key, data, &blob.WriterOptions{
		ContentType: ContentTypeJSON,
	})
}

func (b *BlobStorage) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := b.bucket.ReadAll(ctx, b.prefix+key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, os.ErrNotExist
	} else if err != nil {
		return nil, err
	}
	return data, nil
}

// Attributes returns the stored content type of a document
func (b *BlobStorage) Attributes(ctx context.Context, key string) (*blob.Attributes, error) {
	return b.bucket.Attributes(ctx, b.prefix+key)
}

func (b *BlobStorage) Close() error {
	return b.bucket.Close()
}
