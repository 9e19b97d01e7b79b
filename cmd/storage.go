package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/foomo/contentadmin/pkg/repo"
	"github.com/foomo/contentadmin/pkg/utils"
	keelhttp "github.com/foomo/keel/net/http"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	sourceTypeHTTP       = "http"
	sourceTypeFilesystem = "filesystem"
	sourceTypeBlob       = "blob"
)

// supportedBlobSchemes lists the URL schemes supported by blob storage
var supportedBlobSchemes = []string{"gs://", "s3://", "azblob://"}

// createSource creates the collection source based on the configuration.
// The returned storage is nil for the http source.
func createSource(ctx context.Context, v *viper.Viper, l *zap.Logger) (repo.Source, repo.Storage, error) {
	sourceType := sourceTypeFlag(v)
	l.Info("creating source", zap.String("type", sourceType))

	switch sourceType {
	case sourceTypeHTTP, "":
		sourceURL := sourceURLFlag(v)
		if !utils.IsValidUrl(sourceURL) {
			return nil, nil, fmt.Errorf("invalid source url %q, an absolute http(s) url is required when source-type is 'http'", sourceURL)
		}
		l.Info("using http source", zap.String("url", sourceURL))
		return repo.NewHTTPSource(sourceURL,
			repo.HTTPSourceWithHTTPClient(
				keelhttp.NewHTTPClient(
					keelhttp.HTTPClientWithTimeout(repositoryTimeoutFlag(v)),
					keelhttp.HTTPClientWithTelemetry(),
				),
			),
		), nil, nil
	case sourceTypeFilesystem:
		dir := sourceDirFlag(v)
		l.Info("using filesystem source", zap.String("dir", dir))
		storage, err := repo.NewFilesystemStorage(dir)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewStorageSource(storage), storage, nil
	case sourceTypeBlob:
		storage, err := createBlobStorage(ctx, l, sourceBlobBucketFlag(v), sourceBlobPrefixFlag(v))
		if err != nil {
			return nil, nil, err
		}
		return repo.NewStorageSource(storage), storage, nil
	default:
		return nil, nil, fmt.Errorf("unknown source type: %s (supported: http, filesystem, blob)", sourceType)
	}
}

// createOutputStorage creates the storage exports are written to
func createOutputStorage(ctx context.Context, v *viper.Viper, l *zap.Logger) (repo.Storage, error) {
	if bucket := outputBlobBucketFlag(v); bucket != "" {
		return createBlobStorage(ctx, l, bucket, outputBlobPrefixFlag(v))
	}
	if prefix := outputBlobPrefixFlag(v); prefix != "" {
		l.Warn("output-blob-prefix is set but output-blob-bucket is not; the prefix will be ignored",
			zap.String("output-blob-prefix", prefix),
		)
	}
	dir := outputDirFlag(v)
	l.Info("using filesystem output", zap.String("dir", dir))
	return repo.NewFilesystemStorage(dir)
}

func createBlobStorage(ctx context.Context, l *zap.Logger, bucket, prefix string) (repo.Storage, error) {
	if bucket == "" {
		return nil, fmt.Errorf("blob bucket URL is required (supported schemes: gs://, s3://, azblob://)")
	}
	if !isValidBlobScheme(bucket) {
		return nil, fmt.Errorf("unsupported blob storage URL scheme in %q; supported schemes: gs://, s3://, azblob://", bucket)
	}
	l.Info("using blob storage",
		zap.String("bucket", bucket),
		zap.String("prefix", prefix),
		zap.String("provider", detectBlobProvider(bucket)),
	)
	return repo.NewBlobStorage(ctx, bucket, prefix)
}

// isValidBlobScheme checks if the bucket URL has a supported scheme
func isValidBlobScheme(bucketURL string) bool {
	for _, scheme := range supportedBlobSchemes {
		if strings.HasPrefix(bucketURL, scheme) {
			return true
		}
	}
	return false
}

// detectBlobProvider returns a human-readable provider name from the URL scheme
func detectBlobProvider(bucketURL string) string {
	switch {
	case strings.HasPrefix(bucketURL, "gs://"):
		return "Google Cloud Storage"
	case strings.HasPrefix(bucketURL, "s3://"):
		return "AWS S3"
	case strings.HasPrefix(bucketURL, "azblob://"):
		return "Azure Blob Storage"
	default:
		return "unknown"
	}
}
