package results

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// BucketScheme prefixes data paths that name an object-store location.
const BucketScheme = "s3://"

// BucketConfig locates results documents in an S3-compatible object store.
type BucketConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// ParseBucketURL splits "s3://bucket/prefix" into bucket and prefix.
// ok is false when raw does not use the s3 scheme or names no bucket.
func ParseBucketURL(raw string) (bucket, prefix string, ok bool) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, BucketScheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(raw, BucketScheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", false
	}
	return bucket, prefix, true
}

// objectReader is the subset of object-store access the loader needs.
type objectReader interface {
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	Read(ctx context.Context, key string) ([]byte, error)
}

type minioReader struct {
	client *minio.Client
	bucket string
}

func newMinioReader(cfg BucketConfig) (*minioReader, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	opts := &minio.Options{Secure: cfg.UseSSL, Region: region}
	access, secret := strings.TrimSpace(cfg.AccessKey), strings.TrimSpace(cfg.SecretKey)
	if access != "" || secret != "" {
		if access == "" || secret == "" {
			return nil, fmt.Errorf("s3 access key and secret key must be set together")
		}
		opts.Creds = credentials.NewStaticV4(access, secret, "")
	} else {
		opts.Creds = credentials.NewStaticV4("", "", "") // anonymous
	}

	client, err := minio.New(endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &minioReader{client: client, bucket: bucket}, nil
}

func (m *minioReader) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", m.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", m.bucket)
	}

	var keys []string
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if obj.Key != "" {
			keys = append(keys, obj.Key)
		}
	}
	return keys, nil
}

func (m *minioReader) Read(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// LoadDatasetFromBucket is the object-store counterpart of directory loading:
// every *.json object directly under cfg.Prefix is merged in key order.
// Client or listing failures are errors; an object that cannot be fetched or
// parsed is skipped with a warning.
func LoadDatasetFromBucket(ctx context.Context, cfg BucketConfig) (*Dataset, error) {
	reader, err := newMinioReader(cfg)
	if err != nil {
		return nil, err
	}
	return loadFromReader(ctx, reader, cfg.Bucket, cfg.Prefix)
}

func loadFromReader(ctx context.Context, reader objectReader, bucket, prefix string) (*Dataset, error) {
	prefix = normalizePrefix(prefix)
	keys, err := reader.ListKeys(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("listing %s%s/%s: %w", BucketScheme, bucket, prefix, err)
	}

	var selected []string
	for _, key := range keys {
		rel := strings.TrimPrefix(key, prefix)
		if !strings.HasSuffix(rel, ".json") || strings.Contains(rel, "/") {
			continue
		}
		selected = append(selected, key)
	}
	sort.Strings(selected)

	docs := make([]document, 0, len(selected))
	for _, key := range selected {
		data, err := reader.Read(ctx, key)
		if err != nil {
			logrus.Warnf("skipping results object %s: %v", key, err)
			continue
		}
		docs = append(docs, document{name: key, data: data})
	}

	ds := mergeDocuments(docs)
	logrus.Infof("Loaded %d traces from %d objects in %s%s/%s", ds.Len(), len(selected), BucketScheme, bucket, prefix)
	return ds, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimLeft(strings.TrimSpace(prefix), "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
