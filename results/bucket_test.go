package results

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBucket struct {
	objects map[string]string
	listErr error
	listed  string
}

func (f *fakeBucket) ListKeys(_ context.Context, prefix string) ([]string, error) {
	f.listed = prefix
	if f.listErr != nil {
		return nil, f.listErr
	}
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	return keys, nil
}

func (f *fakeBucket) Read(_ context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return []byte(data), nil
}

func TestParseBucketURL(t *testing.T) {
	tests := []struct {
		raw            string
		bucket, prefix string
		ok             bool
	}{
		{"s3://results/cbp2025/run1", "results", "cbp2025/run1", true},
		{"s3://results", "results", "", true},
		{"s3:///prefix", "", "", false},
		{"sample_data/results.json", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			bucket, prefix, ok := ParseBucketURL(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.prefix, prefix)
		})
	}
}

func TestLoadFromReader_MergesJSONObjectsInKeyOrder(t *testing.T) {
	// GIVEN a bucket with two documents, one malformed document, a nested object and a non-JSON object
	bucket := &fakeBucket{objects: map[string]string{
		"runs/b.json":      `{"shared": {"NUM_BR": 2}}`,
		"runs/a.json":      `{"shared": {"NUM_BR": 1}, "first": {}}`,
		"runs/c.json":      `not json`,
		"runs/deep/d.json": `{"nested": {}}`,
		"runs/README.md":   `{"readme": {}}`,
		"runs/archive/":    ``,
	}}

	// WHEN loaded under the "runs" prefix
	ds, err := loadFromReader(context.Background(), bucket, "results", "runs")

	// THEN only direct *.json objects are merged, in key order, skipping the malformed one
	require.NoError(t, err)
	assert.Equal(t, "runs/", bucket.listed)
	assert.Equal(t, []string{"shared", "first"}, ds.Names())
	assert.Equal(t, int64(2), ds.Lookup("shared").Int(FieldBranches))
}

func TestLoadFromReader_ListFailureIsFatal(t *testing.T) {
	bucket := &fakeBucket{listErr: errors.New("access denied")}

	_, err := loadFromReader(context.Background(), bucket, "results", "")

	assert.ErrorContains(t, err, "access denied")
}

func TestNewMinioReader_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  BucketConfig
	}{
		{"no endpoint", BucketConfig{Bucket: "b"}},
		{"no bucket", BucketConfig{Endpoint: "localhost:9000"}},
		{"half credentials", BucketConfig{Endpoint: "localhost:9000", Bucket: "b", AccessKey: "k"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newMinioReader(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewMinioReader_ValidConfig(t *testing.T) {
	r, err := newMinioReader(BucketConfig{Endpoint: "localhost:9000", Bucket: "results", AccessKey: "k", SecretKey: "s"})

	require.NoError(t, err)
	assert.Equal(t, "results", r.bucket)
}
