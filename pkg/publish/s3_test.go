package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-nextweek-pathtracer/pkg/config"
)

// fakeS3 records PutObject calls; other S3API methods are not used
type fakeS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func TestPublisher_ObjectKey(t *testing.T) {
	tests := []struct {
		prefix   string
		expected string
	}{
		{"", "final/render.png"},
		{"renders", "renders/final/render.png"},
		{"/renders/nightly/", "renders/nightly/final/render.png"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			p := NewWithClient(&fakeS3{}, "bucket", tt.prefix, nil)
			assert.Equal(t, tt.expected, p.ObjectKey("final", "output/final/render.png"))
		})
	}
}

func TestPublisher_UploadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.webp")
	require.NoError(t, os.WriteFile(path, []byte("pixels"), 0o644))

	client := &fakeS3{}
	p := NewWithClient(client, "bucket", "renders", nil)

	location, err := p.UploadFile(context.Background(), path, "earth", "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/renders/earth/render.webp", location)

	require.Len(t, client.inputs, 1)
	input := client.inputs[0]
	assert.Equal(t, "bucket", aws.StringValue(input.Bucket))
	assert.Equal(t, "renders/earth/render.webp", aws.StringValue(input.Key))
	assert.Equal(t, "image/webp", aws.StringValue(input.ContentType))
	assert.Equal(t, int64(6), aws.Int64Value(input.ContentLength))
	assert.Equal(t, []byte("pixels"), client.bodies[0])
}

func TestPublisher_UploadErrors(t *testing.T) {
	failure := errors.New("access denied")
	p := NewWithClient(&fakeS3{err: failure}, "bucket", "", nil)

	_, err := p.Upload(context.Background(), []byte("x"), "key", "image/png")
	assert.ErrorIs(t, err, failure)

	_, err = p.UploadFile(context.Background(), filepath.Join(t.TempDir(), "missing.png"), "final", "image/png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAWSConfig(t *testing.T) {
	t.Run("custom endpoint", func(t *testing.T) {
		cfg := awsConfig(config.Upload{Region: "eu-west-1", Endpoint: "http://localhost:9000"}, "key", "secret")
		assert.Equal(t, "eu-west-1", aws.StringValue(cfg.Region))
		assert.Equal(t, "http://localhost:9000", aws.StringValue(cfg.Endpoint))
		assert.True(t, aws.BoolValue(cfg.S3ForcePathStyle))

		value, err := cfg.Credentials.Get()
		require.NoError(t, err)
		assert.Equal(t, "key", value.AccessKeyID)
	})

	t.Run("default chain", func(t *testing.T) {
		cfg := awsConfig(config.Upload{Region: "us-east-1"}, "", "")
		assert.Nil(t, cfg.Credentials)
		assert.Nil(t, cfg.Endpoint)
		assert.False(t, aws.BoolValue(cfg.S3ForcePathStyle))
	})
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(config.Upload{}, nil)
	assert.Error(t, err)
}

func TestNew_LoadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("S3_ACCESS_KEY=from-file\nS3_SECRET_KEY=secret\n"), 0o600))
	t.Setenv(EnvAccessKey, "")
	t.Setenv(EnvSecretKey, "")
	require.NoError(t, os.Unsetenv(EnvAccessKey))
	require.NoError(t, os.Unsetenv(EnvSecretKey))

	p, err := New(config.Upload{Bucket: "bucket", Region: "us-east-1", EnvFile: envFile}, nil)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, "from-file", os.Getenv(EnvAccessKey))

	_, err = New(config.Upload{Bucket: "bucket", Region: "us-east-1", EnvFile: filepath.Join(t.TempDir(), "none.env")}, nil)
	assert.Error(t, err)
}
