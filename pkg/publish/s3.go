package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/joho/godotenv"

	"github.com/df07/go-nextweek-pathtracer/pkg/config"
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 60 * time.Second

// Environment variables holding static S3 credentials
const (
	EnvAccessKey = "S3_ACCESS_KEY"
	EnvSecretKey = "S3_SECRET_KEY"
)

// Publisher uploads rendered images to an S3-compatible bucket
type Publisher struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// New creates a publisher for the upload settings. Credentials come from
// S3_ACCESS_KEY and S3_SECRET_KEY, optionally read from the configured .env
// file, and fall back to the SDK's default chain when unset.
func New(settings config.Upload, logger core.Logger) (*Publisher, error) {
	if !settings.Enabled() {
		return nil, fmt.Errorf("publish: no bucket configured")
	}
	if settings.EnvFile != "" {
		if err := godotenv.Load(settings.EnvFile); err != nil {
			return nil, fmt.Errorf("publish: load env file %s: %w", settings.EnvFile, err)
		}
	}

	sess, err := session.NewSession(awsConfig(settings, os.Getenv(EnvAccessKey), os.Getenv(EnvSecretKey)))
	if err != nil {
		return nil, fmt.Errorf("publish: create S3 session: %w", err)
	}

	return NewWithClient(s3.New(sess), settings.Bucket, settings.Prefix, logger), nil
}

// NewWithClient creates a publisher around an existing S3 client
func NewWithClient(client s3iface.S3API, bucket, prefix string, logger core.Logger) *Publisher {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}
}

// awsConfig builds the session configuration. Custom endpoints use path-style
// addressing, which S3-compatible stores such as MinIO expect.
func awsConfig(settings config.Upload, accessKey, secretKey string) *aws.Config {
	cfg := &aws.Config{
		Region: aws.String(settings.Region),
	}
	if accessKey != "" && secretKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}
	if settings.Endpoint != "" {
		cfg.Endpoint = aws.String(settings.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	return cfg
}

// ObjectKey returns the bucket key for a rendered file: <prefix>/<scene>/<file name>
func (p *Publisher) ObjectKey(sceneName, filename string) string {
	return path.Join(p.prefix, sceneName, filepath.Base(filename))
}

// Upload stores data under key and returns the s3:// location
func (p *Publisher) Upload(ctx context.Context, data []byte, key, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("publish: upload %s: %w", key, err)
	}

	location := fmt.Sprintf("s3://%s/%s", p.bucket, key)
	p.logger.Printf("Uploaded %s (%d bytes)", location, size)
	return location, nil
}

// UploadFile reads a local file and uploads it under the scene's key
func (p *Publisher) UploadFile(ctx context.Context, localPath, sceneName, contentType string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("publish: read %s: %w", localPath, err)
	}
	return p.Upload(ctx, data, p.ObjectKey(sceneName, localPath), contentType)
}
