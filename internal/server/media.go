package server

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// mediaFolder is the fixed prefix under which raster uploads land.
const mediaFolder = "raster_files"

// MediaStore uploads files to the external S3-compatible media host and
// hands back publicly addressable URLs.
type MediaStore struct {
	client *minio.Client
	bucket string
}

func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	// Accept either "media:9000" or "http://media:9000" / "https://media:9000".
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		secure = (u.Scheme == "https")
		return u.Host, secure, nil
	}

	// No scheme provided, treat as host:port (insecure by default for local use).
	return raw, false, nil
}

// NewMediaStore builds the media client from environment configuration
// and verifies that the target bucket exists.
func NewMediaStore() (*MediaStore, error) {
	rawEndpoint := os.Getenv("ACD_S3_ENDPOINT")
	accessKey := os.Getenv("ACD_S3_ACCESS_KEY")
	secretKey := os.Getenv("ACD_S3_SECRET_KEY")
	bucket := os.Getenv("ACD_MEDIA_BUCKET")

	if rawEndpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, fmt.Errorf("media configuration incomplete")
	}

	endpoint, secure, err := normaliseEndpoint(rawEndpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	// Sanity check: bucket must exist.
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("media bucket does not exist: %s", bucket)
	}

	return &MediaStore{client: client, bucket: bucket}, nil
}

// Upload streams one file to the media host and returns its public URL.
func (m *MediaStore) Upload(ctx context.Context, objectKey string, r io.Reader, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectKey, r, -1,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return m.objectURL(objectKey), nil
}

// objectURL composes the public address of a stored object. Buckets used
// by the dashboard are read-public, so a plain path URL is enough.
func (m *MediaStore) objectURL(objectKey string) string {
	base := *m.client.EndpointURL()
	base.Path = "/" + m.bucket + "/" + objectKey
	return base.String()
}

// BucketCheck reports media-host reachability, used by health checks.
func (m *MediaStore) BucketCheck(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("media bucket does not exist: %s", m.bucket)
	}
	return nil
}
