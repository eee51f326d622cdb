package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options configures a MinioStorage.
type Options struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Region     string
	Bucket     string
	UseSSL     bool
	PublicBase string // optional; defaults to the virtual-hosted S3 URL of the bucket
}

var _ Storage = (*MinioStorage)(nil)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	region     string
	publicBase string
}

// NewMinioStorage creates a MinIO client. No network round-trip happens here;
// call EnsureBucket once at startup to verify the bucket.
func NewMinioStorage(opts Options) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinioStorage{
		client:     client,
		bucket:     opts.Bucket,
		region:     opts.Region,
		publicBase: strings.TrimRight(opts.PublicBase, "/"),
	}, nil
}

// EnsureBucket creates the bucket when missing and applies a public-read policy to it.
// A rejected policy is logged, not fatal: AWS accounts commonly block public policies
// and serve objects through a CDN configured as the public base instead.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("create bucket %q: %w", s.bucket, err)
	}
	slog.Info("storage: created bucket", "bucket", s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, publicReadPolicy(s.bucket)); err != nil {
		slog.Warn("storage: set bucket policy", "bucket", s.bucket, "err", err)
	}
	return nil
}

// Upload streams reader to the bucket under key. size must be the exact byte count
// (pass -1 only if the size is genuinely unknown; MinIO will buffer it).
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Get downloads the object at key into memory.
func (s *MinioStorage) Get(ctx context.Context, key string) (*Object, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, translate(err))
	}
	defer obj.Close()

	// GetObject is lazy; Stat performs the request and surfaces NoSuchKey.
	info, err := obj.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat object %q: %w", key, translate(err))
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object %q: %w", key, translate(err))
	}
	return &Object{Data: data, ETag: info.ETag}, nil
}

// Put writes data under key, honoring opts.IfMatch as an S3 If-Match precondition.
func (s *MinioStorage) Put(ctx context.Context, key string, data []byte, opts PutOptions) (string, error) {
	putOpts := minio.PutObjectOptions{ContentType: opts.ContentType}
	if opts.IfMatch != "" {
		putOpts.SetMatchETag(opts.IfMatch)
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), putOpts)
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, translate(err))
	}
	return info.ETag, nil
}

// Delete removes the object at key from the bucket.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// PublicURL returns the browser-accessible URL for the given key.
// With a public base: "https://cdn.example.com/floors/1700000000000-ab12cd34-l1.png".
// Without one: "https://<bucket>.s3.<region>.amazonaws.com/floors/...".
func (s *MinioStorage) PublicURL(key string) string {
	return PublicURL(s.publicBase, s.bucket, s.region, key)
}

// PublicURL builds an object URL from a configured base, falling back to the
// AWS virtual-hosted style address of the bucket.
func PublicURL(publicBase, bucket, region, key string) string {
	key = strings.TrimLeft(key, "/")
	if base := strings.TrimRight(publicBase, "/"); base != "" {
		return base + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// translate maps S3 error responses onto the package sentinels.
func translate(err error) error {
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.Code == "NoSuchKey" || resp.Code == "NoSuchObject":
		return fmt.Errorf("%w: %v", ErrObjectNotFound, err)
	case resp.Code == "PreconditionFailed" || resp.StatusCode == http.StatusPreconditionFailed:
		return fmt.Errorf("%w: %v", ErrPreconditionFailed, err)
	default:
		return err
	}
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
