// Package blob removes stored media objects when their owning record is
// deleted. Removal is best effort; records never fail to delete because a
// blob could not be cleaned up.
package blob

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options configures the S3-compatible object store holding uploaded media.
// An empty Bucket disables cleanup entirely.
type Options struct {
	Bucket    string
	Region    string
	Endpoint  string // optional; set for MinIO or another S3-compatible store
	AccessKey string
	SecretKey string
}

// Remover deletes one object identified by the public URL stored on a record.
type Remover struct {
	client *s3.Client
	bucket string
}

// NewRemover builds the S3 client, or returns (nil, nil) when no bucket is
// configured so callers can treat cleanup as disabled.
func NewRemover(ctx context.Context, opts Options) (*Remover, error) {
	if opts.Bucket == "" {
		return nil, nil
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load object store config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Remover{client: client, bucket: opts.Bucket}, nil
}

// Remove deletes the object a stored media URL points at. The object key is
// the URL's last path segment, matching how uploads name their objects.
func (r *Remover) Remove(ctx context.Context, fileURL string) error {
	key, err := ObjectKey(fileURL)
	if err != nil {
		return err
	}
	if _, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// ObjectKey extracts the object key from a stored media URL.
func ObjectKey(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("invalid media url %q: %w", fileURL, err)
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	key := segs[len(segs)-1]
	if key == "" {
		return "", fmt.Errorf("media url %q has no object key", fileURL)
	}
	return key, nil
}
