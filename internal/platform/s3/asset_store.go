// Package s3 stores generated image assets in an S3-compatible bucket and
// exposes their public URLs for item specs.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/gameforge/gameforge-api/internal/config"
)

// AssetStore uploads image bytes to a bucket served through a public base
// URL (typically a CDN in front of the bucket).
type AssetStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// NewAssetStore creates an asset store from the assets configuration.
// If cfg.Endpoint is non-empty, path-style addressing is enabled
// (for MinIO and similar).
func NewAssetStore(ctx context.Context, cfg config.AssetsConfig, logger *slog.Logger) (*AssetStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &AssetStore{
		client:        s3.NewFromConfig(awsCfg, s3opts...),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        logger.With(slog.String("component", "asset_store")),
	}, nil
}

// Upload writes the image bytes under the given object key and returns the
// public URL the object is reachable at.
func (s *AssetStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}

	url := s.publicBaseURL + "/" + key
	s.logger.DebugContext(ctx, "asset uploaded",
		slog.String("key", key),
		slog.Int("bytes", len(data)))
	return url, nil
}
