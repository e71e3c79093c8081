// Package storage uploads avatar images to S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"organizer/config"
	"organizer/internal/domain/service"
)

// s3AvatarStorage implements service.AvatarStorage against any S3-compatible
// endpoint (AWS S3, Cloudflare R2, MinIO). Avatars are keyed by username so
// re-uploads overwrite the previous image.
type s3AvatarStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewAvatarStorage is the constructor for s3AvatarStorage. Static
// credentials and a custom endpoint come from configuration; path-style
// addressing is required by R2 and MinIO.
func NewAvatarStorage(cfg *config.Config) (service.AvatarStorage, error) {
	sc := cfg.AvatarStorage
	if sc == nil {
		return nil, errors.New("avatarStorage config section is required")
	}
	if sc.Bucket == "" || sc.AccessKey == "" || sc.SecretKey == "" {
		return nil, errors.New("avatarStorage bucket and credentials are required")
	}

	region := sc.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(sc.AccessKey, sc.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load S3 config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if sc.Endpoint != "" {
			o.BaseEndpoint = aws.String(sc.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3AvatarStorage{
		client:    client,
		bucket:    sc.Bucket,
		publicURL: strings.TrimSuffix(sc.PublicURL, "/"),
	}, nil
}

// Upload stores the avatar and returns its public URL.
func (s *s3AvatarStorage) Upload(ctx context.Context, username string, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("avatars/%s", username)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload avatar")
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}
