// Package storage uploads user-provided assets (avatar images) to S3 and
// returns the public URLs the renderers embed.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// allowed avatar content types mapped to their canonical extensions
var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Uploader stores avatar images in an S3 bucket.
type Uploader struct {
	client *s3.Client
	bucket string
	region string
}

// NewUploader creates an S3-backed uploader using the default AWS credential
// chain.
func NewUploader(ctx context.Context, region, bucket string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Uploader{client: s3.NewFromConfig(cfg), bucket: bucket, region: region}, nil
}

// UploadAvatar stores an avatar image under the owner's prefix and returns
// its public URL. Content types outside the allowed image set are rejected.
func (u *Uploader) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error) {
	ext, ok := avatarExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported avatar content type %q", contentType)
	}

	key := AvatarKey(userID, ext, time.Now())
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return u.PublicURL(key), nil
}

// AvatarKey builds the object key for an avatar upload. Keys are unique per
// upload so a new avatar never overwrites a URL already embedded in a stored
// resume.
func AvatarKey(userID uuid.UUID, ext string, now time.Time) string {
	return path.Join("avatars", userID.String(), fmt.Sprintf("%d%s", now.Unix(), ext))
}

// PublicURL returns the virtual-hosted URL for an object key.
func (u *Uploader) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
