// Package storage is the single point of contact with the object storage
// backend. Keys are caller-supplied; puts overwrite at the key level and
// deletes of missing keys do not fail.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Gateway uploads and removes media objects and constructs their public
// URLs deterministically.
type Gateway interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	ObjectURL(key string) string
}

// S3Gateway implements Gateway against an S3 content bucket.
type S3Gateway struct {
	uploader *manager.Uploader
	client   *s3.Client
	bucket   string
	region   string
}

func NewS3Gateway(client *s3.Client, uploader *manager.Uploader, bucket, region string) *S3Gateway {
	return &S3Gateway{
		uploader: uploader,
		client:   client,
		bucket:   bucket,
		region:   region,
	}
}

// Put streams the body to the bucket under key and returns the public URL.
// Re-uploading the same key overwrites the object.
func (g *S3Gateway) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := g.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return g.ObjectURL(key), nil
}

// Delete removes an object. S3 treats deletes of missing keys as success,
// so only real backend failures surface here.
func (g *S3Gateway) Delete(ctx context.Context, key string) error {
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

// ObjectURL builds the public URL for a key without any lookup.
func (g *S3Gateway) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", g.bucket, g.region, key)
}
