package media

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config carries everything needed to talk to the host. It is passed at
// construction; nothing in this package reads ambient process state.
type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// BaseURL, when set, is the CDN origin public URLs are built on.
	BaseURL string
}

// Client implements Host against an S3-compatible object store.
type Client struct {
	s3      *s3.Client
	bucket  string
	region  string
	baseURL string
}

var _ Host = (*Client)(nil)

// NewClient constructs the host client with static credentials and an
// optional custom endpoint for S3-compatible providers.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load media host config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{s3: client, bucket: cfg.Bucket, region: cfg.Region, baseURL: cfg.BaseURL}, nil
}

// Upload classifies the asset by extension, stores it under a fresh public
// identifier, and returns its durable URL. Images are served through the
// CDN with transformation parameters; audio and video get the direct URL.
// One attempt, no integrity check beyond the host's own response.
func (c *Client) Upload(ctx context.Context, file File) (string, error) {
	kind := Classify(file.Name)
	publicID := uuid.NewString()
	key := string(kind) + "/" + publicID

	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        file.Reader,
		ContentType: aws.String(contentType(file.Name)),
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}
	if _, err := c.s3.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("upload %s: %w", kind, err)
	}

	if kind == KindImage && c.baseURL != "" {
		return fmt.Sprintf("%s/%s?fm=auto&q=auto", c.baseURL, key), nil
	}
	return c.directURL(key), nil
}

// Delete removes the asset stored under the public identifier. Callers
// treat failures as best-effort: the owning record is already gone.
func (c *Client) Delete(ctx context.Context, publicID string, kind Kind) error {
	key := string(kind) + "/" + publicID
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, publicID, err)
	}
	return nil
}

func (c *Client) directURL(key string) string {
	if c.baseURL != "" {
		return c.baseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
