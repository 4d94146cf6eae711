package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"interview-backend/internal/transcripts"
)

// Store implements transcripts.Sink using Amazon S3.
type Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// New creates an S3-backed transcript store.
func New(ctx context.Context, region, bucket, prefix string) (*Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: normalizePrefix(prefix),
	}, nil
}

// Save uploads the transcript as JSON and returns the object key as reference.
func (s *Store) Save(ctx context.Context, sessionID string, transcript transcripts.Transcript) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := json.Marshal(transcript)
	if err != nil {
		return "", fmt.Errorf("marshal transcript: %w", err)
	}

	key := path.Join(s.prefix, fmt.Sprintf("%s_%s.json", sessionID, time.Now().UTC().Format("20060102_150405")))

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3 put object bucket=%s key=%s: %w", s.bucket, key, err)
	}

	return key, nil
}

func normalizePrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

var _ transcripts.Sink = (*Store)(nil)
