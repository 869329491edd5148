package allowlist

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goccy/go-json"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/Caiismith/videogame-api/internal/model"
	"github.com/Caiismith/videogame-api/pkg/config"
)

// developerList is the wire shape of the allow-list blob. Unknown fields are
// tolerated.
type developerList struct {
	Developers []model.Developer `json:"developers"`
}

// Fetcher retrieves the externally hosted list of approved developers.
type Fetcher interface {
	ApprovedDevelopers(ctx context.Context) ([]model.Developer, error)
}

// Downloader fetches the approved-developers blob from an object storage
// bucket and parses it.
type Downloader struct {
	bucket *blob.Bucket
	key    string
}

// NewDownloader creates a Downloader reading the given key from the bucket.
func NewDownloader(bucket *blob.Bucket, key string) *Downloader {
	return &Downloader{bucket: bucket, key: key}
}

// OpenBucket opens the configured S3 bucket. Credentials come from the AWS
// default chain; region and endpoint are passed as gocloud URL query params.
func OpenBucket(ctx context.Context, cfg config.AllowListConfig) (*blob.Bucket, error) {
	u := url.URL{Scheme: "s3", Host: cfg.Bucket}
	q := url.Values{}
	if cfg.Region != "" {
		q.Set("region", cfg.Region)
	}
	if cfg.Endpoint != "" {
		q.Set("endpoint", cfg.Endpoint)
	}
	u.RawQuery = q.Encode()

	bucket, err := blob.OpenBucket(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to open allow-list bucket: %w", err)
	}
	return bucket, nil
}

// ApprovedDevelopers downloads and parses the allow-list blob.
func (d *Downloader) ApprovedDevelopers(ctx context.Context) ([]model.Developer, error) {
	data, err := d.bucket.ReadAll(ctx, d.key)
	if err != nil {
		return nil, fmt.Errorf("failed to download approved developers file: %w", err)
	}

	var list developerList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse approved developers file: %w", err)
	}

	return list.Developers, nil
}
