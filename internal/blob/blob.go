// Package blob opens data files by location: a local path or an
// s3://bucket/key URL on AWS S3 or an S3-compatible store such as MinIO.
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNotFound is returned when a location does not exist.
var ErrNotFound = errors.New("blob not found")

const s3Scheme = "s3://"

// Location is a parsed data file location.
type Location struct {
	// Bucket is empty for local files.
	Bucket string
	// Key is the object key, or the file path for local files.
	Key string
}

// IsS3 reports whether the location names an S3 object.
func (l Location) IsS3() bool {
	return l.Bucket != ""
}

func (l Location) String() string {
	if l.IsS3() {
		return s3Scheme + l.Bucket + "/" + l.Key
	}
	return l.Key
}

// Name is the base name of the file, used in positions and messages.
func (l Location) Name() string {
	return filepath.Base(l.Key)
}

// ParseLocation parses a local path or an s3://bucket/key URL.
func ParseLocation(s string) (Location, error) {
	rest, ok := strings.CutPrefix(s, s3Scheme)
	if !ok {
		if s == "" {
			return Location{}, errors.New("empty location")
		}
		return Location{Key: s}, nil
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return Location{}, fmt.Errorf("invalid S3 location %q: expected s3://bucket/key", s)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// S3Config configures access to S3. Credentials fall back to the default
// AWS chain when AccessKeyID is empty.
type S3Config struct {
	Region          string `koanf:"region"`
	Endpoint        string `koanf:"endpoint"`
	PathStyle       bool   `koanf:"path_style"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
}

// Option configures an Opener.
type Option func(*Opener)

// WithHTTPClient sets the HTTP client used for S3 requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Opener) { o.httpClient = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Opener) { o.logger = l }
}

// Opener reads and writes data files. The S3 client is created on first use.
type Opener struct {
	cfg        S3Config
	httpClient *http.Client
	logger     *slog.Logger

	once      sync.Once
	client    *s3.Client
	clientErr error
}

// NewOpener creates an Opener.
func NewOpener(cfg S3Config, opts ...Option) *Opener {
	o := &Opener{cfg: cfg, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open returns the content at location. The caller closes the reader.
func (o *Opener) Open(ctx context.Context, loc Location) (io.ReadCloser, error) {
	if !loc.IsS3() {
		f, err := os.Open(loc.Key)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", loc, ErrNotFound)
		}
		return f, err
	}

	client, err := o.s3Client(ctx)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("fetching object", "bucket", loc.Bucket, "key", loc.Key)
	out, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(loc.Bucket), Key: aws.String(loc.Key)})
	if err != nil {
		return nil, wrapS3Error(loc, err)
	}
	return out.Body, nil
}

// Write stores data at location, replacing any previous content.
func (o *Opener) Write(ctx context.Context, loc Location, data []byte) error {
	if !loc.IsS3() {
		if dir := filepath.Dir(loc.Key); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return err
			}
		}
		return os.WriteFile(loc.Key, data, 0o600)
	}

	client, err := o.s3Client(ctx)
	if err != nil {
		return err
	}
	o.logger.Debug("storing object", "bucket", loc.Bucket, "key", loc.Key, "bytes", len(data))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return wrapS3Error(loc, err)
	}
	return nil
}

func (o *Opener) s3Client(ctx context.Context) (*s3.Client, error) {
	o.once.Do(func() {
		region := o.cfg.Region
		if region == "" {
			region = "us-east-1"
		}
		loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
		if o.cfg.AccessKeyID != "" {
			loadOpts = append(loadOpts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(o.cfg.AccessKeyID, o.cfg.SecretAccessKey, "")))
		}
		awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			o.clientErr = fmt.Errorf("loading AWS configuration: %w", err)
			return
		}
		o.client = s3.NewFromConfig(awsCfg, func(opts *s3.Options) {
			opts.UsePathStyle = o.cfg.PathStyle
			if o.cfg.Endpoint != "" {
				opts.BaseEndpoint = aws.String(o.cfg.Endpoint)
			}
			if o.httpClient != nil {
				opts.HTTPClient = o.httpClient
			}
		})
	})
	return o.client, o.clientErr
}

func wrapS3Error(loc Location, err error) error {
	var re *awshttp.ResponseError
	if errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound {
		return fmt.Errorf("%s: %w", loc, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", loc, err)
}
