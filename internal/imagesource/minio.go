package imagesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrObjectStoreConfigInvalid = errors.New("invalid object store config")

type ObjectStoreConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"accessKey"`
	SecretKey string `mapstructure:"secretKey"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"useSSL"`
}

func (c ObjectStoreConfig) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

func (c ObjectStoreConfig) Validate() error {
	if strings.Contains(c.Endpoint, "://") {
		return errors.Join(ErrObjectStoreConfigInvalid, fmt.Errorf("endpoint must not include scheme: %q", c.Endpoint))
	}
	if strings.TrimSpace(c.AccessKey) == "" || strings.TrimSpace(c.SecretKey) == "" {
		return errors.Join(ErrObjectStoreConfigInvalid, errors.New("access key and secret key are required"))
	}

	return nil
}

// MinioStore reads objects from an S3 compatible store.
type MinioStore struct {
	client *minio.Client
}

func NewMinioStore(cfg ObjectStoreConfig) (*MinioStore, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: newTransport(),
	})
	if err != nil {
		return nil, errors.Join(ErrObjectStoreConfigInvalid, err)
	}

	return &MinioStore{client: client}, nil
}

func (s *MinioStore) GetObject(ctx context.Context, bucket string, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy, Stat surfaces a missing object before the upload starts
	_, err = obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, err
	}

	return obj, nil
}

func newTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
