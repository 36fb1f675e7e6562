package imagesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const objectScheme = "s3://"

var (
	ErrEmptyReference           = errors.New("image reference is empty")
	ErrInvalidObjectReference   = errors.New("invalid object reference, expected s3://bucket/key")
	ErrObjectStoreNotConfigured = errors.New("image refers to an object store, but none is configured")
	ErrFailedToOpenImage        = errors.New("failed to open image")
)

// ObjectGetter reads one object from a bucket.
type ObjectGetter interface {
	GetObject(ctx context.Context, bucket string, key string) (io.ReadCloser, error)
}

// Resolver opens image references. A reference is a local file path or s3://bucket/key.
type Resolver struct {
	store ObjectGetter
	root  string
}

func WithObjectStore(store ObjectGetter) func(*Resolver) {
	return func(r *Resolver) {
		r.store = store
	}
}

// WithRoot resolves relative file paths against dir instead of the working directory.
func WithRoot(dir string) func(*Resolver) {
	return func(r *Resolver) {
		r.root = dir
	}
}

func New(opts ...func(*Resolver)) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Open returns the image content and the file name to upload it under. The caller closes the reader.
func (r *Resolver) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, "", ErrEmptyReference
	}

	if strings.HasPrefix(ref, objectScheme) {
		return r.openObject(ctx, ref)
	}

	p := ref
	if r.root != "" && !filepath.IsAbs(p) {
		p = filepath.Join(r.root, p)
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, "", errors.Join(ErrFailedToOpenImage, err)
	}

	return f, filepath.Base(p), nil
}

func (r *Resolver) openObject(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	bucket, key, found := strings.Cut(strings.TrimPrefix(ref, objectScheme), "/")
	if !found || bucket == "" || key == "" {
		return nil, "", errors.Join(ErrInvalidObjectReference, fmt.Errorf("reference: %s", ref))
	}

	if r.store == nil {
		return nil, "", ErrObjectStoreNotConfigured
	}

	obj, err := r.store.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, "", errors.Join(ErrFailedToOpenImage, fmt.Errorf("reference: %s", ref), err)
	}

	return obj, path.Base(key), nil
}
