package storage

import (
	"context"
	"fmt"
)

// Object is a blob to be stored under Key in Bucket.
type Object struct {
	Bucket      string
	Key         string
	Body        []byte
	ContentType string
	Metadata    map[string]string
}

// Ack is the store's acknowledgement of a successful put.
type Ack struct {
	ETag      string
	VersionID string
}

// Storage stores objects in a remote bucket. A successful PutObject makes the
// body retrievable under <public-base>/<key>.
type Storage interface {
	PutObject(ctx context.Context, obj Object) (Ack, error)
}

const (
	BackendS3    = "s3"
	BackendMinio = "minio"
)

// Options configure the construction of a remote backend.
type Options struct {
	Backend  string
	Region   string
	Profile  string
	Endpoint string
}

// New creates the backend selected by opts.Backend.
func New(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Backend {
	case "", BackendS3:
		return NewS3(ctx, opts)
	case BackendMinio:
		return NewMinio(opts)
	}

	return nil, fmt.Errorf("unknown storage backend '%s'", opts.Backend)
}
