package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Minio stores objects on any S3-compatible endpoint.
type Minio struct {
	client *minio.Client
}

func NewMinio(opts Options) (*Minio, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("minio backend requires an endpoint")
	}

	endpoint, secure := splitEndpoint(opts.Endpoint)

	// The shared credentials file is read for the profile, the environment
	// is consulted if that yields nothing.
	creds := credentials.NewChainCredentials([]credentials.Provider{
		&credentials.FileAWSCredentials{Profile: opts.Profile},
		&credentials.EnvAWS{},
	})

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &Minio{client: client}, nil
}

// splitEndpoint strips the scheme from endpoint, plain http disables TLS.
func splitEndpoint(endpoint string) (string, bool) {
	switch {
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimPrefix(endpoint, "http://"), false
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimPrefix(endpoint, "https://"), true
	}

	return endpoint, true
}

func (m *Minio) PutObject(ctx context.Context, obj Object) (Ack, error) {
	info, err := m.client.PutObject(
		ctx,
		obj.Bucket,
		obj.Key,
		bytes.NewReader(obj.Body),
		int64(len(obj.Body)),
		minio.PutObjectOptions{
			ContentType:  obj.ContentType,
			UserMetadata: obj.Metadata,
		},
	)
	if err != nil {
		return Ack{}, err
	}

	return Ack{ETag: info.ETag, VersionID: info.VersionID}, nil
}
