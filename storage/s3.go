package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 stores objects with the AWS SDK. Credentials come from the shared
// configuration profile, which may be an SSO profile.
type S3 struct {
	client *s3.Client
}

func NewS3(ctx context.Context, opts Options) (*S3, error) {
	var loadOptions []func(*config.LoadOptions) error

	if opts.Region != "" {
		loadOptions = append(loadOptions, config.WithRegion(opts.Region))
	}

	if opts.Profile != "" {
		loadOptions = append(loadOptions, config.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3{client: client}, nil
}

func (s *S3) PutObject(ctx context.Context, obj Object) (Ack, error) {
	out, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(obj.Bucket),
		Key:         aws.String(obj.Key),
		Body:        bytes.NewReader(obj.Body),
		ContentType: aws.String(obj.ContentType),
		Metadata:    obj.Metadata,
	})
	if err != nil {
		return Ack{}, err
	}

	return Ack{
		ETag:      aws.ToString(out.ETag),
		VersionID: aws.ToString(out.VersionId),
	}, nil
}
