package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"libraryhub/config"
	"libraryhub/infras/otel"
	"libraryhub/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// region is what S3 compatible stores such as R2 and MinIO accept when the
// endpoint already pins the location.
const region = "auto"

type S3 interface {
	// UploadFileBytes stores fileData under directory/fileName and returns its public
	// URL. An empty bucketName means the configured bucket.
	UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error)
}

type objectStore struct {
	client        *s3.Client
	defaultBucket string
	publicDomain  string
	otel          otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) S3 {
	settings := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(region),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, ""),
		),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load AWS configuration, uploads will fail")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if settings.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(settings.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &objectStore{
		client:        client,
		defaultBucket: settings.BucketName,
		publicDomain:  settings.PublicDomain,
		otel:          ot,
	}
}

func (o *objectStore) UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFileBytes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := cmpBucket(bucketName, o.defaultBucket)
	key := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		"s3.bucket": bucket,
		"s3.key":    key,
		"s3.size":   len(fileData),
	})

	_, err = o.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileData),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileData))),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", bucket).Str("key", key).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return PublicURL(o.publicDomain, key), nil
}

func cmpBucket(requested, fallback string) string {
	if requested != "" {
		return requested
	}

	return fallback
}

// PublicURL joins the public domain and an object key without doubling slashes.
func PublicURL(publicDomain, objectKey string) string {
	return strings.TrimSuffix(publicDomain, "/") + "/" + strings.TrimPrefix(objectKey, "/")
}
