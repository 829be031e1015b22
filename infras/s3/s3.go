package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"mahalo/config"
	"mahalo/infras/otel"
	"mahalo/shared/constant"
)

const (
	otelAttrPrefix = "prefix"
	otelAttrBucket = "bucket"

	roomImagePrefix = "rooms/"
)

// S3 exposes the static-asset collaborator for room image sets. Assets are
// read-only from the service's point of view; uploads happen out of band.
type S3 interface {
	ListRoomImages(ctx context.Context, roomID string) ([]string, error)
}

type s3Impl struct {
	Client *awsS3.Client
	Config *config.Config
	otel   otel.Otel
}

// ListRoomImages returns the ordered public URLs of every image stored under
// the room's asset prefix.
func (svc *s3Impl) ListRoomImages(ctx context.Context, roomID string) (urls []string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".ListRoomImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.Config.External.S3.BucketName
	prefix := roomImagePrefix + roomID + "/"

	scope.SetAttributes(map[string]any{
		otelAttrPrefix: prefix,
		otelAttrBucket: bucketName,
	})

	paginator := awsS3.NewListObjectsV2Paginator(svc.Client, &awsS3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
		Prefix: aws.String(prefix),
	})

	keys := []string{}

	for paginator.HasMorePages() {
		page, pageErr := paginator.NextPage(ctx)
		if pageErr != nil {
			log.Error().Err(pageErr).Str("prefix", prefix).Msg("failed to list room images")

			return nil, fmt.Errorf("failed to list room images: %w", pageErr)
		}

		for _, object := range page.Contents {
			key := aws.ToString(object.Key)
			if strings.HasSuffix(key, "/") {
				continue
			}

			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	baseURL := strings.TrimSuffix(svc.Config.External.S3.PublicBaseURL, "/")

	urls = make([]string, len(keys))
	for i, key := range keys {
		urls[i] = baseURL + "/" + key
	}

	return urls, nil
}

func New(cfg *config.Config, ot otel.Otel) S3 {
	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(cfg.External.S3.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.External.S3.AccessKeyID,
			cfg.External.S3.SecretAccessKey,
			constant.Empty,
		)),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS configuration")
	}

	return &s3Impl{
		Client: awsS3.NewFromConfig(awsCfg),
		Config: cfg,
		otel:   ot,
	}
}
