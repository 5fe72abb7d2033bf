package builder

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewAWSConfig loads the default AWS config chain. region may be empty to use the chain's.
func NewAWSConfig(ctx context.Context, region string, loaders ...func(*config.LoadOptions) error) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	opts = append(opts, loaders...)
	return config.LoadDefaultConfig(ctx, opts...)
}

// AWSWithStaticCredentials uses fixed keys instead of the default credential chain.
func AWSWithStaticCredentials(accessKey, secretKey, sessionToken string) func(*config.LoadOptions) error {
	return config.WithCredentialsProvider(
		aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(accessKey, secretKey, sessionToken)),
	)
}

// NewS3Client creates an S3 client. If endpoint != "", it's used (LocalStack/MinIO).
// forcePathStyle=true for emulators.
func NewS3Client(cfg aws.Config, endpoint string, forcePathStyle bool) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = forcePathStyle
	})
}

// NewPollyClient creates a Polly client. If endpoint != "", it's used instead of the AWS one.
func NewPollyClient(cfg aws.Config, endpoint string) *polly.Client {
	return polly.NewFromConfig(cfg, func(o *polly.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
