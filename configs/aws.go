package configs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	S3Client   *s3.Client
	S3Uploader *manager.Uploader
)

// ConnectAWS initializes the AWS S3 connection using SDK v2
func ConnectAWS() error {
	ctx := context.Background()

	accessKey := EnvAWSAccessKey()
	secretKey := EnvAWSSecretKey()
	region := EnvAWSRegion()

	if accessKey == "" || secretKey == "" {
		return fmt.Errorf("AWS credentials not found in environment variables")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"", // Token (empty for IAM user)
		)),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	S3Client = s3.NewFromConfig(cfg)
	S3Uploader = manager.NewUploader(S3Client)

	return nil
}

func GetS3Uploader() *manager.Uploader {
	return S3Uploader
}

func GetS3Client() *s3.Client {
	return S3Client
}
