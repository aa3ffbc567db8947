package database

import (
	"context"
	"log"

	appconfig "eagles_transportes/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the AWS section of the app config.
// When Endpoint is set (e.g. http://dynamodb:8000) every DynamoDB call goes there.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.AWSConfig) *dynamodb.Client {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	log.Printf("[database] dynamodb client region=%s endpoint=%q", cfg.Region, cfg.Endpoint)
	return dynamodb.NewFromConfig(awsCfg)
}

func NewDynamoDBConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	}

	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
