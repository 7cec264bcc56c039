package textract

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/aws/smithy-go"

	"docbrief/internal/config"
	"docbrief/internal/domain"
	"docbrief/internal/port"
)

type textractClient struct {
	client *textract.Client
}

// NewTextractClient creates a Textract-backed TextDetector implementation.
func NewTextractClient(cfg *config.TextractConfig) (port.TextDetector, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var txOpts []func(*textract.Options)
	if cfg.Endpoint != "" {
		txOpts = append(txOpts, func(o *textract.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return &textractClient{client: textract.NewFromConfig(awsCfg, txOpts...)}, nil
}

func (c *textractClient) DetectInline(ctx context.Context, data []byte) ([]domain.Block, error) {
	out, err := c.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: data},
	})
	if err != nil {
		return nil, wrapDetectError(err)
	}
	return toBlocks(out.Blocks), nil
}

func (c *textractClient) DetectStored(ctx context.Context, bucket, key string) ([]domain.Block, error) {
	out, err := c.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},
	})
	if err != nil {
		return nil, wrapDetectError(err)
	}
	return toBlocks(out.Blocks), nil
}

func toBlocks(blocks []types.Block) []domain.Block {
	result := make([]domain.Block, 0, len(blocks))
	for _, b := range blocks {
		text := ""
		if b.Text != nil {
			text = *b.Text
		}
		result = append(result, domain.Block{
			Type: domain.BlockType(b.BlockType),
			Text: text,
		})
	}
	return result
}

// wrapDetectError preserves the service's error code so the extraction
// pipeline can classify it; non-API errors pass through unwrapped.
func wrapDetectError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &port.DetectError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Err:     err,
		}
	}
	return err
}
