package filestorage

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"

	"talento-backend/config"
)

type Provider interface {
	// Archive guarda una copia del archivo exportado; el guardado es
	// opcional y su fallo no afecta la descarga.
	Archive(ctx context.Context, objectName string, content []byte, contentType string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) Archive(ctx context.Context, objectName string, content []byte, contentType string) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if !exists {
		err = i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
		if err != nil {
			return err
		}
	}
	_, err = i.s3client.PutObject(ctx, bucketName, objectName,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}
