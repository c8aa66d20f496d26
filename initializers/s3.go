package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"talento-backend/config"
	"talento-backend/lib/filestorage"
)

// InitS3 es opcional: sin endpoint configurado las exportaciones no se
// archivan y el servicio arranca igual.
func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 no configurado, las exportaciones no se archivarán")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("error inicializando el cliente S3")
		return
	}

	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("la conexión a S3 falló, ListBuckets devolvió error")
	}

	filestorage.NewInstance(minioClient)
	log.Info("cliente S3 inicializado")
}
