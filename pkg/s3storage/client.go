// "Тупой" клиент: только загрузка результата ресайза в бакет.

package s3storage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ilkoid/imgcli/pkg/config"
)

// Uploader определяет интерфейс для загрузки файла.
// Используется для мокания в тестах CLI.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (UploadedObject, error)
}

type Client struct {
	api    *minio.Client
	bucket string
	prefix string
}

// Проверка что Client реализует Uploader
var _ Uploader = (*Client)(nil)

// UploadedObject — результат загрузки.
type UploadedObject struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string
}

// URI возвращает адрес вида s3://bucket/key.
func (o UploadedObject) URI() string {
	return fmt.Sprintf("s3://%s/%s", o.Bucket, o.Key)
}

// New создает клиент, используя наш конфиг
func New(cfg config.S3Config) (*Client, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		api:    minioClient,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// ObjectKey строит ключ объекта: prefix + имя файла.
// Директория локального пути в ключ не попадает.
func ObjectKey(prefix, localPath string) string {
	name := filepath.Base(localPath)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Upload загружает локальный PNG в бакет под ключом ObjectKey(prefix, localPath).
//
// Контекст отменяется по SIGINT/SIGTERM.
func (c *Client) Upload(ctx context.Context, localPath string) (UploadedObject, error) {
	key := ObjectKey(c.prefix, localPath)

	info, err := c.api.FPutObject(ctx, c.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return UploadedObject{}, fmt.Errorf("failed to upload %s to %s/%s: %w", localPath, c.bucket, key, err)
	}

	return UploadedObject{
		Bucket: c.bucket,
		Key:    key,
		Size:   info.Size,
		ETag:   info.ETag,
	}, nil
}
