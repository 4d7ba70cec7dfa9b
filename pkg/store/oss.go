package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"ttsserver/config"
	"ttsserver/domain"
	"ttsserver/pkg/log"
)

// Minio keeps scratch files in an S3 compatible bucket.
type Minio struct {
	Client *minio.Client
	bucket string
	l      *log.Logger
}

func NewMinioStore(c *config.Config, l *log.Logger) (*Minio, error) {
	client, err := minio.New(c.Oss.EndPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.Oss.AccessKey, c.Oss.SecretKey, ""),
		Secure: c.Oss.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new client: %w", err)
	}

	// 确保 bucket 存在（不存在就创建）
	ctx := context.Background()
	bucketName := c.Oss.BucketName
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("bucket check: %w", err)
	}
	ml := l.WithModule("MinioStore")
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket: %w", err)
		}
		ml.Info("bucket created", log.String("bucket", bucketName))
	}
	return &Minio{Client: client, bucket: bucketName, l: ml}, nil
}

func (m *Minio) Save(ctx context.Context, name string, data []byte) error {
	if err := CheckName(name); err != nil {
		return err
	}
	_, err := m.Client.PutObject(ctx, m.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: domain.ContentTypeForFile(name),
	})
	if err != nil {
		m.l.Error("upload file failed", log.Error(err))
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}

func (m *Minio) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	if err := CheckName(name); err != nil {
		return nil, 0, err
	}
	info, err := m.Client.StatObject(ctx, m.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, 0, domain.ErrFileNotFound
		}
		return nil, 0, fmt.Errorf("stat %s: %w", name, err)
	}
	obj, err := m.Client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("get %s: %w", name, err)
	}
	return obj, info.Size, nil
}
