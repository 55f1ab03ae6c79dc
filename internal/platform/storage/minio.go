// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kenryalonzo/eventdev/internal/platform/config"
)

// MinIOStore implements [ObjectStore] on a MinIO / S3-compatible endpoint.
type MinIOStore struct {
	client *minio.Client
	bucket string
	useSSL bool
}

// NewMinIOStore connects to the configured endpoint and ensures the image
// bucket exists.
func NewMinIOStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*MinIOStore, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.StorageBucket)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.StorageBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: failed to create bucket: %w", err)
		}
		logger.Info("storage bucket created", slog.String("bucket", cfg.StorageBucket))
	}

	logger.Info("object storage connected",
		slog.String("endpoint", cfg.StorageEndpoint),
		slog.String("bucket", cfg.StorageBucket),
	)

	return &MinIOStore{
		client: client,
		bucket: cfg.StorageBucket,
		useSSL: cfg.StorageUseSSL,
	}, nil
}

// Upload stores data under key and returns its public URL.
func (store *MinIOStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := store.client.PutObject(
		ctx,
		store.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload object: %w", err)
	}

	scheme := "http"
	if store.useSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, store.client.EndpointURL().Host, store.bucket, key), nil
}

// Delete removes the object stored under key.
func (store *MinIOStore) Delete(ctx context.Context, key string) error {
	if err := store.client.RemoveObject(ctx, store.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: failed to delete object: %w", err)
	}
	return nil
}

// Ping verifies the bucket is reachable.
func (store *MinIOStore) Ping(ctx context.Context) error {
	if _, err := store.client.BucketExists(ctx, store.bucket); err != nil {
		return fmt.Errorf("storage: ping failed: %w", err)
	}
	return nil
}
