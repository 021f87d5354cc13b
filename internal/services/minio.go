package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"sifted_back_end/internal/database"

	"github.com/minio/minio-go/v7"
)

// UploadProductImage stores an uploaded image under products/ and returns the
// object path recorded on the product.
func UploadProductImage(ctx context.Context, productID string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO is not initialized")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := fmt.Sprintf("products/%s%s", productID, path.Ext(file.Filename))
	bucket := os.Getenv("MINIO_BUCKET")

	_, err = database.MinIO.PutObject(ctx, bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return objectName, nil
}

// ResolveImageURL turns a stored object path into a presigned URL the browser
// can load. Absolute URLs (seeded products point at external hosts) pass
// through untouched.
func ResolveImageURL(ctx context.Context, stored string, duration time.Duration) (string, error) {
	if stored == "" || strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored, nil
	}
	if database.MinIO == nil {
		return stored, nil
	}

	presigned, err := database.MinIO.PresignedGetObject(ctx, os.Getenv("MINIO_BUCKET"),
		stored, duration, url.Values{})
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}
