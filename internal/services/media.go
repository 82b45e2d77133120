package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	BucketReceipts = "receipts"
	BucketPhotos   = "photos"

	photoMaxSide = 1600
)

const mediaColumns = `id, owner_user_id, bucket, storage_key, filename, content_type, size_bytes, sha256, created_at`

// MediaStore keeps uploaded files under BasePath/<bucket>/ and indexes them in media_assets.
type MediaStore struct {
	DB       *sqlx.DB
	BasePath string
}

func (m MediaStore) ensureBucket(bucket string) (string, error) {
	path := filepath.Join(m.BasePath, bucket)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// Save streams body to disk, hashing it on the way, and records the asset.
// An empty body is rejected.
func (m MediaStore) Save(ctx context.Context, bucket, contentType, filename, ownerID string, body io.Reader) (models.MediaAsset, error) {
	assetID := uuid.NewString()
	bucketPath, err := m.ensureBucket(bucket)
	if err != nil {
		return models.MediaAsset{}, WrapError(err, "prepare bucket")
	}
	target := filepath.Join(bucketPath, assetID)

	file, err := os.Create(target)
	if err != nil {
		return models.MediaAsset{}, WrapError(err, "create media file")
	}
	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(file, hasher), body)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return models.MediaAsset{}, WrapError(err, "write media file")
	}
	if size == 0 {
		_ = os.Remove(target)
		return models.MediaAsset{}, models.NewValidationError("file", "required", "file is empty")
	}

	var owner *string
	if ownerID != "" {
		owner = &ownerID
	}
	var name *string
	if filename != "" {
		name = &filename
	}
	_, err = execx(ctx, m.DB, `
INSERT INTO media_assets (id, owner_user_id, bucket, storage_key, filename, content_type, size_bytes, sha256, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		assetID, owner, bucket, assetID, name, contentType, size, hex.EncodeToString(hasher.Sum(nil)), now())
	if err != nil {
		_ = os.Remove(target)
		return models.MediaAsset{}, asConstraintError(err, "insert media asset")
	}
	return m.Get(ctx, assetID)
}

// SavePhoto decodes an image, applies EXIF orientation, fits it within
// 1600x1600 and stores it as JPEG.
func (m MediaStore) SavePhoto(ctx context.Context, filename, ownerID string, body io.Reader) (models.MediaAsset, error) {
	img, err := imaging.Decode(body, imaging.AutoOrientation(true))
	if err != nil {
		return models.MediaAsset{}, models.NewValidationError("file", "image", "file is not a supported image")
	}
	bounds := img.Bounds()
	if bounds.Dx() > photoMaxSide || bounds.Dy() > photoMaxSide {
		img = imaging.Fit(img, photoMaxSide, photoMaxSide, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return models.MediaAsset{}, WrapError(err, "encode photo")
	}
	return m.Save(ctx, BucketPhotos, "image/jpeg", filename, ownerID, &buf)
}

func (m MediaStore) Get(ctx context.Context, id string) (models.MediaAsset, error) {
	var asset models.MediaAsset
	if err := getx(ctx, m.DB, &asset, `SELECT `+mediaColumns+` FROM media_assets WHERE id = ?`, id); err != nil {
		return models.MediaAsset{}, notFoundOr(err, "media asset", id)
	}
	asset.CreatedAt = asset.CreatedAt.UTC()
	return asset, nil
}

// Open returns the stored file for asset. The caller closes it.
func (m MediaStore) Open(asset models.MediaAsset) (*os.File, error) {
	file, err := os.Open(filepath.Join(m.BasePath, asset.Bucket, asset.StorageKey))
	if err != nil {
		return nil, fmt.Errorf("open media %s: %w", asset.ID, err)
	}
	return file, nil
}

func BuildAssetURL(assetID string) string {
	return "/api/media/assets/" + assetID + "/content"
}
