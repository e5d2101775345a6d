package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/sirupsen/logrus"
)

var ErrFileTooLarge = errors.New("file is too large")

type imageType struct {
	contentType string
	// resizable formats go through the processor; the rest are stored as-is
	format    imaging.Format
	resizable bool
}

var allowedImages = map[string]imageType{
	".jpg":  {contentType: "image/jpeg", format: imaging.JPEG, resizable: true},
	".jpeg": {contentType: "image/jpeg", format: imaging.JPEG, resizable: true},
	".png":  {contentType: "image/png", format: imaging.PNG, resizable: true},
	".gif":  {contentType: "image/gif"},
	".webp": {contentType: "image/webp"},
}

// Uploader validates, shrinks and stores uploaded images.
type Uploader struct {
	storage   FileStorage
	processor *ImageProcessor
	maxBytes  int64
	now       func() time.Time
}

func NewUploader(storage FileStorage, processor *ImageProcessor, maxBytes int64) *Uploader {
	return &Uploader{
		storage:   storage,
		processor: processor,
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

// Upload stores the file under dir and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	kind, ok := allowedImages[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q, allowed jpg, jpeg, png, gif, webp", entity.ErrInvalidImage, ext)
	}
	if u.maxBytes > 0 && fh.Size > u.maxBytes {
		return "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	limit := u.maxBytes
	if limit <= 0 {
		limit = fh.Size
	}
	data, err := readAll(file, limit)
	if err != nil {
		return "", err
	}

	if kind.resizable && u.processor != nil {
		resized, err := u.processor.Downsize(data, kind.format)
		if err != nil {
			return "", fmt.Errorf("%w: %v", entity.ErrInvalidImage, err)
		}
		data = resized
	}

	key := path.Join(dir, u.fileName(fh.Filename, ext))
	if err := u.storage.Save(ctx, key, bytes.NewReader(data), kind.contentType); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"key":  key,
		"size": len(data),
	}).Info("image uploaded")

	return u.storage.URL(key), nil
}

// fileName is <slug>-<unix millis><ext>.
func (u *Uploader) fileName(original, ext string) string {
	return fmt.Sprintf("%s-%d%s", slugify(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))), u.now().UnixMilli(), ext)
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "image"
	}
	return out
}
