// file: internals/helpers/image.go
package helper

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// ValidateImageFile memeriksa ukuran dan content type foto profil.
func ValidateImageFile(fh *multipart.FileHeader) error {
	if fh.Size > maxImageSize {
		return fiber.NewError(fiber.StatusBadRequest, "File size must be less than 5MB")
	}
	contentType := fh.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return fiber.NewError(fiber.StatusBadRequest, "File type must be image/jpeg, image/png, or image/jpg")
	}
	return nil
}

// SaveImageFile menyimpan upload ke <baseDir>/yyyy/MM/dd/<uuid>.<ext>
// dan mengembalikan path relatif terhadap baseDir.
func SaveImageFile(baseDir string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	datePath := time.Now().Format("2006/01/02")
	filename := generateUniqueFilename(fh.Filename)
	relPath := filepath.Join(datePath, filename)
	fullPath := filepath.Join(baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat direktori gambar: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("gagal menulis gambar: %w", err)
	}
	return relPath, nil
}

func generateUniqueFilename(original string) string {
	ext := filepath.Ext(original)
	safeExt := unsafeFilenameChars.ReplaceAllString(ext, "")
	return uuid.New().String() + safeExt
}
