package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/config"
)

// Sentinel errors for image handling.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrInvalidImagePath    = errors.New("invalid image path")
)

// imageDir is where imported images live, relative to the data directory.
const imageDir = "assets/images"

// Allowed image MIME types.
var allowedMIMETypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// MediaService is the file store behind question and option images. Paths it
// returns are relative to the data directory and stored opaquely.
type MediaService struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewMediaService creates a new MediaService.
func NewMediaService(cfg *config.Config, log zerolog.Logger) *MediaService {
	return &MediaService{
		cfg: cfg,
		log: log.With().Str("component", "media_service").Logger(),
	}
}

// ImportImage copies the image at srcPath into the data directory under a
// fresh UUID name and returns its relative path.
func (s *MediaService) ImportImage(srcPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	}
	if info.Size() > s.cfg.MaxImageBytes {
		return "", fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, info.Size(), s.cfg.MaxImageBytes)
	}

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("detect image type: %w", err)
	}
	ext, ok := imageExtension(mtype)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mtype.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind image: %w", err)
	}

	destDir := filepath.Join(s.cfg.DataDir, filepath.FromSlash(imageDir))
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	filename := uuid.New().String() + ext
	if err := writeImage(filepath.Join(destDir, filename), src); err != nil {
		return "", err
	}

	rel := path.Join(imageDir, filename)
	s.log.Debug().Str("source", srcPath).Str("path", rel).Msg("Image imported")
	return rel, nil
}

// writeImage copies src to dstPath. A failed write or close leaves no file
// behind.
func writeImage(dstPath string, src io.Reader) (err error) {
	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close file: %w", cerr)
		}
		if err != nil {
			os.Remove(dstPath)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// ReadImageDataURL loads an imported image as a base64 data URL. relPath must
// stay inside the data directory.
func (s *MediaService) ReadImageDataURL(relPath string) (string, error) {
	local := filepath.FromSlash(relPath)
	if relPath == "" || !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrInvalidImagePath, relPath)
	}

	data, err := os.ReadFile(filepath.Join(s.cfg.DataDir, local))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mtype := mimetype.Detect(data)
	if _, ok := imageExtension(mtype); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mtype.String())
	}

	mime, _, _ := strings.Cut(mtype.String(), ";")
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// imageExtension walks up the detected type's parents, so an SVG detected
// with a charset parameter still matches.
func imageExtension(mtype *mimetype.MIME) (string, bool) {
	for m := mtype; m != nil; m = m.Parent() {
		mime, _, _ := strings.Cut(m.String(), ";")
		if ext, ok := allowedMIMETypes[mime]; ok {
			return ext, true
		}
	}
	return "", false
}
