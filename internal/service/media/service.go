package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"legacy-booth/internal/config"
	"legacy-booth/internal/domain"
)

var (
	ErrUnsupportedMedia = errors.New("only video or audio uploads are accepted")
	ErrVideoTooLarge    = errors.New("video exceeds the upload limit")
	ErrEmptyUpload      = errors.New("upload is empty")
)

// VideoStore persists an uploaded recording and returns where it can be played from.
type VideoStore interface {
	Put(ctx context.Context, residentID, fileName string, size int64, mimeType string, reader io.Reader) (domain.VideoRef, error)
}

// CheckUpload validates an upload before any bytes are stored.
func CheckUpload(size, maxBytes int64, mimeType string) error {
	if size <= 0 {
		return ErrEmptyUpload
	}
	if maxBytes > 0 && size > maxBytes {
		return ErrVideoTooLarge
	}
	if !strings.HasPrefix(mimeType, "video/") && !strings.HasPrefix(mimeType, "audio/") {
		return ErrUnsupportedMedia
	}
	return nil
}

func objectPath(now time.Time, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return path.Join(now.Format("2006/01"), uuid.New().String()+ext)
}

type minioStore struct {
	client *minio.Client
	cfg    *config.Config
	now    func() time.Time
}

func NewMinIOStore(client *minio.Client, cfg *config.Config) VideoStore {
	return &minioStore{client: client, cfg: cfg, now: time.Now}
}

func (s *minioStore) Put(ctx context.Context, residentID, fileName string, size int64, mimeType string, reader io.Reader) (domain.VideoRef, error) {
	storagePath := "videos/" + objectPath(s.now(), fileName)

	_, err := s.client.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, size, minio.PutObjectOptions{
		ContentType:  mimeType,
		UserMetadata: map[string]string{"resident-id": residentID},
	})
	if err != nil {
		return domain.VideoRef{}, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return domain.VideoRef{Name: fileName, URL: s.publicURL(storagePath)}, nil
}

func (s *minioStore) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, (&url.URL{Path: storagePath}).EscapedPath())
}

// localStore writes videos under dir; the HTTP server serves dir at baseURL.
type localStore struct {
	dir     string
	baseURL string
	now     func() time.Time
}

func NewLocalStore(dir, baseURL string) VideoStore {
	return &localStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

func (s *localStore) Put(_ context.Context, _, fileName string, _ int64, _ string, reader io.Reader) (domain.VideoRef, error) {
	rel := objectPath(s.now(), fileName)
	full := filepath.Join(s.dir, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return domain.VideoRef{}, fmt.Errorf("failed to create video dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return domain.VideoRef{}, err
	}
	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(full)
		return domain.VideoRef{}, fmt.Errorf("failed to write video: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return domain.VideoRef{}, err
	}

	return domain.VideoRef{Name: fileName, URL: s.baseURL + "/" + rel}, nil
}
