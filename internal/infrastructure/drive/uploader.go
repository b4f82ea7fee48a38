package drive

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"gcp-tts-cli/internal/domain/audio"
)

// Uploader uploads local files to Google Drive.
type Uploader struct {
	srv      *gdrive.Service
	folderID string
	logger   *zap.Logger
}

// NewUploader uploads into folderID, or the Drive root when it is empty.
func NewUploader(srv *gdrive.Service, folderID string, logger *zap.Logger) *Uploader {
	return &Uploader{srv: srv, folderID: folderID, logger: logger.With(zap.String("component", "drive"))}
}

// Publish implements audio.Publisher.
func (u *Uploader) Publish(ctx context.Context, path audio.Path) (string, string, error) {
	return u.UploadFile(ctx, string(path), "")
}

// UploadFile uploads a file pointed by localPath to the configured folder.
// dstFileName allows overriding the name. If empty, the base name of localPath is used.
// Returns fileID and webViewLink.
func (u *Uploader) UploadFile(ctx context.Context, localPath, dstFileName string) (string, string, error) {
	if dstFileName == "" {
		dstFileName = filepath.Base(localPath)
	}
	f, err := os.Open(localPath)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(dstFileName))
	if mimeType == "" {
		// fallback for mp3
		mimeType = "audio/mpeg"
	}

	file := &gdrive.File{
		Name:     dstFileName,
		MimeType: mimeType,
	}
	if u.folderID != "" {
		file.Parents = []string{u.folderID}
	}

	u.logger.Info("uploading to drive", zap.String("name", dstFileName), zap.String("folder", u.folderID))
	mediaOpts := []googleapi.MediaOption{googleapi.ChunkSize(2 * 1024 * 1024), googleapi.ContentType(mimeType)}
	created, err := u.srv.Files.Create(file).Context(ctx).Media(f, mediaOpts...).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound && u.folderID != "" {
			return "", "", fmt.Errorf("drive folder %q not found: %w", u.folderID, err)
		}
		return "", "", fmt.Errorf("drive upload failed: %w", err)
	}

	// webViewLink is not part of the create response by default.
	got, err := u.srv.Files.Get(created.Id).Fields("id,webViewLink").Context(ctx).Do()
	if err != nil {
		u.logger.Warn("could not fetch drive link", zap.String("id", created.Id), zap.Error(err))
		return created.Id, "", nil
	}
	return got.Id, got.WebViewLink, nil
}
