package services

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/leopard-dev/portfolio-backend/internal/storage"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

const maxImageSize = 5 << 20 // 5MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadedFile describes a stored upload.
type UploadedFile struct {
	FileName     string `json:"filename"`
	OriginalName string `json:"originalname"`
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}

type UploadService interface {
	// SaveImage validates and stores a single multipart image.
	SaveImage(fh *multipart.FileHeader) (*UploadedFile, error)

	// Remove deletes a stored file by public path. Best-effort: failures are
	// logged and never surfaced to the caller.
	Remove(relPath string)
}

type uploadService struct {
	store storage.Storage
	log   *logrus.Logger
}

func NewUploadService(store storage.Storage, log *logrus.Logger) UploadService {
	return &uploadService{store: store, log: log}
}

func (s *uploadService) SaveImage(fh *multipart.FileHeader) (*UploadedFile, error) {
	const op = "UploadService.SaveImage"

	if fh == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "No file uploaded", nil)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Only image files are allowed (jpg, jpeg, png, gif, webp)", nil)
	}
	if fh.Size <= 0 || fh.Size > maxImageSize {
		return nil, utils.E(utils.CodeInvalidArgument, op, "File too large (max 5MB)", nil)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to open upload", err)
	}
	defer file.Close()

	// sniff content type (read 512 bytes)
	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	head = head[:n]
	ct := http.DetectContentType(head)
	if !strings.HasPrefix(ct, "image/") {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Uploaded file is not an image", nil)
	}

	// re-compose stream: head + remaining file
	r := io.MultiReader(bytes.NewReader(head), file)

	name := uuid.NewString() + ext
	relPath, err := s.store.Save(name, r)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to store file", err)
	}

	return &UploadedFile{
		FileName:     name,
		OriginalName: fh.Filename,
		MimeType:     ct,
		Size:         fh.Size,
		Path:         relPath,
	}, nil
}

func (s *uploadService) Remove(relPath string) {
	if relPath == "" {
		return
	}
	if err := s.store.Remove(relPath); err != nil {
		if os.IsNotExist(err) {
			return
		}
		s.log.WithFields(logrus.Fields{
			"path":  relPath,
			"error": err.Error(),
		}).Warn("failed to delete stored file")
	}
}
