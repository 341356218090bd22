package storage

import (
	"context"
)

type FileStorage interface {
	// UploadFile stores an image under the given folder and returns its public URL.
	UploadFile(ctx context.Context, data []byte, filename, folder string) (string, error)

	DeleteFile(ctx context.Context, fileURL string) error
}
