package interfaces

import "context"

// IFileStorage stores uploaded files and returns an opaque reference to them.
// Load accepts only references previously returned by Save.
type IFileStorage interface {
	Save(ctx context.Context, data []byte, path string) (string, error)
	Load(ctx context.Context, ref string) ([]byte, error)
}
