package storage

import (
	"context"
	"mime/multipart"
)

// Storage persists uploaded item images and returns the URL clients should
// use to fetch them.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}
