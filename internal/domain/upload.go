package domain

import (
	"context"
	"io"
)

// Upload is a file received from a form. Size is the length declared by the
// multipart header; Body yields the bytes.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileDownload is a stored blob opened for streaming back to the client.
// The caller closes Body.
type FileDownload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// FileStore persists opaque blobs and hands back a retrievable handle.
type FileStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (handle string, err error)
	Open(ctx context.Context, handle string) (io.ReadCloser, error)
	Delete(ctx context.Context, handle string) error
}
