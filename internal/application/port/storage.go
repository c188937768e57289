package port

import "context"

// StoredFile describes a stored document and the stable URL used to populate
// an invoice's file_url.
type StoredFile struct {
	Path string
	URL  string
}

// FileStorage stores uploaded invoice documents and produces durable
// references. Implementations never inspect file contents beyond writing the
// bytes they are given.
type FileStorage interface {
	// Save writes content under the owner's namespace and returns its
	// reference. The original filename is only used for its extension.
	Save(ctx context.Context, owner, filename string, content []byte) (*StoredFile, error)

	// Read returns the raw bytes of a previously stored file.
	Read(ctx context.Context, path string) ([]byte, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error
}
