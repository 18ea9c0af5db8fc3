package cache

import "context"

// Cache remembers the telegram file id of every video sent for a URL.
type Cache interface {
	Lookup(ctx context.Context, url string) (string, bool, error)
	Remember(ctx context.Context, url string, fileID string) error
}
