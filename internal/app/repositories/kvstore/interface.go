package kvstore

import "context"

// Repository is the flat string-keyed store: the moral equivalent of browser
// local storage. Get of an absent key returns "" with ok=false, not an error.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
