package repository

// Keys of the durable per-profile state. One entry per concern, mirroring
// the fixed keys of the storefront's local storage.
const (
	StateKeyCart          = "cart"
	StateKeyCatalogSource = "catalog_source"
	StateKeyTheme         = "theme"
	StateKeyInstallPrompt = "install_prompt_enabled"
)

// StateStore is the durable key-value store behind the cart and the user
// preferences. Implementations must treat a missing key as (nil, false, nil),
// not as an error.
type StateStore interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}
