package bank

import (
	"embed"

	"github.com/dmitrymomot/propkit/pkg/i18n"
)

//go:embed catalog.yml
var catalogFS embed.FS

// Catalog loads the embedded message catalog for the bank name rule codes.
func Catalog(opts ...i18n.Option) (*i18n.Catalog, error) {
	return i18n.NewFS(catalogFS, "catalog.yml", opts...)
}
