//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "PlacesSearch=PlacesSearch"
package external

import "context"

type FoundPlace struct {
	ProviderRef string
	Name        string
	Category    string
	Rating      float64
	Address     string
}

// PlacesSearch queries the external places catalog.
type PlacesSearch interface {
	Search(ctx context.Context, query string, limit int) ([]FoundPlace, error)
}
