package providers

import (
	"net/http"

	"github.com/bissquit/status-garden/internal/domain"
)

// Dispatcher routes a provider to the adapter matching its declared type.
// It holds no state beyond the adapter instances themselves.
type Dispatcher struct {
	rss         *RSSAdapter
	modelStatus *ModelStatusAdapter
	cloudflare  *CloudflareAdapter
}

// NewDispatcher creates a dispatcher with one adapter instance per type,
// all sharing the given HTTP client.
func NewDispatcher(client *http.Client) *Dispatcher {
	return &Dispatcher{
		rss:         NewRSSAdapter(client),
		modelStatus: NewModelStatusAdapter(client),
		cloudflare:  NewCloudflareAdapter(client),
	}
}

// Resolve returns the adapter for the provider's type. Anything other than
// the two API types, including an unset or unrecognized type, routes to the
// RSS adapter.
func (d *Dispatcher) Resolve(provider domain.StatusProvider) Fetcher {
	switch provider.Type {
	case domain.ProviderTypeModelStatusAPI:
		return d.modelStatus
	case domain.ProviderTypeCloudflareAPI:
		return d.cloudflare
	default:
		return d.rss
	}
}
