package domain

// ProviderType selects the adapter used to normalize a provider's upstream.
type ProviderType string

// Provider types.
const (
	ProviderTypeRSS            ProviderType = "rss"
	ProviderTypeModelStatusAPI ProviderType = "modelstatus_api"
	ProviderTypeCloudflareAPI  ProviderType = "cloudflare_api"
)

// StatusProvider describes one upstream status source. It is static
// configuration, never mutated at runtime.
type StatusProvider struct {
	ID   string       `json:"id" koanf:"id" validate:"required"`
	Name string       `json:"name" koanf:"name" validate:"required"`
	URL  string       `json:"url" koanf:"url" validate:"required,url"`
	Type ProviderType `json:"type,omitempty" koanf:"type" validate:"omitempty,oneof=rss modelstatus_api cloudflare_api"`

	// APIProviderID keys the modelstatus API endpoints.
	APIProviderID string `json:"api_provider_id,omitempty" koanf:"api_provider_id"`
	// HomePageURL is the public status page shown to users; falls back to
	// upstream page URLs and finally the feed URL's origin.
	HomePageURL string `json:"home_page_url,omitempty" koanf:"home_page_url"`
	// ComponentID selects the component-keyed variant of the cloudflare
	// adapter when set.
	ComponentID string `json:"component_id,omitempty" koanf:"component_id"`
	// Keywords are extra provider-specific terms treated as minor-severity
	// signals by the keyword classifier.
	Keywords []string `json:"keywords,omitempty" koanf:"keywords"`
}
