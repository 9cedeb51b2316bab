package providers

import (
	"testing"
	"time"

	"github.com/bissquit/status-garden/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDispatcher_Resolve(t *testing.T) {
	dispatcher := NewDispatcher(NewHTTPClient(5 * time.Second))

	tests := []struct {
		name         string
		providerType domain.ProviderType
		want         any
	}{
		{name: "unset defaults to rss", providerType: "", want: dispatcher.rss},
		{name: "rss", providerType: domain.ProviderTypeRSS, want: dispatcher.rss},
		{name: "modelstatus api", providerType: domain.ProviderTypeModelStatusAPI, want: dispatcher.modelStatus},
		{name: "cloudflare api", providerType: domain.ProviderTypeCloudflareAPI, want: dispatcher.cloudflare},
		{name: "unrecognized falls back to rss", providerType: "something_else", want: dispatcher.rss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dispatcher.Resolve(domain.StatusProvider{Type: tt.providerType})
			assert.Same(t, tt.want, got)
		})
	}
}
