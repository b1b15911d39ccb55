package hunter

import (
	"fmt"
	"net/url"

	"ownerhunter/internal/config"
)

// LinkGenerator builds search-engine deep links that surface a business's filings on the
// registry site. The registry's own search is session-walled, so a site-restricted web
// search is the closest stable link.
type LinkGenerator struct {
	Endpoint string
	Site     string
	Phrase   string
}

// NewLinkGenerator returns a generator for the configured search settings.
func NewLinkGenerator(cfg config.SearchConfig) LinkGenerator {
	return LinkGenerator{Endpoint: cfg.Endpoint, Site: cfg.Site, Phrase: cfg.Phrase}
}

// DefaultLinkGenerator targets the Minnesota Secretary of State filings site.
func DefaultLinkGenerator() LinkGenerator {
	return NewLinkGenerator(config.Default().Search)
}

// Link returns the search URL for businessName.
func (g LinkGenerator) Link(businessName string) string {
	query := fmt.Sprintf(`site:%s "%s" "%s"`, g.Site, businessName, g.Phrase)
	return g.Endpoint + "?q=" + url.QueryEscape(query)
}
