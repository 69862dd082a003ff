package enrichment

import (
	"net/url"
	"strings"
)

// Traffic sources reported by RefererClassifier.
const (
	SourceDirect    = "Direct"
	SourceSearch    = "Search"
	SourceSocial    = "Social"
	SourceDeveloper = "Developer"
	SourceReferral  = "Referral"
)

// RefererClassifier classifies traffic sources from referer URLs.
type RefererClassifier struct {
	searchEngines []string
	socialMedia   []string
	devPlatforms  []string
}

// NewRefererClassifier creates a new RefererClassifier with predefined domain lists.
func NewRefererClassifier() *RefererClassifier {
	return &RefererClassifier{
		searchEngines: []string{
			"google.com",
			"bing.com",
			"yahoo.com",
			"duckduckgo.com",
			"baidu.com",
			"yandex.ru",
			"ecosia.org",
		},
		socialMedia: []string{
			"facebook.com",
			"twitter.com",
			"x.com",
			"t.co",
			"instagram.com",
			"linkedin.com",
			"lnkd.in",
			"reddit.com",
			"youtube.com",
			"threads.net",
			"mastodon.social",
		},
		devPlatforms: []string{
			"github.com",
			"gitlab.com",
			"bitbucket.org",
			"stackoverflow.com",
			"dev.to",
			"kaggle.com",
			"medium.com",
		},
	}
}

// ClassifySource returns one of the Source* constants for a referer.
// An empty referer is direct traffic.
func (r *RefererClassifier) ClassifySource(refererStr string) string {
	if refererStr == "" {
		return SourceDirect
	}

	parsed, err := url.Parse(refererStr)
	if err != nil || parsed.Hostname() == "" {
		return SourceDirect
	}

	hostname := strings.ToLower(parsed.Hostname())
	hostname = strings.TrimPrefix(hostname, "www.")

	switch {
	case matchesDomain(hostname, r.searchEngines):
		return SourceSearch
	case matchesDomain(hostname, r.socialMedia):
		return SourceSocial
	case matchesDomain(hostname, r.devPlatforms):
		return SourceDeveloper
	}
	return SourceReferral
}

// matchesDomain reports whether host equals one of the domains or is a subdomain of it.
func matchesDomain(host string, domains []string) bool {
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
