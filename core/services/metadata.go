// ABOUTME: Page metadata service suggests submission fields for a URL
// ABOUTME: Reads Open Graph and classic meta tags from the fetched page with goquery

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	coreerrors "searchpilot-api/core/errors"
	"searchpilot-api/core/domain"
	"searchpilot-api/core/interfaces"
)

const (
	pageCacheTTL    = 24 * time.Hour
	maxPageBytes    = 5 * 1024 * 1024
	pageCachePrefix = "pagemeta:"
)

// Extraction outcomes reported to Metrics
const (
	ExtractionOK     = "ok"
	ExtractionFailed = "failed"
	ExtractionCached = "cached"
)

// MetadataService extracts title, description and keywords from web pages
type MetadataService struct {
	deps     interfaces.Dependencies
	lookupIP func(ctx context.Context, host string) ([]net.IPAddr, error)
}

// NewMetadataService creates a new page metadata service
func NewMetadataService(deps interfaces.Dependencies) *MetadataService {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	return &MetadataService{
		deps:     deps,
		lookupIP: net.DefaultResolver.LookupIPAddr,
	}
}

// Extract fetches targetURL and returns the fields a submitter would fill in
func (s *MetadataService) Extract(ctx context.Context, targetURL string) (*interfaces.PageMetadata, error) {
	targetURL = strings.TrimSpace(targetURL)
	if !domain.IsValidPageURL(targetURL) {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "valid http(s) URL required"}
	}

	// Check cache first
	cacheKey := pageCachePrefix + targetURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var result interfaces.PageMetadata
			if err := json.Unmarshal(data, &result); err == nil {
				s.count(ExtractionCached)
				return &result, nil
			}
		}
	}

	result, err := s.fetch(ctx, targetURL)
	if err != nil {
		s.count(ExtractionFailed)
		s.deps.Logger.Debug("Page metadata extraction failed", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return nil, err
	}
	s.count(ExtractionOK)

	if s.deps.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, pageCacheTTL)
		}
	}

	return result, nil
}

func (s *MetadataService) fetch(ctx context.Context, targetURL string) (*interfaces.PageMetadata, error) {
	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	host := targetURL
	if u, err := url.Parse(targetURL); err == nil {
		host = u.Host
		if err := s.checkPublicHost(ctx, u.Hostname()); err != nil {
			return nil, err
		}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, targetURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("failed to fetch page: %w", ctx.Err())
		}
		// Unreachable pages are reported like an upstream gateway failure
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: http.StatusBadGateway,
			Message:    err.Error(),
			API:        host,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "page request was not successful",
			API:        host,
		}
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body(), maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	return parseDocument(doc, targetURL), nil
}

// checkPublicHost refuses hosts that resolve to loopback, private, link-local
// or otherwise non-public addresses, so extraction cannot reach internal services.
func (s *MetadataService) checkPublicHost(ctx context.Context, hostname string) error {
	var addrs []net.IP
	if ip := net.ParseIP(hostname); ip != nil {
		addrs = []net.IP{ip}
	} else {
		resolved, err := s.lookupIP(ctx, hostname)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("failed to resolve host: %w", ctx.Err())
			}
			return &coreerrors.ExternalAPIError{
				StatusCode: http.StatusBadGateway,
				Message:    err.Error(),
				API:        hostname,
			}
		}
		for _, a := range resolved {
			addrs = append(addrs, a.IP)
		}
	}

	if len(addrs) == 0 {
		return &coreerrors.ExternalAPIError{
			StatusCode: http.StatusBadGateway,
			Message:    "host has no addresses",
			API:        hostname,
		}
	}
	for _, ip := range addrs {
		if !isPublicIP(ip) {
			return &coreerrors.ValidationError{Field: "url", Message: "host is not publicly reachable"}
		}
	}
	return nil
}

func isPublicIP(ip net.IP) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() ||
		ip.IsMulticast() ||
		ip.IsUnspecified())
}

// parseDocument prefers Open Graph values and falls back to classic tags
func parseDocument(doc *goquery.Document, pageURL string) *interfaces.PageMetadata {
	result := &interfaces.PageMetadata{URL: pageURL}

	result.Title = firstNonEmpty(
		metaContent(doc, `meta[property="og:title"]`),
		metaContent(doc, `meta[name="twitter:title"]`),
		strings.TrimSpace(doc.Find("head title").First().Text()),
	)

	result.Description = firstNonEmpty(
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
		metaContent(doc, `meta[name="twitter:description"]`),
	)

	result.Author = firstNonEmpty(
		metaContent(doc, `meta[name="author"]`),
		metaContent(doc, `meta[property="article:author"]`),
	)

	keywords := metaContent(doc, `meta[name="keywords"]`)
	if keywords == "" {
		var tags []string
		doc.Find(`meta[property="article:tag"]`).Each(func(_ int, sel *goquery.Selection) {
			if tag := strings.TrimSpace(sel.AttrOr("content", "")); tag != "" {
				tags = append(tags, tag)
			}
		})
		keywords = strings.Join(tags, ", ")
	}
	result.Keywords = keywords

	return result
}

func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *MetadataService) count(status string) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.IncExtractions(status)
	}
}
