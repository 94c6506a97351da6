package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/kutbudev/goodtag-cli/internal/config"
	"github.com/kutbudev/goodtag-cli/internal/logger"
)

// Result is what analyzing one page yields: zero or more keyword
// candidates and a best-effort page title.
type Result struct {
	Keywords []string
	Title    string
}

// Extractor derives topical keywords (and a fallback title) from a
// URL's page content.
type Extractor interface {
	// Extract fetches the page and returns keyword candidates and a
	// best-effort title. A page with no readable content is a valid
	// empty result, not an error; errors mean the page could not be
	// fetched at all.
	Extract(ctx context.Context, url string) (Result, error)

	// MetaKeywords fetches only the page's keyword metadata
	// (meta name=keywords). An error is returned when the metadata is
	// absent or the fetch fails.
	MetaKeywords(ctx context.Context, url string) ([]string, error)
}

// PageExtractor fetches pages over HTTP with a per-fetch timeout so a
// hanging host cannot stall the rest of a batch indefinitely.
type PageExtractor struct {
	client    *http.Client
	userAgent string
	log       *logger.Logger
}

func NewPageExtractor(cfg config.FetchConfig, log *logger.Logger) *PageExtractor {
	return &PageExtractor{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
		log:       log,
	}
}

func (p *PageExtractor) Extract(ctx context.Context, url string) (Result, error) {
	doc, err := p.fetch(ctx, url)
	if err != nil {
		return Result{}, err
	}

	title := pageTitle(doc)

	seen := make(map[string]struct{})
	var keywords []string
	add := func(tokens []string) {
		for _, token := range tokens {
			token = strings.ToLower(strings.TrimSpace(token))
			if token == "" {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			keywords = append(keywords, token)
		}
	}

	if content, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		add(strings.Split(content, ","))
	}
	add(TokenizeText(title))
	if description, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		add(TokenizeText(description))
	}

	p.log.Debug("page analyzed",
		logger.String("url", url),
		logger.Int("keywords", len(keywords)))

	return Result{Keywords: keywords, Title: title}, nil
}

func (p *PageExtractor) MetaKeywords(ctx context.Context, url string) ([]string, error) {
	doc, err := p.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	content, ok := doc.Find(`meta[name="keywords"]`).Attr("content")
	if !ok || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("no keyword metadata at %s", url)
	}

	var keywords []string
	for _, keyword := range strings.Split(content, ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return keywords, nil
}

func (p *PageExtractor) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

func pageTitle(doc *goquery.Document) string {
	if title, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// TokenizeText splits free text into lowercase word tokens, deduplicated
// in first-appearance order.
func TokenizeText(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.ToLower(field)
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}
