package tagging

import (
	"context"
	"sort"
	"strings"

	"github.com/kutbudev/goodtag-cli/internal/logger"
	"github.com/kutbudev/goodtag-cli/internal/models"
	"github.com/kutbudev/goodtag-cli/internal/scrape"
	"github.com/kutbudev/goodtag-cli/internal/tagmap"
)

// Known site patterns, matched as substrings of the lowercased URL.
// First match wins.
const (
	youtubeDomain = "youtube.com"
	twitterDomain = "twitter.com"
	xDomain       = "x.com"

	youtubeBaseTag = "youtube"
	twitterBaseTag = "twitter"
)

// Engine decides the final tag set for one link record. It never
// removes existing tags: inference only unions new ones in, and the
// stored string is left byte-identical when nothing new is found.
type Engine struct {
	extractor scrape.Extractor
	tags      tagmap.TagMap
	log       *logger.Logger
}

func NewEngine(extractor scrape.Extractor, tags tagmap.TagMap, log *logger.Logger) *Engine {
	return &Engine{
		extractor: extractor,
		tags:      tags,
		log:       log,
	}
}

// InferTags computes the new tag string for a link.
//
// Collaborator failures never escape: a failed keyword fetch on the
// video path aborts inference for this record only (changed=false,
// tags untouched), and a general-path fetch that cannot be analyzed
// degrades to an empty keyword set.
func (e *Engine) InferTags(ctx context.Context, link models.Link) (bool, string) {
	oldTags := link.TagString()
	oldSet := splitTags(oldTags)

	baseTag, candidates, ok := e.candidates(ctx, link)
	if !ok {
		return false, oldTags
	}

	e.log.Debug("keyword candidates",
		logger.String("url", link.URL),
		logger.Strings("keywords", candidates))

	pending := make(map[string]struct{})
	if baseTag != "" {
		if _, have := oldSet[baseTag]; !have {
			pending[baseTag] = struct{}{}
		}
	}
	for _, keyword := range candidates {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		mapped, found := e.tags.Lookup(keyword)
		if !found {
			continue
		}
		// A list-valued mapping contributes every entry that is new,
		// not just the first.
		for _, tag := range mapped {
			if _, have := oldSet[tag]; have {
				continue
			}
			pending[tag] = struct{}{}
		}
	}

	if len(pending) == 0 {
		return false, oldTags
	}

	merged := make([]string, 0, len(oldSet)+len(pending))
	for tag := range oldSet {
		merged = append(merged, tag)
	}
	for tag := range pending {
		merged = append(merged, tag)
	}
	sort.Strings(merged)

	newTags := strings.Join(merged, " ")
	return newTags != oldTags, newTags
}

// candidates classifies the URL and collects the keyword candidate
// pool. ok=false means inference must be aborted for this record.
func (e *Engine) candidates(ctx context.Context, link models.Link) (baseTag string, keywords []string, ok bool) {
	url := strings.ToLower(link.URL)
	title := link.TitleString()

	switch {
	case strings.Contains(url, youtubeDomain):
		metaKeywords, err := e.extractor.MetaKeywords(ctx, link.URL)
		if err != nil {
			e.log.Warn("could not fetch keyword metadata, leaving tags unchanged",
				logger.String("url", link.URL),
				logger.Err(err))
			return "", nil, false
		}
		keywords = append(keywords, metaKeywords...)
		keywords = append(keywords, scrape.TokenizeText(title)...)
		return youtubeBaseTag, keywords, true

	case strings.Contains(url, twitterDomain), strings.Contains(url, xDomain):
		return twitterBaseTag, scrape.TokenizeText(title), true

	default:
		result, err := e.extractor.Extract(ctx, link.URL)
		if err != nil {
			// Unreachable pages yield no keywords, not a failed record.
			e.log.Debug("could not analyze page",
				logger.String("url", link.URL),
				logger.Err(err))
			result = scrape.Result{}
		}
		if title == "" {
			title = result.Title
		}
		keywords = append(keywords, result.Keywords...)
		keywords = append(keywords, scrape.TokenizeText(title)...)
		return "", keywords, true
	}
}

func splitTags(tags string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tag := range strings.Fields(tags) {
		set[tag] = struct{}{}
	}
	return set
}
