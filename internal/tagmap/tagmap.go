package tagmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// TagMap is the static keyword→tags mapping driving automatic
// classification. Loaded once at process start, never mutated after.
// Keys are lowercase keywords; a keyword may fan out to several tags.
type TagMap map[string][]string

// Load reads the mapping from a yaml file with a `tags` section.
// Both shapes are accepted:
//
//	tags:
//	  k8s: kubernetes
//	  k8s-talk: [kubernetes, observability]
//
// and the historical list-of-maps shape where `tags` is a one-element
// list holding the map. A missing or malformed file is a fatal startup
// condition for the caller.
func Load(path string) (TagMap, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not load tag map %s: %w", path, err)
	}

	raw := v.Get("tags")
	if raw == nil {
		return nil, fmt.Errorf("tag map %s has no tags section", path)
	}

	tm := make(TagMap)
	switch section := raw.(type) {
	case map[string]interface{}:
		if err := tm.merge(section); err != nil {
			return nil, fmt.Errorf("tag map %s: %w", path, err)
		}
	case []interface{}:
		for _, item := range section {
			entry, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("tag map %s: tags list entries must be mappings", path)
			}
			if err := tm.merge(entry); err != nil {
				return nil, fmt.Errorf("tag map %s: %w", path, err)
			}
		}
	default:
		return nil, fmt.Errorf("tag map %s: tags section must be a mapping", path)
	}

	if len(tm) == 0 {
		return nil, fmt.Errorf("tag map %s has no entries", path)
	}

	return tm, nil
}

func (tm TagMap) merge(entries map[string]interface{}) error {
	for keyword, value := range entries {
		tags, err := normalizeValue(value)
		if err != nil {
			return fmt.Errorf("invalid mapping for keyword %q: %w", keyword, err)
		}
		tm[strings.ToLower(keyword)] = tags
	}
	return nil
}

// normalizeValue flattens the string-or-list duality at load time so
// lookups always see a list of one-or-more tags.
func normalizeValue(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("empty tag value")
		}
		return []string{v}, nil
	case []interface{}:
		if len(v) == 0 {
			return nil, fmt.Errorf("empty tag list")
		}
		tags := make([]string, 0, len(v))
		for _, item := range v {
			tag, ok := item.(string)
			if !ok || tag == "" {
				return nil, fmt.Errorf("tag list entries must be non-empty strings")
			}
			tags = append(tags, tag)
		}
		return tags, nil
	default:
		return nil, fmt.Errorf("expected string or list of strings, got %T", value)
	}
}

// Lookup returns the tags mapped to a keyword, matching case-insensitively.
func (tm TagMap) Lookup(keyword string) ([]string, bool) {
	tags, ok := tm[strings.ToLower(keyword)]
	return tags, ok
}

// Keywords returns all mapped keywords in sorted order.
func (tm TagMap) Keywords() []string {
	keywords := make([]string, 0, len(tm))
	for keyword := range tm {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords
}
