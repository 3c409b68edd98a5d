package normalize

import (
	"regexp"
	"strings"

	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/util"
)

// maxReferenceURLs is a fixed ceiling on reference links per record. Some NVD
// entries carry hundreds of vendor advisories; the views show at most ten.
const maxReferenceURLs = 10

var englishLang = regexp.MustCompile(`(?i)en`)

// selectDescription resolves a description payload that may be a plain
// string, a {lang, value} object, or a list of such objects. Lists prefer an
// English entry, else the first one.
func selectDescription(value interface{}) string {
	switch v := util.ParseLeniently(value).(type) {
	case string:
		return v
	case map[string]interface{}:
		return util.CoerceString(v["value"])
	case []interface{}:
		first := ""
		for _, item := range v {
			m, ok := item.(map[string]interface{})
			if !ok {
				if first == "" {
					first = util.CoerceString(item)
				}
				continue
			}
			text := util.CoerceString(m["value"])
			if text == "" {
				continue
			}
			if englishLang.MatchString(util.CoerceString(m["lang"])) {
				return text
			}
			if first == "" {
				first = text
			}
		}
		return first
	default:
		return util.CoerceString(v)
	}
}

// extractWeaknesses pulls CWE labels out of either schema's weakness field.
// Per weakness object: description first, then name, weakness, value. Empty
// results are dropped.
func extractWeaknesses(raw map[string]interface{}) []string {
	value := raw["weaknesses"]
	if value == nil {
		value = raw["weakness"]
	}

	var list []interface{}
	switch v := util.ParseLeniently(value).(type) {
	case []interface{}:
		list = v
	case map[string]interface{}:
		list = []interface{}{v}
	case string:
		if v != "" {
			return []string{v}
		}
		return nil
	default:
		return nil
	}

	var out []string
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			if s := util.CoerceString(item); s != "" {
				out = append(out, s)
			}
			continue
		}

		text := selectDescription(m["description"])
		if text == "" {
			for _, field := range []string{"name", "weakness", "value"} {
				if text = util.CoerceString(m[field]); text != "" {
					break
				}
			}
		}
		if text != "" && !util.Contains(out, text) {
			out = append(out, text)
		}
	}
	return out
}

// ExtractReferenceURLs walks an arbitrarily nested reference payload
// collecting url/href/uri string fields and bare strings. Comma-joined values
// are split apart, duplicates removed, and the result is capped at
// maxReferenceURLs in first-encountered order.
func ExtractReferenceURLs(value interface{}) []string {
	var urls []string
	seen := make(map[string]bool)

	add := func(candidate string) {
		for _, part := range strings.Split(candidate, ",") {
			part = strings.TrimSpace(part)
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			if len(urls) < maxReferenceURLs {
				urls = append(urls, part)
			}
		}
	}

	var walk func(v interface{})
	walk = func(v interface{}) {
		if len(urls) >= maxReferenceURLs {
			return
		}
		switch node := v.(type) {
		case string:
			add(node)
		case []interface{}:
			for _, item := range node {
				walk(item)
			}
		case map[string]interface{}:
			for _, key := range []string{"url", "href", "uri"} {
				if s, ok := node[key].(string); ok {
					add(s)
				}
			}
			for _, child := range node {
				switch child.(type) {
				case map[string]interface{}, []interface{}:
					walk(child)
				}
			}
		}
	}

	walk(util.ParseLeniently(value))
	return urls
}

// configurationNestingKeys are the historical aliases of the configuration
// tree's child pointer; all three appear in stored payloads.
var configurationNestingKeys = []string{"children", "childrenNodes", "nodes"}

// ExtractConfigurationGroups flattens an NVD configuration tree into one
// sequence of CPE match groups, collecting every cpe_match/cpeMatch list at
// any depth.
func ExtractConfigurationGroups(value interface{}) []model.ConfigurationGroup {
	var groups []model.ConfigurationGroup

	var walk func(v interface{})
	walk = func(v interface{}) {
		switch node := v.(type) {
		case []interface{}:
			for _, item := range node {
				walk(item)
			}
		case map[string]interface{}:
			for _, key := range []string{"cpe_match", "cpeMatch"} {
				list, ok := node[key].([]interface{})
				if !ok {
					continue
				}
				group := model.ConfigurationGroup{}
				for _, item := range list {
					if m, ok := item.(map[string]interface{}); ok {
						group.Matches = append(group.Matches, m)
					}
				}
				if len(group.Matches) > 0 {
					groups = append(groups, group)
				}
			}
			for _, key := range configurationNestingKeys {
				if child, ok := node[key]; ok {
					walk(child)
				}
			}
		}
	}

	walk(util.ParseLeniently(value))
	return groups
}
