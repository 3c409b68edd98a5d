// Package normalize reconciles the two upstream vulnerability schemas (NVD
// and OSV) into the canonical VulnerabilityRecord model, so nothing
// downstream ever branches on upstream source.
package normalize

import (
	"encoding/json"
	"sort"
)

// PayloadShape tags the decoded form of a raw vulnerability document.
type PayloadShape int

// The three raw shapes accepted at the boundary.
const (
	ShapeBare    PayloadShape = iota // bare JSON array of findings
	ShapeWrapped                     // {"result": [...]}
	ShapeKeyed                       // {"result": {"CVE-...": {...}}} (NVD keyed form)
)

// Element is one raw finding plus the mapping key it was found under when the
// payload used the keyed form.
type Element struct {
	Key string
	Raw map[string]interface{}
}

// Payload is the tagged union produced by the boundary decoder. The upstream
// shapes never leak past DecodePayload.
type Payload struct {
	Shape    PayloadShape
	Elements []Element
}

// DecodePayload accepts a bare array, an object with a result array, or an
// object with a result mapping of CVE id to detail. A single detail object
// without a result key decodes as a one-element batch. A structurally
// nonsensical document (not an object or array at all) decodes to an empty
// payload rather than an error.
func DecodePayload(raw []byte) Payload {
	var root interface{}
	if err := json.Unmarshal(raw, &root); err != nil {
		return Payload{}
	}

	switch v := root.(type) {
	case []interface{}:
		return Payload{Shape: ShapeBare, Elements: elementsFromList(v)}
	case map[string]interface{}:
		result, ok := v["result"]
		if !ok {
			return Payload{Shape: ShapeBare, Elements: elementsFromList([]interface{}{v})}
		}
		switch r := result.(type) {
		case []interface{}:
			return Payload{Shape: ShapeWrapped, Elements: elementsFromList(r)}
		case map[string]interface{}:
			keys := make([]string, 0, len(r))
			for k := range r {
				keys = append(keys, k)
			}
			sort.Strings(keys) // stable batch order regardless of map iteration

			elems := make([]Element, 0, len(keys))
			for _, k := range keys {
				if m, ok := r[k].(map[string]interface{}); ok {
					elems = append(elems, Element{Key: k, Raw: m})
				}
			}
			return Payload{Shape: ShapeKeyed, Elements: elems}
		}
	}

	return Payload{}
}

func elementsFromList(list []interface{}) []Element {
	elems := make([]Element, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			elems = append(elems, Element{Raw: m})
		}
	}
	return elems
}
