package providers

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/mitchellh/copystructure"
)

// Payload is a provider request body under construction.
type Payload map[string]any

// Set stores v under key unless v is the zero value for its kind. Optional
// provider fields are omitted entirely rather than sent empty.
func (p Payload) Set(key string, v any) {
	switch val := v.(type) {
	case nil:
		return
	case string:
		if val == "" {
			return
		}
	case map[string]any:
		if len(val) == 0 {
			return
		}
	case Payload:
		if len(val) == 0 {
			return
		}
		v = map[string]any(val)
	}
	p[key] = v
}

// ApplyOverrides deep-merges caller overrides into a copy of the payload;
// override values win at every depth. Nested objects merge key by key,
// everything else replaces. Neither p nor any map it shares with the
// caller's request is modified.
func ApplyOverrides(p Payload, overrides map[string]any) (Payload, error) {
	if len(overrides) == 0 {
		return p, nil
	}

	dst, err := copyMap(p)
	if err != nil {
		return nil, fmt.Errorf("copying provider payload: %w", err)
	}
	src, err := copyMap(overrides)
	if err != nil {
		return nil, fmt.Errorf("copying provider overrides: %w", err)
	}
	dropShadowedKeys(dst, src)

	if err := mergo.Merge(&dst, src, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("applying provider overrides: %w", err)
	}
	return Payload(dst), nil
}

// dropShadowedKeys removes values that an override object replaces wholesale,
// so the merge never has to reconcile an object with a scalar or struct.
func dropShadowedKeys(dst, src map[string]any) {
	for k, sv := range src {
		srcObj, ok := sv.(map[string]any)
		if !ok {
			continue
		}
		dstObj, ok := dst[k].(map[string]any)
		if !ok {
			delete(dst, k)
			continue
		}
		dropShadowedKeys(dstObj, srcObj)
	}
}

func copyMap(m map[string]any) (map[string]any, error) {
	if m == nil {
		return map[string]any{}, nil
	}
	copied, err := copystructure.Copy(m)
	if err != nil {
		return nil, err
	}
	return copied.(map[string]any), nil
}
