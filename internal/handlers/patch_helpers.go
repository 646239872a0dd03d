package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// patchBody is the explicit partial-update shape used by every PATCH
// endpoint: each mutable attribute is a distinct key with its own typed
// decode, unknown keys are rejected, and a JSON null stays distinguishable
// from an absent key (needed to clear nullable references like a menu
// item's category).
type patchBody map[string]json.RawMessage

func bindPatch(c *gin.Context, allowed ...string) (patchBody, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	var body patchBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = true
	}

	for key := range body {
		if !allowedSet[key] {
			return nil, fmt.Errorf("unknown field %q", key)
		}
	}

	return body, nil
}

func (p patchBody) has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p patchBody) isNull(key string) bool {
	raw, ok := p[key]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// field decodes a present, non-null key into out. The caller has already
// checked presence.
func (p patchBody) field(key string, out any) error {
	return json.Unmarshal(p[key], out)
}
