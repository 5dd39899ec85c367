package figma

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// fileKeyPattern matches the opaque key segment of a design-file URL.
var fileKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// FileRef identifies a design file and optionally a node within it.
type FileRef struct {
	FileKey string
	NodeID  string
}

// ParseFileURL extracts the file key and node id from a design-file URL.
// Both the /file/ and /design/ URL forms are accepted, as is a bare file
// key. The node-id query parameter's "1-2" form is normalized to the API's
// "1:2" form.
func ParseFileURL(raw string) (FileRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FileRef{}, fmt.Errorf("empty URL")
	}

	// Bare file key.
	if !strings.Contains(raw, "/") && fileKeyPattern.MatchString(raw) {
		return FileRef{FileKey: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return FileRef{}, fmt.Errorf("invalid URL %q: %w", raw, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	key := ""
	for i, seg := range segments {
		if (seg == "file" || seg == "design") && i+1 < len(segments) {
			key = segments[i+1]
			break
		}
	}
	if key == "" || !fileKeyPattern.MatchString(key) {
		return FileRef{}, fmt.Errorf("no file key found in URL %q", raw)
	}

	ref := FileRef{FileKey: key}
	if nodeID := u.Query().Get("node-id"); nodeID != "" {
		ref.NodeID = strings.ReplaceAll(nodeID, "-", ":")
	}
	return ref, nil
}
