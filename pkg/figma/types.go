// Package figma is the remote design-file API client. It materializes the
// design-component collection that the reconciler consumes; the
// reconciliation core itself never talks to the network.
package figma

// DesignComponent is one published component from a design file.
// Records are supplied wholesale per reconciliation run and never mutated.
type DesignComponent struct {
	// ID is the opaque node id, unique within a design file.
	ID string `json:"id"`
	// Name is the human-authored label. May contain path-like separators
	// such as "Group/Variant".
	Name string `json:"name"`
	// Description is free text; may be empty.
	Description string `json:"description"`
	// ComponentSetID references the variant group, when any.
	ComponentSetID string `json:"component_set_id,omitempty"`
}

// DesignStyle is one published style (color, text, effect, grid).
type DesignStyle struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Type is the style kind as reported by the API: FILL, TEXT,
	// EFFECT, or GRID.
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Wire types for the /v1/files endpoints.

type componentsResponse struct {
	Error  bool   `json:"error"`
	Status int    `json:"status"`
	Meta   struct {
		Components []wireComponent `json:"components"`
	} `json:"meta"`
}

type wireComponent struct {
	Key            string `json:"key"`
	NodeID         string `json:"node_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ComponentSetID string `json:"component_set_id"`
}

type stylesResponse struct {
	Error  bool   `json:"error"`
	Status int    `json:"status"`
	Meta   struct {
		Styles []wireStyle `json:"styles"`
	} `json:"meta"`
}

type wireStyle struct {
	Key         string `json:"key"`
	NodeID      string `json:"node_id"`
	StyleType   string `json:"style_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
