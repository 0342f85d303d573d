// Package viewmode defines the explicit view mode for the registration
// timeline. The mode is decided once at the routing layer and injected
// down; leaf components never re-derive it from ambient state.
package viewmode

import "strings"

// Mode determines whether the registration timeline is presented with
// write affordances or as a read-only projection.
type Mode string

const (
	ModeEditable Mode = "editable"
	ModeReadOnly Mode = "read_only"
)

// postSalesMarker is the path segment that identifies the post-sales
// viewing context, which is always read-only.
const postSalesMarker = "post-sales"

// IsValid checks if the Mode is valid
func (m Mode) IsValid() bool {
	switch m {
	case ModeEditable, ModeReadOnly:
		return true
	}
	return false
}

// ReadOnly reports whether the mode forbids mutations.
func (m Mode) ReadOnly() bool {
	return m == ModeReadOnly
}

// ResolveFromPath maps a navigation context path to a Mode. A path that
// contains the post-sales marker (case-insensitive) resolves to read-only;
// everything else is editable. This is the boundary adapter between legacy
// path-based routing and the explicit Mode enum.
func ResolveFromPath(contextPath string) Mode {
	if strings.Contains(strings.ToLower(contextPath), postSalesMarker) {
		return ModeReadOnly
	}
	return ModeEditable
}
