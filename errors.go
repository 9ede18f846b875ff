package adt

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUndefinedRequired = "undefined_required"
	CodeUnhandledTag      = "unhandled_tag"
	CodeTagMissing        = "tag_missing"
	CodeTagUnknown        = "tag_unknown"
	CodeInvalidType       = "invalid_type"
	CodeRequired          = "required"
	CodeUnknownKey        = "unknown_key"
	CodeMissingField      = "missing_field"
	CodeEmptyVariantName  = "empty_variant_name"
	CodeDuplicateVariant  = "duplicate_variant"
	CodeDuplicateField    = "duplicate_field"
	CodeTypeMarkerCall    = "type_marker_call"
	CodeUnknownDerive     = "unknown_derive"
	CodeEncodeError       = "encode_error"
	CodeParseError        = "parse_error"
	// Manifest compiler (cmd/adt)
	CodeManifestInvalid = "manifest_invalid"
)

// Issue represents a single failure entry.
type Issue struct {
	Path    string // Slash path into the offending value (for example: /tag, /fields/x).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, the offending tag name, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"tag":"Just"}) for i18n and
	// observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unhandled_tag at /tag
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
