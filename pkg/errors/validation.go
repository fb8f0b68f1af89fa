package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateModelPath validates a user-supplied model file path.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 4096 characters
//
// Existence and readability are checked by the caller when opening.
func ValidateModelPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "model path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "model path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "model path contains invalid characters")
		}
	}

	return nil
}

// classNameRegex matches IFC entity class names such as "IfcWallStandardCase".
var classNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ValidateClassName validates an IFC entity class name.
// Matching is case-insensitive elsewhere; here only the shape is checked.
func ValidateClassName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidClass, "class name cannot be empty")
	}

	if !classNameRegex.MatchString(name) {
		return New(ErrCodeInvalidClass, "invalid class name: %q", name)
	}

	if !strings.HasPrefix(strings.ToUpper(name), "IFC") {
		return New(ErrCodeInvalidClass, "class name must start with Ifc: %q", name)
	}

	return nil
}

// attrNameRegex matches IFC attribute names such as "OverallHeight".
var attrNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ValidateAttrName validates an IFC attribute name.
func ValidateAttrName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAttr, "attribute name cannot be empty")
	}

	if !attrNameRegex.MatchString(name) {
		return New(ErrCodeInvalidAttr, "invalid attribute name: %q", name)
	}

	return nil
}

// globalIDRegex matches the 22-character compressed GUID alphabet.
var globalIDRegex = regexp.MustCompile(`^[0-9A-Za-z_$]{22}$`)

// ValidateGlobalID validates the shape of a compressed IFC GlobalId.
// The first character carries only two significant bits, so it must be 0-3.
func ValidateGlobalID(guid string) error {
	if !globalIDRegex.MatchString(guid) {
		return New(ErrCodeInvalidInput, "invalid GlobalId: %q", guid)
	}

	if guid[0] > '3' {
		return New(ErrCodeInvalidInput, "invalid GlobalId (value out of range): %q", guid)
	}

	return nil
}
