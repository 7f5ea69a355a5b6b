package notes

import (
	"errors"
	"fmt"
)

// ErrConfigurationAbsent reports that no template configuration document was
// supplied at all, making resolution and rendering impossible.
var ErrConfigurationAbsent = errors.New("notes: template configuration is required")

// MissingFieldError reports an absent mandatory builder input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("notes: missing required field %q", e.Field)
}

// TemplateNotFoundError reports that a reference named a template with no
// matching definition in the configuration.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("notes: template %q not found in configuration", e.Name)
}

// VariantNotFoundError reports that an explicitly requested variant does not
// exist for the resolved template. Explicit requests never fall back to the
// base definition.
type VariantNotFoundError struct {
	Variant  string
	Template string
}

func (e *VariantNotFoundError) Error() string {
	return fmt.Sprintf("notes: variant %q not found for template %q", e.Variant, e.Template)
}

// ValidationFailedError reports that validation produced error-severity
// issues while fail-on-errors was set. Rendering is never attempted.
type ValidationFailedError struct {
	Errors int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("notes: validation failed with %d errors", e.Errors)
}
