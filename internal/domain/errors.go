package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound is returned when a template does not exist
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateNameTaken is returned when an active template with the same
	// tenant, name and language already exists
	ErrTemplateNameTaken = errors.New("an active template with this name and language already exists")

	// ErrApprovedImmutable is returned when attempting an in-place content
	// update on an approved template
	ErrApprovedImmutable = errors.New("approved template content is immutable; archive it or fork a new version")

	// ErrChannelNotFound is returned when a tenant has no WhatsApp channel configured
	ErrChannelNotFound = errors.New("channel not found for tenant")
)

// ConflictError reports a status transition attempted against a template whose
// current status does not satisfy the precondition. It is a client error, not
// a bug: the caller acted on stale state.
type ConflictError struct {
	Current  TemplateStatus
	Expected TemplateStatus
	Op       string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot %s template in status %q (requires %q)", e.Op, e.Current, e.Expected)
}

// NewConflictError builds a ConflictError for the given operation
func NewConflictError(op string, current, expected TemplateStatus) *ConflictError {
	return &ConflictError{Op: op, Current: current, Expected: expected}
}

// TemplateInUseError reports a hard-delete refused because active campaigns
// still reference the template. Campaigns carries the blocking campaign names
// so the caller can self-remediate.
type TemplateInUseError struct {
	Campaigns []string
}

func (e *TemplateInUseError) Error() string {
	return fmt.Sprintf("template is used by %d active campaign(s): %v", len(e.Campaigns), e.Campaigns)
}

// ValidationError reports a structural problem with template content
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "template validation failed: " + e.Reason
}
