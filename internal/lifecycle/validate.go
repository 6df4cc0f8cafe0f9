package lifecycle

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/flowdesk/wacrm/internal/domain"
)

const (
	maxNameLength       = 512
	maxBodyTextLength   = 1024
	maxHeaderTextLength = 60
	maxFooterTextLength = 60
	maxButtonCount      = 10
)

var (
	namePattern        = regexp.MustCompile(`^[a-z0-9_]+$`)
	placeholderPattern = regexp.MustCompile(`\{\{(\d+)\}\}`)
)

// validateName checks the template name against Meta's naming rules
func validateName(name string) error {
	if name == "" {
		return &domain.ValidationError{Reason: "name is required"}
	}
	if len(name) > maxNameLength {
		return &domain.ValidationError{Reason: fmt.Sprintf("name exceeds %d characters", maxNameLength)}
	}
	if !namePattern.MatchString(name) {
		return &domain.ValidationError{Reason: "name must contain only lowercase letters, digits and underscores"}
	}
	return nil
}

// validateComponents checks the structural rules a template must satisfy
// before it can be submitted: exactly one body, at most one of each other
// component type, contiguous placeholder numbering starting at {{1}}, and
// example values matching the declared placeholders.
func validateComponents(components []domain.Component) error {
	if len(components) == 0 {
		return &domain.ValidationError{Reason: "at least one component is required"}
	}

	counts := map[domain.ComponentType]int{}
	for i, comp := range components {
		counts[comp.Type]++

		switch comp.Type {
		case domain.ComponentTypeBody:
			if comp.Text == "" {
				return &domain.ValidationError{Reason: "body text is required"}
			}
			if len(comp.Text) > maxBodyTextLength {
				return &domain.ValidationError{Reason: fmt.Sprintf("body text exceeds %d characters", maxBodyTextLength)}
			}
		case domain.ComponentTypeHeader:
			if comp.Format == "" || comp.Format == "TEXT" {
				if len(comp.Text) > maxHeaderTextLength {
					return &domain.ValidationError{Reason: fmt.Sprintf("header text exceeds %d characters", maxHeaderTextLength)}
				}
			}
		case domain.ComponentTypeFooter:
			if len(comp.Text) > maxFooterTextLength {
				return &domain.ValidationError{Reason: fmt.Sprintf("footer text exceeds %d characters", maxFooterTextLength)}
			}
		case domain.ComponentTypeButtons:
			if len(comp.Buttons) == 0 {
				return &domain.ValidationError{Reason: "buttons component declared without buttons"}
			}
			if len(comp.Buttons) > maxButtonCount {
				return &domain.ValidationError{Reason: fmt.Sprintf("at most %d buttons are allowed", maxButtonCount)}
			}
			for _, btn := range comp.Buttons {
				if btn.Type == "" || btn.Text == "" {
					return &domain.ValidationError{Reason: "every button requires a type and text"}
				}
			}
		default:
			return &domain.ValidationError{Reason: fmt.Sprintf("component %d has unknown type %q", i, comp.Type)}
		}

		if err := validatePlaceholders(comp); err != nil {
			return err
		}
	}

	if counts[domain.ComponentTypeBody] != 1 {
		return &domain.ValidationError{Reason: "exactly one body component is required"}
	}
	for _, t := range []domain.ComponentType{domain.ComponentTypeHeader, domain.ComponentTypeFooter, domain.ComponentTypeButtons} {
		if counts[t] > 1 {
			return &domain.ValidationError{Reason: fmt.Sprintf("at most one %s component is allowed", t)}
		}
	}

	return nil
}

// validatePlaceholders checks that {{n}} references in a component's text are
// numbered contiguously from 1 and that the example values line up with them
func validatePlaceholders(comp domain.Component) error {
	matches := placeholderPattern.FindAllStringSubmatch(comp.Text, -1)

	seen := map[int]bool{}
	highest := 0
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return &domain.ValidationError{Reason: fmt.Sprintf("invalid placeholder %q in %s", m[0], comp.Type)}
		}
		seen[n] = true
		if n > highest {
			highest = n
		}
	}

	for n := 1; n <= highest; n++ {
		if !seen[n] {
			return &domain.ValidationError{Reason: fmt.Sprintf("%s placeholders must be contiguous from {{1}}; {{%d}} is missing", comp.Type, n)}
		}
	}

	if highest > 0 && len(comp.Example) != highest {
		return &domain.ValidationError{Reason: fmt.Sprintf("%s declares %d placeholder(s) but %d example value(s)", comp.Type, highest, len(comp.Example))}
	}
	if highest == 0 && len(comp.Example) > 0 {
		return &domain.ValidationError{Reason: fmt.Sprintf("%s has example values but no placeholders", comp.Type)}
	}

	return nil
}
