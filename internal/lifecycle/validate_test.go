package lifecycle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowdesk/wacrm/internal/domain"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "order_shipped_v2", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "uppercase", input: "Order_Shipped", wantErr: true},
		{name: "spaces", input: "order shipped", wantErr: true},
		{name: "hyphen", input: "order-shipped", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 513), wantErr: true},
		{name: "max length", input: strings.Repeat("a", 512), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateComponents(t *testing.T) {
	body := func(text string, example ...string) domain.Component {
		return domain.Component{Type: domain.ComponentTypeBody, Text: text, Example: example}
	}

	tests := []struct {
		name       string
		components []domain.Component
		wantErr    string
	}{
		{
			name:       "body only",
			components: []domain.Component{body("Hello")},
		},
		{
			name: "full template",
			components: []domain.Component{
				{Type: domain.ComponentTypeHeader, Format: "TEXT", Text: "Order update"},
				body("Your order {{1}} has shipped", "12345"),
				{Type: domain.ComponentTypeFooter, Text: "Reply STOP to opt out"},
				{Type: domain.ComponentTypeButtons, Buttons: []domain.Button{
					{Type: "URL", Text: "Track order", URL: "https://example.com/track"},
				}},
			},
		},
		{
			name:       "empty",
			components: nil,
			wantErr:    "at least one component",
		},
		{
			name: "no body",
			components: []domain.Component{
				{Type: domain.ComponentTypeFooter, Text: "bye"},
			},
			wantErr: "exactly one body",
		},
		{
			name:       "two bodies",
			components: []domain.Component{body("one"), body("two")},
			wantErr:    "exactly one body",
		},
		{
			name:       "body text required",
			components: []domain.Component{{Type: domain.ComponentTypeBody}},
			wantErr:    "body text is required",
		},
		{
			name:       "body too long",
			components: []domain.Component{body(strings.Repeat("a", 1025))},
			wantErr:    "exceeds 1024",
		},
		{
			name: "two footers",
			components: []domain.Component{
				body("hi"),
				{Type: domain.ComponentTypeFooter, Text: "a"},
				{Type: domain.ComponentTypeFooter, Text: "b"},
			},
			wantErr: "at most one FOOTER",
		},
		{
			name: "header text too long",
			components: []domain.Component{
				{Type: domain.ComponentTypeHeader, Format: "TEXT", Text: strings.Repeat("a", 61)},
				body("hi"),
			},
			wantErr: "header text exceeds 60",
		},
		{
			name: "empty buttons component",
			components: []domain.Component{
				body("hi"),
				{Type: domain.ComponentTypeButtons},
			},
			wantErr: "without buttons",
		},
		{
			name: "button missing text",
			components: []domain.Component{
				body("hi"),
				{Type: domain.ComponentTypeButtons, Buttons: []domain.Button{{Type: "QUICK_REPLY"}}},
			},
			wantErr: "requires a type and text",
		},
		{
			name:       "unknown component type",
			components: []domain.Component{{Type: "CAROUSEL"}},
			wantErr:    "unknown type",
		},
		{
			name:       "placeholders start at one",
			components: []domain.Component{body("Hi {{2}}", "a", "b")},
			wantErr:    "{{1}} is missing",
		},
		{
			name:       "placeholder gap",
			components: []domain.Component{body("Hi {{1}} and {{3}}", "a", "b", "c")},
			wantErr:    "{{2}} is missing",
		},
		{
			name:       "example count mismatch",
			components: []domain.Component{body("Hi {{1}} and {{2}}", "only-one")},
			wantErr:    "2 placeholder(s) but 1 example value(s)",
		},
		{
			name:       "examples without placeholders",
			components: []domain.Component{body("Hi there", "ghost")},
			wantErr:    "example values but no placeholders",
		},
		{
			name:       "repeated placeholder",
			components: []domain.Component{body("{{1}} and {{1}} again", "a")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateComponents(tt.components)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
