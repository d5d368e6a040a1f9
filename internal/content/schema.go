package content

import (
	"fmt"
	"strings"
)

// ValidationError reports a section payload that does not satisfy the schema
// for its declared type.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var validators = map[Type]func(map[string]any) error{
	TypeHero:          validateHero,
	TypeFeatures:      validateItemCollection,
	TypeGrid:          validateItemCollection,
	TypeCTA:           validateCTA,
	TypeText:          validateText,
	TypeTextWithImage: validateTextWithImage,
	TypePricing:       validatePricing,
	TypeFAQ:           validateFAQ,
	TypeContactForm:   validateContactForm,
}

// Validate checks payload against the schema for the given section type.
// It returns a *ValidationError naming the offending field; it never
// coerces or rewrites the payload.
func Validate(t Type, payload map[string]any) error {
	validate, ok := validators[t]
	if !ok {
		return invalid("type", "unknown section type %q", string(t))
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return validate(payload)
}

func validateHero(p map[string]any) error {
	if err := requireString(p, "heading"); err != nil {
		return err
	}
	for _, key := range []string{"subheading", "backgroundImage"} {
		if err := optionalString(p, key); err != nil {
			return err
		}
	}
	if err := optionalBool(p, "backgroundOverlay"); err != nil {
		return err
	}
	if err := optionalEnum(p, "textAlignment", "left", "center", "right"); err != nil {
		return err
	}
	return requireCTAPair(p, false)
}

// validateItemCollection covers FEATURES and GRID, which share a schema.
func validateItemCollection(p map[string]any) error {
	for _, key := range []string{"heading", "subheading"} {
		if err := optionalString(p, key); err != nil {
			return err
		}
	}
	key := "items"
	if _, ok := p[key]; !ok {
		if _, ok := p["features"]; ok {
			key = "features"
		}
	}
	items, err := requireObjectSlice(p, key)
	if err != nil {
		return err
	}
	for i, item := range items {
		field := fmt.Sprintf("%s[%d]", key, i)
		if err := requireString(item, "title"); err != nil {
			return prefixField(field, err)
		}
		for _, k := range []string{"description", "icon"} {
			if err := optionalString(item, k); err != nil {
				return prefixField(field, err)
			}
		}
	}
	if err := optionalPositiveInt(p, "columns"); err != nil {
		return err
	}
	return optionalEnum(p, "layout", "grid", "cards")
}

func validateCTA(p map[string]any) error {
	if err := requireString(p, "heading"); err != nil {
		return err
	}
	if err := optionalString(p, "subheading"); err != nil {
		return err
	}
	return requireCTAPair(p, true)
}

func validateText(p map[string]any) error {
	if err := optionalString(p, "heading"); err != nil {
		return err
	}
	return requireString(p, "content")
}

func validateTextWithImage(p map[string]any) error {
	if err := validateText(p); err != nil {
		return err
	}
	if err := optionalString(p, "image"); err != nil {
		return err
	}
	return optionalEnum(p, "imagePosition", "left", "right")
}

func validatePricing(p map[string]any) error {
	plans, err := requireObjectSlice(p, "plans")
	if err != nil {
		return err
	}
	highlighted := 0
	for i, plan := range plans {
		field := fmt.Sprintf("plans[%d]", i)
		for _, k := range []string{"name", "price"} {
			if err := requireString(plan, k); err != nil {
				return prefixField(field, err)
			}
		}
		for _, k := range []string{"period", "ctaText", "ctaLink"} {
			if err := optionalString(plan, k); err != nil {
				return prefixField(field, err)
			}
		}
		if err := optionalStringSlice(plan, "features"); err != nil {
			return prefixField(field, err)
		}
		if err := optionalBool(plan, "highlighted"); err != nil {
			return prefixField(field, err)
		}
		if flag, _ := plan["highlighted"].(bool); flag {
			highlighted++
		}
	}
	if highlighted > 1 {
		return invalid("plans", "at most one plan may be highlighted, found %d", highlighted)
	}
	return nil
}

func validateFAQ(p map[string]any) error {
	items, err := requireObjectSlice(p, "items")
	if err != nil {
		return err
	}
	for i, item := range items {
		field := fmt.Sprintf("items[%d]", i)
		for _, k := range []string{"question", "answer"} {
			if err := requireString(item, k); err != nil {
				return prefixField(field, err)
			}
		}
	}
	return nil
}

func validateContactForm(p map[string]any) error {
	fields, err := requireObjectSlice(p, "formFields")
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		field := fmt.Sprintf("formFields[%d]", i)
		for _, k := range []string{"name", "label", "type"} {
			if err := requireString(f, k); err != nil {
				return prefixField(field, err)
			}
		}
		if err := optionalBool(f, "required"); err != nil {
			return prefixField(field, err)
		}
		name := f["name"].(string)
		if seen[name] {
			return invalid("formFields", "field name %q appears more than once", name)
		}
		seen[name] = true
	}
	return nil
}

// requireCTAPair enforces that ctaText and ctaLink appear together. When
// required is false the pair may be absent entirely.
func requireCTAPair(p map[string]any, required bool) error {
	for _, key := range []string{"ctaText", "ctaLink"} {
		if err := optionalString(p, key); err != nil {
			return err
		}
	}
	_, hasText := p["ctaText"]
	_, hasLink := p["ctaLink"]
	switch {
	case required && !hasText:
		return invalid("ctaText", "is required")
	case required && !hasLink:
		return invalid("ctaLink", "is required")
	case hasText && !hasLink:
		return invalid("ctaLink", "is required when ctaText is set")
	case hasLink && !hasText:
		return invalid("ctaText", "is required when ctaLink is set")
	}
	return nil
}

func requireString(p map[string]any, key string) error {
	raw, ok := p[key]
	if !ok {
		return invalid(key, "is required")
	}
	s, ok := raw.(string)
	if !ok {
		return invalid(key, "must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return invalid(key, "must not be empty")
	}
	return nil
}

func optionalString(p map[string]any, key string) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	if _, ok := raw.(string); !ok {
		return invalid(key, "must be a string")
	}
	return nil
}

func optionalBool(p map[string]any, key string) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	if _, ok := raw.(bool); !ok {
		return invalid(key, "must be a boolean")
	}
	return nil
}

// optionalPositiveInt accepts JSON numbers, which decode as float64.
func optionalPositiveInt(p map[string]any, key string) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		if v <= 0 || v != float64(int(v)) {
			return invalid(key, "must be a positive integer")
		}
	case int:
		if v <= 0 {
			return invalid(key, "must be a positive integer")
		}
	default:
		return invalid(key, "must be a positive integer")
	}
	return nil
}

func optionalEnum(p map[string]any, key string, allowed ...string) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return invalid(key, "must be a string")
	}
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return invalid(key, "must be one of %s", strings.Join(allowed, "|"))
}

func requireObjectSlice(p map[string]any, key string) ([]map[string]any, error) {
	raw, ok := p[key]
	if !ok {
		return nil, invalid(key, "is required")
	}
	list, ok := raw.([]any)
	if !ok {
		if typed, ok := raw.([]map[string]any); ok {
			if len(typed) == 0 {
				return nil, invalid(key, "must not be empty")
			}
			return typed, nil
		}
		return nil, invalid(key, "must be an array of objects")
	}
	if len(list) == 0 {
		return nil, invalid(key, "must not be empty")
	}
	items := make([]map[string]any, 0, len(list))
	for i, raw := range list {
		item, ok := raw.(map[string]any)
		if !ok {
			return nil, invalid(fmt.Sprintf("%s[%d]", key, i), "must be an object")
		}
		items = append(items, item)
	}
	return items, nil
}

func optionalStringSlice(p map[string]any, key string) error {
	raw, ok := p[key]
	if !ok {
		return nil
	}
	switch list := raw.(type) {
	case []string:
		return nil
	case []any:
		for i, entry := range list {
			if _, ok := entry.(string); !ok {
				return invalid(fmt.Sprintf("%s[%d]", key, i), "must be a string")
			}
		}
		return nil
	default:
		return invalid(key, "must be an array of strings")
	}
}

func prefixField(prefix string, err error) error {
	verr, ok := err.(*ValidationError)
	if !ok {
		return err
	}
	return &ValidationError{Field: prefix + "." + verr.Field, Message: verr.Message}
}
