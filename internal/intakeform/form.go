package intakeform

import "fmt"

// FieldType enumerates the renderable input kinds.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldDate     FieldType = "date"
)

// Condition gates a field on another field's current response: the field is
// only presented while the referenced field's answer equals Value.
type Condition struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Field is one typed input inside a section.
type Field struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Type        FieldType  `json:"type"`
	Required    bool       `json:"required"`
	Options     []string   `json:"options,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Conditional *Condition `json:"conditional,omitempty"`
}

// Section is an ordered group of fields rendered as one wizard step.
type Section struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Template is one named intake form for a practice type and variant.
type Template struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"` // quick | comprehensive
	Sections    []Section `json:"sections"`
}

var validFieldTypes = map[FieldType]bool{
	FieldText: true, FieldTextarea: true, FieldSelect: true,
	FieldRadio: true, FieldCheckbox: true, FieldDate: true,
}

// Validate checks the structural invariants of a template: unique field ids,
// known field types, options present where the type demands them, and
// conditionals referencing only fields declared earlier (same or earlier
// section), so visibility can be resolved in a single forward pass.
func (t *Template) Validate() error {
	seen := map[string]bool{}
	for _, section := range t.Sections {
		if section.ID == "" {
			return fmt.Errorf("template %s: section with empty id", t.Key)
		}
		for _, f := range section.Fields {
			if f.ID == "" {
				return fmt.Errorf("template %s: field with empty id in section %s", t.Key, section.ID)
			}
			if seen[f.ID] {
				return fmt.Errorf("template %s: duplicate field id %s", t.Key, f.ID)
			}
			if !validFieldTypes[f.Type] {
				return fmt.Errorf("template %s: field %s has unknown type %q", t.Key, f.ID, f.Type)
			}
			switch f.Type {
			case FieldSelect, FieldRadio, FieldCheckbox:
				if len(f.Options) == 0 {
					return fmt.Errorf("template %s: field %s of type %s has no options", t.Key, f.ID, f.Type)
				}
			}
			if f.Conditional != nil {
				if !seen[f.Conditional.Field] {
					return fmt.Errorf("template %s: field %s conditional references %s, which is not declared earlier",
						t.Key, f.ID, f.Conditional.Field)
				}
			}
			seen[f.ID] = true
		}
	}
	return nil
}

// FieldByID returns the field with the given id, searching sections in order.
func (t *Template) FieldByID(id string) (Field, bool) {
	for _, section := range t.Sections {
		for _, f := range section.Fields {
			if f.ID == id {
				return f, true
			}
		}
	}
	return Field{}, false
}

// Visible reports whether a field should be rendered and collected given the
// current responses. Unconditional fields are always visible; conditional
// fields only while the controlling field's answer equals the expected value.
func (f Field) Visible(responses Values) bool {
	if f.Conditional == nil {
		return true
	}
	return responses[f.Conditional.Field].Equals(f.Conditional.Value)
}

// Variants.
const (
	VariantQuick         = "quick"
	VariantComprehensive = "comprehensive"
)

// ByPracticeType resolves a template. Resolution order: exact
// (practiceType, variant) key, then (practiceType, quick), then the
// therapy quick template. It never fails.
func ByPracticeType(practiceType, variant string) *Template {
	if variant == "" {
		variant = VariantQuick
	}
	if t, ok := templates[practiceType+"_"+variant]; ok {
		return t
	}
	if t, ok := templates[practiceType+"_"+VariantQuick]; ok {
		return t
	}
	return templates["therapy_quick"]
}

// Quick returns the quick intake template for a practice type.
func Quick(practiceType string) *Template {
	return ByPracticeType(practiceType, VariantQuick)
}

// Comprehensive returns the deep-dive template for a practice type, falling
// back per ByPracticeType when the practice type has none.
func Comprehensive(practiceType string) *Template {
	return ByPracticeType(practiceType, VariantComprehensive)
}

func init() {
	for key, t := range templates {
		t.Key = key
		if err := t.Validate(); err != nil {
			panic(err)
		}
	}
}
