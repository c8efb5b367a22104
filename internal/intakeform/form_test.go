package intakeform

import (
	"encoding/json"
	"testing"
)

func TestByPracticeType_ExactMatch(t *testing.T) {
	tmpl := ByPracticeType("therapy", "quick")
	if tmpl.Type != VariantQuick {
		t.Errorf("expected quick, got %s", tmpl.Type)
	}
	if tmpl.Name != "Therapy Intake Form" {
		t.Errorf("unexpected template: %s", tmpl.Name)
	}
}

func TestByPracticeType_ComprehensiveVariant(t *testing.T) {
	tmpl := ByPracticeType("therapy", "comprehensive")
	if tmpl.Type != VariantComprehensive {
		t.Errorf("expected comprehensive, got %s", tmpl.Type)
	}
}

func TestByPracticeType_VariantFallsBackToQuick(t *testing.T) {
	// training has no comprehensive form
	tmpl := ByPracticeType("training", "comprehensive")
	if tmpl.Name != "Training Intake Form" {
		t.Errorf("expected training quick fallback, got %s", tmpl.Name)
	}
}

func TestByPracticeType_UnknownFallsBackToTherapyQuick(t *testing.T) {
	tmpl := ByPracticeType("unknown_type", "")
	if tmpl.Name != "Therapy Intake Form" || tmpl.Type != VariantQuick {
		t.Errorf("expected therapy quick, got %s/%s", tmpl.Name, tmpl.Type)
	}
}

func TestTemplate_ValidateBuiltins(t *testing.T) {
	for key, tmpl := range templates {
		if err := tmpl.Validate(); err != nil {
			t.Errorf("built-in template %s invalid: %v", key, err)
		}
	}
}

func TestTemplate_ValidateForwardConditional(t *testing.T) {
	tmpl := &Template{
		Key:  "bad",
		Type: VariantQuick,
		Sections: []Section{{
			ID: "s1", Title: "S1",
			Fields: []Field{
				{ID: "a", Label: "A", Type: FieldTextarea, Conditional: &Condition{Field: "b", Value: "Yes"}},
				{ID: "b", Label: "B", Type: FieldRadio, Options: []string{"Yes", "No"}},
			},
		}},
	}
	if err := tmpl.Validate(); err == nil {
		t.Error("expected error for forward conditional reference")
	}
}

func TestTemplate_ValidateMissingOptions(t *testing.T) {
	tmpl := &Template{
		Key:  "bad",
		Type: VariantQuick,
		Sections: []Section{{
			ID: "s1", Title: "S1",
			Fields: []Field{{ID: "a", Label: "A", Type: FieldSelect}},
		}},
	}
	if err := tmpl.Validate(); err == nil {
		t.Error("expected error for select field without options")
	}
}

func TestTemplate_ValidateDuplicateID(t *testing.T) {
	tmpl := &Template{
		Key:  "bad",
		Type: VariantQuick,
		Sections: []Section{{
			ID: "s1", Title: "S1",
			Fields: []Field{
				{ID: "a", Label: "A", Type: FieldText},
				{ID: "a", Label: "A again", Type: FieldText},
			},
		}},
	}
	if err := tmpl.Validate(); err == nil {
		t.Error("expected error for duplicate field id")
	}
}

func TestField_Visible(t *testing.T) {
	tmpl := ByPracticeType("therapy", "quick")
	details, ok := tmpl.FieldByID("urgent_details")
	if !ok {
		t.Fatal("urgent_details not found")
	}

	responses := Values{"urgent_concerns": String("No")}
	if details.Visible(responses) {
		t.Error("urgent_details should be hidden when urgent_concerns is No")
	}

	responses["urgent_concerns"] = String("Yes")
	if !details.Visible(responses) {
		t.Error("urgent_details should be visible when urgent_concerns is Yes")
	}

	name, _ := tmpl.FieldByID("preferred_name")
	if !name.Visible(Values{}) {
		t.Error("unconditional field should always be visible")
	}
}

func TestValue_JSONRoundTrip(t *testing.T) {
	in := Values{
		"name":  String("Ada"),
		"score": Number(3),
		"days":  List([]string{"Monday", "Friday"}),
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Values
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out["name"].Equals("Ada") {
		t.Error("string value lost in round trip")
	}
	if n, ok := out["score"].Float(); !ok || n != 3 {
		t.Errorf("number value lost in round trip: %v %v", n, ok)
	}
	if out["days"].Text() != "Monday, Friday" {
		t.Errorf("list value lost in round trip: %q", out["days"].Text())
	}
}

func TestValue_Empty(t *testing.T) {
	if !String("").IsEmpty() {
		t.Error("empty string should be empty")
	}
	if !List(nil).IsEmpty() {
		t.Error("empty list should be empty")
	}
	if (Value{}).IsEmpty() != true {
		t.Error("zero value should be empty")
	}
	if Number(0).IsEmpty() {
		t.Error("zero number is a valid answer, not empty")
	}
}

func TestValues_MergeAndClone(t *testing.T) {
	base := Values{"a": String("1"), "b": String("2")}
	base.Merge(Values{"b": String("changed"), "c": String("3")})
	if !base["a"].Equals("1") || !base["b"].Equals("changed") || !base["c"].Equals("3") {
		t.Errorf("merge produced wrong state: %v", base)
	}

	clone := base.Clone()
	clone["a"] = String("mutated")
	if !base["a"].Equals("1") {
		t.Error("mutating clone affected original")
	}
}
