package validator

import (
	"strings"
	"testing"
)

type sample struct {
	Name   string  `json:"name" validate:"required,max=5"`
	Email  string  `json:"email" validate:"required,email"`
	Type   string  `json:"type" validate:"required,transaction_type"`
	Amount string  `json:"amount" validate:"required,amount"`
	Date   string  `json:"date" validate:"required,calendar_date"`
	Note   *string `json:"note" validate:"omitempty,max=3"`
}

func valid() sample {
	return sample{Name: "abc", Email: "a@b.co", Type: "income", Amount: "10.50", Date: "2026-02-24"}
}

func TestStruct(t *testing.T) {
	t.Run("valid input has no field errors", func(t *testing.T) {
		if fields := Struct(valid()); len(fields) != 0 {
			t.Fatalf("expected no errors, got %v", fields)
		}
	})

	t.Run("reports every failing field by json name", func(t *testing.T) {
		fields := Struct(sample{})
		for _, name := range []string{"name", "email", "type", "amount", "date"} {
			if _, ok := fields[name]; !ok {
				t.Errorf("expected error for %q, got %v", name, fields)
			}
		}
		if _, ok := fields["note"]; ok {
			t.Errorf("optional note should not fail when absent")
		}
		if len(fields) != 5 {
			t.Errorf("expected exactly 5 field errors, got %d: %v", len(fields), fields)
		}
	})

	t.Run("names only the offending fields", func(t *testing.T) {
		in := valid()
		in.Amount = "0"
		in.Type = "transfer"
		fields := Struct(in)
		if len(fields) != 2 {
			t.Fatalf("expected 2 field errors, got %v", fields)
		}
		if !strings.Contains(fields["amount"], "greater than 0") {
			t.Errorf("unexpected amount message %q", fields["amount"])
		}
		if fields["type"] != "The selected type is invalid." {
			t.Errorf("unexpected type message %q", fields["type"])
		}
	})

	t.Run("rule specific messages", func(t *testing.T) {
		note := "long note"
		in := valid()
		in.Name = "toolong"
		in.Email = "invalid-email"
		in.Date = "invalid-date"
		in.Note = &note
		fields := Struct(in)

		want := map[string]string{
			"name":  "The name field must not be greater than 5 characters.",
			"email": "The email field must be a valid email address.",
			"date":  "The date field must be a valid date.",
			"note":  "The note field must not be greater than 3 characters.",
		}
		for k, v := range want {
			if fields[k] != v {
				t.Errorf("field %s: expected %q, got %q", k, v, fields[k])
			}
		}
	})
}

func TestTypeMessage(t *testing.T) {
	got := TypeMessage("user_id", "string")
	if got != "The user id field must be a string." {
		t.Errorf("unexpected message %q", got)
	}
}

func TestStruct_SkipsUntaggedSlice(t *testing.T) {
	type withMistyped struct {
		Name     string   `json:"name" validate:"required"`
		Mistyped []string `json:"-" validate:"-"`
	}
	fields := Struct(withMistyped{Name: "x", Mistyped: []string{"name"}})
	if len(fields) != 0 {
		t.Errorf("expected no field errors, got %v", fields)
	}
}
