package client

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateResumeIDs(t *testing.T) {
	cases := []struct {
		name    string
		count   int
		wantErr bool
		wantMsg string
	}{
		{"empty", 0, true, "at least 2"},
		{"one", 1, true, "at least 2"},
		{"two", 2, false, ""},
		{"five", 5, false, ""},
		{"six", 6, true, "more than 5"},
		{"ten", 10, true, "more than 5"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ids := make([]string, c.count)
			for i := range ids {
				ids[i] = "r"
			}

			err := ValidateResumeIDs(ids)
			if !c.wantErr {
				if err != nil {
					t.Fatalf("ValidateResumeIDs(%d ids) = %v; want nil", c.count, err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateResumeIDs(%d ids) = nil; want error", c.count)
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) || apiErr.Kind != KindValidation {
				t.Fatalf("error = %#v; want validation kind", err)
			}
			if !strings.Contains(apiErr.Message, c.wantMsg) {
				t.Fatalf("message %q does not mention %q", apiErr.Message, c.wantMsg)
			}
		})
	}
}

func TestNormalizeSynonyms(t *testing.T) {
	got, err := NormalizeSynonyms([]string{" react.js ", "", "  ", "reactjs"})
	if err != nil {
		t.Fatalf("NormalizeSynonyms error: %v", err)
	}
	want := []string{"react.js", "reactjs"}
	if len(got) != len(want) {
		t.Fatalf("got %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v; want %v", got, want)
		}
	}

	if _, err := NormalizeSynonyms([]string{"", "   "}); err == nil {
		t.Fatalf("all-blank synonyms should fail validation")
	}
}

func TestValidateSynonymPayload(t *testing.T) {
	base := SynonymPayload{
		OrganizationID: "acme",
		Skill:          " React ",
		Synonyms:       []string{"react.js"},
		Context:        "web_framework",
		Active:         true,
	}

	got, err := ValidateSynonymPayload(base)
	if err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if got.Skill != "React" {
		t.Fatalf("skill not trimmed: %q", got.Skill)
	}

	bad := base
	bad.Context = "framework"
	if _, err := ValidateSynonymPayload(bad); err == nil {
		t.Fatalf("unknown context accepted")
	}

	bad = base
	bad.Skill = "  "
	if _, err := ValidateSynonymPayload(bad); err == nil {
		t.Fatalf("blank skill accepted")
	}

	bad = base
	bad.OrganizationID = ""
	if _, err := ValidateSynonymPayload(bad); err == nil {
		t.Fatalf("missing organization accepted")
	}
}
