package handler

import "testing"

func TestNormalizeReport_PrefersCapitalizedKeys(t *testing.T) {
	req := normalizeReport(map[string]any{
		"Name": "Jane", "name": "ignored",
		"Grade": "5", "Type": "Bullying",
		"Description": "desc", "Date": "2024-01-01",
	})
	if req.Name != "Jane" {
		t.Fatalf("Name = %q, want %q", req.Name, "Jane")
	}
}

func TestNormalizeReport_FallsBackToLowercase(t *testing.T) {
	req := normalizeReport(map[string]any{
		"name": "Jane", "grade": "5", "type": "Bullying",
		"description": "desc", "date": "2024-01-01",
	})
	if req.Name != "Jane" || req.Grade != "5" || req.Type != "Bullying" {
		t.Fatalf("unexpected normalization: %+v", req)
	}
}

func TestNormalizeReport_EmptyCapitalizedFallsThrough(t *testing.T) {
	// A present-but-empty capitalized key must not shadow a usable
	// lowercase one.
	req := normalizeReport(map[string]any{
		"Name": "", "name": "Jane",
		"grade": "5", "type": "T", "description": "d", "date": "2024-01-01",
	})
	if req.Name != "Jane" {
		t.Fatalf("Name = %q, want fallback to lowercase key", req.Name)
	}
}

func TestNormalizeReport_CodenameOptional(t *testing.T) {
	req := normalizeReport(map[string]any{"name": "Jane"})
	if req.Codename != nil {
		t.Fatalf("absent codename must stay nil, got %v", *req.Codename)
	}

	req = normalizeReport(map[string]any{"Codename": "RedFox"})
	if req.Codename == nil || *req.Codename != "RedFox" {
		t.Fatalf("unexpected codename: %v", req.Codename)
	}
}

func TestStringify_Truthiness(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"zero number", float64(0), ""},
		{"false", false, ""},
		{"string", "5", "5"},
		{"integer number", float64(5), "5"},
		{"fractional number", float64(5.5), "5.5"},
		{"true", true, "true"},
	}
	for _, tc := range cases {
		if got := stringify(tc.in); got != tc.want {
			t.Errorf("%s: stringify(%v) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSignup(t *testing.T) {
	req := normalizeSignup(map[string]any{
		"Role": "teacher", "firstname": "Jane", "Lastname": "Doe",
		"username": "jdoe", "Email": "jdoe@example.com", "password": "pw",
	})
	if req.Role != "teacher" || req.Firstname != "Jane" || req.Lastname != "Doe" ||
		req.Username != "jdoe" || req.Email != "jdoe@example.com" || req.Password != "pw" {
		t.Fatalf("unexpected normalization: %+v", req)
	}
}

func TestNormalizeSignup_UnknownKeysIgnored(t *testing.T) {
	req := normalizeSignup(map[string]any{
		"username": "jdoe", "status": "admin", "id": float64(99),
	})
	if req.Username != "jdoe" {
		t.Fatalf("Username = %q", req.Username)
	}
	if req.Role != "" || req.Password != "" {
		t.Fatalf("unexpected fields populated: %+v", req)
	}
}
