package handler

import (
	"fmt"
	"strconv"

	"github.com/swdsms/incident-api/internal/core/ports"
)

// Clients send inconsistently cased payload keys (both "Name" and "name"
// appear in the wild). Each canonical field maps to its accepted keys in
// priority order: the capitalized variant wins, the lowercase one is the
// fallback, and a key whose value is "empty" (see stringify) is skipped so
// the next alias still gets a chance.
type fieldAliases struct {
	canonical string
	aliases   []string
}

var signupFields = []fieldAliases{
	{"role", []string{"Role", "role"}},
	{"firstname", []string{"Firstname", "firstname"}},
	{"lastname", []string{"Lastname", "lastname"}},
	{"username", []string{"Username", "username"}},
	{"email", []string{"Email", "email"}},
	{"password", []string{"Password", "password"}},
}

var reportFields = []fieldAliases{
	{"name", []string{"Name", "name"}},
	{"codename", []string{"Codename", "codename"}},
	{"grade", []string{"Grade", "grade"}},
	{"type", []string{"Type", "type"}},
	{"description", []string{"Description", "description"}},
	{"date", []string{"Date", "date"}},
}

// normalizePayload resolves a raw payload against an alias table. Fields
// with no usable value are simply absent from the result.
func normalizePayload(payload map[string]any, fields []fieldAliases) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		for _, key := range f.aliases {
			if v, ok := payload[key]; ok {
				if s := stringify(v); s != "" {
					out[f.canonical] = s
					break
				}
			}
		}
	}
	return out
}

// stringify coerces a decoded JSON value to a string. null, "", 0, and
// false all count as missing, the same truthiness rule clients rely on.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if !val {
			return ""
		}
		return "true"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func normalizeSignup(payload map[string]any) signupRequest {
	fields := normalizePayload(payload, signupFields)
	return signupRequest{
		Role:      fields["role"],
		Firstname: fields["firstname"],
		Lastname:  fields["lastname"],
		Username:  fields["username"],
		Email:     fields["email"],
		Password:  fields["password"],
	}
}

func normalizeReport(payload map[string]any) createReportRequest {
	fields := normalizePayload(payload, reportFields)

	req := createReportRequest{
		Name:        fields["name"],
		Grade:       fields["grade"],
		Type:        fields["type"],
		Description: fields["description"],
		Date:        fields["date"],
	}
	if codename, ok := fields["codename"]; ok {
		req.Codename = &codename
	}
	return req
}

func (r signupRequest) toInput() ports.SignupInput {
	return ports.SignupInput{
		Role:      r.Role,
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
	}
}

func (r createReportRequest) toInput() ports.CreateReportInput {
	return ports.CreateReportInput{
		Name:        r.Name,
		Codename:    r.Codename,
		Grade:       r.Grade,
		Type:        r.Type,
		Description: r.Description,
		Date:        r.Date,
	}
}
