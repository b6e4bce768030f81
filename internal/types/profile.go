// Package types provides type definitions for structured data used throughout the resumeforge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"net/url"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Role is a target-role label offered by the form selector.
type Role string

// Supported target roles, in display order.
const (
	RoleAIFullStackDeveloper Role = "AI Full Stack Developer"
	RoleSoftwareEngineer     Role = "Software Engineer"
	RoleDataScientist        Role = "Data Scientist"
	RoleWebDeveloper         Role = "Web Developer"
)

var roles = []Role{
	RoleAIFullStackDeveloper,
	RoleSoftwareEngineer,
	RoleDataScientist,
	RoleWebDeveloper,
}

// Roles returns the supported roles in display order. The first entry is the default.
func Roles() []Role {
	return slices.Clone(roles)
}

// DefaultRole is the role preselected on the form.
func DefaultRole() Role {
	return roles[0]
}

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	return slices.Contains(roles, r)
}

// CandidateProfile holds the form state captured when the user triggers generation.
// It is built fresh for every request and never stored.
type CandidateProfile struct {
	Name       string `json:"name" validate:"required"`
	Role       Role   `json:"role" validate:"role"`
	Education  string `json:"education" validate:"required"`
	Skills     string `json:"skills" validate:"required"`
	Projects   string `json:"projects,omitempty"`
	Experience string `json:"experience,omitempty"`
}

// Normalize returns a copy with every field trimmed and an empty role replaced by the default.
func (p CandidateProfile) Normalize() CandidateProfile {
	out := CandidateProfile{
		Name:       strings.TrimSpace(p.Name),
		Role:       Role(strings.TrimSpace(string(p.Role))),
		Education:  strings.TrimSpace(p.Education),
		Skills:     strings.TrimSpace(p.Skills),
		Projects:   strings.TrimSpace(p.Projects),
		Experience: strings.TrimSpace(p.Experience),
	}
	if out.Role == "" {
		out.Role = DefaultRole()
	}
	return out
}

// Validate checks required fields and the role label.
// Call Normalize first; whitespace-only values pass "required" otherwise.
func (p CandidateProfile) Validate() error {
	return profileValidator().Struct(p)
}

// InvalidFields returns the JSON names of the fields that failed validation, in struct order.
func InvalidFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	return fields
}

// ProfileFromForm binds a submitted form to a normalized profile.
func ProfileFromForm(form url.Values) CandidateProfile {
	return CandidateProfile{
		Name:       form.Get("name"),
		Role:       Role(form.Get("role")),
		Education:  form.Get("education"),
		Skills:     form.Get("skills"),
		Projects:   form.Get("projects"),
		Experience: form.Get("experience"),
	}.Normalize()
}

var profileValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return Role(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
})
