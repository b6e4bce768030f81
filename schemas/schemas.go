// Package schemas embeds the JSON Schema documents shipped with resumeforge.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.schema.json
var files embed.FS

// CandidateProfileFile is the schema for JSON candidate profiles (API bodies and CLI profile files).
const CandidateProfileFile = "candidate_profile.schema.json"

// Read returns the raw bytes of an embedded schema.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("schema %s not embedded: %w", name, err)
	}
	return data, nil
}

// Names lists the embedded schema files.
func Names() ([]string, error) {
	return fs.Glob(files, "*.schema.json")
}

// CandidateProfile returns the candidate profile schema.
func CandidateProfile() []byte {
	data, err := Read(CandidateProfileFile)
	if err != nil {
		panic(err)
	}
	return data
}
