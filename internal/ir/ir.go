// Package ir defines the minimal intermediate representation used by the
// manifest compiler. This package is internal and not part of the public API.
package ir

import (
	"gopkg.in/yaml.v3"

	adt "github.com/blaster151/adt"
	"github.com/blaster151/adt/i18n"
)

// Manifest is the root of a YAML type manifest.
type Manifest struct {
	Types []TypeDef `yaml:"types"`
}

// TypeDef declares one sum or product type. A def with variants is a sum; a
// def with fields only is a product.
type TypeDef struct {
	Name     string       `yaml:"name"`
	Effect   string       `yaml:"effect"`
	Derive   []string     `yaml:"derive"`
	Variants []VariantDef `yaml:"variants"`
	Fields   []string     `yaml:"fields"`
}

// VariantDef declares one sum-type case and the names of its payload fields.
type VariantDef struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
}

// IsSum reports whether the def declares a sum type.
func (d TypeDef) IsSum() bool { return len(d.Variants) > 0 }

// Load parses a YAML manifest.
func Load(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, adt.Issues{adt.Issue{Path: "/", Code: adt.CodeManifestInvalid, Message: i18n.T(adt.CodeManifestInvalid, nil), Cause: err}}
	}
	return m, nil
}

// Validate checks the manifest shape: named types, unique type and variant
// names, variants xor fields, known derive names.
func (m Manifest) Validate() error {
	var iss adt.Issues
	types := map[string]struct{}{}
	for _, d := range m.Types {
		path := "/types/" + d.Name
		if d.Name == "" {
			iss = adt.AppendIssues(iss, adt.Issue{Path: "/types", Code: adt.CodeManifestInvalid, Message: i18n.T(adt.CodeManifestInvalid, nil), Hint: "type name is empty"})
			continue
		}
		if _, dup := types[d.Name]; dup {
			iss = adt.AppendIssues(iss, adt.Issue{Path: path, Code: adt.CodeManifestInvalid, Message: i18n.T(adt.CodeManifestInvalid, nil), Hint: "duplicate type: '" + d.Name + "'"})
			continue
		}
		types[d.Name] = struct{}{}
		if len(d.Variants) > 0 && len(d.Fields) > 0 {
			iss = adt.AppendIssues(iss, adt.Issue{Path: path, Code: adt.CodeManifestInvalid, Message: i18n.T(adt.CodeManifestInvalid, nil), Hint: "declare variants or fields, not both"})
		}
		if len(d.Variants) == 0 && len(d.Fields) == 0 {
			iss = adt.AppendIssues(iss, adt.Issue{Path: path, Code: adt.CodeManifestInvalid, Message: i18n.T(adt.CodeManifestInvalid, nil), Hint: "no variants or fields"})
		}
		variants := map[string]struct{}{}
		for _, vr := range d.Variants {
			if vr.Name == "" {
				iss = adt.AppendIssues(iss, adt.Issue{Path: path + "/variants", Code: adt.CodeManifestInvalid, Message: i18n.T(adt.CodeManifestInvalid, nil), Hint: "variant name is empty"})
				continue
			}
			if _, dup := variants[vr.Name]; dup {
				iss = adt.AppendIssues(iss, adt.Issue{Path: path + "/variants/" + vr.Name, Code: adt.CodeManifestInvalid, Message: i18n.T(adt.CodeManifestInvalid, nil), Hint: "duplicate variant: '" + vr.Name + "'"})
			}
			variants[vr.Name] = struct{}{}
		}
		for _, name := range d.Derive {
			switch adt.DeriveName(name) {
			case adt.DeriveEq, adt.DeriveOrd, adt.DeriveShow:
			default:
				iss = adt.AppendIssues(iss, adt.Issue{Path: path + "/derive", Code: adt.CodeManifestInvalid, Message: i18n.T(adt.CodeManifestInvalid, nil), Hint: "unknown derive: '" + name + "'"})
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
