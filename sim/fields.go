// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package sim

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// rosterFileKnownFields and creatureSpecKnownFields list the struct tags
// RosterFile/CreatureSpec recognize, used to warn about forward-looking
// or misspelled keys in a data file without failing the load.
var rosterFileKnownFields = map[string]bool{"creatures": true}

var creatureSpecKnownFields = map[string]bool{
	"id": true, "name": true, "team": true, "health": true, "speed": true,
	"strength": true, "agility": true, "endurance": true, "will": true,
	"attacks": true, "immunities": true, "vulnerabilities": true,
	"resistances": true, "threat": true,
}

// unknownYAMLFields decodes raw as a generic document and reports every
// "creatures[*].<key>" that is not a CreatureSpec field, plus any top-level
// RosterFile key not in known. It never errors: a document that fails to
// parse generically produces no warnings, since Unmarshal into the typed
// struct already reported the real parse error.
func unknownYAMLFields(raw []byte, known map[string]bool) []string {
	var doc struct {
		Creatures []yaml.Node `yaml:"creatures"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil
	}

	var warnings []string
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err == nil && len(root.Content) == 1 && root.Content[0].Kind == yaml.MappingNode {
		top := root.Content[0].Content
		for j := 0; j+1 < len(top); j += 2 {
			if !known[top[j].Value] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q", top[j].Value))
			}
		}
	}
	for i, node := range doc.Creatures {
		for j := 0; j+1 < len(node.Content); j += 2 {
			key := node.Content[j].Value
			if !creatureSpecKnownFields[key] {
				warnings = append(warnings, fmt.Sprintf("creatures[%d]: unknown field %q", i, key))
			}
		}
	}
	return warnings
}

// unknownJSONFields reports every top-level key of a JSON object not
// present in known. Used for inline creature JSON, which has no nested
// "creatures" wrapper.
func unknownJSONFields(raw []byte, known map[string]bool) []string {
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil
	}

	var warnings []string
	for key := range generic {
		if !known[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q", key))
		}
	}
	return warnings
}
