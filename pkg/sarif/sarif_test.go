package sarif

import (
	"encoding/json"
	"testing"

	"github.com/rabbitlint/rabbitlint/pkg/schema"
)

func TestConvertToSARIF(t *testing.T) {
	tests := []struct {
		name       string
		errs       []schema.Error
		validateFn func(*testing.T, SarifLog)
	}{
		{
			name: "no errors produces empty results",
			errs: nil,
			validateFn: func(t *testing.T, log SarifLog) {
				if len(log.Runs[0].Results) != 0 {
					t.Errorf("Expected 0 results, got %d", len(log.Runs[0].Results))
				}
			},
		},
		{
			name: "missing section uses its own rule",
			errs: []schema.Error{
				{Text: "Missing 'reviews' section"},
			},
			validateFn: func(t *testing.T, log SarifLog) {
				if len(log.Runs[0].Results) != 1 {
					t.Fatalf("Expected 1 result, got %d", len(log.Runs[0].Results))
				}
				result := log.Runs[0].Results[0]
				if result.RuleID != "missing-section" {
					t.Errorf("Expected ruleId 'missing-section', got %s", result.RuleID)
				}
				if result.Level != "error" {
					t.Errorf("Expected level 'error', got %s", result.Level)
				}
			},
		},
		{
			name: "violations carry the schema path",
			errs: []schema.Error{
				{
					Path: "reviews.labeling_instructions[0]",
					Text: `Missing 'label' field at "reviews.labeling_instructions[0]"`,
				},
				{
					Path: "reviews.labeling_instructions[2]",
					Text: `'instructions' must be a string at "reviews.labeling_instructions[2]"`,
				},
			},
			validateFn: func(t *testing.T, log SarifLog) {
				if len(log.Runs[0].Results) != 2 {
					t.Fatalf("Expected 2 results, got %d", len(log.Runs[0].Results))
				}
				result := log.Runs[0].Results[0]
				if result.RuleID != "schema-violation" {
					t.Errorf("Expected ruleId 'schema-violation', got %s", result.RuleID)
				}
				if result.Properties["schema_path"] != "reviews.labeling_instructions[0]" {
					t.Errorf("Unexpected schema_path: %v", result.Properties["schema_path"])
				}
				if len(result.Locations) != 1 ||
					result.Locations[0].PhysicalLocation.ArtifactLocation.URI != "/tmp/.coderabbit.yaml" {
					t.Errorf("Expected artifact location for the config file, got %+v", result.Locations)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := ConvertToSARIF("/tmp/.coderabbit.yaml", tt.errs)
			if err != nil {
				t.Fatalf("ConvertToSARIF failed: %v", err)
			}

			var log SarifLog
			if err := json.Unmarshal([]byte(output), &log); err != nil {
				t.Fatalf("Failed to parse SARIF output: %v", err)
			}

			if log.Version != "2.1.0" {
				t.Errorf("Expected version 2.1.0, got %s", log.Version)
			}
			if len(log.Runs) != 1 {
				t.Fatalf("Expected 1 run, got %d", len(log.Runs))
			}
			if log.Runs[0].Tool.Driver.Name != "rabbitlint" {
				t.Errorf("Expected driver 'rabbitlint', got %s", log.Runs[0].Tool.Driver.Name)
			}

			tt.validateFn(t, log)
		})
	}
}
