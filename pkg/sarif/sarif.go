package sarif

import (
	"encoding/json"
	"fmt"

	"github.com/rabbitlint/rabbitlint/pkg/constants"
	"github.com/rabbitlint/rabbitlint/pkg/schema"
)

// SARIF 2.1.0 structures
type SarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []SarifRun `json:"runs"`
}

type SarifRun struct {
	Tool    SarifTool     `json:"tool"`
	Results []SarifResult `json:"results"`
}

type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

type SarifDriver struct {
	Name           string      `json:"name"`
	InformationUri string      `json:"informationUri,omitempty"`
	Version        string      `json:"version,omitempty"`
	Rules          []SarifRule `json:"rules,omitempty"`
}

type SarifRule struct {
	ID               string                        `json:"id"`
	ShortDescription SarifMultiformatMessageString `json:"shortDescription,omitempty"`
	FullDescription  SarifMultiformatMessageString `json:"fullDescription,omitempty"`
}

type SarifResult struct {
	RuleID     string                 `json:"ruleId"`
	Level      string                 `json:"level,omitempty"`
	Message    SarifMessage           `json:"message"`
	Locations  []SarifLocation        `json:"locations,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

type SarifMessage struct {
	Text string `json:"text"`
}

type SarifMultiformatMessageString struct {
	Text string `json:"text"`
}

type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
}

type SarifArtifactLocation struct {
	URI string `json:"uri"`
}

const (
	ruleMissingSection  = "missing-section"
	ruleSchemaViolation = "schema-violation"
)

// ConvertToSARIF renders validation errors for the given file as a SARIF
// 2.1.0 log, one result per error, suitable for code scanning upload. An
// empty error list yields a valid log with an empty results array.
func ConvertToSARIF(path string, errs []schema.Error) (string, error) {
	sarifLog := SarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Runs: []SarifRun{
			{
				Tool: SarifTool{
					Driver: SarifDriver{
						Name:           "rabbitlint",
						InformationUri: constants.ProjectURL,
						Rules: []SarifRule{
							{
								ID: ruleMissingSection,
								ShortDescription: SarifMultiformatMessageString{
									Text: "Missing configuration section",
								},
								FullDescription: SarifMultiformatMessageString{
									Text: "The CodeRabbit configuration is missing a required top-level section",
								},
							},
							{
								ID: ruleSchemaViolation,
								ShortDescription: SarifMultiformatMessageString{
									Text: "Schema violation",
								},
								FullDescription: SarifMultiformatMessageString{
									Text: "A value in the CodeRabbit configuration does not match the expected schema",
								},
							},
						},
					},
				},
				Results: []SarifResult{},
			},
		},
	}

	for _, e := range errs {
		ruleID := ruleSchemaViolation
		if e.Text == "Missing 'reviews' section" {
			ruleID = ruleMissingSection
		}

		result := SarifResult{
			RuleID: ruleID,
			Level:  "error",
			Message: SarifMessage{
				Text: e.Text,
			},
			Locations: []SarifLocation{
				{
					PhysicalLocation: SarifPhysicalLocation{
						ArtifactLocation: SarifArtifactLocation{
							URI: path,
						},
					},
				},
			},
		}
		if e.Path != "" {
			result.Properties = map[string]interface{}{
				"schema_path": e.Path,
			}
		}

		sarifLog.Runs[0].Results = append(sarifLog.Runs[0].Results, result)
	}

	jsonBytes, err := json.MarshalIndent(sarifLog, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal SARIF: %w", err)
	}

	return string(jsonBytes), nil
}
