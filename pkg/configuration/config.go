package configuration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rabbitlint/rabbitlint/api"
	"github.com/rabbitlint/rabbitlint/pkg/constants"
)

var ErrFileExists = fmt.Errorf("file %s exists, not overwriting (specify '--force' to overwrite)", constants.DefaultConfigFilename)

// GenerateConfig writes a default .coderabbit.yaml into the current
// directory. The generated document always passes validation.
func GenerateConfig(forceWrite bool) error {
	defaultConfig := api.Config{
		Reviews: api.Reviews{
			LabelingInstructions: []api.LabelingInstruction{
				{
					Label:        "documentation",
					Instructions: "Apply when the change only touches documentation or comments.",
				},
			},
		},
	}

	return WriteConfig(defaultConfig, forceWrite)
}

// WriteConfig marshals cfg and writes it as .coderabbit.yaml in the current
// directory, refusing to overwrite an existing file unless forceWrite is set.
func WriteConfig(cfg api.Config, forceWrite bool) error {
	// check to see if the config file already exists
	_, err := os.Stat(constants.DefaultConfigFilename)
	if (err == nil) && !forceWrite {
		return ErrFileExists
	}

	cfgYaml, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config yaml: %w", err)
	}

	return os.WriteFile(constants.DefaultConfigFilename, cfgYaml, 0600)
}
