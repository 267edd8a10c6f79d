// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rabbitlint/rabbitlint/api"
	"github.com/rabbitlint/rabbitlint/pkg/configuration"
	"github.com/rabbitlint/rabbitlint/pkg/constants"
)

var initForce bool

func init() {
	initcmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

func Init() *cobra.Command {
	initcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		var instructions []api.LabelingInstruction
		for {
			var label, guidance string

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Label name").
						Description("The label CodeRabbit should apply, e.g. 'bug'").
						Value(&label).
						Validate(func(s string) error {
							if strings.TrimSpace(s) == "" {
								return fmt.Errorf("label cannot be empty")
							}
							return nil
						}),
					huh.NewText().
						Title("When should this label be applied?").
						Description(fmt.Sprintf("Free-text guidance, at most %d characters", constants.MaxInstructionChars)).
						CharLimit(constants.MaxInstructionChars).
						Value(&guidance),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}

			instructions = append(instructions, api.LabelingInstruction{
				Label:        label,
				Instructions: guidance,
			})

			var more bool
			confirm := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Add another labeling instruction?").
						Value(&more),
				),
			)
			if err := confirm.Run(); err != nil {
				return err
			}
			if !more {
				break
			}
		}

		cfg := api.Config{
			Reviews: api.Reviews{LabelingInstructions: instructions},
		}
		if err := configuration.WriteConfig(cfg, initForce); err != nil {
			return err
		}

		fmt.Printf("Wrote %s with %d labeling instruction(s)\n",
			constants.DefaultConfigFilename, len(instructions))
		return nil
	}

	return initcmd
}

var initcmd = &cobra.Command{
	Use:   "init",
	Short: fmt.Sprintf("Interactively create a %s file", constants.DefaultConfigFilename),
	Long: fmt.Sprintf(`Interactively build a %s file.

Prompts for labeling instructions (label name plus the guidance CodeRabbit
uses to decide when to apply it) and writes them to the current directory.`,
		constants.DefaultConfigFilename),
	Args: cobra.NoArgs,
}
