package api

// Config is the typed model of a .coderabbit.yaml document, used when
// rabbitlint writes configuration files. Validation works on the untyped
// document tree instead, since it must tell missing keys apart from
// mistyped values in arbitrary input.
type Config struct {
	Reviews Reviews `yaml:"reviews"`
}

type Reviews struct {
	LabelingInstructions []LabelingInstruction `yaml:"labeling_instructions,omitempty"` // Rules for applying labels to reviewed changes
}

type LabelingInstruction struct {
	Label        string `yaml:"label"`        // Label name applied by the review bot
	Instructions string `yaml:"instructions"` // Free-text guidance for when to apply the label (max 3000 characters)
}
