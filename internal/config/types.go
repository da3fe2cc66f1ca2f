package config

const (
	SchemaVersion = 1

	DefaultDataRoot          = "data"
	DefaultPreviewWrapColumn = 100

	MinPreviewWrapColumn = 20
	MaxPreviewWrapColumn = 400
)

// RawConfig is one config layer as it appears on disk. Pointer fields
// distinguish "absent" from "set to the zero value".
type RawConfig struct {
	SchemaVersion *int    `json:"schemaVersion,omitempty"`
	DataRoot      *string `json:"dataRoot,omitempty"`
	TUI           *RawTUI `json:"tui,omitempty"`
}

type RawTUI struct {
	PreviewWrapColumn *int `json:"previewWrapColumn,omitempty"`
}

// ResolvedConfig is the effective config after layering project over
// global over defaults.
type ResolvedConfig struct {
	SchemaVersion int         `json:"schemaVersion"`
	DataRoot      string      `json:"dataRoot"`
	TUI           ResolvedTUI `json:"tui"`
}

type ResolvedTUI struct {
	PreviewWrapColumn int `json:"previewWrapColumn"`
}
