package config

import "strings"

// Resolve layers project config over global config over defaults and clamps
// values into their supported ranges.
func Resolve(project RawConfig, global RawConfig) ResolvedConfig {
	resolved := ResolvedConfig{
		SchemaVersion: SchemaVersion,
		DataRoot:      DefaultDataRoot,
		TUI: ResolvedTUI{
			PreviewWrapColumn: DefaultPreviewWrapColumn,
		},
	}

	for _, layer := range []RawConfig{global, project} {
		if layer.DataRoot != nil {
			if root := strings.TrimSpace(*layer.DataRoot); root != "" {
				resolved.DataRoot = root
			}
		}
		if layer.TUI != nil && layer.TUI.PreviewWrapColumn != nil {
			resolved.TUI.PreviewWrapColumn = clampWrapColumn(*layer.TUI.PreviewWrapColumn)
		}
	}

	return resolved
}

func clampWrapColumn(col int) int {
	if col < MinPreviewWrapColumn {
		return MinPreviewWrapColumn
	}
	if col > MaxPreviewWrapColumn {
		return MaxPreviewWrapColumn
	}
	return col
}
