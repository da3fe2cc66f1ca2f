package session

import "path/filepath"

const (
	// DefaultDataRoot is the data directory used when no root is configured.
	DefaultDataRoot = "data"

	intakesDirName     = "intakes"
	snapshotFileName   = "session.json"
	transcriptFileName = "transcript.jsonl"
	taskFileName       = "task.md"
	referenceDirName   = "reference_materials"
	manifestFileName   = "manifest.json"
)

// SessionDir returns the folder for an intake session. Pure path join; no
// filesystem access, no existence check.
func SessionDir(dataRoot string, intakeID string) string {
	if dataRoot == "" {
		dataRoot = DefaultDataRoot
	}
	return filepath.Join(dataRoot, intakesDirName, intakeID)
}

// SnapshotPath returns the session snapshot path inside a session folder.
func SnapshotPath(dataRoot string, intakeID string) string {
	return filepath.Join(SessionDir(dataRoot, intakeID), snapshotFileName)
}

// TranscriptPath returns the conversation transcript path for a session.
func TranscriptPath(dataRoot string, intakeID string) string {
	return filepath.Join(SessionDir(dataRoot, intakeID), transcriptFileName)
}

// ManifestPath returns the reference-materials manifest path for a session.
func ManifestPath(dataRoot string, intakeID string) string {
	return filepath.Join(SessionDir(dataRoot, intakeID), referenceDirName, manifestFileName)
}

// TaskFilePath returns the rendered task document path for a session.
func TaskFilePath(dataRoot string, intakeID string) string {
	return filepath.Join(SessionDir(dataRoot, intakeID), taskFileName)
}
