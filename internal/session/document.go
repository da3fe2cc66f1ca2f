package session

import "time"

// DocumentExtract is a snippet pulled out of a processed document. Owned by
// exactly one ProcessedDocument; immutable once appended.
type DocumentExtract struct {
	Location  string `json:"location"` // page number, URL anchor, or section name
	Text      string `json:"text"`
	Relevance string `json:"relevance,omitempty"` // why this extract matters
}

// ProcessedDocument describes one ingested source after the document
// processing collaborator has finished with it. Immutable afterwards except
// for append-only key extracts.
type ProcessedDocument struct {
	ID            string         `json:"id"` // unique within a session (doc_001, ...)
	OriginalName  string         `json:"original_name"`
	OriginalPath  string         `json:"original_path"`
	ProcessedPath string         `json:"processed_path,omitempty"`
	Format        DocumentFormat `json:"format"`
	SizeBytes     int64          `json:"size_bytes,omitempty"`
	Pages         int            `json:"pages,omitempty"`
	UploadedAt    time.Time      `json:"uploaded_at"`
	FetchedAt     *time.Time     `json:"fetched_at,omitempty"` // set when the source was a URL

	// Content analysis.
	Summary           string            `json:"summary"`
	KeyExtracts       []DocumentExtract `json:"key_extracts"`
	RelevanceToThesis string            `json:"relevance_to_thesis,omitempty"`

	// Processing metadata.
	ProcessingSuccess bool   `json:"processing_success"`
	ProcessingNotes   string `json:"processing_notes,omitempty"`
}

// AddExtract appends a key extract. Extracts are append-only.
func (d *ProcessedDocument) AddExtract(extract DocumentExtract) {
	d.KeyExtracts = append(d.KeyExtracts, extract)
}

// DocumentManifest aggregates every document processed within a session.
// TotalDocuments always equals len(Documents); AddDocument is the single
// mutator and maintains that invariant.
type DocumentManifest struct {
	IntakeID       string              `json:"intake_id"`
	Documents      []ProcessedDocument `json:"documents"`
	TotalDocuments int                 `json:"total_documents"`
	LastUpdated    time.Time           `json:"last_updated"`
}

// AddDocument appends a processed document and refreshes the count and
// timestamp. Document id uniqueness is the caller's contract; the manifest
// does not check it.
func (m *DocumentManifest) AddDocument(doc ProcessedDocument) {
	m.addDocumentAt(doc, time.Now().UTC())
}

func (m *DocumentManifest) addDocumentAt(doc ProcessedDocument, now time.Time) {
	m.Documents = append(m.Documents, doc)
	m.TotalDocuments = len(m.Documents)
	m.LastUpdated = now
}
