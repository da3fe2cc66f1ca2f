package session

import "strings"

// DocumentFormat classifies an ingested reference document.
type DocumentFormat string

const (
	FormatPDF      DocumentFormat = "pdf"
	FormatURL      DocumentFormat = "url"
	FormatExcel    DocumentFormat = "excel"
	FormatCSV      DocumentFormat = "csv"
	FormatImage    DocumentFormat = "image"
	FormatWord     DocumentFormat = "word"
	FormatMarkdown DocumentFormat = "markdown"
	FormatText     DocumentFormat = "text"
	FormatFolder   DocumentFormat = "folder"
	FormatUnknown  DocumentFormat = "unknown"
)

// extensionFormats maps filename suffixes to formats. Kept as an ordered
// slice so classification never depends on map iteration order.
var extensionFormats = []struct {
	ext    string
	format DocumentFormat
}{
	{".pdf", FormatPDF},
	{".xlsx", FormatExcel},
	{".xls", FormatExcel},
	{".csv", FormatCSV},
	{".png", FormatImage},
	{".jpg", FormatImage},
	{".jpeg", FormatImage},
	{".gif", FormatImage},
	{".webp", FormatImage},
	{".doc", FormatWord},
	{".docx", FormatWord},
	{".md", FormatMarkdown},
	{".txt", FormatText},
}

// DetectDocumentFormat classifies a filename or URL. The URL prefix check
// runs before any extension check, so "https://x.com/report.pdf" is a URL,
// not a PDF. Matching is case-insensitive; unmatched names are unknown.
func DetectDocumentFormat(name string) DocumentFormat {
	lower := strings.ToLower(name)

	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return FormatURL
	}

	for _, entry := range extensionFormats {
		if strings.HasSuffix(lower, entry.ext) {
			return entry.format
		}
	}

	return FormatUnknown
}
