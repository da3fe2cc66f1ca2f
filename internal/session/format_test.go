package session

import "testing"

func TestDetectDocumentFormat(t *testing.T) {
	cases := []struct {
		name string
		want DocumentFormat
	}{
		{"report.pdf", FormatPDF},
		{"Report.PDF", FormatPDF},
		{"model.xlsx", FormatExcel},
		{"legacy.XLS", FormatExcel},
		{"data.csv", FormatCSV},
		{"chart.png", FormatImage},
		{"photo.JPG", FormatImage},
		{"photo.jpeg", FormatImage},
		{"anim.gif", FormatImage},
		{"frame.webp", FormatImage},
		{"memo.doc", FormatWord},
		{"memo.docx", FormatWord},
		{"notes.final.docx", FormatWord}, // rightmost extension wins
		{"README.md", FormatMarkdown},
		{"notes.txt", FormatText},
		{"http://example.com/page", FormatURL},
		{"https://example.com/page", FormatURL},
		{"HTTPS://x.com/report.pdf", FormatURL}, // URL check precedes extension check
		{"archive.zip", FormatUnknown},
		{"no_extension", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tc := range cases {
		if got := DetectDocumentFormat(tc.name); got != tc.want {
			t.Errorf("DetectDocumentFormat(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
