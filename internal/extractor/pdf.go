package extractor

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// LocalText extracts text from a PDF on disk with the ledongthuc/pdf
// library. This is the fallback used when no remote extraction service is
// configured; scanned or custom-font PDFs that need OCR belong to the
// service, not here.
func LocalText(filePath string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return "", fmt.Errorf("open PDF: %w", openErr)
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", &ExtractError{Code: ErrEmptyDocument, Message: "PDF has no pages"}
	}

	// Row-based extraction preserves the table layout best.
	pages := extractByRow(r, numPages)
	if !isReadable(pages) {
		// Fall back to the library's plain-text path.
		pages = []string{extractPlainText(r)}
	}
	if !isReadable(pages) {
		return "", &ExtractError{
			Code:    ErrUnreadableText,
			Message: "no readable text in PDF; the file may be scanned or use custom font encodings",
		}
	}

	return strings.Join(pages, "\n"), nil
}

func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

func extractPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// statementWords appear in virtually every bank SOA. Extracted text that
// contains none of them is treated as garbage from an undecodable font.
var statementWords = []string{
	"bank", "account", "balance", "date", "statement", "narration",
	"particulars", "debit", "credit", "withdrawal", "deposit", "upi",
	"neft", "imps", "ifsc", "branch", "transaction",
}

// isReadable checks that the extracted text is mostly plain characters and
// mentions at least one common statement word.
func isReadable(pages []string) bool {
	total, readable := 0, 0
	var combined strings.Builder
	for _, page := range pages {
		combined.WriteString(strings.ToLower(page))
		for _, r := range page {
			total++
			if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r) ||
				unicode.IsSpace(r) || strings.ContainsRune(`.,-/:;()'"&@#%+=*`, r)) {
				readable++
			}
		}
	}
	if total < 40 || float64(readable)/float64(total) < 0.8 {
		return false
	}
	text := combined.String()
	for _, w := range statementWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
