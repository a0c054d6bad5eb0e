// Package printing renders HTML documents to PDF.
package printing

import "context"

// PDFRenderer converts an HTML document to PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
