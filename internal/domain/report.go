package domain

// ReportFormat identifies one of the supported export formats
type ReportFormat string

const (
	FormatCSV  ReportFormat = "csv"
	FormatXLSX ReportFormat = "xlsx"
	FormatPDF  ReportFormat = "pdf"
	FormatHTML ReportFormat = "html"
)
