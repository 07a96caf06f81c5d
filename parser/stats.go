package parser

import (
	"fmt"
	"strings"
)

// DocumentStats contains statistical information about a parsed document.
type DocumentStats struct {
	// PathCount is the number of path items
	PathCount int
	// OperationCount is the number of recognized-method operations
	OperationCount int
	// MissingOperationIDs counts operations without an operationId
	MissingOperationIDs int
	// MissingSummaries counts operations whose summary is absent or blank
	MissingSummaries int
}

// GetDocumentStats computes statistics for a document.
// A nil document yields zero stats.
func GetDocumentStats(doc *Document) DocumentStats {
	var stats DocumentStats
	if doc == nil {
		return stats
	}
	stats.PathCount = len(doc.Paths)
	for _, p := range doc.Paths {
		for _, op := range p.Operations {
			stats.OperationCount++
			if op.OperationID == "" {
				stats.MissingOperationIDs++
			}
			if strings.TrimSpace(op.Summary) == "" {
				stats.MissingSummaries++
			}
		}
	}
	return stats
}

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
