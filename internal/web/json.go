package web

import "github.com/ayuss-kr/productivity-monitor/internal/status"

// formatJSON renders the snapshot for the /index.json endpoint.
func formatJSON(snap status.Snapshot) []byte {
	return status.FormatJSON(snap)
}
