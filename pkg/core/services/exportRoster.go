package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ExportRoster writes the roster and its statistics as CSV
func ExportRoster(w io.Writer, generated *GeneratedRoster, logger *zap.Logger) error {
	rows := RosterTable(generated)

	logger.Debug("Exporting roster", zap.Int("rows", len(rows)))

	if err := csv.NewWriter(w).WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write roster csv: %w", err)
	}
	return nil
}
