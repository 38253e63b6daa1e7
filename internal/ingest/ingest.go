package ingest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/probe-group/finflags/internal/model"
)

// ReadRecordFile reads a statement file from disk, dispatching on the file
// extension. JSON and XLSX statements are supported.
func ReadRecordFile(path string) (*model.FinancialRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "ingest: open file")
		}
		defer f.Close() //nolint:errcheck
		return DecodeRecord(f)

	case ".xlsx":
		return ReadXLSXRecord(path)

	default:
		return nil, eris.Errorf("ingest: unsupported statement format %q", filepath.Ext(path))
	}
}
