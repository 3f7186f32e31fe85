// Package writer serializes a resolved lead sequence back to a document.
package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"leadsweep/internal/errors"
	"leadsweep/internal/model"
)

// Write serializes leads as a document to path with two-space indent.
// Paths ending in .gz are gzip-compressed. The document is marshaled in
// full before the file is touched, so a failure never leaves partial
// output behind.
func Write(path string, leads []model.Lead) error {
	doc := model.Document{Leads: leads}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.New(errors.InternalError, "cannot marshal leads document", err)
	}
	data = append(data, '\n')

	if strings.HasSuffix(path, ".gz") {
		var compressed bytes.Buffer
		gz := gzip.NewWriter(&compressed)
		if _, err := gz.Write(data); err != nil {
			return errors.New(errors.InternalError, "cannot compress leads document", err)
		}
		if err := gz.Close(); err != nil {
			return errors.New(errors.InternalError, "cannot compress leads document", err)
		}
		data = compressed.Bytes()
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.OutputWriteFailed,
			fmt.Sprintf("cannot write output file %s", path), err)
	}

	return nil
}
