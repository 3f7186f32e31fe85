// Package loader reads a leads document into an ordered lead sequence.
// Input order is preserved and recorded on each lead because it is the
// tie-break key during resolution.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"leadsweep/internal/errors"
	"leadsweep/internal/logging"
	"leadsweep/internal/model"
)

// rawLead mirrors the document record with pointer fields so a missing
// key is distinguishable from an empty value.
type rawLead struct {
	ID        *string `json:"_id"`
	Email     *string `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   string  `json:"address"`
	EntryDate *string `json:"entryDate"`
}

type rawDocument struct {
	Leads []rawLead `json:"leads"`
}

// Load reads the document at path and returns its leads in input order,
// each positioned by its zero-based index.
//
// Records missing an id or email are carried through (the resolver skips
// and counts them); their entryDate is parsed best-effort. A record that
// has both id and email but a missing or unparseable entryDate is a fatal
// TIMESTAMP_INVALID error, since recency comparison cannot proceed.
// Paths ending in .gz are decompressed transparently.
func Load(path string, logger *logging.Logger) ([]model.Lead, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.InputNotFound,
			fmt.Sprintf("cannot open input file %s", path), err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.New(errors.DocumentInvalid,
				fmt.Sprintf("%s is not a valid gzip stream", path), err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	var doc rawDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.New(errors.DocumentInvalid,
			fmt.Sprintf("%s is not a valid leads document", path), err)
	}
	if doc.Leads == nil {
		return nil, errors.New(errors.DocumentInvalid,
			fmt.Sprintf("%s has no leads array", path), nil)
	}

	leads := make([]model.Lead, 0, len(doc.Leads))
	for i, raw := range doc.Leads {
		lead := model.Lead{
			ID:        deref(raw.ID),
			Email:     deref(raw.Email),
			FirstName: raw.FirstName,
			LastName:  raw.LastName,
			Address:   raw.Address,
		}.AtPosition(i)

		if lead.Complete() {
			if raw.EntryDate == nil {
				return nil, errors.New(errors.TimestampInvalid,
					fmt.Sprintf("record %d has no entryDate", i), nil).
					WithDetails(map[string]interface{}{"position": i})
			}
			entry, err := time.Parse(time.RFC3339, *raw.EntryDate)
			if err != nil {
				return nil, errors.New(errors.TimestampInvalid,
					fmt.Sprintf("record %d has an unparseable entryDate %q", i, *raw.EntryDate), err).
					WithDetails(map[string]interface{}{"position": i})
			}
			lead.EntryDate = entry
		} else {
			// Incomplete records are excluded from uniqueness anyway;
			// a bad date here is not worth failing the whole run.
			logger.Warn("record missing id or email, excluded from deduplication", map[string]interface{}{
				"position": i,
			})
			if raw.EntryDate != nil {
				if entry, err := time.Parse(time.RFC3339, *raw.EntryDate); err == nil {
					lead.EntryDate = entry
				}
			}
		}

		leads = append(leads, lead)
	}

	logger.Debug("document loaded", map[string]interface{}{
		"path":  path,
		"leads": len(leads),
	})

	return leads, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
