package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"

	sweeperr "leadsweep/internal/errors"
	"leadsweep/internal/logging"
)

const validDoc = `{
  "leads": [
    {
      "_id": "jkj238238jdsnfsj23",
      "email": "foo@bar.com",
      "firstName": "John",
      "lastName": "Smith",
      "address": "123 Street St",
      "entryDate": "2014-05-07T17:30:20+00:00"
    },
    {
      "_id": "edu45238jdsnfsj23",
      "email": "mae@bar.com",
      "firstName": "Ted",
      "lastName": "Masters",
      "address": "44 North Hampton St",
      "entryDate": "2014-05-07T17:31:20+00:00"
    }
  ]
}`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadValidDocument(t *testing.T) {
	path := writeDoc(t, "leads.json", validDoc)

	leads, err := Load(path, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(leads) != 2 {
		t.Fatalf("got %d leads, want 2", len(leads))
	}
	if leads[0].ID != "jkj238238jdsnfsj23" {
		t.Errorf("leads[0].ID = %q", leads[0].ID)
	}
	if leads[0].Position() != 0 || leads[1].Position() != 1 {
		t.Errorf("positions = %d,%d, want 0,1", leads[0].Position(), leads[1].Position())
	}

	want := time.Date(2014, 5, 7, 17, 30, 20, 0, time.UTC)
	if !leads[0].EntryDate.Equal(want) {
		t.Errorf("EntryDate = %v, want %v", leads[0].EntryDate, want)
	}
}

func TestLoadGzipDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.json.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(validDoc)); err != nil {
		t.Fatalf("compressing fixture: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("closing gzip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}

	leads, err := Load(path, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(leads) != 2 {
		t.Errorf("got %d leads, want 2", len(leads))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), logging.NewDiscardLogger())
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
	if sweeperr.CodeOf(err) != sweeperr.InputNotFound {
		t.Errorf("error code = %q, want INPUT_NOT_FOUND", sweeperr.CodeOf(err))
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeDoc(t, "bad.json", `{"leads": [`)

	_, err := Load(path, logging.NewDiscardLogger())
	if err == nil {
		t.Fatal("Load should fail for invalid JSON")
	}
	if sweeperr.CodeOf(err) != sweeperr.DocumentInvalid {
		t.Errorf("error code = %q, want DOCUMENT_INVALID", sweeperr.CodeOf(err))
	}
}

func TestLoadMissingLeadsArray(t *testing.T) {
	path := writeDoc(t, "empty.json", `{}`)

	_, err := Load(path, logging.NewDiscardLogger())
	if err == nil {
		t.Fatal("Load should fail when the leads array is missing")
	}
	if sweeperr.CodeOf(err) != sweeperr.DocumentInvalid {
		t.Errorf("error code = %q, want DOCUMENT_INVALID", sweeperr.CodeOf(err))
	}
}

func TestLoadEmptyLeadsArray(t *testing.T) {
	path := writeDoc(t, "empty.json", `{"leads": []}`)

	leads, err := Load(path, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(leads) != 0 {
		t.Errorf("got %d leads, want 0", len(leads))
	}
}

func TestLoadIncompleteRecord(t *testing.T) {
	// A null email is a data-quality skip, not an error. The record is
	// still loaded (and positioned) so the resolver can count it.
	doc := `{
  "leads": [
    {"_id": "a", "email": null, "entryDate": "2014-05-07T17:30:20+00:00"},
    {"_id": "b", "email": "b@e.com", "entryDate": "2014-05-07T17:31:20+00:00"}
  ]
}`
	path := writeDoc(t, "partial.json", doc)

	leads, err := Load(path, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("got %d leads, want 2", len(leads))
	}
	if leads[0].Complete() {
		t.Error("leads[0] should be incomplete")
	}
	if !leads[1].Complete() {
		t.Error("leads[1] should be complete")
	}
}

func TestLoadMalformedTimestampFatal(t *testing.T) {
	doc := `{
  "leads": [
    {"_id": "a", "email": "a@e.com", "entryDate": "not-a-date"}
  ]
}`
	path := writeDoc(t, "baddate.json", doc)

	_, err := Load(path, logging.NewDiscardLogger())
	if err == nil {
		t.Fatal("Load should fail for a malformed entryDate")
	}
	if sweeperr.CodeOf(err) != sweeperr.TimestampInvalid {
		t.Errorf("error code = %q, want TIMESTAMP_INVALID", sweeperr.CodeOf(err))
	}
}

func TestLoadMissingTimestampFatal(t *testing.T) {
	doc := `{
  "leads": [
    {"_id": "a", "email": "a@e.com"}
  ]
}`
	path := writeDoc(t, "nodate.json", doc)

	_, err := Load(path, logging.NewDiscardLogger())
	if err == nil {
		t.Fatal("Load should fail for a complete record with no entryDate")
	}
	if sweeperr.CodeOf(err) != sweeperr.TimestampInvalid {
		t.Errorf("error code = %q, want TIMESTAMP_INVALID", sweeperr.CodeOf(err))
	}
}

func TestLoadPreservesOffsetInstant(t *testing.T) {
	doc := `{
  "leads": [
    {"_id": "a", "email": "a@e.com", "entryDate": "2014-05-07T17:30:20+05:00"}
  ]
}`
	path := writeDoc(t, "offset.json", doc)

	leads, err := Load(path, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := time.Date(2014, 5, 7, 12, 30, 20, 0, time.UTC)
	if !leads[0].EntryDate.Equal(want) {
		t.Errorf("EntryDate instant = %v, want %v", leads[0].EntryDate, want)
	}
}
