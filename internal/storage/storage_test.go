package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type record struct {
	ID   int       `json:"id"`
	Name string    `json:"name"`
	At   *DateTime `json:"at"`
}

func TestCollectionRoundTrip(t *testing.T) {
	dir := t.TempDir()
	col := NewCollection[record](dir, "records.json")

	at, _ := ParseDateTime("01/05/2024 09:30")
	in := []record{
		{ID: 1, Name: "first", At: &at},
		{ID: 3, Name: "second"},
		{ID: 5, Name: "third"},
	}
	if err := col.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out := col.Load()
	if len(out) != len(in) {
		t.Fatalf("expected %d records, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].ID != in[i].ID {
			t.Errorf("record %d: expected id %d, got %d", i, in[i].ID, out[i].ID)
		}
	}
	if out[0].At == nil || !out[0].At.Equal(at.Time) {
		t.Errorf("timestamp did not survive the round trip: %v", out[0].At)
	}
	if out[1].At != nil {
		t.Errorf("expected nil timestamp, got %v", out[1].At)
	}
}

func TestCollectionMissingFileIsEmpty(t *testing.T) {
	col := NewCollection[record](t.TempDir(), "absent.json")
	if items := col.Load(); len(items) != 0 {
		t.Fatalf("expected empty collection, got %d items", len(items))
	}
}

func TestCollectionMalformedFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	col := NewCollection[record](dir, "broken.json")
	if items := col.Load(); len(items) != 0 {
		t.Fatalf("expected empty collection for malformed file, got %d items", len(items))
	}
}

func TestCollectionFileIsPrettyPrinted(t *testing.T) {
	dir := t.TempDir()
	col := NewCollection[record](dir, "records.json")
	if err := col.Save([]record{{ID: 1, Name: "x"}}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "records.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Errorf("expected indented output, got: %s", data)
	}
}

func TestDateTimeFormat(t *testing.T) {
	d := At(time.Date(2024, 3, 1, 8, 5, 59, 0, time.UTC))
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"01/03/2024 08:05"` {
		t.Errorf("unexpected wire format: %s", b)
	}

	var back DateTime
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	// Seconds are not part of the wire format.
	if back.Minute() != 5 || back.Second() != 0 {
		t.Errorf("unexpected parse result: %v", back)
	}
}

func TestParseDateTimeRejectsBadInput(t *testing.T) {
	if _, err := ParseDateTime("2024-05-01 10:00"); err == nil {
		t.Error("expected an error for ISO-style input")
	}
}
