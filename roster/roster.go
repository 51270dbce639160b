// Package roster loads draw participants from JSON, YAML or CSV files
package roster

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/lucky-globe/globe"
)

var (
	ErrDuplicateID       = errors.New("duplicate participant id")
	ErrEmptyName         = errors.New("participant name is empty")
	ErrUnsupportedFormat = errors.New("unsupported roster format")
)

// Format is a roster file encoding
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
	FormatCSV
)

// Record is one participant as stored on disk
type Record struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Department string `json:"department" yaml:"department"`
}

// FormatFromPath picks the decoder by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and validates a roster file
func Load(path string) ([]globe.Entity, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	list, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	log.Printf("[roster] loaded %d participants from %s", len(list), path)
	return list, nil
}

// Parse decodes records in the given format and converts them to entities
func Parse(r io.Reader, format Format) ([]globe.Entity, error) {
	var records []Record
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&records)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&records)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatCSV:
		records, err = parseCSV(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return Entities(records)
}

// parseCSV reads a header row naming id, name and department in any order
// The id column is optional, name is required
func parseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	col := map[string]int{"id": -1, "name": -1, "department": -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, ok := col[key]; ok {
			col[key] = i
		}
	}
	if col["name"] < 0 {
		return nil, fmt.Errorf("csv header has no name column: %v", header)
	}

	field := func(row []string, key string) string {
		i := col[key]
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		records = append(records, Record{
			ID:         field(row, "id"),
			Name:       field(row, "name"),
			Department: field(row, "department"),
		})
	}
	return records, nil
}

// Entities validates records and converts them in order
// Blank ids get a random UUID, duplicate ids and blank names are rejected
func Entities(records []Record) ([]globe.Entity, error) {
	list := make([]globe.Entity, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			return nil, fmt.Errorf("record %d: %w", i+1, ErrEmptyName)
		}
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("record %d: %w %q (first at record %d)", i+1, ErrDuplicateID, id, prev+1)
		}
		seen[id] = i
		list = append(list, globe.Entity{
			ID:          id,
			DisplayName: name,
			GroupLabel:  strings.TrimSpace(rec.Department),
		})
	}
	return list, nil
}

// Exclude returns list without the given ids, order preserved
// Hosts use it to drop past winners from the globe
func Exclude(list []globe.Entity, ids []string) []globe.Entity {
	if len(ids) == 0 {
		return list
	}
	skip := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}
	out := make([]globe.Entity, 0, len(list))
	for _, e := range list {
		if _, ok := skip[e.ID]; !ok {
			out = append(out, e)
		}
	}
	return out
}
