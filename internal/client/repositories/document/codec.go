package document

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var documentSchema = jsonschema.MustCompileString("todokeeper-document.schema.json", schemaJSON)

// CorruptStateError reports stored data that cannot be loaded safely.
type CorruptStateError struct {
	// Path is the backing file, empty for in-memory stores.
	Path string
	// Problems holds one "location: message" entry per violation.
	Problems []string
	Err      error
}

func (e *CorruptStateError) Error() string {
	var b strings.Builder
	b.WriteString("corrupt state")
	if e.Path != "" {
		fmt.Fprintf(&b, " in %s", e.Path)
	}
	switch {
	case len(e.Problems) > 0:
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Problems, "; "))
	case e.Err != nil:
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *CorruptStateError) Unwrap() []error {
	if e.Err == nil {
		return []error{common.ErrCorruptState}
	}
	return []error{common.ErrCorruptState, e.Err}
}

// Encode serializes doc as indented JSON. Output is deterministic: map keys
// are sorted, so encoding the same document twice yields identical bytes.
// Implicit empties are normalized on doc first.
func Encode(doc *models.Document) ([]byte, error) {
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode validates data and decodes it into a normalized Document.
func Decode(data []byte) (*models.Document, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, &CorruptStateError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &CorruptStateError{Problems: []string{"unexpected data after the document"}}
	}

	if err := documentSchema.Validate(raw); err != nil {
		return nil, &CorruptStateError{Problems: schemaProblems(err), Err: err}
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptStateError{Err: err}
	}
	doc.Normalize()

	if problems := checkInvariants(&doc); len(problems) > 0 {
		return nil, &CorruptStateError{Problems: problems}
	}

	return &doc, nil
}

func checkInvariants(doc *models.Document) []string {
	var problems []string
	for id, l := range doc.Lists {
		seen := make(map[string]struct{}, len(l.Tasks))
		for i, t := range l.Tasks {
			if _, dup := seen[t.ID]; dup {
				problems = append(problems, fmt.Sprintf("lists.%s.tasks.%d.id: duplicate task id %q", id, i, t.ID))
			}
			seen[t.ID] = struct{}{}
		}
	}
	return problems
}

func schemaProblems(err error) []string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	var problems []string
	collectSchemaProblems(&problems, ve)
	return problems
}

func collectSchemaProblems(problems *[]string, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		loc := pointerToPath(ve.InstanceLocation)
		if loc == "" {
			loc = "document"
		}
		*problems = append(*problems, loc+": "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaProblems(problems, cause)
	}
}

func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	parts := strings.Split(ptr, "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return strings.Join(parts, ".")
}
