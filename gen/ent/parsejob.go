// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/gen/ent/parsejob"
	"github.com/haroldmt/resume-parser/gen/ent/resumefile"
)

// ParseJob is the model entity for the ParseJob schema.
type ParseJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status *string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ExtractionStrategy holds the value of the "extraction_strategy" field.
	ExtractionStrategy *string `json:"extraction_strategy,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence *float32 `json:"extraction_confidence,omitempty"`
	// SectionConfidence holds the value of the "section_confidence" field.
	SectionConfidence *float64 `json:"section_confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText *string `json:"raw_text,omitempty"`
	// ParsedJSON holds the value of the "parsed_json" field.
	ParsedJSON json.RawMessage `json:"parsed_json,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings []string `json:"warnings,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParseJobQuery when eager-loading is set.
	Edges        ParseJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParseJobEdges holds the relations/edges for other nodes in the graph.
type ParseJobEdges struct {
	// File holds the value of the file edge.
	File *ResumeFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParseJobEdges) FileOrErr() (*ResumeFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: resumefile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParseJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parsejob.FieldParsedJSON, parsejob.FieldWarnings:
			values[i] = new([]byte)
		case parsejob.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case parsejob.FieldExtractionConfidence, parsejob.FieldSectionConfidence:
			values[i] = new(sql.NullFloat64)
		case parsejob.FieldFormat, parsejob.FieldStatus, parsejob.FieldErrorMessage, parsejob.FieldExtractionStrategy, parsejob.FieldRawText:
			values[i] = new(sql.NullString)
		case parsejob.FieldStartedAt, parsejob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case parsejob.FieldID, parsejob.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParseJob fields.
func (_m *ParseJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parsejob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case parsejob.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case parsejob.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case parsejob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case parsejob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case parsejob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case parsejob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case parsejob.FieldExtractionStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_strategy", values[i])
			} else if value.Valid {
				_m.ExtractionStrategy = new(string)
				*_m.ExtractionStrategy = value.String
			}
		case parsejob.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = new(float32)
				*_m.ExtractionConfidence = float32(value.Float64)
			}
		case parsejob.FieldSectionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field section_confidence", values[i])
			} else if value.Valid {
				_m.SectionConfidence = new(float64)
				*_m.SectionConfidence = value.Float64
			}
		case parsejob.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case parsejob.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = new(string)
				*_m.RawText = value.String
			}
		case parsejob.FieldParsedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParsedJSON); err != nil {
					return fmt.Errorf("unmarshal field parsed_json: %w", err)
				}
			}
		case parsejob.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParseJob.
// This includes values selected through modifiers, order, etc.
func (_m *ParseJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the ParseJob entity.
func (_m *ParseJob) QueryFile() *ResumeFileQuery {
	return NewParseJobClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this ParseJob.
// Note that you need to call ParseJob.Unwrap() before calling this method if this ParseJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParseJob) Update() *ParseJobUpdateOne {
	return NewParseJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParseJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParseJob) Unwrap() *ParseJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParseJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParseJob) String() string {
	var builder strings.Builder
	builder.WriteString("ParseJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractionStrategy; v != nil {
		builder.WriteString("extraction_strategy=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractionConfidence; v != nil {
		builder.WriteString("extraction_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SectionConfidence; v != nil {
		builder.WriteString("section_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	if v := _m.RawText; v != nil {
		builder.WriteString("raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("parsed_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParsedJSON))
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteByte(')')
	return builder.String()
}

// ParseJobs is a parsable slice of ParseJob.
type ParseJobs []*ParseJob
