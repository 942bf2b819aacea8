// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/gen/ent/parsejob"
	"github.com/haroldmt/resume-parser/gen/ent/predicate"
	"github.com/haroldmt/resume-parser/gen/ent/resumefile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeParseJob   = "ParseJob"
	TypeResumeFile = "ResumeFile"
)

// ParseJobMutation represents an operation that mutates the ParseJob nodes in the graph.
type ParseJobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	format                   *string
	started_at               *time.Time
	finished_at              *time.Time
	status                   *string
	error_message            *string
	extraction_strategy      *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	section_confidence       *float64
	addsection_confidence    *float64
	needs_review             *bool
	raw_text                 *string
	parsed_json              *json.RawMessage
	appendparsed_json        json.RawMessage
	warnings                 *[]string
	appendwarnings           []string
	clearedFields            map[string]struct{}
	file                     *uuid.UUID
	clearedfile              bool
	done                     bool
	oldValue                 func(context.Context) (*ParseJob, error)
	predicates               []predicate.ParseJob
}

var _ ent.Mutation = (*ParseJobMutation)(nil)

// parsejobOption allows management of the mutation configuration using functional options.
type parsejobOption func(*ParseJobMutation)

// newParseJobMutation creates new mutation for the ParseJob entity.
func newParseJobMutation(c config, op Op, opts ...parsejobOption) *ParseJobMutation {
	m := &ParseJobMutation{
		config:        c,
		op:            op,
		typ:           TypeParseJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParseJobID sets the ID field of the mutation.
func withParseJobID(id uuid.UUID) parsejobOption {
	return func(m *ParseJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ParseJob
		)
		m.oldValue = func(ctx context.Context) (*ParseJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParseJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParseJob sets the old ParseJob of the mutation.
func withParseJob(node *ParseJob) parsejobOption {
	return func(m *ParseJobMutation) {
		m.oldValue = func(context.Context) (*ParseJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParseJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParseJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParseJob entities.
func (m *ParseJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParseJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParseJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParseJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ParseJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ParseJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ParseJobMutation) ResetFileID() {
	m.file = nil
}

// SetFormat sets the "format" field.
func (m *ParseJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ParseJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ParseJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ParseJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ParseJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ParseJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ParseJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ParseJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ParseJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[parsejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ParseJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ParseJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, parsejob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ParseJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ParseJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ParseJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[parsejob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ParseJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ParseJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, parsejob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ParseJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ParseJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ParseJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[parsejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ParseJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ParseJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, parsejob.FieldErrorMessage)
}

// SetExtractionStrategy sets the "extraction_strategy" field.
func (m *ParseJobMutation) SetExtractionStrategy(s string) {
	m.extraction_strategy = &s
}

// ExtractionStrategy returns the value of the "extraction_strategy" field in the mutation.
func (m *ParseJobMutation) ExtractionStrategy() (r string, exists bool) {
	v := m.extraction_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStrategy returns the old "extraction_strategy" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldExtractionStrategy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStrategy: %w", err)
	}
	return oldValue.ExtractionStrategy, nil
}

// ClearExtractionStrategy clears the value of the "extraction_strategy" field.
func (m *ParseJobMutation) ClearExtractionStrategy() {
	m.extraction_strategy = nil
	m.clearedFields[parsejob.FieldExtractionStrategy] = struct{}{}
}

// ExtractionStrategyCleared returns if the "extraction_strategy" field was cleared in this mutation.
func (m *ParseJobMutation) ExtractionStrategyCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldExtractionStrategy]
	return ok
}

// ResetExtractionStrategy resets all changes to the "extraction_strategy" field.
func (m *ParseJobMutation) ResetExtractionStrategy() {
	m.extraction_strategy = nil
	delete(m.clearedFields, parsejob.FieldExtractionStrategy)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ParseJobMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ParseJobMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ParseJobMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ParseJobMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *ParseJobMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[parsejob.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *ParseJobMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ParseJobMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, parsejob.FieldExtractionConfidence)
}

// SetSectionConfidence sets the "section_confidence" field.
func (m *ParseJobMutation) SetSectionConfidence(f float64) {
	m.section_confidence = &f
	m.addsection_confidence = nil
}

// SectionConfidence returns the value of the "section_confidence" field in the mutation.
func (m *ParseJobMutation) SectionConfidence() (r float64, exists bool) {
	v := m.section_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionConfidence returns the old "section_confidence" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldSectionConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionConfidence: %w", err)
	}
	return oldValue.SectionConfidence, nil
}

// AddSectionConfidence adds f to the "section_confidence" field.
func (m *ParseJobMutation) AddSectionConfidence(f float64) {
	if m.addsection_confidence != nil {
		*m.addsection_confidence += f
	} else {
		m.addsection_confidence = &f
	}
}

// AddedSectionConfidence returns the value that was added to the "section_confidence" field in this mutation.
func (m *ParseJobMutation) AddedSectionConfidence() (r float64, exists bool) {
	v := m.addsection_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearSectionConfidence clears the value of the "section_confidence" field.
func (m *ParseJobMutation) ClearSectionConfidence() {
	m.section_confidence = nil
	m.addsection_confidence = nil
	m.clearedFields[parsejob.FieldSectionConfidence] = struct{}{}
}

// SectionConfidenceCleared returns if the "section_confidence" field was cleared in this mutation.
func (m *ParseJobMutation) SectionConfidenceCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldSectionConfidence]
	return ok
}

// ResetSectionConfidence resets all changes to the "section_confidence" field.
func (m *ParseJobMutation) ResetSectionConfidence() {
	m.section_confidence = nil
	m.addsection_confidence = nil
	delete(m.clearedFields, parsejob.FieldSectionConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ParseJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ParseJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ParseJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetRawText sets the "raw_text" field.
func (m *ParseJobMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ParseJobMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ParseJobMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[parsejob.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ParseJobMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ParseJobMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, parsejob.FieldRawText)
}

// SetParsedJSON sets the "parsed_json" field.
func (m *ParseJobMutation) SetParsedJSON(jm json.RawMessage) {
	m.parsed_json = &jm
	m.appendparsed_json = nil
}

// ParsedJSON returns the value of the "parsed_json" field in the mutation.
func (m *ParseJobMutation) ParsedJSON() (r json.RawMessage, exists bool) {
	v := m.parsed_json
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedJSON returns the old "parsed_json" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldParsedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedJSON: %w", err)
	}
	return oldValue.ParsedJSON, nil
}

// AppendParsedJSON adds jm to the "parsed_json" field.
func (m *ParseJobMutation) AppendParsedJSON(jm json.RawMessage) {
	m.appendparsed_json = append(m.appendparsed_json, jm...)
}

// AppendedParsedJSON returns the list of values that were appended to the "parsed_json" field in this mutation.
func (m *ParseJobMutation) AppendedParsedJSON() (json.RawMessage, bool) {
	if len(m.appendparsed_json) == 0 {
		return nil, false
	}
	return m.appendparsed_json, true
}

// ClearParsedJSON clears the value of the "parsed_json" field.
func (m *ParseJobMutation) ClearParsedJSON() {
	m.parsed_json = nil
	m.appendparsed_json = nil
	m.clearedFields[parsejob.FieldParsedJSON] = struct{}{}
}

// ParsedJSONCleared returns if the "parsed_json" field was cleared in this mutation.
func (m *ParseJobMutation) ParsedJSONCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldParsedJSON]
	return ok
}

// ResetParsedJSON resets all changes to the "parsed_json" field.
func (m *ParseJobMutation) ResetParsedJSON() {
	m.parsed_json = nil
	m.appendparsed_json = nil
	delete(m.clearedFields, parsejob.FieldParsedJSON)
}

// SetWarnings sets the "warnings" field.
func (m *ParseJobMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *ParseJobMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *ParseJobMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *ParseJobMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *ParseJobMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[parsejob.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *ParseJobMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *ParseJobMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, parsejob.FieldWarnings)
}

// ClearFile clears the "file" edge to the ResumeFile entity.
func (m *ParseJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[parsejob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the ResumeFile entity was cleared.
func (m *ParseJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ParseJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the ParseJobMutation builder.
func (m *ParseJobMutation) Where(ps ...predicate.ParseJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParseJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParseJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParseJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParseJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParseJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParseJob).
func (m *ParseJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParseJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.file != nil {
		fields = append(fields, parsejob.FieldFileID)
	}
	if m.format != nil {
		fields = append(fields, parsejob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, parsejob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.extraction_strategy != nil {
		fields = append(fields, parsejob.FieldExtractionStrategy)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, parsejob.FieldExtractionConfidence)
	}
	if m.section_confidence != nil {
		fields = append(fields, parsejob.FieldSectionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, parsejob.FieldNeedsReview)
	}
	if m.raw_text != nil {
		fields = append(fields, parsejob.FieldRawText)
	}
	if m.parsed_json != nil {
		fields = append(fields, parsejob.FieldParsedJSON)
	}
	if m.warnings != nil {
		fields = append(fields, parsejob.FieldWarnings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParseJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldFileID:
		return m.FileID()
	case parsejob.FieldFormat:
		return m.Format()
	case parsejob.FieldStartedAt:
		return m.StartedAt()
	case parsejob.FieldFinishedAt:
		return m.FinishedAt()
	case parsejob.FieldStatus:
		return m.Status()
	case parsejob.FieldErrorMessage:
		return m.ErrorMessage()
	case parsejob.FieldExtractionStrategy:
		return m.ExtractionStrategy()
	case parsejob.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case parsejob.FieldSectionConfidence:
		return m.SectionConfidence()
	case parsejob.FieldNeedsReview:
		return m.NeedsReview()
	case parsejob.FieldRawText:
		return m.RawText()
	case parsejob.FieldParsedJSON:
		return m.ParsedJSON()
	case parsejob.FieldWarnings:
		return m.Warnings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParseJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parsejob.FieldFileID:
		return m.OldFileID(ctx)
	case parsejob.FieldFormat:
		return m.OldFormat(ctx)
	case parsejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case parsejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case parsejob.FieldStatus:
		return m.OldStatus(ctx)
	case parsejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case parsejob.FieldExtractionStrategy:
		return m.OldExtractionStrategy(ctx)
	case parsejob.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case parsejob.FieldSectionConfidence:
		return m.OldSectionConfidence(ctx)
	case parsejob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case parsejob.FieldRawText:
		return m.OldRawText(ctx)
	case parsejob.FieldParsedJSON:
		return m.OldParsedJSON(ctx)
	case parsejob.FieldWarnings:
		return m.OldWarnings(ctx)
	}
	return nil, fmt.Errorf("unknown ParseJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case parsejob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case parsejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case parsejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case parsejob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case parsejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case parsejob.FieldExtractionStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStrategy(v)
		return nil
	case parsejob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case parsejob.FieldSectionConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionConfidence(v)
		return nil
	case parsejob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case parsejob.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case parsejob.FieldParsedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedJSON(v)
		return nil
	case parsejob.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParseJobMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, parsejob.FieldExtractionConfidence)
	}
	if m.addsection_confidence != nil {
		fields = append(fields, parsejob.FieldSectionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParseJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	case parsejob.FieldSectionConfidence:
		return m.AddedSectionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	case parsejob.FieldSectionConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSectionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParseJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parsejob.FieldFinishedAt) {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.FieldCleared(parsejob.FieldStatus) {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.FieldCleared(parsejob.FieldErrorMessage) {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.FieldCleared(parsejob.FieldExtractionStrategy) {
		fields = append(fields, parsejob.FieldExtractionStrategy)
	}
	if m.FieldCleared(parsejob.FieldExtractionConfidence) {
		fields = append(fields, parsejob.FieldExtractionConfidence)
	}
	if m.FieldCleared(parsejob.FieldSectionConfidence) {
		fields = append(fields, parsejob.FieldSectionConfidence)
	}
	if m.FieldCleared(parsejob.FieldRawText) {
		fields = append(fields, parsejob.FieldRawText)
	}
	if m.FieldCleared(parsejob.FieldParsedJSON) {
		fields = append(fields, parsejob.FieldParsedJSON)
	}
	if m.FieldCleared(parsejob.FieldWarnings) {
		fields = append(fields, parsejob.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParseJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParseJobMutation) ClearField(name string) error {
	switch name {
	case parsejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case parsejob.FieldStatus:
		m.ClearStatus()
		return nil
	case parsejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case parsejob.FieldExtractionStrategy:
		m.ClearExtractionStrategy()
		return nil
	case parsejob.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case parsejob.FieldSectionConfidence:
		m.ClearSectionConfidence()
		return nil
	case parsejob.FieldRawText:
		m.ClearRawText()
		return nil
	case parsejob.FieldParsedJSON:
		m.ClearParsedJSON()
		return nil
	case parsejob.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown ParseJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParseJobMutation) ResetField(name string) error {
	switch name {
	case parsejob.FieldFileID:
		m.ResetFileID()
		return nil
	case parsejob.FieldFormat:
		m.ResetFormat()
		return nil
	case parsejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case parsejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case parsejob.FieldStatus:
		m.ResetStatus()
		return nil
	case parsejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case parsejob.FieldExtractionStrategy:
		m.ResetExtractionStrategy()
		return nil
	case parsejob.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case parsejob.FieldSectionConfidence:
		m.ResetSectionConfidence()
		return nil
	case parsejob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case parsejob.FieldRawText:
		m.ResetRawText()
		return nil
	case parsejob.FieldParsedJSON:
		m.ResetParsedJSON()
		return nil
	case parsejob.FieldWarnings:
		m.ResetWarnings()
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParseJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, parsejob.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParseJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parsejob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParseJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParseJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParseJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, parsejob.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParseJobMutation) EdgeCleared(name string) bool {
	switch name {
	case parsejob.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParseJobMutation) ClearEdge(name string) error {
	switch name {
	case parsejob.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown ParseJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParseJobMutation) ResetEdge(name string) error {
	switch name {
	case parsejob.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown ParseJob edge %s", name)
}

// ResumeFileMutation represents an operation that mutates the ResumeFile nodes in the graph.
type ResumeFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	file_size     *int
	addfile_size  *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*ResumeFile, error)
	predicates    []predicate.ResumeFile
}

var _ ent.Mutation = (*ResumeFileMutation)(nil)

// resumefileOption allows management of the mutation configuration using functional options.
type resumefileOption func(*ResumeFileMutation)

// newResumeFileMutation creates new mutation for the ResumeFile entity.
func newResumeFileMutation(c config, op Op, opts ...resumefileOption) *ResumeFileMutation {
	m := &ResumeFileMutation{
		config:        c,
		op:            op,
		typ:           TypeResumeFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResumeFileID sets the ID field of the mutation.
func withResumeFileID(id uuid.UUID) resumefileOption {
	return func(m *ResumeFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ResumeFile
		)
		m.oldValue = func(ctx context.Context) (*ResumeFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResumeFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResumeFile sets the old ResumeFile of the mutation.
func withResumeFile(node *ResumeFile) resumefileOption {
	return func(m *ResumeFileMutation) {
		m.oldValue = func(context.Context) (*ResumeFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResumeFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResumeFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResumeFile entities.
func (m *ResumeFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResumeFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResumeFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResumeFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *ResumeFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ResumeFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the ResumeFile entity.
// If the ResumeFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ResumeFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ResumeFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ResumeFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ResumeFile entity.
// If the ResumeFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ResumeFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *ResumeFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ResumeFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ResumeFile entity.
// If the ResumeFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ResumeFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *ResumeFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *ResumeFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the ResumeFile entity.
// If the ResumeFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *ResumeFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *ResumeFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ResumeFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ResumeFile entity.
// If the ResumeFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ResumeFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ResumeFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ResumeFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ResumeFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ResumeFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ResumeFile entity.
// If the ResumeFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ResumeFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by ids.
func (m *ResumeFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ParseJob entity.
func (m *ResumeFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ParseJob entity was cleared.
func (m *ResumeFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ParseJob entity by IDs.
func (m *ResumeFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ParseJob entity.
func (m *ResumeFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ResumeFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ResumeFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ResumeFileMutation builder.
func (m *ResumeFileMutation) Where(ps ...predicate.ResumeFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResumeFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResumeFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResumeFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResumeFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResumeFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResumeFile).
func (m *ResumeFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResumeFileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, resumefile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, resumefile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, resumefile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, resumefile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, resumefile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, resumefile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResumeFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resumefile.FieldSourcePath:
		return m.SourcePath()
	case resumefile.FieldContentHash:
		return m.ContentHash()
	case resumefile.FieldFilename:
		return m.Filename()
	case resumefile.FieldFileExt:
		return m.FileExt()
	case resumefile.FieldFileSize:
		return m.FileSize()
	case resumefile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResumeFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resumefile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case resumefile.FieldContentHash:
		return m.OldContentHash(ctx)
	case resumefile.FieldFilename:
		return m.OldFilename(ctx)
	case resumefile.FieldFileExt:
		return m.OldFileExt(ctx)
	case resumefile.FieldFileSize:
		return m.OldFileSize(ctx)
	case resumefile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResumeFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResumeFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resumefile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case resumefile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case resumefile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case resumefile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case resumefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case resumefile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResumeFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResumeFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, resumefile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResumeFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case resumefile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResumeFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case resumefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown ResumeFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResumeFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResumeFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResumeFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ResumeFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResumeFileMutation) ResetField(name string) error {
	switch name {
	case resumefile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case resumefile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case resumefile.FieldFilename:
		m.ResetFilename()
		return nil
	case resumefile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case resumefile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case resumefile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown ResumeFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResumeFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, resumefile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResumeFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case resumefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResumeFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, resumefile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResumeFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case resumefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResumeFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, resumefile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResumeFileMutation) EdgeCleared(name string) bool {
	switch name {
	case resumefile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResumeFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ResumeFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResumeFileMutation) ResetEdge(name string) error {
	switch name {
	case resumefile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown ResumeFile edge %s", name)
}
