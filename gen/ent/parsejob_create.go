// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/gen/ent/parsejob"
	"github.com/haroldmt/resume-parser/gen/ent/resumefile"
)

// ParseJobCreate is the builder for creating a ParseJob entity.
type ParseJobCreate struct {
	config
	mutation *ParseJobMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *ParseJobCreate) SetFileID(v uuid.UUID) *ParseJobCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ParseJobCreate) SetFormat(v string) *ParseJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ParseJobCreate) SetStartedAt(v time.Time) *ParseJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableStartedAt(v *time.Time) *ParseJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ParseJobCreate) SetFinishedAt(v time.Time) *ParseJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableFinishedAt(v *time.Time) *ParseJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ParseJobCreate) SetStatus(v string) *ParseJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableStatus(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ParseJobCreate) SetErrorMessage(v string) *ParseJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableErrorMessage(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExtractionStrategy sets the "extraction_strategy" field.
func (_c *ParseJobCreate) SetExtractionStrategy(v string) *ParseJobCreate {
	_c.mutation.SetExtractionStrategy(v)
	return _c
}

// SetNillableExtractionStrategy sets the "extraction_strategy" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableExtractionStrategy(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetExtractionStrategy(*v)
	}
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *ParseJobCreate) SetExtractionConfidence(v float32) *ParseJobCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableExtractionConfidence(v *float32) *ParseJobCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetSectionConfidence sets the "section_confidence" field.
func (_c *ParseJobCreate) SetSectionConfidence(v float64) *ParseJobCreate {
	_c.mutation.SetSectionConfidence(v)
	return _c
}

// SetNillableSectionConfidence sets the "section_confidence" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableSectionConfidence(v *float64) *ParseJobCreate {
	if v != nil {
		_c.SetSectionConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ParseJobCreate) SetNeedsReview(v bool) *ParseJobCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableNeedsReview(v *bool) *ParseJobCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ParseJobCreate) SetRawText(v string) *ParseJobCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableRawText(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetParsedJSON sets the "parsed_json" field.
func (_c *ParseJobCreate) SetParsedJSON(v json.RawMessage) *ParseJobCreate {
	_c.mutation.SetParsedJSON(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *ParseJobCreate) SetWarnings(v []string) *ParseJobCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ParseJobCreate) SetID(v uuid.UUID) *ParseJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableID(v *uuid.UUID) *ParseJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the ResumeFile entity.
func (_c *ParseJobCreate) SetFile(v *ResumeFile) *ParseJobCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_c *ParseJobCreate) Mutation() *ParseJobMutation {
	return _c.mutation
}

// Save creates the ParseJob in the database.
func (_c *ParseJobCreate) Save(ctx context.Context) (*ParseJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParseJobCreate) SaveX(ctx context.Context) *ParseJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParseJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := parsejob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := parsejob.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := parsejob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParseJobCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "ParseJob.file_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ParseJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := parsejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ParseJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ParseJob.started_at"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := parsejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "ParseJob.needs_review"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "ParseJob.file"`)}
	}
	return nil
}

func (_c *ParseJobCreate) sqlSave(ctx context.Context) (*ParseJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ParseJobCreate) createSpec() (*ParseJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ParseJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parsejob.Table, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(parsejob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ExtractionStrategy(); ok {
		_spec.SetField(parsejob.FieldExtractionStrategy, field.TypeString, value)
		_node.ExtractionStrategy = &value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(parsejob.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = &value
	}
	if value, ok := _c.mutation.SectionConfidence(); ok {
		_spec.SetField(parsejob.FieldSectionConfidence, field.TypeFloat64, value)
		_node.SectionConfidence = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(parsejob.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(parsejob.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.ParsedJSON(); ok {
		_spec.SetField(parsejob.FieldParsedJSON, field.TypeJSON, value)
		_node.ParsedJSON = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(parsejob.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resumefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ParseJobCreateBulk is the builder for creating many ParseJob entities in bulk.
type ParseJobCreateBulk struct {
	config
	err      error
	builders []*ParseJobCreate
}

// Save creates the ParseJob entities in the database.
func (_c *ParseJobCreateBulk) Save(ctx context.Context) ([]*ParseJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParseJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParseJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ParseJobCreateBulk) SaveX(ctx context.Context) []*ParseJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
