// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/db/ent/schema"
	"github.com/haroldmt/resume-parser/gen/ent/parsejob"
	"github.com/haroldmt/resume-parser/gen/ent/resumefile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[2].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[3].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescStatus is the schema descriptor for status field.
	parsejobDescStatus := parsejobFields[5].Descriptor()
	// parsejob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	parsejob.StatusValidator = parsejobDescStatus.Validators[0].(func(string) error)
	// parsejobDescNeedsReview is the schema descriptor for needs_review field.
	parsejobDescNeedsReview := parsejobFields[10].Descriptor()
	// parsejob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	parsejob.DefaultNeedsReview = parsejobDescNeedsReview.Default.(bool)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
	resumefileFields := schema.ResumeFile{}.Fields()
	_ = resumefileFields
	// resumefileDescSourcePath is the schema descriptor for source_path field.
	resumefileDescSourcePath := resumefileFields[1].Descriptor()
	// resumefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	resumefile.SourcePathValidator = resumefileDescSourcePath.Validators[0].(func(string) error)
	// resumefileDescContentHash is the schema descriptor for content_hash field.
	resumefileDescContentHash := resumefileFields[2].Descriptor()
	// resumefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	resumefile.ContentHashValidator = resumefileDescContentHash.Validators[0].(func([]byte) error)
	// resumefileDescFilename is the schema descriptor for filename field.
	resumefileDescFilename := resumefileFields[3].Descriptor()
	// resumefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	resumefile.FilenameValidator = resumefileDescFilename.Validators[0].(func(string) error)
	// resumefileDescFileExt is the schema descriptor for file_ext field.
	resumefileDescFileExt := resumefileFields[4].Descriptor()
	// resumefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	resumefile.FileExtValidator = resumefileDescFileExt.Validators[0].(func(string) error)
	// resumefileDescFileSize is the schema descriptor for file_size field.
	resumefileDescFileSize := resumefileFields[5].Descriptor()
	// resumefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	resumefile.FileSizeValidator = resumefileDescFileSize.Validators[0].(func(int) error)
	// resumefileDescUploadedAt is the schema descriptor for uploaded_at field.
	resumefileDescUploadedAt := resumefileFields[6].Descriptor()
	// resumefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	resumefile.DefaultUploadedAt = resumefileDescUploadedAt.Default.(func() time.Time)
	// resumefileDescID is the schema descriptor for id field.
	resumefileDescID := resumefileFields[0].Descriptor()
	// resumefile.DefaultID holds the default value on creation for the id field.
	resumefile.DefaultID = resumefileDescID.Default.(func() uuid.UUID)
}
