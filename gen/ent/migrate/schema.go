// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ParseJobColumns holds the columns for the "parse_job" table.
	ParseJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_strategy", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "section_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "parsed_json", Type: field.TypeJSON, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ParseJobTable holds the schema information for the "parse_job" table.
	ParseJobTable = &schema.Table{
		Name:       "parse_job",
		Columns:    ParseJobColumns,
		PrimaryKey: []*schema.Column{ParseJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_job_resume_files_jobs",
				Columns:    []*schema.Column{ParseJobColumns[13]},
				RefColumns: []*schema.Column{ResumeFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[4], ParseJobColumns[2]},
			},
			{
				Name:    "parsejob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[13]},
			},
		},
	}
	// ResumeFilesColumns holds the columns for the "resume_files" table.
	ResumeFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ResumeFilesTable holds the schema information for the "resume_files" table.
	ResumeFilesTable = &schema.Table{
		Name:       "resume_files",
		Columns:    ResumeFilesColumns,
		PrimaryKey: []*schema.Column{ResumeFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resumefile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ResumeFilesColumns[2]},
			},
			{
				Name:    "resumefile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ResumeFilesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ParseJobTable,
		ResumeFilesTable,
	}
)

func init() {
	ParseJobTable.ForeignKeys[0].RefTable = ResumeFilesTable
	ParseJobTable.Annotation = &entsql.Annotation{
		Table: "parse_job",
	}
	ResumeFilesTable.Annotation = &entsql.Annotation{
		Table: "resume_files",
	}
}
