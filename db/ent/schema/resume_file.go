package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ResumeFile struct {
	ent.Schema
}

func (ResumeFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "resume_files"},
	}
}

func (ResumeFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (ResumeFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY jobs
		edge.To("jobs", ParseJob.Type),
	}
}

func (ResumeFile) Indexes() []ent.Index {
	return []ent.Index{
		// same bytes ingested twice resolve to one row
		index.Fields("content_hash").Unique(),
		index.Fields("uploaded_at"),
	}
}
