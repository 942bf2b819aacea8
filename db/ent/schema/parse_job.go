package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/haroldmt/resume-parser/constants"
	"github.com/haroldmt/resume-parser/db/ent/schema/utils"

	"github.com/google/uuid"
)

type ParseJob struct{ ent.Schema }

func (ParseJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parse_job"},
	}
}

func (ParseJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("file_id", uuid.UUID{}),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.String("extraction_strategy").Optional().Nillable(),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.Float("section_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("parsed_json", json.RawMessage{}).
			Optional(),
		field.JSON("warnings", []string{}).
			Optional(),
	}
}

func (ParseJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", ResumeFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
	}
}

func (ParseJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("file_id"),
	}
}
