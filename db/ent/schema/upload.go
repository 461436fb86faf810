package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/db/ent/schema/utils"
)

type Upload struct{ ent.Schema }

func (Upload) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "uploads"},
	}
}

func (Upload) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("user_id").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Int64("size_bytes").Optional().Nillable(),
		field.String("source_type").
			Validate(utils.EnumValidator(constants.SourceTypes...)),
		field.String("storage_path").NotEmpty(),
		field.String("bucket").NotEmpty(),
		field.String("status").
			Validate(utils.EnumValidator(constants.UploadStatuses...)),
		field.String("last_error").Optional().Nillable(),
		field.UUID("processing_job_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("ingestion_job_id", uuid.UUID{}).Optional().Nillable(),
		field.String("text_preview").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Upload) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE upload -> MANY jobs (retries re-submit under the same upload)
		edge.To("jobs", UploadJob.Type),
	}
}

func (Upload) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
	}
}
