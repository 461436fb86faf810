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

type UploadJob struct{ ent.Schema }

func (UploadJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "upload_jobs"},
	}
}

func (UploadJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("upload_id", uuid.UUID{}),
		field.String("user_id").NotEmpty(),
		field.String("storage_path").NotEmpty(),
		field.String("bucket").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.String("source_type").
			Validate(utils.EnumValidator(constants.SourceTypes...)),
		field.String("status").
			Validate(utils.EnumValidator(constants.UploadJobStatuses...)),
		field.Int("attempts").Default(0).Min(0),
		field.String("last_error").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (UploadJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("upload", Upload.Type).
			Ref("jobs").
			Field("upload_id").
			Unique().
			Required(),
	}
}

func (UploadJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("upload_id"),
		index.Fields("status", "created_at"),
	}
}
