package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/db/ent/schema/utils"
)

type IngestionJob struct{ ent.Schema }

func (IngestionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingestion_jobs"},
	}
}

func (IngestionJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("user_id").NotEmpty(),
		// Exactly one of input_text / upload_id is set.
		field.String("input_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.UUID("upload_id", uuid.UUID{}).Optional().Nillable(),
		field.JSON("metadata", json.RawMessage{}).Optional(),
		field.String("status").
			Validate(utils.EnumValidator(constants.IngestionStatuses...)),
		field.String("agent_response").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("result_summary").Optional().Nillable(),
		field.String("last_error").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (IngestionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
		index.Fields("upload_id"),
	}
}
