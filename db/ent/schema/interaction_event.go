package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InteractionEvent is append-only; one row per completed pipeline invocation.
type InteractionEvent struct{ ent.Schema }

func (InteractionEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "interaction_events"},
	}
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("user_id").NotEmpty(),
		field.String("input").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("agent").NotEmpty(),
		field.Bool("success"),
		field.Bool("used_fallback").Default(false),
		field.Int64("latency_ms").Min(0),
		field.Float32("confidence").Optional().Nillable(),
		field.String("error").Optional().Nillable(),
		field.Time("timestamp").Default(time.Now).Immutable(),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("user_id", "timestamp"),
	}
}
