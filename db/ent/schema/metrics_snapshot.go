package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// MetricsSnapshot accumulates interaction counters under a key: "global" or a
// UTC date ("2026-08-29"). All fields are monotonically additive and the whole
// row is recomputable from interaction_events.
type MetricsSnapshot struct{ ent.Schema }

func (MetricsSnapshot) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "metrics_snapshots"},
	}
}

func (MetricsSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("key").NotEmpty().Unique(),
		field.Int64("total").Default(0).Min(0),
		field.Int64("success_count").Default(0).Min(0),
		field.Int64("fallback_count").Default(0).Min(0),
		field.Int64("latency_sum_ms").Default(0).Min(0),
		field.Float("confidence_sum").Default(0),
		field.Int64("latency_lt_2s").Default(0).Min(0),
		field.Int64("latency_2s_5s").Default(0).Min(0),
		field.Int64("latency_gt_5s").Default(0).Min(0),
		field.Int64("confidence_low").Default(0).Min(0),
		field.Int64("confidence_medium").Default(0).Min(0),
		field.Int64("confidence_high").Default(0).Min(0),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
