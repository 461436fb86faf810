package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/db/ent/schema/utils"
)

// ToolInvocation records one tool call/result pair. Purely observational:
// nothing reads it to drive control flow.
type ToolInvocation struct{ ent.Schema }

func (ToolInvocation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tool_invocations"},
	}
}

func (ToolInvocation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		// Provider-assigned tool call id; pairs the started row with its result.
		field.String("call_id").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("status").
			Validate(utils.EnumValidator(
				string(constants.ToolInvocationInProgress),
				string(constants.ToolInvocationCompleted),
			)),
		field.JSON("arguments", json.RawMessage{}).Optional(),
		field.JSON("output", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ToolInvocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "call_id").Unique(),
	}
}
