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

// AuditEntry records which items one apply batch touched. One row per batch.
type AuditEntry struct{ ent.Schema }

func (AuditEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_log"},
	}
}

func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("user_id").NotEmpty(),
		field.String("action").
			Validate(utils.EnumValidator(constants.AuditActions...)),
		field.JSON("item_names", []string{}),
		field.JSON("detail", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
