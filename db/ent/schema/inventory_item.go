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

type InventoryItem struct{ ent.Schema }

func (InventoryItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "inventory_items"},
	}
}

func (InventoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("user_id").NotEmpty(),
		field.String("name").NotEmpty(),
		// Lowercased copy of name; (user_id, name_key) is the case-insensitive
		// uniqueness invariant for live records.
		field.String("name_key").NotEmpty(),
		field.Float("quantity").Default(0).Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.String("unit").Default("unit"),
		field.String("category").Default("uncategorized"),
		field.String("location").Optional().Nillable(),
		field.Float("low_stock_threshold").Default(1).Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Time("expiration").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (InventoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "name_key").Unique(),
		index.Fields("user_id", "updated_at"),
	}
}
