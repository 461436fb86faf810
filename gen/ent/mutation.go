// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/auditentry"
	"github.com/pantryops/pantryd/gen/ent/ingestionjob"
	"github.com/pantryops/pantryd/gen/ent/interactionevent"
	"github.com/pantryops/pantryd/gen/ent/inventoryitem"
	"github.com/pantryops/pantryd/gen/ent/metricssnapshot"
	"github.com/pantryops/pantryd/gen/ent/predicate"
	"github.com/pantryops/pantryd/gen/ent/toolinvocation"
	"github.com/pantryops/pantryd/gen/ent/upload"
	"github.com/pantryops/pantryd/gen/ent/uploadjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEntry       = "AuditEntry"
	TypeIngestionJob     = "IngestionJob"
	TypeInteractionEvent = "InteractionEvent"
	TypeInventoryItem    = "InventoryItem"
	TypeMetricsSnapshot  = "MetricsSnapshot"
	TypeToolInvocation   = "ToolInvocation"
	TypeUpload           = "Upload"
	TypeUploadJob        = "UploadJob"
)

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	user_id          *string
	action           *string
	item_names       *[]string
	appenditem_names []string
	detail           *json.RawMessage
	appenddetail     json.RawMessage
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AuditEntry, error)
	predicates       []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id uuid.UUID) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AuditEntryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditEntryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditEntryMutation) ResetUserID() {
	m.user_id = nil
}

// SetAction sets the "action" field.
func (m *AuditEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEntryMutation) ResetAction() {
	m.action = nil
}

// SetItemNames sets the "item_names" field.
func (m *AuditEntryMutation) SetItemNames(s []string) {
	m.item_names = &s
	m.appenditem_names = nil
}

// ItemNames returns the value of the "item_names" field in the mutation.
func (m *AuditEntryMutation) ItemNames() (r []string, exists bool) {
	v := m.item_names
	if v == nil {
		return
	}
	return *v, true
}

// OldItemNames returns the old "item_names" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldItemNames(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemNames is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemNames requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemNames: %w", err)
	}
	return oldValue.ItemNames, nil
}

// AppendItemNames adds s to the "item_names" field.
func (m *AuditEntryMutation) AppendItemNames(s []string) {
	m.appenditem_names = append(m.appenditem_names, s...)
}

// AppendedItemNames returns the list of values that were appended to the "item_names" field in this mutation.
func (m *AuditEntryMutation) AppendedItemNames() ([]string, bool) {
	if len(m.appenditem_names) == 0 {
		return nil, false
	}
	return m.appenditem_names, true
}

// ResetItemNames resets all changes to the "item_names" field.
func (m *AuditEntryMutation) ResetItemNames() {
	m.item_names = nil
	m.appenditem_names = nil
}

// SetDetail sets the "detail" field.
func (m *AuditEntryMutation) SetDetail(jm json.RawMessage) {
	m.detail = &jm
	m.appenddetail = nil
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditEntryMutation) Detail() (r json.RawMessage, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDetail(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// AppendDetail adds jm to the "detail" field.
func (m *AuditEntryMutation) AppendDetail(jm json.RawMessage) {
	m.appenddetail = append(m.appenddetail, jm...)
}

// AppendedDetail returns the list of values that were appended to the "detail" field in this mutation.
func (m *AuditEntryMutation) AppendedDetail() (json.RawMessage, bool) {
	if len(m.appenddetail) == 0 {
		return nil, false
	}
	return m.appenddetail, true
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditEntryMutation) ClearDetail() {
	m.detail = nil
	m.appenddetail = nil
	m.clearedFields[auditentry.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditEntryMutation) DetailCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditEntryMutation) ResetDetail() {
	m.detail = nil
	m.appenddetail = nil
	delete(m.clearedFields, auditentry.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, auditentry.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.item_names != nil {
		fields = append(fields, auditentry.FieldItemNames)
	}
	if m.detail != nil {
		fields = append(fields, auditentry.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldUserID:
		return m.UserID()
	case auditentry.FieldAction:
		return m.Action()
	case auditentry.FieldItemNames:
		return m.ItemNames()
	case auditentry.FieldDetail:
		return m.Detail()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldUserID:
		return m.OldUserID(ctx)
	case auditentry.FieldAction:
		return m.OldAction(ctx)
	case auditentry.FieldItemNames:
		return m.OldItemNames(ctx)
	case auditentry.FieldDetail:
		return m.OldDetail(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case auditentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditentry.FieldItemNames:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemNames(v)
		return nil
	case auditentry.FieldDetail:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldDetail) {
		fields = append(fields, auditentry.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldUserID:
		m.ResetUserID()
		return nil
	case auditentry.FieldAction:
		m.ResetAction()
		return nil
	case auditentry.FieldItemNames:
		m.ResetItemNames()
		return nil
	case auditentry.FieldDetail:
		m.ResetDetail()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// IngestionJobMutation represents an operation that mutates the IngestionJob nodes in the graph.
type IngestionJobMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	user_id        *string
	input_text     *string
	upload_id      *uuid.UUID
	metadata       *json.RawMessage
	appendmetadata json.RawMessage
	status         *string
	agent_response *string
	result_summary *string
	last_error     *string
	created_at     *time.Time
	finished_at    *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*IngestionJob, error)
	predicates     []predicate.IngestionJob
}

var _ ent.Mutation = (*IngestionJobMutation)(nil)

// ingestionjobOption allows management of the mutation configuration using functional options.
type ingestionjobOption func(*IngestionJobMutation)

// newIngestionJobMutation creates new mutation for the IngestionJob entity.
func newIngestionJobMutation(c config, op Op, opts ...ingestionjobOption) *IngestionJobMutation {
	m := &IngestionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestionJobID sets the ID field of the mutation.
func withIngestionJobID(id uuid.UUID) ingestionjobOption {
	return func(m *IngestionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestionJob
		)
		m.oldValue = func(ctx context.Context) (*IngestionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestionJob sets the old IngestionJob of the mutation.
func withIngestionJob(node *IngestionJob) ingestionjobOption {
	return func(m *IngestionJobMutation) {
		m.oldValue = func(context.Context) (*IngestionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestionJob entities.
func (m *IngestionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *IngestionJobMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IngestionJobMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IngestionJobMutation) ResetUserID() {
	m.user_id = nil
}

// SetInputText sets the "input_text" field.
func (m *IngestionJobMutation) SetInputText(s string) {
	m.input_text = &s
}

// InputText returns the value of the "input_text" field in the mutation.
func (m *IngestionJobMutation) InputText() (r string, exists bool) {
	v := m.input_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInputText returns the old "input_text" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldInputText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputText: %w", err)
	}
	return oldValue.InputText, nil
}

// ClearInputText clears the value of the "input_text" field.
func (m *IngestionJobMutation) ClearInputText() {
	m.input_text = nil
	m.clearedFields[ingestionjob.FieldInputText] = struct{}{}
}

// InputTextCleared returns if the "input_text" field was cleared in this mutation.
func (m *IngestionJobMutation) InputTextCleared() bool {
	_, ok := m.clearedFields[ingestionjob.FieldInputText]
	return ok
}

// ResetInputText resets all changes to the "input_text" field.
func (m *IngestionJobMutation) ResetInputText() {
	m.input_text = nil
	delete(m.clearedFields, ingestionjob.FieldInputText)
}

// SetUploadID sets the "upload_id" field.
func (m *IngestionJobMutation) SetUploadID(u uuid.UUID) {
	m.upload_id = &u
}

// UploadID returns the value of the "upload_id" field in the mutation.
func (m *IngestionJobMutation) UploadID() (r uuid.UUID, exists bool) {
	v := m.upload_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadID returns the old "upload_id" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldUploadID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadID: %w", err)
	}
	return oldValue.UploadID, nil
}

// ClearUploadID clears the value of the "upload_id" field.
func (m *IngestionJobMutation) ClearUploadID() {
	m.upload_id = nil
	m.clearedFields[ingestionjob.FieldUploadID] = struct{}{}
}

// UploadIDCleared returns if the "upload_id" field was cleared in this mutation.
func (m *IngestionJobMutation) UploadIDCleared() bool {
	_, ok := m.clearedFields[ingestionjob.FieldUploadID]
	return ok
}

// ResetUploadID resets all changes to the "upload_id" field.
func (m *IngestionJobMutation) ResetUploadID() {
	m.upload_id = nil
	delete(m.clearedFields, ingestionjob.FieldUploadID)
}

// SetMetadata sets the "metadata" field.
func (m *IngestionJobMutation) SetMetadata(jm json.RawMessage) {
	m.metadata = &jm
	m.appendmetadata = nil
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *IngestionJobMutation) Metadata() (r json.RawMessage, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldMetadata(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// AppendMetadata adds jm to the "metadata" field.
func (m *IngestionJobMutation) AppendMetadata(jm json.RawMessage) {
	m.appendmetadata = append(m.appendmetadata, jm...)
}

// AppendedMetadata returns the list of values that were appended to the "metadata" field in this mutation.
func (m *IngestionJobMutation) AppendedMetadata() (json.RawMessage, bool) {
	if len(m.appendmetadata) == 0 {
		return nil, false
	}
	return m.appendmetadata, true
}

// ClearMetadata clears the value of the "metadata" field.
func (m *IngestionJobMutation) ClearMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	m.clearedFields[ingestionjob.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *IngestionJobMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[ingestionjob.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *IngestionJobMutation) ResetMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	delete(m.clearedFields, ingestionjob.FieldMetadata)
}

// SetStatus sets the "status" field.
func (m *IngestionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *IngestionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IngestionJobMutation) ResetStatus() {
	m.status = nil
}

// SetAgentResponse sets the "agent_response" field.
func (m *IngestionJobMutation) SetAgentResponse(s string) {
	m.agent_response = &s
}

// AgentResponse returns the value of the "agent_response" field in the mutation.
func (m *IngestionJobMutation) AgentResponse() (r string, exists bool) {
	v := m.agent_response
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentResponse returns the old "agent_response" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldAgentResponse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentResponse: %w", err)
	}
	return oldValue.AgentResponse, nil
}

// ClearAgentResponse clears the value of the "agent_response" field.
func (m *IngestionJobMutation) ClearAgentResponse() {
	m.agent_response = nil
	m.clearedFields[ingestionjob.FieldAgentResponse] = struct{}{}
}

// AgentResponseCleared returns if the "agent_response" field was cleared in this mutation.
func (m *IngestionJobMutation) AgentResponseCleared() bool {
	_, ok := m.clearedFields[ingestionjob.FieldAgentResponse]
	return ok
}

// ResetAgentResponse resets all changes to the "agent_response" field.
func (m *IngestionJobMutation) ResetAgentResponse() {
	m.agent_response = nil
	delete(m.clearedFields, ingestionjob.FieldAgentResponse)
}

// SetResultSummary sets the "result_summary" field.
func (m *IngestionJobMutation) SetResultSummary(s string) {
	m.result_summary = &s
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *IngestionJobMutation) ResultSummary() (r string, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldResultSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *IngestionJobMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[ingestionjob.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *IngestionJobMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[ingestionjob.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *IngestionJobMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, ingestionjob.FieldResultSummary)
}

// SetLastError sets the "last_error" field.
func (m *IngestionJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *IngestionJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *IngestionJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[ingestionjob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *IngestionJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[ingestionjob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *IngestionJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, ingestionjob.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *IngestionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IngestionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IngestionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *IngestionJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *IngestionJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *IngestionJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[ingestionjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *IngestionJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[ingestionjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *IngestionJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, ingestionjob.FieldFinishedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IngestionJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IngestionJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IngestionJob entity.
// If the IngestionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IngestionJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IngestionJobMutation builder.
func (m *IngestionJobMutation) Where(ps ...predicate.IngestionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestionJob).
func (m *IngestionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestionJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, ingestionjob.FieldUserID)
	}
	if m.input_text != nil {
		fields = append(fields, ingestionjob.FieldInputText)
	}
	if m.upload_id != nil {
		fields = append(fields, ingestionjob.FieldUploadID)
	}
	if m.metadata != nil {
		fields = append(fields, ingestionjob.FieldMetadata)
	}
	if m.status != nil {
		fields = append(fields, ingestionjob.FieldStatus)
	}
	if m.agent_response != nil {
		fields = append(fields, ingestionjob.FieldAgentResponse)
	}
	if m.result_summary != nil {
		fields = append(fields, ingestionjob.FieldResultSummary)
	}
	if m.last_error != nil {
		fields = append(fields, ingestionjob.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, ingestionjob.FieldCreatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, ingestionjob.FieldFinishedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ingestionjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestionjob.FieldUserID:
		return m.UserID()
	case ingestionjob.FieldInputText:
		return m.InputText()
	case ingestionjob.FieldUploadID:
		return m.UploadID()
	case ingestionjob.FieldMetadata:
		return m.Metadata()
	case ingestionjob.FieldStatus:
		return m.Status()
	case ingestionjob.FieldAgentResponse:
		return m.AgentResponse()
	case ingestionjob.FieldResultSummary:
		return m.ResultSummary()
	case ingestionjob.FieldLastError:
		return m.LastError()
	case ingestionjob.FieldCreatedAt:
		return m.CreatedAt()
	case ingestionjob.FieldFinishedAt:
		return m.FinishedAt()
	case ingestionjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestionjob.FieldUserID:
		return m.OldUserID(ctx)
	case ingestionjob.FieldInputText:
		return m.OldInputText(ctx)
	case ingestionjob.FieldUploadID:
		return m.OldUploadID(ctx)
	case ingestionjob.FieldMetadata:
		return m.OldMetadata(ctx)
	case ingestionjob.FieldStatus:
		return m.OldStatus(ctx)
	case ingestionjob.FieldAgentResponse:
		return m.OldAgentResponse(ctx)
	case ingestionjob.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case ingestionjob.FieldLastError:
		return m.OldLastError(ctx)
	case ingestionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ingestionjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case ingestionjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IngestionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestionjob.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case ingestionjob.FieldInputText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputText(v)
		return nil
	case ingestionjob.FieldUploadID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadID(v)
		return nil
	case ingestionjob.FieldMetadata:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case ingestionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ingestionjob.FieldAgentResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentResponse(v)
		return nil
	case ingestionjob.FieldResultSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case ingestionjob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case ingestionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ingestionjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case ingestionjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IngestionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestionJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestionJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IngestionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestionjob.FieldInputText) {
		fields = append(fields, ingestionjob.FieldInputText)
	}
	if m.FieldCleared(ingestionjob.FieldUploadID) {
		fields = append(fields, ingestionjob.FieldUploadID)
	}
	if m.FieldCleared(ingestionjob.FieldMetadata) {
		fields = append(fields, ingestionjob.FieldMetadata)
	}
	if m.FieldCleared(ingestionjob.FieldAgentResponse) {
		fields = append(fields, ingestionjob.FieldAgentResponse)
	}
	if m.FieldCleared(ingestionjob.FieldResultSummary) {
		fields = append(fields, ingestionjob.FieldResultSummary)
	}
	if m.FieldCleared(ingestionjob.FieldLastError) {
		fields = append(fields, ingestionjob.FieldLastError)
	}
	if m.FieldCleared(ingestionjob.FieldFinishedAt) {
		fields = append(fields, ingestionjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestionJobMutation) ClearField(name string) error {
	switch name {
	case ingestionjob.FieldInputText:
		m.ClearInputText()
		return nil
	case ingestionjob.FieldUploadID:
		m.ClearUploadID()
		return nil
	case ingestionjob.FieldMetadata:
		m.ClearMetadata()
		return nil
	case ingestionjob.FieldAgentResponse:
		m.ClearAgentResponse()
		return nil
	case ingestionjob.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case ingestionjob.FieldLastError:
		m.ClearLastError()
		return nil
	case ingestionjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestionJobMutation) ResetField(name string) error {
	switch name {
	case ingestionjob.FieldUserID:
		m.ResetUserID()
		return nil
	case ingestionjob.FieldInputText:
		m.ResetInputText()
		return nil
	case ingestionjob.FieldUploadID:
		m.ResetUploadID()
		return nil
	case ingestionjob.FieldMetadata:
		m.ResetMetadata()
		return nil
	case ingestionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case ingestionjob.FieldAgentResponse:
		m.ResetAgentResponse()
		return nil
	case ingestionjob.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case ingestionjob.FieldLastError:
		m.ResetLastError()
		return nil
	case ingestionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ingestionjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case ingestionjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestionJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestionJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestionJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IngestionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestionJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IngestionJob edge %s", name)
}

// InteractionEventMutation represents an operation that mutates the InteractionEvent nodes in the graph.
type InteractionEventMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	user_id       *string
	input         *string
	agent         *string
	success       *bool
	used_fallback *bool
	latency_ms    *int64
	addlatency_ms *int64
	confidence    *float32
	addconfidence *float32
	error         *string
	timestamp     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InteractionEvent, error)
	predicates    []predicate.InteractionEvent
}

var _ ent.Mutation = (*InteractionEventMutation)(nil)

// interactioneventOption allows management of the mutation configuration using functional options.
type interactioneventOption func(*InteractionEventMutation)

// newInteractionEventMutation creates new mutation for the InteractionEvent entity.
func newInteractionEventMutation(c config, op Op, opts ...interactioneventOption) *InteractionEventMutation {
	m := &InteractionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeInteractionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionEventID sets the ID field of the mutation.
func withInteractionEventID(id uuid.UUID) interactioneventOption {
	return func(m *InteractionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *InteractionEvent
		)
		m.oldValue = func(ctx context.Context) (*InteractionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InteractionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteractionEvent sets the old InteractionEvent of the mutation.
func withInteractionEvent(node *InteractionEvent) interactioneventOption {
	return func(m *InteractionEventMutation) {
		m.oldValue = func(context.Context) (*InteractionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InteractionEvent entities.
func (m *InteractionEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InteractionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InteractionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InteractionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InteractionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetInput sets the "input" field.
func (m *InteractionEventMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *InteractionEventMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *InteractionEventMutation) ResetInput() {
	m.input = nil
}

// SetAgent sets the "agent" field.
func (m *InteractionEventMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *InteractionEventMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *InteractionEventMutation) ResetAgent() {
	m.agent = nil
}

// SetSuccess sets the "success" field.
func (m *InteractionEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *InteractionEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *InteractionEventMutation) ResetSuccess() {
	m.success = nil
}

// SetUsedFallback sets the "used_fallback" field.
func (m *InteractionEventMutation) SetUsedFallback(b bool) {
	m.used_fallback = &b
}

// UsedFallback returns the value of the "used_fallback" field in the mutation.
func (m *InteractionEventMutation) UsedFallback() (r bool, exists bool) {
	v := m.used_fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedFallback returns the old "used_fallback" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldUsedFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedFallback: %w", err)
	}
	return oldValue.UsedFallback, nil
}

// ResetUsedFallback resets all changes to the "used_fallback" field.
func (m *InteractionEventMutation) ResetUsedFallback() {
	m.used_fallback = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *InteractionEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *InteractionEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *InteractionEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *InteractionEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *InteractionEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetConfidence sets the "confidence" field.
func (m *InteractionEventMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *InteractionEventMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *InteractionEventMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *InteractionEventMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *InteractionEventMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[interactionevent.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *InteractionEventMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[interactionevent.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *InteractionEventMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, interactionevent.FieldConfidence)
}

// SetError sets the "error" field.
func (m *InteractionEventMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *InteractionEventMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *InteractionEventMutation) ClearError() {
	m.error = nil
	m.clearedFields[interactionevent.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *InteractionEventMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[interactionevent.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *InteractionEventMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, interactionevent.FieldError)
}

// SetTimestamp sets the "timestamp" field.
func (m *InteractionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *InteractionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *InteractionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the InteractionEventMutation builder.
func (m *InteractionEventMutation) Where(ps ...predicate.InteractionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InteractionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InteractionEvent).
func (m *InteractionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, interactionevent.FieldUserID)
	}
	if m.input != nil {
		fields = append(fields, interactionevent.FieldInput)
	}
	if m.agent != nil {
		fields = append(fields, interactionevent.FieldAgent)
	}
	if m.success != nil {
		fields = append(fields, interactionevent.FieldSuccess)
	}
	if m.used_fallback != nil {
		fields = append(fields, interactionevent.FieldUsedFallback)
	}
	if m.latency_ms != nil {
		fields = append(fields, interactionevent.FieldLatencyMs)
	}
	if m.confidence != nil {
		fields = append(fields, interactionevent.FieldConfidence)
	}
	if m.error != nil {
		fields = append(fields, interactionevent.FieldError)
	}
	if m.timestamp != nil {
		fields = append(fields, interactionevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interactionevent.FieldUserID:
		return m.UserID()
	case interactionevent.FieldInput:
		return m.Input()
	case interactionevent.FieldAgent:
		return m.Agent()
	case interactionevent.FieldSuccess:
		return m.Success()
	case interactionevent.FieldUsedFallback:
		return m.UsedFallback()
	case interactionevent.FieldLatencyMs:
		return m.LatencyMs()
	case interactionevent.FieldConfidence:
		return m.Confidence()
	case interactionevent.FieldError:
		return m.Error()
	case interactionevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interactionevent.FieldUserID:
		return m.OldUserID(ctx)
	case interactionevent.FieldInput:
		return m.OldInput(ctx)
	case interactionevent.FieldAgent:
		return m.OldAgent(ctx)
	case interactionevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case interactionevent.FieldUsedFallback:
		return m.OldUsedFallback(ctx)
	case interactionevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case interactionevent.FieldConfidence:
		return m.OldConfidence(ctx)
	case interactionevent.FieldError:
		return m.OldError(ctx)
	case interactionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown InteractionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interactionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interactionevent.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case interactionevent.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case interactionevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case interactionevent.FieldUsedFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedFallback(v)
		return nil
	case interactionevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case interactionevent.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case interactionevent.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case interactionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionEventMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, interactionevent.FieldLatencyMs)
	}
	if m.addconfidence != nil {
		fields = append(fields, interactionevent.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interactionevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	case interactionevent.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interactionevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case interactionevent.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interactionevent.FieldConfidence) {
		fields = append(fields, interactionevent.FieldConfidence)
	}
	if m.FieldCleared(interactionevent.FieldError) {
		fields = append(fields, interactionevent.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionEventMutation) ClearField(name string) error {
	switch name {
	case interactionevent.FieldConfidence:
		m.ClearConfidence()
		return nil
	case interactionevent.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionEventMutation) ResetField(name string) error {
	switch name {
	case interactionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case interactionevent.FieldInput:
		m.ResetInput()
		return nil
	case interactionevent.FieldAgent:
		m.ResetAgent()
		return nil
	case interactionevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case interactionevent.FieldUsedFallback:
		m.ResetUsedFallback()
		return nil
	case interactionevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case interactionevent.FieldConfidence:
		m.ResetConfidence()
		return nil
	case interactionevent.FieldError:
		m.ResetError()
		return nil
	case interactionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent edge %s", name)
}

// InventoryItemMutation represents an operation that mutates the InventoryItem nodes in the graph.
type InventoryItemMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	user_id                *string
	name                   *string
	name_key               *string
	quantity               *float64
	addquantity            *float64
	unit                   *string
	category               *string
	location               *string
	low_stock_threshold    *float64
	addlow_stock_threshold *float64
	expiration             *time.Time
	notes                  *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*InventoryItem, error)
	predicates             []predicate.InventoryItem
}

var _ ent.Mutation = (*InventoryItemMutation)(nil)

// inventoryitemOption allows management of the mutation configuration using functional options.
type inventoryitemOption func(*InventoryItemMutation)

// newInventoryItemMutation creates new mutation for the InventoryItem entity.
func newInventoryItemMutation(c config, op Op, opts ...inventoryitemOption) *InventoryItemMutation {
	m := &InventoryItemMutation{
		config:        c,
		op:            op,
		typ:           TypeInventoryItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInventoryItemID sets the ID field of the mutation.
func withInventoryItemID(id uuid.UUID) inventoryitemOption {
	return func(m *InventoryItemMutation) {
		var (
			err   error
			once  sync.Once
			value *InventoryItem
		)
		m.oldValue = func(ctx context.Context) (*InventoryItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InventoryItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInventoryItem sets the old InventoryItem of the mutation.
func withInventoryItem(node *InventoryItem) inventoryitemOption {
	return func(m *InventoryItemMutation) {
		m.oldValue = func(context.Context) (*InventoryItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InventoryItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InventoryItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InventoryItem entities.
func (m *InventoryItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InventoryItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InventoryItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InventoryItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InventoryItemMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InventoryItemMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InventoryItemMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *InventoryItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InventoryItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InventoryItemMutation) ResetName() {
	m.name = nil
}

// SetNameKey sets the "name_key" field.
func (m *InventoryItemMutation) SetNameKey(s string) {
	m.name_key = &s
}

// NameKey returns the value of the "name_key" field in the mutation.
func (m *InventoryItemMutation) NameKey() (r string, exists bool) {
	v := m.name_key
	if v == nil {
		return
	}
	return *v, true
}

// OldNameKey returns the old "name_key" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldNameKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameKey: %w", err)
	}
	return oldValue.NameKey, nil
}

// ResetNameKey resets all changes to the "name_key" field.
func (m *InventoryItemMutation) ResetNameKey() {
	m.name_key = nil
}

// SetQuantity sets the "quantity" field.
func (m *InventoryItemMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *InventoryItemMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *InventoryItemMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *InventoryItemMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *InventoryItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnit sets the "unit" field.
func (m *InventoryItemMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *InventoryItemMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *InventoryItemMutation) ResetUnit() {
	m.unit = nil
}

// SetCategory sets the "category" field.
func (m *InventoryItemMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InventoryItemMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *InventoryItemMutation) ResetCategory() {
	m.category = nil
}

// SetLocation sets the "location" field.
func (m *InventoryItemMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *InventoryItemMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *InventoryItemMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[inventoryitem.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *InventoryItemMutation) LocationCleared() bool {
	_, ok := m.clearedFields[inventoryitem.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *InventoryItemMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, inventoryitem.FieldLocation)
}

// SetLowStockThreshold sets the "low_stock_threshold" field.
func (m *InventoryItemMutation) SetLowStockThreshold(f float64) {
	m.low_stock_threshold = &f
	m.addlow_stock_threshold = nil
}

// LowStockThreshold returns the value of the "low_stock_threshold" field in the mutation.
func (m *InventoryItemMutation) LowStockThreshold() (r float64, exists bool) {
	v := m.low_stock_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldLowStockThreshold returns the old "low_stock_threshold" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldLowStockThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowStockThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowStockThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowStockThreshold: %w", err)
	}
	return oldValue.LowStockThreshold, nil
}

// AddLowStockThreshold adds f to the "low_stock_threshold" field.
func (m *InventoryItemMutation) AddLowStockThreshold(f float64) {
	if m.addlow_stock_threshold != nil {
		*m.addlow_stock_threshold += f
	} else {
		m.addlow_stock_threshold = &f
	}
}

// AddedLowStockThreshold returns the value that was added to the "low_stock_threshold" field in this mutation.
func (m *InventoryItemMutation) AddedLowStockThreshold() (r float64, exists bool) {
	v := m.addlow_stock_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowStockThreshold resets all changes to the "low_stock_threshold" field.
func (m *InventoryItemMutation) ResetLowStockThreshold() {
	m.low_stock_threshold = nil
	m.addlow_stock_threshold = nil
}

// SetExpiration sets the "expiration" field.
func (m *InventoryItemMutation) SetExpiration(t time.Time) {
	m.expiration = &t
}

// Expiration returns the value of the "expiration" field in the mutation.
func (m *InventoryItemMutation) Expiration() (r time.Time, exists bool) {
	v := m.expiration
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiration returns the old "expiration" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldExpiration(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiration: %w", err)
	}
	return oldValue.Expiration, nil
}

// ClearExpiration clears the value of the "expiration" field.
func (m *InventoryItemMutation) ClearExpiration() {
	m.expiration = nil
	m.clearedFields[inventoryitem.FieldExpiration] = struct{}{}
}

// ExpirationCleared returns if the "expiration" field was cleared in this mutation.
func (m *InventoryItemMutation) ExpirationCleared() bool {
	_, ok := m.clearedFields[inventoryitem.FieldExpiration]
	return ok
}

// ResetExpiration resets all changes to the "expiration" field.
func (m *InventoryItemMutation) ResetExpiration() {
	m.expiration = nil
	delete(m.clearedFields, inventoryitem.FieldExpiration)
}

// SetNotes sets the "notes" field.
func (m *InventoryItemMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *InventoryItemMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *InventoryItemMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[inventoryitem.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *InventoryItemMutation) NotesCleared() bool {
	_, ok := m.clearedFields[inventoryitem.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *InventoryItemMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, inventoryitem.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *InventoryItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InventoryItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InventoryItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InventoryItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InventoryItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InventoryItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the InventoryItemMutation builder.
func (m *InventoryItemMutation) Where(ps ...predicate.InventoryItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InventoryItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InventoryItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InventoryItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InventoryItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InventoryItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InventoryItem).
func (m *InventoryItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InventoryItemMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, inventoryitem.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, inventoryitem.FieldName)
	}
	if m.name_key != nil {
		fields = append(fields, inventoryitem.FieldNameKey)
	}
	if m.quantity != nil {
		fields = append(fields, inventoryitem.FieldQuantity)
	}
	if m.unit != nil {
		fields = append(fields, inventoryitem.FieldUnit)
	}
	if m.category != nil {
		fields = append(fields, inventoryitem.FieldCategory)
	}
	if m.location != nil {
		fields = append(fields, inventoryitem.FieldLocation)
	}
	if m.low_stock_threshold != nil {
		fields = append(fields, inventoryitem.FieldLowStockThreshold)
	}
	if m.expiration != nil {
		fields = append(fields, inventoryitem.FieldExpiration)
	}
	if m.notes != nil {
		fields = append(fields, inventoryitem.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, inventoryitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, inventoryitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InventoryItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inventoryitem.FieldUserID:
		return m.UserID()
	case inventoryitem.FieldName:
		return m.Name()
	case inventoryitem.FieldNameKey:
		return m.NameKey()
	case inventoryitem.FieldQuantity:
		return m.Quantity()
	case inventoryitem.FieldUnit:
		return m.Unit()
	case inventoryitem.FieldCategory:
		return m.Category()
	case inventoryitem.FieldLocation:
		return m.Location()
	case inventoryitem.FieldLowStockThreshold:
		return m.LowStockThreshold()
	case inventoryitem.FieldExpiration:
		return m.Expiration()
	case inventoryitem.FieldNotes:
		return m.Notes()
	case inventoryitem.FieldCreatedAt:
		return m.CreatedAt()
	case inventoryitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InventoryItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inventoryitem.FieldUserID:
		return m.OldUserID(ctx)
	case inventoryitem.FieldName:
		return m.OldName(ctx)
	case inventoryitem.FieldNameKey:
		return m.OldNameKey(ctx)
	case inventoryitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case inventoryitem.FieldUnit:
		return m.OldUnit(ctx)
	case inventoryitem.FieldCategory:
		return m.OldCategory(ctx)
	case inventoryitem.FieldLocation:
		return m.OldLocation(ctx)
	case inventoryitem.FieldLowStockThreshold:
		return m.OldLowStockThreshold(ctx)
	case inventoryitem.FieldExpiration:
		return m.OldExpiration(ctx)
	case inventoryitem.FieldNotes:
		return m.OldNotes(ctx)
	case inventoryitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case inventoryitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InventoryItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inventoryitem.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case inventoryitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case inventoryitem.FieldNameKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameKey(v)
		return nil
	case inventoryitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case inventoryitem.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case inventoryitem.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case inventoryitem.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case inventoryitem.FieldLowStockThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowStockThreshold(v)
		return nil
	case inventoryitem.FieldExpiration:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiration(v)
		return nil
	case inventoryitem.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case inventoryitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case inventoryitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InventoryItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, inventoryitem.FieldQuantity)
	}
	if m.addlow_stock_threshold != nil {
		fields = append(fields, inventoryitem.FieldLowStockThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InventoryItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inventoryitem.FieldQuantity:
		return m.AddedQuantity()
	case inventoryitem.FieldLowStockThreshold:
		return m.AddedLowStockThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inventoryitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case inventoryitem.FieldLowStockThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowStockThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InventoryItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(inventoryitem.FieldLocation) {
		fields = append(fields, inventoryitem.FieldLocation)
	}
	if m.FieldCleared(inventoryitem.FieldExpiration) {
		fields = append(fields, inventoryitem.FieldExpiration)
	}
	if m.FieldCleared(inventoryitem.FieldNotes) {
		fields = append(fields, inventoryitem.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InventoryItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InventoryItemMutation) ClearField(name string) error {
	switch name {
	case inventoryitem.FieldLocation:
		m.ClearLocation()
		return nil
	case inventoryitem.FieldExpiration:
		m.ClearExpiration()
		return nil
	case inventoryitem.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown InventoryItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InventoryItemMutation) ResetField(name string) error {
	switch name {
	case inventoryitem.FieldUserID:
		m.ResetUserID()
		return nil
	case inventoryitem.FieldName:
		m.ResetName()
		return nil
	case inventoryitem.FieldNameKey:
		m.ResetNameKey()
		return nil
	case inventoryitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case inventoryitem.FieldUnit:
		m.ResetUnit()
		return nil
	case inventoryitem.FieldCategory:
		m.ResetCategory()
		return nil
	case inventoryitem.FieldLocation:
		m.ResetLocation()
		return nil
	case inventoryitem.FieldLowStockThreshold:
		m.ResetLowStockThreshold()
		return nil
	case inventoryitem.FieldExpiration:
		m.ResetExpiration()
		return nil
	case inventoryitem.FieldNotes:
		m.ResetNotes()
		return nil
	case inventoryitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case inventoryitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InventoryItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InventoryItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InventoryItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InventoryItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InventoryItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InventoryItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InventoryItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InventoryItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InventoryItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InventoryItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InventoryItem edge %s", name)
}

// MetricsSnapshotMutation represents an operation that mutates the MetricsSnapshot nodes in the graph.
type MetricsSnapshotMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	key                  *string
	total                *int64
	addtotal             *int64
	success_count        *int64
	addsuccess_count     *int64
	fallback_count       *int64
	addfallback_count    *int64
	latency_sum_ms       *int64
	addlatency_sum_ms    *int64
	confidence_sum       *float64
	addconfidence_sum    *float64
	latency_lt_2s        *int64
	addlatency_lt_2s     *int64
	latency_2s_5s        *int64
	addlatency_2s_5s     *int64
	latency_gt_5s        *int64
	addlatency_gt_5s     *int64
	confidence_low       *int64
	addconfidence_low    *int64
	confidence_medium    *int64
	addconfidence_medium *int64
	confidence_high      *int64
	addconfidence_high   *int64
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*MetricsSnapshot, error)
	predicates           []predicate.MetricsSnapshot
}

var _ ent.Mutation = (*MetricsSnapshotMutation)(nil)

// metricssnapshotOption allows management of the mutation configuration using functional options.
type metricssnapshotOption func(*MetricsSnapshotMutation)

// newMetricsSnapshotMutation creates new mutation for the MetricsSnapshot entity.
func newMetricsSnapshotMutation(c config, op Op, opts ...metricssnapshotOption) *MetricsSnapshotMutation {
	m := &MetricsSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeMetricsSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMetricsSnapshotID sets the ID field of the mutation.
func withMetricsSnapshotID(id uuid.UUID) metricssnapshotOption {
	return func(m *MetricsSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *MetricsSnapshot
		)
		m.oldValue = func(ctx context.Context) (*MetricsSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MetricsSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMetricsSnapshot sets the old MetricsSnapshot of the mutation.
func withMetricsSnapshot(node *MetricsSnapshot) metricssnapshotOption {
	return func(m *MetricsSnapshotMutation) {
		m.oldValue = func(context.Context) (*MetricsSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MetricsSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MetricsSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MetricsSnapshot entities.
func (m *MetricsSnapshotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MetricsSnapshotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MetricsSnapshotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MetricsSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *MetricsSnapshotMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *MetricsSnapshotMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *MetricsSnapshotMutation) ResetKey() {
	m.key = nil
}

// SetTotal sets the "total" field.
func (m *MetricsSnapshotMutation) SetTotal(i int64) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *MetricsSnapshotMutation) Total() (r int64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldTotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *MetricsSnapshotMutation) AddTotal(i int64) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *MetricsSnapshotMutation) AddedTotal() (r int64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *MetricsSnapshotMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetSuccessCount sets the "success_count" field.
func (m *MetricsSnapshotMutation) SetSuccessCount(i int64) {
	m.success_count = &i
	m.addsuccess_count = nil
}

// SuccessCount returns the value of the "success_count" field in the mutation.
func (m *MetricsSnapshotMutation) SuccessCount() (r int64, exists bool) {
	v := m.success_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCount returns the old "success_count" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldSuccessCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCount: %w", err)
	}
	return oldValue.SuccessCount, nil
}

// AddSuccessCount adds i to the "success_count" field.
func (m *MetricsSnapshotMutation) AddSuccessCount(i int64) {
	if m.addsuccess_count != nil {
		*m.addsuccess_count += i
	} else {
		m.addsuccess_count = &i
	}
}

// AddedSuccessCount returns the value that was added to the "success_count" field in this mutation.
func (m *MetricsSnapshotMutation) AddedSuccessCount() (r int64, exists bool) {
	v := m.addsuccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessCount resets all changes to the "success_count" field.
func (m *MetricsSnapshotMutation) ResetSuccessCount() {
	m.success_count = nil
	m.addsuccess_count = nil
}

// SetFallbackCount sets the "fallback_count" field.
func (m *MetricsSnapshotMutation) SetFallbackCount(i int64) {
	m.fallback_count = &i
	m.addfallback_count = nil
}

// FallbackCount returns the value of the "fallback_count" field in the mutation.
func (m *MetricsSnapshotMutation) FallbackCount() (r int64, exists bool) {
	v := m.fallback_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFallbackCount returns the old "fallback_count" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldFallbackCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallbackCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallbackCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallbackCount: %w", err)
	}
	return oldValue.FallbackCount, nil
}

// AddFallbackCount adds i to the "fallback_count" field.
func (m *MetricsSnapshotMutation) AddFallbackCount(i int64) {
	if m.addfallback_count != nil {
		*m.addfallback_count += i
	} else {
		m.addfallback_count = &i
	}
}

// AddedFallbackCount returns the value that was added to the "fallback_count" field in this mutation.
func (m *MetricsSnapshotMutation) AddedFallbackCount() (r int64, exists bool) {
	v := m.addfallback_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFallbackCount resets all changes to the "fallback_count" field.
func (m *MetricsSnapshotMutation) ResetFallbackCount() {
	m.fallback_count = nil
	m.addfallback_count = nil
}

// SetLatencySumMs sets the "latency_sum_ms" field.
func (m *MetricsSnapshotMutation) SetLatencySumMs(i int64) {
	m.latency_sum_ms = &i
	m.addlatency_sum_ms = nil
}

// LatencySumMs returns the value of the "latency_sum_ms" field in the mutation.
func (m *MetricsSnapshotMutation) LatencySumMs() (r int64, exists bool) {
	v := m.latency_sum_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencySumMs returns the old "latency_sum_ms" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldLatencySumMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencySumMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencySumMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencySumMs: %w", err)
	}
	return oldValue.LatencySumMs, nil
}

// AddLatencySumMs adds i to the "latency_sum_ms" field.
func (m *MetricsSnapshotMutation) AddLatencySumMs(i int64) {
	if m.addlatency_sum_ms != nil {
		*m.addlatency_sum_ms += i
	} else {
		m.addlatency_sum_ms = &i
	}
}

// AddedLatencySumMs returns the value that was added to the "latency_sum_ms" field in this mutation.
func (m *MetricsSnapshotMutation) AddedLatencySumMs() (r int64, exists bool) {
	v := m.addlatency_sum_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencySumMs resets all changes to the "latency_sum_ms" field.
func (m *MetricsSnapshotMutation) ResetLatencySumMs() {
	m.latency_sum_ms = nil
	m.addlatency_sum_ms = nil
}

// SetConfidenceSum sets the "confidence_sum" field.
func (m *MetricsSnapshotMutation) SetConfidenceSum(f float64) {
	m.confidence_sum = &f
	m.addconfidence_sum = nil
}

// ConfidenceSum returns the value of the "confidence_sum" field in the mutation.
func (m *MetricsSnapshotMutation) ConfidenceSum() (r float64, exists bool) {
	v := m.confidence_sum
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceSum returns the old "confidence_sum" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldConfidenceSum(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceSum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceSum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceSum: %w", err)
	}
	return oldValue.ConfidenceSum, nil
}

// AddConfidenceSum adds f to the "confidence_sum" field.
func (m *MetricsSnapshotMutation) AddConfidenceSum(f float64) {
	if m.addconfidence_sum != nil {
		*m.addconfidence_sum += f
	} else {
		m.addconfidence_sum = &f
	}
}

// AddedConfidenceSum returns the value that was added to the "confidence_sum" field in this mutation.
func (m *MetricsSnapshotMutation) AddedConfidenceSum() (r float64, exists bool) {
	v := m.addconfidence_sum
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceSum resets all changes to the "confidence_sum" field.
func (m *MetricsSnapshotMutation) ResetConfidenceSum() {
	m.confidence_sum = nil
	m.addconfidence_sum = nil
}

// SetLatencyLt2s sets the "latency_lt_2s" field.
func (m *MetricsSnapshotMutation) SetLatencyLt2s(i int64) {
	m.latency_lt_2s = &i
	m.addlatency_lt_2s = nil
}

// LatencyLt2s returns the value of the "latency_lt_2s" field in the mutation.
func (m *MetricsSnapshotMutation) LatencyLt2s() (r int64, exists bool) {
	v := m.latency_lt_2s
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyLt2s returns the old "latency_lt_2s" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldLatencyLt2s(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyLt2s is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyLt2s requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyLt2s: %w", err)
	}
	return oldValue.LatencyLt2s, nil
}

// AddLatencyLt2s adds i to the "latency_lt_2s" field.
func (m *MetricsSnapshotMutation) AddLatencyLt2s(i int64) {
	if m.addlatency_lt_2s != nil {
		*m.addlatency_lt_2s += i
	} else {
		m.addlatency_lt_2s = &i
	}
}

// AddedLatencyLt2s returns the value that was added to the "latency_lt_2s" field in this mutation.
func (m *MetricsSnapshotMutation) AddedLatencyLt2s() (r int64, exists bool) {
	v := m.addlatency_lt_2s
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyLt2s resets all changes to the "latency_lt_2s" field.
func (m *MetricsSnapshotMutation) ResetLatencyLt2s() {
	m.latency_lt_2s = nil
	m.addlatency_lt_2s = nil
}

// SetLatency2s5s sets the "latency_2s_5s" field.
func (m *MetricsSnapshotMutation) SetLatency2s5s(i int64) {
	m.latency_2s_5s = &i
	m.addlatency_2s_5s = nil
}

// Latency2s5s returns the value of the "latency_2s_5s" field in the mutation.
func (m *MetricsSnapshotMutation) Latency2s5s() (r int64, exists bool) {
	v := m.latency_2s_5s
	if v == nil {
		return
	}
	return *v, true
}

// OldLatency2s5s returns the old "latency_2s_5s" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldLatency2s5s(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatency2s5s is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatency2s5s requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatency2s5s: %w", err)
	}
	return oldValue.Latency2s5s, nil
}

// AddLatency2s5s adds i to the "latency_2s_5s" field.
func (m *MetricsSnapshotMutation) AddLatency2s5s(i int64) {
	if m.addlatency_2s_5s != nil {
		*m.addlatency_2s_5s += i
	} else {
		m.addlatency_2s_5s = &i
	}
}

// AddedLatency2s5s returns the value that was added to the "latency_2s_5s" field in this mutation.
func (m *MetricsSnapshotMutation) AddedLatency2s5s() (r int64, exists bool) {
	v := m.addlatency_2s_5s
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatency2s5s resets all changes to the "latency_2s_5s" field.
func (m *MetricsSnapshotMutation) ResetLatency2s5s() {
	m.latency_2s_5s = nil
	m.addlatency_2s_5s = nil
}

// SetLatencyGt5s sets the "latency_gt_5s" field.
func (m *MetricsSnapshotMutation) SetLatencyGt5s(i int64) {
	m.latency_gt_5s = &i
	m.addlatency_gt_5s = nil
}

// LatencyGt5s returns the value of the "latency_gt_5s" field in the mutation.
func (m *MetricsSnapshotMutation) LatencyGt5s() (r int64, exists bool) {
	v := m.latency_gt_5s
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyGt5s returns the old "latency_gt_5s" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldLatencyGt5s(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyGt5s is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyGt5s requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyGt5s: %w", err)
	}
	return oldValue.LatencyGt5s, nil
}

// AddLatencyGt5s adds i to the "latency_gt_5s" field.
func (m *MetricsSnapshotMutation) AddLatencyGt5s(i int64) {
	if m.addlatency_gt_5s != nil {
		*m.addlatency_gt_5s += i
	} else {
		m.addlatency_gt_5s = &i
	}
}

// AddedLatencyGt5s returns the value that was added to the "latency_gt_5s" field in this mutation.
func (m *MetricsSnapshotMutation) AddedLatencyGt5s() (r int64, exists bool) {
	v := m.addlatency_gt_5s
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyGt5s resets all changes to the "latency_gt_5s" field.
func (m *MetricsSnapshotMutation) ResetLatencyGt5s() {
	m.latency_gt_5s = nil
	m.addlatency_gt_5s = nil
}

// SetConfidenceLow sets the "confidence_low" field.
func (m *MetricsSnapshotMutation) SetConfidenceLow(i int64) {
	m.confidence_low = &i
	m.addconfidence_low = nil
}

// ConfidenceLow returns the value of the "confidence_low" field in the mutation.
func (m *MetricsSnapshotMutation) ConfidenceLow() (r int64, exists bool) {
	v := m.confidence_low
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceLow returns the old "confidence_low" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldConfidenceLow(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceLow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceLow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceLow: %w", err)
	}
	return oldValue.ConfidenceLow, nil
}

// AddConfidenceLow adds i to the "confidence_low" field.
func (m *MetricsSnapshotMutation) AddConfidenceLow(i int64) {
	if m.addconfidence_low != nil {
		*m.addconfidence_low += i
	} else {
		m.addconfidence_low = &i
	}
}

// AddedConfidenceLow returns the value that was added to the "confidence_low" field in this mutation.
func (m *MetricsSnapshotMutation) AddedConfidenceLow() (r int64, exists bool) {
	v := m.addconfidence_low
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceLow resets all changes to the "confidence_low" field.
func (m *MetricsSnapshotMutation) ResetConfidenceLow() {
	m.confidence_low = nil
	m.addconfidence_low = nil
}

// SetConfidenceMedium sets the "confidence_medium" field.
func (m *MetricsSnapshotMutation) SetConfidenceMedium(i int64) {
	m.confidence_medium = &i
	m.addconfidence_medium = nil
}

// ConfidenceMedium returns the value of the "confidence_medium" field in the mutation.
func (m *MetricsSnapshotMutation) ConfidenceMedium() (r int64, exists bool) {
	v := m.confidence_medium
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceMedium returns the old "confidence_medium" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldConfidenceMedium(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceMedium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceMedium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceMedium: %w", err)
	}
	return oldValue.ConfidenceMedium, nil
}

// AddConfidenceMedium adds i to the "confidence_medium" field.
func (m *MetricsSnapshotMutation) AddConfidenceMedium(i int64) {
	if m.addconfidence_medium != nil {
		*m.addconfidence_medium += i
	} else {
		m.addconfidence_medium = &i
	}
}

// AddedConfidenceMedium returns the value that was added to the "confidence_medium" field in this mutation.
func (m *MetricsSnapshotMutation) AddedConfidenceMedium() (r int64, exists bool) {
	v := m.addconfidence_medium
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceMedium resets all changes to the "confidence_medium" field.
func (m *MetricsSnapshotMutation) ResetConfidenceMedium() {
	m.confidence_medium = nil
	m.addconfidence_medium = nil
}

// SetConfidenceHigh sets the "confidence_high" field.
func (m *MetricsSnapshotMutation) SetConfidenceHigh(i int64) {
	m.confidence_high = &i
	m.addconfidence_high = nil
}

// ConfidenceHigh returns the value of the "confidence_high" field in the mutation.
func (m *MetricsSnapshotMutation) ConfidenceHigh() (r int64, exists bool) {
	v := m.confidence_high
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceHigh returns the old "confidence_high" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldConfidenceHigh(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceHigh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceHigh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceHigh: %w", err)
	}
	return oldValue.ConfidenceHigh, nil
}

// AddConfidenceHigh adds i to the "confidence_high" field.
func (m *MetricsSnapshotMutation) AddConfidenceHigh(i int64) {
	if m.addconfidence_high != nil {
		*m.addconfidence_high += i
	} else {
		m.addconfidence_high = &i
	}
}

// AddedConfidenceHigh returns the value that was added to the "confidence_high" field in this mutation.
func (m *MetricsSnapshotMutation) AddedConfidenceHigh() (r int64, exists bool) {
	v := m.addconfidence_high
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceHigh resets all changes to the "confidence_high" field.
func (m *MetricsSnapshotMutation) ResetConfidenceHigh() {
	m.confidence_high = nil
	m.addconfidence_high = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MetricsSnapshotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MetricsSnapshotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MetricsSnapshot entity.
// If the MetricsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsSnapshotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MetricsSnapshotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MetricsSnapshotMutation builder.
func (m *MetricsSnapshotMutation) Where(ps ...predicate.MetricsSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MetricsSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MetricsSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MetricsSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MetricsSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MetricsSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MetricsSnapshot).
func (m *MetricsSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MetricsSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.key != nil {
		fields = append(fields, metricssnapshot.FieldKey)
	}
	if m.total != nil {
		fields = append(fields, metricssnapshot.FieldTotal)
	}
	if m.success_count != nil {
		fields = append(fields, metricssnapshot.FieldSuccessCount)
	}
	if m.fallback_count != nil {
		fields = append(fields, metricssnapshot.FieldFallbackCount)
	}
	if m.latency_sum_ms != nil {
		fields = append(fields, metricssnapshot.FieldLatencySumMs)
	}
	if m.confidence_sum != nil {
		fields = append(fields, metricssnapshot.FieldConfidenceSum)
	}
	if m.latency_lt_2s != nil {
		fields = append(fields, metricssnapshot.FieldLatencyLt2s)
	}
	if m.latency_2s_5s != nil {
		fields = append(fields, metricssnapshot.FieldLatency2s5s)
	}
	if m.latency_gt_5s != nil {
		fields = append(fields, metricssnapshot.FieldLatencyGt5s)
	}
	if m.confidence_low != nil {
		fields = append(fields, metricssnapshot.FieldConfidenceLow)
	}
	if m.confidence_medium != nil {
		fields = append(fields, metricssnapshot.FieldConfidenceMedium)
	}
	if m.confidence_high != nil {
		fields = append(fields, metricssnapshot.FieldConfidenceHigh)
	}
	if m.updated_at != nil {
		fields = append(fields, metricssnapshot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MetricsSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case metricssnapshot.FieldKey:
		return m.Key()
	case metricssnapshot.FieldTotal:
		return m.Total()
	case metricssnapshot.FieldSuccessCount:
		return m.SuccessCount()
	case metricssnapshot.FieldFallbackCount:
		return m.FallbackCount()
	case metricssnapshot.FieldLatencySumMs:
		return m.LatencySumMs()
	case metricssnapshot.FieldConfidenceSum:
		return m.ConfidenceSum()
	case metricssnapshot.FieldLatencyLt2s:
		return m.LatencyLt2s()
	case metricssnapshot.FieldLatency2s5s:
		return m.Latency2s5s()
	case metricssnapshot.FieldLatencyGt5s:
		return m.LatencyGt5s()
	case metricssnapshot.FieldConfidenceLow:
		return m.ConfidenceLow()
	case metricssnapshot.FieldConfidenceMedium:
		return m.ConfidenceMedium()
	case metricssnapshot.FieldConfidenceHigh:
		return m.ConfidenceHigh()
	case metricssnapshot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MetricsSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case metricssnapshot.FieldKey:
		return m.OldKey(ctx)
	case metricssnapshot.FieldTotal:
		return m.OldTotal(ctx)
	case metricssnapshot.FieldSuccessCount:
		return m.OldSuccessCount(ctx)
	case metricssnapshot.FieldFallbackCount:
		return m.OldFallbackCount(ctx)
	case metricssnapshot.FieldLatencySumMs:
		return m.OldLatencySumMs(ctx)
	case metricssnapshot.FieldConfidenceSum:
		return m.OldConfidenceSum(ctx)
	case metricssnapshot.FieldLatencyLt2s:
		return m.OldLatencyLt2s(ctx)
	case metricssnapshot.FieldLatency2s5s:
		return m.OldLatency2s5s(ctx)
	case metricssnapshot.FieldLatencyGt5s:
		return m.OldLatencyGt5s(ctx)
	case metricssnapshot.FieldConfidenceLow:
		return m.OldConfidenceLow(ctx)
	case metricssnapshot.FieldConfidenceMedium:
		return m.OldConfidenceMedium(ctx)
	case metricssnapshot.FieldConfidenceHigh:
		return m.OldConfidenceHigh(ctx)
	case metricssnapshot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MetricsSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricsSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case metricssnapshot.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case metricssnapshot.FieldTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case metricssnapshot.FieldSuccessCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCount(v)
		return nil
	case metricssnapshot.FieldFallbackCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallbackCount(v)
		return nil
	case metricssnapshot.FieldLatencySumMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencySumMs(v)
		return nil
	case metricssnapshot.FieldConfidenceSum:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceSum(v)
		return nil
	case metricssnapshot.FieldLatencyLt2s:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyLt2s(v)
		return nil
	case metricssnapshot.FieldLatency2s5s:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatency2s5s(v)
		return nil
	case metricssnapshot.FieldLatencyGt5s:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyGt5s(v)
		return nil
	case metricssnapshot.FieldConfidenceLow:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceLow(v)
		return nil
	case metricssnapshot.FieldConfidenceMedium:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceMedium(v)
		return nil
	case metricssnapshot.FieldConfidenceHigh:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceHigh(v)
		return nil
	case metricssnapshot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MetricsSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MetricsSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, metricssnapshot.FieldTotal)
	}
	if m.addsuccess_count != nil {
		fields = append(fields, metricssnapshot.FieldSuccessCount)
	}
	if m.addfallback_count != nil {
		fields = append(fields, metricssnapshot.FieldFallbackCount)
	}
	if m.addlatency_sum_ms != nil {
		fields = append(fields, metricssnapshot.FieldLatencySumMs)
	}
	if m.addconfidence_sum != nil {
		fields = append(fields, metricssnapshot.FieldConfidenceSum)
	}
	if m.addlatency_lt_2s != nil {
		fields = append(fields, metricssnapshot.FieldLatencyLt2s)
	}
	if m.addlatency_2s_5s != nil {
		fields = append(fields, metricssnapshot.FieldLatency2s5s)
	}
	if m.addlatency_gt_5s != nil {
		fields = append(fields, metricssnapshot.FieldLatencyGt5s)
	}
	if m.addconfidence_low != nil {
		fields = append(fields, metricssnapshot.FieldConfidenceLow)
	}
	if m.addconfidence_medium != nil {
		fields = append(fields, metricssnapshot.FieldConfidenceMedium)
	}
	if m.addconfidence_high != nil {
		fields = append(fields, metricssnapshot.FieldConfidenceHigh)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MetricsSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case metricssnapshot.FieldTotal:
		return m.AddedTotal()
	case metricssnapshot.FieldSuccessCount:
		return m.AddedSuccessCount()
	case metricssnapshot.FieldFallbackCount:
		return m.AddedFallbackCount()
	case metricssnapshot.FieldLatencySumMs:
		return m.AddedLatencySumMs()
	case metricssnapshot.FieldConfidenceSum:
		return m.AddedConfidenceSum()
	case metricssnapshot.FieldLatencyLt2s:
		return m.AddedLatencyLt2s()
	case metricssnapshot.FieldLatency2s5s:
		return m.AddedLatency2s5s()
	case metricssnapshot.FieldLatencyGt5s:
		return m.AddedLatencyGt5s()
	case metricssnapshot.FieldConfidenceLow:
		return m.AddedConfidenceLow()
	case metricssnapshot.FieldConfidenceMedium:
		return m.AddedConfidenceMedium()
	case metricssnapshot.FieldConfidenceHigh:
		return m.AddedConfidenceHigh()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricsSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case metricssnapshot.FieldTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case metricssnapshot.FieldSuccessCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessCount(v)
		return nil
	case metricssnapshot.FieldFallbackCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFallbackCount(v)
		return nil
	case metricssnapshot.FieldLatencySumMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencySumMs(v)
		return nil
	case metricssnapshot.FieldConfidenceSum:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceSum(v)
		return nil
	case metricssnapshot.FieldLatencyLt2s:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyLt2s(v)
		return nil
	case metricssnapshot.FieldLatency2s5s:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatency2s5s(v)
		return nil
	case metricssnapshot.FieldLatencyGt5s:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyGt5s(v)
		return nil
	case metricssnapshot.FieldConfidenceLow:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceLow(v)
		return nil
	case metricssnapshot.FieldConfidenceMedium:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceMedium(v)
		return nil
	case metricssnapshot.FieldConfidenceHigh:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceHigh(v)
		return nil
	}
	return fmt.Errorf("unknown MetricsSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MetricsSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MetricsSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MetricsSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MetricsSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MetricsSnapshotMutation) ResetField(name string) error {
	switch name {
	case metricssnapshot.FieldKey:
		m.ResetKey()
		return nil
	case metricssnapshot.FieldTotal:
		m.ResetTotal()
		return nil
	case metricssnapshot.FieldSuccessCount:
		m.ResetSuccessCount()
		return nil
	case metricssnapshot.FieldFallbackCount:
		m.ResetFallbackCount()
		return nil
	case metricssnapshot.FieldLatencySumMs:
		m.ResetLatencySumMs()
		return nil
	case metricssnapshot.FieldConfidenceSum:
		m.ResetConfidenceSum()
		return nil
	case metricssnapshot.FieldLatencyLt2s:
		m.ResetLatencyLt2s()
		return nil
	case metricssnapshot.FieldLatency2s5s:
		m.ResetLatency2s5s()
		return nil
	case metricssnapshot.FieldLatencyGt5s:
		m.ResetLatencyGt5s()
		return nil
	case metricssnapshot.FieldConfidenceLow:
		m.ResetConfidenceLow()
		return nil
	case metricssnapshot.FieldConfidenceMedium:
		m.ResetConfidenceMedium()
		return nil
	case metricssnapshot.FieldConfidenceHigh:
		m.ResetConfidenceHigh()
		return nil
	case metricssnapshot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MetricsSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MetricsSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MetricsSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MetricsSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MetricsSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MetricsSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MetricsSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MetricsSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MetricsSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MetricsSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MetricsSnapshot edge %s", name)
}

// ToolInvocationMutation represents an operation that mutates the ToolInvocation nodes in the graph.
type ToolInvocationMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	job_id          *uuid.UUID
	call_id         *string
	name            *string
	status          *string
	arguments       *json.RawMessage
	appendarguments json.RawMessage
	output          *json.RawMessage
	appendoutput    json.RawMessage
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ToolInvocation, error)
	predicates      []predicate.ToolInvocation
}

var _ ent.Mutation = (*ToolInvocationMutation)(nil)

// toolinvocationOption allows management of the mutation configuration using functional options.
type toolinvocationOption func(*ToolInvocationMutation)

// newToolInvocationMutation creates new mutation for the ToolInvocation entity.
func newToolInvocationMutation(c config, op Op, opts ...toolinvocationOption) *ToolInvocationMutation {
	m := &ToolInvocationMutation{
		config:        c,
		op:            op,
		typ:           TypeToolInvocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolInvocationID sets the ID field of the mutation.
func withToolInvocationID(id uuid.UUID) toolinvocationOption {
	return func(m *ToolInvocationMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolInvocation
		)
		m.oldValue = func(ctx context.Context) (*ToolInvocation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolInvocation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolInvocation sets the old ToolInvocation of the mutation.
func withToolInvocation(node *ToolInvocation) toolinvocationOption {
	return func(m *ToolInvocationMutation) {
		m.oldValue = func(context.Context) (*ToolInvocation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolInvocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolInvocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolInvocation entities.
func (m *ToolInvocationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolInvocationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolInvocationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolInvocation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ToolInvocationMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ToolInvocationMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ToolInvocationMutation) ResetJobID() {
	m.job_id = nil
}

// SetCallID sets the "call_id" field.
func (m *ToolInvocationMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *ToolInvocationMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *ToolInvocationMutation) ResetCallID() {
	m.call_id = nil
}

// SetName sets the "name" field.
func (m *ToolInvocationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ToolInvocationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ToolInvocationMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *ToolInvocationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolInvocationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolInvocationMutation) ResetStatus() {
	m.status = nil
}

// SetArguments sets the "arguments" field.
func (m *ToolInvocationMutation) SetArguments(jm json.RawMessage) {
	m.arguments = &jm
	m.appendarguments = nil
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *ToolInvocationMutation) Arguments() (r json.RawMessage, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldArguments(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// AppendArguments adds jm to the "arguments" field.
func (m *ToolInvocationMutation) AppendArguments(jm json.RawMessage) {
	m.appendarguments = append(m.appendarguments, jm...)
}

// AppendedArguments returns the list of values that were appended to the "arguments" field in this mutation.
func (m *ToolInvocationMutation) AppendedArguments() (json.RawMessage, bool) {
	if len(m.appendarguments) == 0 {
		return nil, false
	}
	return m.appendarguments, true
}

// ClearArguments clears the value of the "arguments" field.
func (m *ToolInvocationMutation) ClearArguments() {
	m.arguments = nil
	m.appendarguments = nil
	m.clearedFields[toolinvocation.FieldArguments] = struct{}{}
}

// ArgumentsCleared returns if the "arguments" field was cleared in this mutation.
func (m *ToolInvocationMutation) ArgumentsCleared() bool {
	_, ok := m.clearedFields[toolinvocation.FieldArguments]
	return ok
}

// ResetArguments resets all changes to the "arguments" field.
func (m *ToolInvocationMutation) ResetArguments() {
	m.arguments = nil
	m.appendarguments = nil
	delete(m.clearedFields, toolinvocation.FieldArguments)
}

// SetOutput sets the "output" field.
func (m *ToolInvocationMutation) SetOutput(jm json.RawMessage) {
	m.output = &jm
	m.appendoutput = nil
}

// Output returns the value of the "output" field in the mutation.
func (m *ToolInvocationMutation) Output() (r json.RawMessage, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// AppendOutput adds jm to the "output" field.
func (m *ToolInvocationMutation) AppendOutput(jm json.RawMessage) {
	m.appendoutput = append(m.appendoutput, jm...)
}

// AppendedOutput returns the list of values that were appended to the "output" field in this mutation.
func (m *ToolInvocationMutation) AppendedOutput() (json.RawMessage, bool) {
	if len(m.appendoutput) == 0 {
		return nil, false
	}
	return m.appendoutput, true
}

// ClearOutput clears the value of the "output" field.
func (m *ToolInvocationMutation) ClearOutput() {
	m.output = nil
	m.appendoutput = nil
	m.clearedFields[toolinvocation.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ToolInvocationMutation) OutputCleared() bool {
	_, ok := m.clearedFields[toolinvocation.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ToolInvocationMutation) ResetOutput() {
	m.output = nil
	m.appendoutput = nil
	delete(m.clearedFields, toolinvocation.FieldOutput)
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolInvocationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolInvocationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolInvocationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ToolInvocationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ToolInvocationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ToolInvocationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ToolInvocationMutation builder.
func (m *ToolInvocationMutation) Where(ps ...predicate.ToolInvocation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolInvocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolInvocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolInvocation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolInvocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolInvocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolInvocation).
func (m *ToolInvocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolInvocationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.job_id != nil {
		fields = append(fields, toolinvocation.FieldJobID)
	}
	if m.call_id != nil {
		fields = append(fields, toolinvocation.FieldCallID)
	}
	if m.name != nil {
		fields = append(fields, toolinvocation.FieldName)
	}
	if m.status != nil {
		fields = append(fields, toolinvocation.FieldStatus)
	}
	if m.arguments != nil {
		fields = append(fields, toolinvocation.FieldArguments)
	}
	if m.output != nil {
		fields = append(fields, toolinvocation.FieldOutput)
	}
	if m.created_at != nil {
		fields = append(fields, toolinvocation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, toolinvocation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolInvocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolinvocation.FieldJobID:
		return m.JobID()
	case toolinvocation.FieldCallID:
		return m.CallID()
	case toolinvocation.FieldName:
		return m.Name()
	case toolinvocation.FieldStatus:
		return m.Status()
	case toolinvocation.FieldArguments:
		return m.Arguments()
	case toolinvocation.FieldOutput:
		return m.Output()
	case toolinvocation.FieldCreatedAt:
		return m.CreatedAt()
	case toolinvocation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolInvocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolinvocation.FieldJobID:
		return m.OldJobID(ctx)
	case toolinvocation.FieldCallID:
		return m.OldCallID(ctx)
	case toolinvocation.FieldName:
		return m.OldName(ctx)
	case toolinvocation.FieldStatus:
		return m.OldStatus(ctx)
	case toolinvocation.FieldArguments:
		return m.OldArguments(ctx)
	case toolinvocation.FieldOutput:
		return m.OldOutput(ctx)
	case toolinvocation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case toolinvocation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolInvocation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolInvocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolinvocation.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case toolinvocation.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case toolinvocation.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case toolinvocation.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolinvocation.FieldArguments:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case toolinvocation.FieldOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case toolinvocation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case toolinvocation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolInvocation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolInvocationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolInvocationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolInvocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolInvocation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolInvocationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolinvocation.FieldArguments) {
		fields = append(fields, toolinvocation.FieldArguments)
	}
	if m.FieldCleared(toolinvocation.FieldOutput) {
		fields = append(fields, toolinvocation.FieldOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolInvocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolInvocationMutation) ClearField(name string) error {
	switch name {
	case toolinvocation.FieldArguments:
		m.ClearArguments()
		return nil
	case toolinvocation.FieldOutput:
		m.ClearOutput()
		return nil
	}
	return fmt.Errorf("unknown ToolInvocation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolInvocationMutation) ResetField(name string) error {
	switch name {
	case toolinvocation.FieldJobID:
		m.ResetJobID()
		return nil
	case toolinvocation.FieldCallID:
		m.ResetCallID()
		return nil
	case toolinvocation.FieldName:
		m.ResetName()
		return nil
	case toolinvocation.FieldStatus:
		m.ResetStatus()
		return nil
	case toolinvocation.FieldArguments:
		m.ResetArguments()
		return nil
	case toolinvocation.FieldOutput:
		m.ResetOutput()
		return nil
	case toolinvocation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case toolinvocation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolInvocation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolInvocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolInvocationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolInvocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolInvocationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolInvocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolInvocationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolInvocationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolInvocation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolInvocationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolInvocation edge %s", name)
}

// UploadMutation represents an operation that mutates the Upload nodes in the graph.
type UploadMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	user_id           *string
	filename          *string
	original_filename *string
	content_type      *string
	size_bytes        *int64
	addsize_bytes     *int64
	source_type       *string
	storage_path      *string
	bucket            *string
	status            *string
	last_error        *string
	processing_job_id *uuid.UUID
	ingestion_job_id  *uuid.UUID
	text_preview      *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	jobs              map[uuid.UUID]struct{}
	removedjobs       map[uuid.UUID]struct{}
	clearedjobs       bool
	done              bool
	oldValue          func(context.Context) (*Upload, error)
	predicates        []predicate.Upload
}

var _ ent.Mutation = (*UploadMutation)(nil)

// uploadOption allows management of the mutation configuration using functional options.
type uploadOption func(*UploadMutation)

// newUploadMutation creates new mutation for the Upload entity.
func newUploadMutation(c config, op Op, opts ...uploadOption) *UploadMutation {
	m := &UploadMutation{
		config:        c,
		op:            op,
		typ:           TypeUpload,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadID sets the ID field of the mutation.
func withUploadID(id uuid.UUID) uploadOption {
	return func(m *UploadMutation) {
		var (
			err   error
			once  sync.Once
			value *Upload
		)
		m.oldValue = func(ctx context.Context) (*Upload, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Upload.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUpload sets the old Upload of the mutation.
func withUpload(node *Upload) uploadOption {
	return func(m *UploadMutation) {
		m.oldValue = func(context.Context) (*Upload, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Upload entities.
func (m *UploadMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Upload.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UploadMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UploadMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UploadMutation) ResetUserID() {
	m.user_id = nil
}

// SetFilename sets the "filename" field.
func (m *UploadMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *UploadMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *UploadMutation) ResetFilename() {
	m.filename = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *UploadMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *UploadMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *UploadMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetContentType sets the "content_type" field.
func (m *UploadMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *UploadMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *UploadMutation) ResetContentType() {
	m.content_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *UploadMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *UploadMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldSizeBytes(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *UploadMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *UploadMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (m *UploadMutation) ClearSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	m.clearedFields[upload.FieldSizeBytes] = struct{}{}
}

// SizeBytesCleared returns if the "size_bytes" field was cleared in this mutation.
func (m *UploadMutation) SizeBytesCleared() bool {
	_, ok := m.clearedFields[upload.FieldSizeBytes]
	return ok
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *UploadMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	delete(m.clearedFields, upload.FieldSizeBytes)
}

// SetSourceType sets the "source_type" field.
func (m *UploadMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *UploadMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *UploadMutation) ResetSourceType() {
	m.source_type = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *UploadMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *UploadMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *UploadMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetBucket sets the "bucket" field.
func (m *UploadMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *UploadMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *UploadMutation) ResetBucket() {
	m.bucket = nil
}

// SetStatus sets the "status" field.
func (m *UploadMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UploadMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UploadMutation) ResetStatus() {
	m.status = nil
}

// SetLastError sets the "last_error" field.
func (m *UploadMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *UploadMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *UploadMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[upload.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *UploadMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[upload.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *UploadMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, upload.FieldLastError)
}

// SetProcessingJobID sets the "processing_job_id" field.
func (m *UploadMutation) SetProcessingJobID(u uuid.UUID) {
	m.processing_job_id = &u
}

// ProcessingJobID returns the value of the "processing_job_id" field in the mutation.
func (m *UploadMutation) ProcessingJobID() (r uuid.UUID, exists bool) {
	v := m.processing_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingJobID returns the old "processing_job_id" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldProcessingJobID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingJobID: %w", err)
	}
	return oldValue.ProcessingJobID, nil
}

// ClearProcessingJobID clears the value of the "processing_job_id" field.
func (m *UploadMutation) ClearProcessingJobID() {
	m.processing_job_id = nil
	m.clearedFields[upload.FieldProcessingJobID] = struct{}{}
}

// ProcessingJobIDCleared returns if the "processing_job_id" field was cleared in this mutation.
func (m *UploadMutation) ProcessingJobIDCleared() bool {
	_, ok := m.clearedFields[upload.FieldProcessingJobID]
	return ok
}

// ResetProcessingJobID resets all changes to the "processing_job_id" field.
func (m *UploadMutation) ResetProcessingJobID() {
	m.processing_job_id = nil
	delete(m.clearedFields, upload.FieldProcessingJobID)
}

// SetIngestionJobID sets the "ingestion_job_id" field.
func (m *UploadMutation) SetIngestionJobID(u uuid.UUID) {
	m.ingestion_job_id = &u
}

// IngestionJobID returns the value of the "ingestion_job_id" field in the mutation.
func (m *UploadMutation) IngestionJobID() (r uuid.UUID, exists bool) {
	v := m.ingestion_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestionJobID returns the old "ingestion_job_id" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldIngestionJobID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestionJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestionJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestionJobID: %w", err)
	}
	return oldValue.IngestionJobID, nil
}

// ClearIngestionJobID clears the value of the "ingestion_job_id" field.
func (m *UploadMutation) ClearIngestionJobID() {
	m.ingestion_job_id = nil
	m.clearedFields[upload.FieldIngestionJobID] = struct{}{}
}

// IngestionJobIDCleared returns if the "ingestion_job_id" field was cleared in this mutation.
func (m *UploadMutation) IngestionJobIDCleared() bool {
	_, ok := m.clearedFields[upload.FieldIngestionJobID]
	return ok
}

// ResetIngestionJobID resets all changes to the "ingestion_job_id" field.
func (m *UploadMutation) ResetIngestionJobID() {
	m.ingestion_job_id = nil
	delete(m.clearedFields, upload.FieldIngestionJobID)
}

// SetTextPreview sets the "text_preview" field.
func (m *UploadMutation) SetTextPreview(s string) {
	m.text_preview = &s
}

// TextPreview returns the value of the "text_preview" field in the mutation.
func (m *UploadMutation) TextPreview() (r string, exists bool) {
	v := m.text_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldTextPreview returns the old "text_preview" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldTextPreview(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextPreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextPreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextPreview: %w", err)
	}
	return oldValue.TextPreview, nil
}

// ClearTextPreview clears the value of the "text_preview" field.
func (m *UploadMutation) ClearTextPreview() {
	m.text_preview = nil
	m.clearedFields[upload.FieldTextPreview] = struct{}{}
}

// TextPreviewCleared returns if the "text_preview" field was cleared in this mutation.
func (m *UploadMutation) TextPreviewCleared() bool {
	_, ok := m.clearedFields[upload.FieldTextPreview]
	return ok
}

// ResetTextPreview resets all changes to the "text_preview" field.
func (m *UploadMutation) ResetTextPreview() {
	m.text_preview = nil
	delete(m.clearedFields, upload.FieldTextPreview)
}

// SetCreatedAt sets the "created_at" field.
func (m *UploadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UploadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UploadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UploadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UploadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UploadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the UploadJob entity by ids.
func (m *UploadMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the UploadJob entity.
func (m *UploadMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the UploadJob entity was cleared.
func (m *UploadMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the UploadJob entity by IDs.
func (m *UploadMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the UploadJob entity.
func (m *UploadMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *UploadMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *UploadMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the UploadMutation builder.
func (m *UploadMutation) Where(ps ...predicate.Upload) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Upload, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Upload).
func (m *UploadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.user_id != nil {
		fields = append(fields, upload.FieldUserID)
	}
	if m.filename != nil {
		fields = append(fields, upload.FieldFilename)
	}
	if m.original_filename != nil {
		fields = append(fields, upload.FieldOriginalFilename)
	}
	if m.content_type != nil {
		fields = append(fields, upload.FieldContentType)
	}
	if m.size_bytes != nil {
		fields = append(fields, upload.FieldSizeBytes)
	}
	if m.source_type != nil {
		fields = append(fields, upload.FieldSourceType)
	}
	if m.storage_path != nil {
		fields = append(fields, upload.FieldStoragePath)
	}
	if m.bucket != nil {
		fields = append(fields, upload.FieldBucket)
	}
	if m.status != nil {
		fields = append(fields, upload.FieldStatus)
	}
	if m.last_error != nil {
		fields = append(fields, upload.FieldLastError)
	}
	if m.processing_job_id != nil {
		fields = append(fields, upload.FieldProcessingJobID)
	}
	if m.ingestion_job_id != nil {
		fields = append(fields, upload.FieldIngestionJobID)
	}
	if m.text_preview != nil {
		fields = append(fields, upload.FieldTextPreview)
	}
	if m.created_at != nil {
		fields = append(fields, upload.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, upload.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case upload.FieldUserID:
		return m.UserID()
	case upload.FieldFilename:
		return m.Filename()
	case upload.FieldOriginalFilename:
		return m.OriginalFilename()
	case upload.FieldContentType:
		return m.ContentType()
	case upload.FieldSizeBytes:
		return m.SizeBytes()
	case upload.FieldSourceType:
		return m.SourceType()
	case upload.FieldStoragePath:
		return m.StoragePath()
	case upload.FieldBucket:
		return m.Bucket()
	case upload.FieldStatus:
		return m.Status()
	case upload.FieldLastError:
		return m.LastError()
	case upload.FieldProcessingJobID:
		return m.ProcessingJobID()
	case upload.FieldIngestionJobID:
		return m.IngestionJobID()
	case upload.FieldTextPreview:
		return m.TextPreview()
	case upload.FieldCreatedAt:
		return m.CreatedAt()
	case upload.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case upload.FieldUserID:
		return m.OldUserID(ctx)
	case upload.FieldFilename:
		return m.OldFilename(ctx)
	case upload.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case upload.FieldContentType:
		return m.OldContentType(ctx)
	case upload.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case upload.FieldSourceType:
		return m.OldSourceType(ctx)
	case upload.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case upload.FieldBucket:
		return m.OldBucket(ctx)
	case upload.FieldStatus:
		return m.OldStatus(ctx)
	case upload.FieldLastError:
		return m.OldLastError(ctx)
	case upload.FieldProcessingJobID:
		return m.OldProcessingJobID(ctx)
	case upload.FieldIngestionJobID:
		return m.OldIngestionJobID(ctx)
	case upload.FieldTextPreview:
		return m.OldTextPreview(ctx)
	case upload.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case upload.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Upload field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case upload.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case upload.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case upload.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case upload.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case upload.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case upload.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case upload.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case upload.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case upload.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case upload.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case upload.FieldProcessingJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingJobID(v)
		return nil
	case upload.FieldIngestionJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestionJobID(v)
		return nil
	case upload.FieldTextPreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextPreview(v)
		return nil
	case upload.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case upload.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Upload field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, upload.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case upload.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case upload.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Upload numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(upload.FieldSizeBytes) {
		fields = append(fields, upload.FieldSizeBytes)
	}
	if m.FieldCleared(upload.FieldLastError) {
		fields = append(fields, upload.FieldLastError)
	}
	if m.FieldCleared(upload.FieldProcessingJobID) {
		fields = append(fields, upload.FieldProcessingJobID)
	}
	if m.FieldCleared(upload.FieldIngestionJobID) {
		fields = append(fields, upload.FieldIngestionJobID)
	}
	if m.FieldCleared(upload.FieldTextPreview) {
		fields = append(fields, upload.FieldTextPreview)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadMutation) ClearField(name string) error {
	switch name {
	case upload.FieldSizeBytes:
		m.ClearSizeBytes()
		return nil
	case upload.FieldLastError:
		m.ClearLastError()
		return nil
	case upload.FieldProcessingJobID:
		m.ClearProcessingJobID()
		return nil
	case upload.FieldIngestionJobID:
		m.ClearIngestionJobID()
		return nil
	case upload.FieldTextPreview:
		m.ClearTextPreview()
		return nil
	}
	return fmt.Errorf("unknown Upload nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadMutation) ResetField(name string) error {
	switch name {
	case upload.FieldUserID:
		m.ResetUserID()
		return nil
	case upload.FieldFilename:
		m.ResetFilename()
		return nil
	case upload.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case upload.FieldContentType:
		m.ResetContentType()
		return nil
	case upload.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case upload.FieldSourceType:
		m.ResetSourceType()
		return nil
	case upload.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case upload.FieldBucket:
		m.ResetBucket()
		return nil
	case upload.FieldStatus:
		m.ResetStatus()
		return nil
	case upload.FieldLastError:
		m.ResetLastError()
		return nil
	case upload.FieldProcessingJobID:
		m.ResetProcessingJobID()
		return nil
	case upload.FieldIngestionJobID:
		m.ResetIngestionJobID()
		return nil
	case upload.FieldTextPreview:
		m.ResetTextPreview()
		return nil
	case upload.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case upload.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Upload field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, upload.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case upload.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, upload.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case upload.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, upload.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadMutation) EdgeCleared(name string) bool {
	switch name {
	case upload.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Upload unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadMutation) ResetEdge(name string) error {
	switch name {
	case upload.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Upload edge %s", name)
}

// UploadJobMutation represents an operation that mutates the UploadJob nodes in the graph.
type UploadJobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	user_id       *string
	storage_path  *string
	bucket        *string
	content_type  *string
	source_type   *string
	status        *string
	attempts      *int
	addattempts   *int
	last_error    *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	upload        *uuid.UUID
	clearedupload bool
	done          bool
	oldValue      func(context.Context) (*UploadJob, error)
	predicates    []predicate.UploadJob
}

var _ ent.Mutation = (*UploadJobMutation)(nil)

// uploadjobOption allows management of the mutation configuration using functional options.
type uploadjobOption func(*UploadJobMutation)

// newUploadJobMutation creates new mutation for the UploadJob entity.
func newUploadJobMutation(c config, op Op, opts ...uploadjobOption) *UploadJobMutation {
	m := &UploadJobMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadJobID sets the ID field of the mutation.
func withUploadJobID(id uuid.UUID) uploadjobOption {
	return func(m *UploadJobMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadJob
		)
		m.oldValue = func(ctx context.Context) (*UploadJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadJob sets the old UploadJob of the mutation.
func withUploadJob(node *UploadJob) uploadjobOption {
	return func(m *UploadJobMutation) {
		m.oldValue = func(context.Context) (*UploadJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadJob entities.
func (m *UploadJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUploadID sets the "upload_id" field.
func (m *UploadJobMutation) SetUploadID(u uuid.UUID) {
	m.upload = &u
}

// UploadID returns the value of the "upload_id" field in the mutation.
func (m *UploadJobMutation) UploadID() (r uuid.UUID, exists bool) {
	v := m.upload
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadID returns the old "upload_id" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldUploadID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadID: %w", err)
	}
	return oldValue.UploadID, nil
}

// ResetUploadID resets all changes to the "upload_id" field.
func (m *UploadJobMutation) ResetUploadID() {
	m.upload = nil
}

// SetUserID sets the "user_id" field.
func (m *UploadJobMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UploadJobMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UploadJobMutation) ResetUserID() {
	m.user_id = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *UploadJobMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *UploadJobMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *UploadJobMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetBucket sets the "bucket" field.
func (m *UploadJobMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *UploadJobMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *UploadJobMutation) ResetBucket() {
	m.bucket = nil
}

// SetContentType sets the "content_type" field.
func (m *UploadJobMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *UploadJobMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *UploadJobMutation) ResetContentType() {
	m.content_type = nil
}

// SetSourceType sets the "source_type" field.
func (m *UploadJobMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *UploadJobMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *UploadJobMutation) ResetSourceType() {
	m.source_type = nil
}

// SetStatus sets the "status" field.
func (m *UploadJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UploadJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UploadJobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *UploadJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *UploadJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *UploadJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *UploadJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *UploadJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *UploadJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *UploadJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *UploadJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[uploadjob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *UploadJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[uploadjob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *UploadJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, uploadjob.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *UploadJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UploadJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UploadJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UploadJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UploadJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UploadJob entity.
// If the UploadJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UploadJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (m *UploadJobMutation) ClearUpload() {
	m.clearedupload = true
	m.clearedFields[uploadjob.FieldUploadID] = struct{}{}
}

// UploadCleared reports if the "upload" edge to the Upload entity was cleared.
func (m *UploadJobMutation) UploadCleared() bool {
	return m.clearedupload
}

// UploadIDs returns the "upload" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UploadID instead. It exists only for internal usage by the builders.
func (m *UploadJobMutation) UploadIDs() (ids []uuid.UUID) {
	if id := m.upload; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUpload resets all changes to the "upload" edge.
func (m *UploadJobMutation) ResetUpload() {
	m.upload = nil
	m.clearedupload = false
}

// Where appends a list predicates to the UploadJobMutation builder.
func (m *UploadJobMutation) Where(ps ...predicate.UploadJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadJob).
func (m *UploadJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.upload != nil {
		fields = append(fields, uploadjob.FieldUploadID)
	}
	if m.user_id != nil {
		fields = append(fields, uploadjob.FieldUserID)
	}
	if m.storage_path != nil {
		fields = append(fields, uploadjob.FieldStoragePath)
	}
	if m.bucket != nil {
		fields = append(fields, uploadjob.FieldBucket)
	}
	if m.content_type != nil {
		fields = append(fields, uploadjob.FieldContentType)
	}
	if m.source_type != nil {
		fields = append(fields, uploadjob.FieldSourceType)
	}
	if m.status != nil {
		fields = append(fields, uploadjob.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, uploadjob.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, uploadjob.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, uploadjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, uploadjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadjob.FieldUploadID:
		return m.UploadID()
	case uploadjob.FieldUserID:
		return m.UserID()
	case uploadjob.FieldStoragePath:
		return m.StoragePath()
	case uploadjob.FieldBucket:
		return m.Bucket()
	case uploadjob.FieldContentType:
		return m.ContentType()
	case uploadjob.FieldSourceType:
		return m.SourceType()
	case uploadjob.FieldStatus:
		return m.Status()
	case uploadjob.FieldAttempts:
		return m.Attempts()
	case uploadjob.FieldLastError:
		return m.LastError()
	case uploadjob.FieldCreatedAt:
		return m.CreatedAt()
	case uploadjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadjob.FieldUploadID:
		return m.OldUploadID(ctx)
	case uploadjob.FieldUserID:
		return m.OldUserID(ctx)
	case uploadjob.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case uploadjob.FieldBucket:
		return m.OldBucket(ctx)
	case uploadjob.FieldContentType:
		return m.OldContentType(ctx)
	case uploadjob.FieldSourceType:
		return m.OldSourceType(ctx)
	case uploadjob.FieldStatus:
		return m.OldStatus(ctx)
	case uploadjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case uploadjob.FieldLastError:
		return m.OldLastError(ctx)
	case uploadjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case uploadjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadjob.FieldUploadID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadID(v)
		return nil
	case uploadjob.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case uploadjob.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case uploadjob.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case uploadjob.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case uploadjob.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case uploadjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case uploadjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case uploadjob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case uploadjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case uploadjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, uploadjob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadjob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown UploadJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uploadjob.FieldLastError) {
		fields = append(fields, uploadjob.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadJobMutation) ClearField(name string) error {
	switch name {
	case uploadjob.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown UploadJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadJobMutation) ResetField(name string) error {
	switch name {
	case uploadjob.FieldUploadID:
		m.ResetUploadID()
		return nil
	case uploadjob.FieldUserID:
		m.ResetUserID()
		return nil
	case uploadjob.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case uploadjob.FieldBucket:
		m.ResetBucket()
		return nil
	case uploadjob.FieldContentType:
		m.ResetContentType()
		return nil
	case uploadjob.FieldSourceType:
		m.ResetSourceType()
		return nil
	case uploadjob.FieldStatus:
		m.ResetStatus()
		return nil
	case uploadjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case uploadjob.FieldLastError:
		m.ResetLastError()
		return nil
	case uploadjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case uploadjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.upload != nil {
		edges = append(edges, uploadjob.EdgeUpload)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadjob.EdgeUpload:
		if id := m.upload; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedupload {
		edges = append(edges, uploadjob.EdgeUpload)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadJobMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadjob.EdgeUpload:
		return m.clearedupload
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadJobMutation) ClearEdge(name string) error {
	switch name {
	case uploadjob.EdgeUpload:
		m.ClearUpload()
		return nil
	}
	return fmt.Errorf("unknown UploadJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadJobMutation) ResetEdge(name string) error {
	switch name {
	case uploadjob.EdgeUpload:
		m.ResetUpload()
		return nil
	}
	return fmt.Errorf("unknown UploadJob edge %s", name)
}
