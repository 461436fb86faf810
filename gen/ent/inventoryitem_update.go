// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pantryops/pantryd/gen/ent/inventoryitem"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// InventoryItemUpdate is the builder for updating InventoryItem entities.
type InventoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *InventoryItemMutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdate) Where(ps ...predicate.InventoryItem) *InventoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InventoryItemUpdate) SetUserID(v string) *InventoryItemUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableUserID(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *InventoryItemUpdate) SetName(v string) *InventoryItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableName(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNameKey sets the "name_key" field.
func (_u *InventoryItemUpdate) SetNameKey(v string) *InventoryItemUpdate {
	_u.mutation.SetNameKey(v)
	return _u
}

// SetNillableNameKey sets the "name_key" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableNameKey(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetNameKey(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InventoryItemUpdate) SetQuantity(v float64) *InventoryItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableQuantity(v *float64) *InventoryItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InventoryItemUpdate) AddQuantity(v float64) *InventoryItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InventoryItemUpdate) SetUnit(v string) *InventoryItemUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableUnit(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InventoryItemUpdate) SetCategory(v string) *InventoryItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableCategory(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *InventoryItemUpdate) SetLocation(v string) *InventoryItemUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableLocation(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *InventoryItemUpdate) ClearLocation() *InventoryItemUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetLowStockThreshold sets the "low_stock_threshold" field.
func (_u *InventoryItemUpdate) SetLowStockThreshold(v float64) *InventoryItemUpdate {
	_u.mutation.ResetLowStockThreshold()
	_u.mutation.SetLowStockThreshold(v)
	return _u
}

// SetNillableLowStockThreshold sets the "low_stock_threshold" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableLowStockThreshold(v *float64) *InventoryItemUpdate {
	if v != nil {
		_u.SetLowStockThreshold(*v)
	}
	return _u
}

// AddLowStockThreshold adds value to the "low_stock_threshold" field.
func (_u *InventoryItemUpdate) AddLowStockThreshold(v float64) *InventoryItemUpdate {
	_u.mutation.AddLowStockThreshold(v)
	return _u
}

// SetExpiration sets the "expiration" field.
func (_u *InventoryItemUpdate) SetExpiration(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetExpiration(v)
	return _u
}

// SetNillableExpiration sets the "expiration" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableExpiration(v *time.Time) *InventoryItemUpdate {
	if v != nil {
		_u.SetExpiration(*v)
	}
	return _u
}

// ClearExpiration clears the value of the "expiration" field.
func (_u *InventoryItemUpdate) ClearExpiration() *InventoryItemUpdate {
	_u.mutation.ClearExpiration()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InventoryItemUpdate) SetNotes(v string) *InventoryItemUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableNotes(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InventoryItemUpdate) ClearNotes() *InventoryItemUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdate) SetUpdatedAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdate) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InventoryItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InventoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := inventoryitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := inventoryitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameKey(); ok {
		if err := inventoryitem.NameKeyValidator(v); err != nil {
			return &ValidationError{Name: "name_key", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.name_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LowStockThreshold(); ok {
		if err := inventoryitem.LowStockThresholdValidator(v); err != nil {
			return &ValidationError{Name: "low_stock_threshold", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.low_stock_threshold": %w`, err)}
		}
	}
	return nil
}

func (_u *InventoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(inventoryitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameKey(); ok {
		_spec.SetField(inventoryitem.FieldNameKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(inventoryitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(inventoryitem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(inventoryitem.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(inventoryitem.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.LowStockThreshold(); ok {
		_spec.SetField(inventoryitem.FieldLowStockThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowStockThreshold(); ok {
		_spec.AddField(inventoryitem.FieldLowStockThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Expiration(); ok {
		_spec.SetField(inventoryitem.FieldExpiration, field.TypeTime, value)
	}
	if _u.mutation.ExpirationCleared() {
		_spec.ClearField(inventoryitem.FieldExpiration, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(inventoryitem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(inventoryitem.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InventoryItemUpdateOne is the builder for updating a single InventoryItem entity.
type InventoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InventoryItemMutation
}

// SetUserID sets the "user_id" field.
func (_u *InventoryItemUpdateOne) SetUserID(v string) *InventoryItemUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableUserID(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *InventoryItemUpdateOne) SetName(v string) *InventoryItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableName(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNameKey sets the "name_key" field.
func (_u *InventoryItemUpdateOne) SetNameKey(v string) *InventoryItemUpdateOne {
	_u.mutation.SetNameKey(v)
	return _u
}

// SetNillableNameKey sets the "name_key" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableNameKey(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetNameKey(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InventoryItemUpdateOne) SetQuantity(v float64) *InventoryItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableQuantity(v *float64) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InventoryItemUpdateOne) AddQuantity(v float64) *InventoryItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InventoryItemUpdateOne) SetUnit(v string) *InventoryItemUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableUnit(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InventoryItemUpdateOne) SetCategory(v string) *InventoryItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableCategory(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *InventoryItemUpdateOne) SetLocation(v string) *InventoryItemUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableLocation(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *InventoryItemUpdateOne) ClearLocation() *InventoryItemUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetLowStockThreshold sets the "low_stock_threshold" field.
func (_u *InventoryItemUpdateOne) SetLowStockThreshold(v float64) *InventoryItemUpdateOne {
	_u.mutation.ResetLowStockThreshold()
	_u.mutation.SetLowStockThreshold(v)
	return _u
}

// SetNillableLowStockThreshold sets the "low_stock_threshold" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableLowStockThreshold(v *float64) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetLowStockThreshold(*v)
	}
	return _u
}

// AddLowStockThreshold adds value to the "low_stock_threshold" field.
func (_u *InventoryItemUpdateOne) AddLowStockThreshold(v float64) *InventoryItemUpdateOne {
	_u.mutation.AddLowStockThreshold(v)
	return _u
}

// SetExpiration sets the "expiration" field.
func (_u *InventoryItemUpdateOne) SetExpiration(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetExpiration(v)
	return _u
}

// SetNillableExpiration sets the "expiration" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableExpiration(v *time.Time) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetExpiration(*v)
	}
	return _u
}

// ClearExpiration clears the value of the "expiration" field.
func (_u *InventoryItemUpdateOne) ClearExpiration() *InventoryItemUpdateOne {
	_u.mutation.ClearExpiration()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InventoryItemUpdateOne) SetNotes(v string) *InventoryItemUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableNotes(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InventoryItemUpdateOne) ClearNotes() *InventoryItemUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdateOne) SetUpdatedAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdateOne) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdateOne) Where(ps ...predicate.InventoryItem) *InventoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InventoryItemUpdateOne) Select(field string, fields ...string) *InventoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InventoryItem entity.
func (_u *InventoryItemUpdateOne) Save(ctx context.Context) (*InventoryItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) SaveX(ctx context.Context) *InventoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InventoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := inventoryitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := inventoryitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameKey(); ok {
		if err := inventoryitem.NameKeyValidator(v); err != nil {
			return &ValidationError{Name: "name_key", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.name_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LowStockThreshold(); ok {
		if err := inventoryitem.LowStockThresholdValidator(v); err != nil {
			return &ValidationError{Name: "low_stock_threshold", err: fmt.Errorf(`ent: validator failed for field "InventoryItem.low_stock_threshold": %w`, err)}
		}
	}
	return nil
}

func (_u *InventoryItemUpdateOne) sqlSave(ctx context.Context) (_node *InventoryItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InventoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventoryitem.FieldID)
		for _, f := range fields {
			if !inventoryitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inventoryitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(inventoryitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameKey(); ok {
		_spec.SetField(inventoryitem.FieldNameKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(inventoryitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(inventoryitem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(inventoryitem.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(inventoryitem.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.LowStockThreshold(); ok {
		_spec.SetField(inventoryitem.FieldLowStockThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowStockThreshold(); ok {
		_spec.AddField(inventoryitem.FieldLowStockThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Expiration(); ok {
		_spec.SetField(inventoryitem.FieldExpiration, field.TypeTime, value)
	}
	if _u.mutation.ExpirationCleared() {
		_spec.ClearField(inventoryitem.FieldExpiration, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(inventoryitem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(inventoryitem.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &InventoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
