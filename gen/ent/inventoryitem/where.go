// Code generated by ent, DO NOT EDIT.

package inventoryitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldName, v))
}

// NameKey applies equality check predicate on the "name_key" field. It's identical to NameKeyEQ.
func NameKey(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldNameKey, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldQuantity, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUnit, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCategory, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldLocation, v))
}

// LowStockThreshold applies equality check predicate on the "low_stock_threshold" field. It's identical to LowStockThresholdEQ.
func LowStockThreshold(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldLowStockThreshold, v))
}

// Expiration applies equality check predicate on the "expiration" field. It's identical to ExpirationEQ.
func Expiration(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldExpiration, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldName, v))
}

// NameKeyEQ applies the EQ predicate on the "name_key" field.
func NameKeyEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldNameKey, v))
}

// NameKeyNEQ applies the NEQ predicate on the "name_key" field.
func NameKeyNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldNameKey, v))
}

// NameKeyIn applies the In predicate on the "name_key" field.
func NameKeyIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldNameKey, vs...))
}

// NameKeyNotIn applies the NotIn predicate on the "name_key" field.
func NameKeyNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldNameKey, vs...))
}

// NameKeyGT applies the GT predicate on the "name_key" field.
func NameKeyGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldNameKey, v))
}

// NameKeyGTE applies the GTE predicate on the "name_key" field.
func NameKeyGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldNameKey, v))
}

// NameKeyLT applies the LT predicate on the "name_key" field.
func NameKeyLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldNameKey, v))
}

// NameKeyLTE applies the LTE predicate on the "name_key" field.
func NameKeyLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldNameKey, v))
}

// NameKeyContains applies the Contains predicate on the "name_key" field.
func NameKeyContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldNameKey, v))
}

// NameKeyHasPrefix applies the HasPrefix predicate on the "name_key" field.
func NameKeyHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldNameKey, v))
}

// NameKeyHasSuffix applies the HasSuffix predicate on the "name_key" field.
func NameKeyHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldNameKey, v))
}

// NameKeyEqualFold applies the EqualFold predicate on the "name_key" field.
func NameKeyEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldNameKey, v))
}

// NameKeyContainsFold applies the ContainsFold predicate on the "name_key" field.
func NameKeyContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldNameKey, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldQuantity, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldUnit, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldCategory, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldLocation, v))
}

// LowStockThresholdEQ applies the EQ predicate on the "low_stock_threshold" field.
func LowStockThresholdEQ(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldLowStockThreshold, v))
}

// LowStockThresholdNEQ applies the NEQ predicate on the "low_stock_threshold" field.
func LowStockThresholdNEQ(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldLowStockThreshold, v))
}

// LowStockThresholdIn applies the In predicate on the "low_stock_threshold" field.
func LowStockThresholdIn(vs ...float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldLowStockThreshold, vs...))
}

// LowStockThresholdNotIn applies the NotIn predicate on the "low_stock_threshold" field.
func LowStockThresholdNotIn(vs ...float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldLowStockThreshold, vs...))
}

// LowStockThresholdGT applies the GT predicate on the "low_stock_threshold" field.
func LowStockThresholdGT(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldLowStockThreshold, v))
}

// LowStockThresholdGTE applies the GTE predicate on the "low_stock_threshold" field.
func LowStockThresholdGTE(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldLowStockThreshold, v))
}

// LowStockThresholdLT applies the LT predicate on the "low_stock_threshold" field.
func LowStockThresholdLT(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldLowStockThreshold, v))
}

// LowStockThresholdLTE applies the LTE predicate on the "low_stock_threshold" field.
func LowStockThresholdLTE(v float64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldLowStockThreshold, v))
}

// ExpirationEQ applies the EQ predicate on the "expiration" field.
func ExpirationEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldExpiration, v))
}

// ExpirationNEQ applies the NEQ predicate on the "expiration" field.
func ExpirationNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldExpiration, v))
}

// ExpirationIn applies the In predicate on the "expiration" field.
func ExpirationIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldExpiration, vs...))
}

// ExpirationNotIn applies the NotIn predicate on the "expiration" field.
func ExpirationNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldExpiration, vs...))
}

// ExpirationGT applies the GT predicate on the "expiration" field.
func ExpirationGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldExpiration, v))
}

// ExpirationGTE applies the GTE predicate on the "expiration" field.
func ExpirationGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldExpiration, v))
}

// ExpirationLT applies the LT predicate on the "expiration" field.
func ExpirationLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldExpiration, v))
}

// ExpirationLTE applies the LTE predicate on the "expiration" field.
func ExpirationLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldExpiration, v))
}

// ExpirationIsNil applies the IsNil predicate on the "expiration" field.
func ExpirationIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldExpiration))
}

// ExpirationNotNil applies the NotNil predicate on the "expiration" field.
func ExpirationNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldExpiration))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.NotPredicates(p))
}
