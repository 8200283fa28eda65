// Package entity contains the core business objects of the project,
// each representing a unique, identifiable record owned by the persistence store.
package entity

import (
	"reflect"
	"time"
)

// Entity is any persistent record identified by a surrogate integer key.
// Pointer types of the structs in this package satisfy it.
type Entity interface {
	GetID() int64
	SetID(id int64)
	TableName() string
}

// Model carries the columns shared by every table.
type Model struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the surrogate key, zero until the record is persisted.
func (m *Model) GetID() int64 {
	return m.ID
}

// SetID assigns the surrogate key.
func (m *Model) SetID(id int64) {
	m.ID = id
}

// New allocates a zero value of the entity pointer type E.
func New[E Entity]() E {
	var zero E

	return reflect.New(reflect.TypeOf(zero).Elem()).Interface().(E)
}

// Clone returns a shallow copy of e; nested pointers are shared.
func Clone[E Entity](e E) E {
	cloned := New[E]()
	reflect.ValueOf(cloned).Elem().Set(reflect.ValueOf(e).Elem())

	return cloned
}

// Status is the lifecycle state shared by projects, tasks and business documents.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusSent       Status = "sent"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusPaid       Status = "paid"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)
