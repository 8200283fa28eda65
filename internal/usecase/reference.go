package usecase

import "context"

// Target names the kind of record a foreign key points at.
type Target string

const (
	TargetCompany  Target = "company"
	TargetCustomer Target = "customer"
	TargetSupplier Target = "supplier"
	TargetProject  Target = "project"
	TargetUser     Target = "user"
)

// Reference is one foreign key carried by an input.
type Reference struct {
	Field  string
	Target Target
	ID     int64
}

// Ref builds a reference to a required foreign key.
func Ref(field string, target Target, id int64) Reference {
	return Reference{Field: field, Target: target, ID: id}
}

// OptionalRef builds a reference to a nullable foreign key; nil yields a zero ID.
func OptionalRef(field string, target Target, id *int64) Reference {
	if id == nil {
		return Reference{Field: field, Target: target}
	}

	return Ref(field, target, *id)
}

// ReferenceChecker resolves foreign keys against their repositories.
type ReferenceChecker interface {
	// Check fails with a validation error naming the first reference whose
	// record does not exist. References with a zero ID are skipped.
	Check(ctx context.Context, refs ...Reference) error

	// Exists fails with a not-found error when the target record is absent.
	Exists(ctx context.Context, target Target, id int64) error

	// InUse fails with a validation error naming the first collection that
	// still holds a foreign key to the target record.
	InUse(ctx context.Context, target Target, id int64) error
}
