// Package guard provides a constructor guard for value objects and commands.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so objects that bypass their constructor fail validation
// instead of silently carrying unvalidated state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply a more specific validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the enclosing object went through its
// designated constructor. The zero value is unconstructed.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it inside
// the object's constructor:
//
//	func NewAddItemsCommand(...) (AddItemsCommand, error) {
//	    cmd := AddItemsCommand{guard: guard.NewConstructorGuard()}
//	    ...
//	}
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built via its constructor, and the
// given validationError (or ErrDefaultConstructorGuard when nil) otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
