package order

import (
	"errors"
	"fmt"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Line is one entry of an in-progress order: a food item and how many of it.
type Line struct {
	Item     string
	Quantity int
}

// Order is the in-progress order accumulated during one conversation session.
// It is a mapping from food item to a positive quantity that additionally
// remembers the order in which items were first added, so that the formatted
// representation is stable across calls.
//
// Order follows these invariants:
//   - Quantities are always greater than 0; removing an item deletes its
//     line entirely instead of zeroing it
//   - Items are unique; merging the same item adds quantities
//   - Can only be created through the NewOrder constructor
type Order struct {
	lines []Line
	index map[string]int

	guard guard.ConstructorGuard
}

// NewOrder creates an empty in-progress order. The order grows through Add
// and shrinks through Remove; an order that was never Added to is empty.
func NewOrder() *Order {
	return &Order{
		index: make(map[string]int),
		guard: guard.NewConstructorGuard(),
	}
}

// Restore reconstructs an order from a line snapshot, validating every line.
// Used by the session store to hand out defensive copies and by tests.
func Restore(lines []Line) (*Order, error) {
	o := NewOrder()
	for _, l := range lines {
		if err := o.Add(l.Item, l.Quantity); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing initialization by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Add merges quantity of item into the order: if the item is already present
// its quantity grows cumulatively, otherwise a new line is appended. The item
// must be non-empty and the quantity strictly positive.
func (o *Order) Add(item string, quantity int) error {
	if item == "" {
		return errs.NewValueIsRequiredError("item")
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if i, ok := o.index[item]; ok {
		o.lines[i].Quantity += quantity
		return nil
	}

	o.index[item] = len(o.lines)
	o.lines = append(o.lines, Line{Item: item, Quantity: quantity})
	return nil
}

// Remove deletes the given items from the order regardless of their
// quantities and reports the partition: items that were present (and are now
// gone) and items the order never contained. An empty input yields two empty
// partitions and leaves the order untouched.
func (o *Order) Remove(items []string) (removed, missing []string) {
	for _, item := range items {
		if _, ok := o.index[item]; !ok {
			missing = append(missing, item)
			continue
		}
		o.deleteLine(item)
		removed = append(removed, item)
	}
	return removed, missing
}

// Quantity reports the quantity for item and whether the item is present.
func (o *Order) Quantity(item string) (int, bool) {
	i, ok := o.index[item]
	if !ok {
		return 0, false
	}
	return o.lines[i].Quantity, true
}

// IsEmpty reports whether the order has no lines left.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Len returns the number of distinct items in the order.
func (o *Order) Len() int {
	return len(o.lines)
}

// Lines returns a snapshot of the order's lines in first-added order.
// Mutating the returned slice does not affect the order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Clone returns an independent deep copy of the order.
func (o *Order) Clone() *Order {
	clone := NewOrder()
	clone.lines = make([]Line, len(o.lines))
	copy(clone.lines, o.lines)
	for item, i := range o.index {
		clone.index[item] = i
	}
	return clone
}

// String formats the order for display, one "<quantity> <item>" clause per
// line, comma-separated, in first-added order. An empty order formats as "".
func (o *Order) String() string {
	return FormatLines(o.lines)
}

// deleteLine removes the line for item and reindexes the lines after it.
func (o *Order) deleteLine(item string) {
	i := o.index[item]
	o.lines = append(o.lines[:i], o.lines[i+1:]...)
	delete(o.index, item)
	for j := i; j < len(o.lines); j++ {
		o.index[o.lines[j].Item] = j
	}
}
