package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order: a snapshot of a menu item taken at order
// time. The name and unit price are copied from the catalog when the order is
// created and are never re-read afterwards, so later menu edits cannot change
// what the customer agreed to pay.
type Item struct {
	// menuItemID is a weak reference to the catalog entry the item came from
	menuItemID kernel.UUID

	// name is the menu item name snapshot, kept for display
	name string

	// quantity is the ordered count (must be >= 1)
	quantity int

	// unitPrice is the price per unit at order time
	unitPrice kernel.Money

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a validated line item.
//
// Validation rules:
//   - menuItemID must be a valid UUID
//   - name must not be empty
//   - quantity must be at least 1
//   - unitPrice must not be negative
func NewItem(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced catalog entry's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name snapshot.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered count.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Total returns unit price multiplied by quantity.
func (i Item) Total() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}
