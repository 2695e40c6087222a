// Package inventory holds the items the player has collected, in the order
// they were picked up.
package inventory

// Inventory is an append-only list of item names with a visibility flag.
// Callers guarantee each pickup is added once.
type Inventory struct {
	items []string
	open  bool
}

// New creates an empty, closed inventory.
func New() *Inventory {
	return &Inventory{}
}

// Add appends an item name.
func (inv *Inventory) Add(name string) {
	inv.items = append(inv.items, name)
}

// Toggle flips the open flag.
func (inv *Inventory) Toggle() {
	inv.open = !inv.open
}

// Open reports whether the inventory view is shown.
func (inv *Inventory) Open() bool {
	return inv.open
}

// Len returns the number of collected items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns a copy of the collected names in collection order.
func (inv *Inventory) Items() []string {
	return append([]string(nil), inv.items...)
}
