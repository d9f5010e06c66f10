package model

import "strings"

// ItemType classifies a device by the catalog keyword found in its identifier.
type ItemType int

const (
	ItemUnknown ItemType = iota
	ItemBracelet
	ItemWatch
	ItemPhoneCase
	ItemPhone
	ItemEReaderCase
	ItemEReader
	ItemTabletCase
	ItemTablet
)

func (t ItemType) String() string {
	switch t {
	case ItemBracelet:
		return "bracelet"
	case ItemWatch:
		return "watch"
	case ItemPhoneCase:
		return "phone-case"
	case ItemPhone:
		return "phone"
	case ItemEReaderCase:
		return "e-reader-case"
	case ItemEReader:
		return "e-reader"
	case ItemTabletCase:
		return "tablet-case"
	case ItemTablet:
		return "tablet"
	default:
		return "unknown"
	}
}

// Wearable reports whether the type is gripped from the short side (bracelet, watch).
func (t ItemType) Wearable() bool {
	return t == ItemBracelet || t == ItemWatch
}

// Slab reports whether the type is a tablet or tablet case.
func (t ItemType) Slab() bool {
	return t == ItemTablet || t == ItemTabletCase
}

// caseKeyword marks an identifier as the protective case variant.
const caseKeyword = "funda"

// CatalogEntry maps an identifier keyword to a device type and its extents.
type CatalogEntry struct {
	Type      ItemType
	Keyword   string
	NeedsCase bool
	Size      Volume
}

// catalog is scanned in order; the first matching entry wins, so case
// variants precede their bare device.
var catalog = []CatalogEntry{
	{Type: ItemBracelet, Keyword: "pulsera", Size: Sized(80, 75, 30)},
	{Type: ItemWatch, Keyword: "reloj", Size: Sized(80, 75, 60)},
	{Type: ItemPhoneCase, Keyword: "telefono", NeedsCase: true, Size: Sized(80, 150, 20)},
	{Type: ItemPhone, Keyword: "telefono", Size: Sized(80, 150, 60)},
	{Type: ItemEReaderCase, Keyword: "ereader", NeedsCase: true, Size: Sized(120, 150, 20)},
	{Type: ItemEReader, Keyword: "ereader", Size: Sized(120, 150, 40)},
	{Type: ItemTabletCase, Keyword: "tablet", NeedsCase: true, Size: Sized(240, 150, 20)},
	{Type: ItemTablet, Keyword: "tablet", Size: Sized(240, 150, 40)},
}

// Catalog returns a copy of the catalog in match order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// Resolve classifies an identifier by substring match against the catalog
// and returns its type and origin-anchored size.
func Resolve(identifier string) (ItemType, Volume, error) {
	for _, e := range catalog {
		if !strings.Contains(identifier, e.Keyword) {
			continue
		}
		if e.NeedsCase && !strings.Contains(identifier, caseKeyword) {
			continue
		}
		return e.Type, e.Size, nil
	}
	return ItemUnknown, Volume{}, &UnrecognizedItemError{Identifier: identifier}
}
