package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/PickPack/internal/model"
)

// ErrMalformedOrder is returned when an order document cannot be read back.
var ErrMalformedOrder = errors.New("malformed order")

// Pose is a parsed place pose. Angles are in degrees.
type Pose struct {
	X     float64
	Y     float64
	Z     float64
	Roll  float64
	Pitch float64
	Yaw   float64
}

// Entry is one numbered item of an order document.
type Entry struct {
	Index int
	Item  string
	Pose  Pose
}

// Document is the structured form of an order.
type Document struct {
	Box     model.BoxSize
	Count   int
	Entries []Entry
}

// Identifiers returns the item identifiers in document order.
func (d Document) Identifiers() []string {
	ids := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		ids[i] = e.Item
	}
	return ids
}

type rawEntry struct {
	Device string `json:"dispositivo"`
	Pose   string `json:"posicion_place"`
}

// Parse reads an order document. Item keys must run from item_1 to
// item_N without gaps, where N is the declared device count.
func Parse(text string) (Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedOrder, err)
	}

	var doc Document
	var box string
	if err := decodeField(fields, keyBox, &box); err != nil {
		return Document{}, err
	}
	b, err := model.ParseBoxSize(box)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedOrder, err)
	}
	doc.Box = b

	if err := decodeField(fields, keyCount, &doc.Count); err != nil {
		return Document{}, err
	}
	if doc.Count < 0 {
		return Document{}, fmt.Errorf("%w: negative %s", ErrMalformedOrder, keyCount)
	}

	items := 0
	for k := range fields {
		if strings.HasPrefix(k, keyItem) {
			items++
		}
	}
	if items != doc.Count {
		return Document{}, fmt.Errorf("%w: %s is %d but %d items listed", ErrMalformedOrder, keyCount, doc.Count, items)
	}

	doc.Entries = make([]Entry, 0, doc.Count)
	for i := 1; i <= doc.Count; i++ {
		var raw rawEntry
		if err := decodeField(fields, keyItem+strconv.Itoa(i), &raw); err != nil {
			return Document{}, err
		}
		pose, err := ParsePose(raw.Pose)
		if err != nil {
			return Document{}, fmt.Errorf("item %d: %w", i, err)
		}
		doc.Entries = append(doc.Entries, Entry{Index: i, Item: raw.Device, Pose: pose})
	}
	return doc, nil
}

func decodeField(fields map[string]json.RawMessage, key string, v any) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: missing %q", ErrMalformedOrder, key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: field %q: %v", ErrMalformedOrder, key, err)
	}
	return nil
}

// ParsePose reads a "x, y, z, roll, pitch, yaw" string.
func ParsePose(s string) (Pose, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return Pose{}, fmt.Errorf("%w: pose %q has %d components", ErrMalformedOrder, s, len(parts))
	}
	var vals [6]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Pose{}, fmt.Errorf("%w: pose %q: %v", ErrMalformedOrder, s, err)
		}
		vals[i] = v
	}
	return Pose{X: vals[0], Y: vals[1], Z: vals[2], Roll: vals[3], Pitch: vals[4], Yaw: vals[5]}, nil
}
