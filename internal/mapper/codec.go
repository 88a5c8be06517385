// Package mapper translates between storage records and domain entities.
//
// Each collection is described by one table of fields. The same table drives
// decoding, encoding and the column list used by relational backends, so a
// new column is a single entry.
package mapper

import (
	"strconv"
	"time"

	"github.com/campus-showcase/showcase-api/internal/models"
)

// Field maps one storage column onto the domain entity.
type Field[R, D any] struct {
	Column string
	Decode func(r *R, d *D)
	Encode func(d *D, r *R)
}

// Codec converts records of one collection.
type Codec[R models.Record[R], D any] struct {
	collection string
	fields     []Field[R, D]
	identity   func(r *R) string
	getID      func(d *D) string
	setID      func(d *D, id string)
	numericIDs bool
}

// Collection names the collection the codec serves.
func (c *Codec[R, D]) Collection() string { return c.collection }

// Columns lists the storage columns in table order, excluding the identity.
func (c *Codec[R, D]) Columns() []string {
	cols := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// NumericIdentity reports whether the domain identity is the decimal storage id.
// When false the identity is a business key and the storage id stays internal.
func (c *Codec[R, D]) NumericIdentity() bool { return c.numericIDs }

// Identity returns the domain identity carried by r, or "" when r has none.
func (c *Codec[R, D]) Identity(r R) string {
	return c.identity(&r)
}

// EntityID returns the identity of a domain entity.
func (c *Codec[R, D]) EntityID(d D) string {
	return c.getID(&d)
}

// ToDomain decodes r. It reports false when r lacks an identity.
func (c *Codec[R, D]) ToDomain(r R) (D, bool) {
	var d D
	id := c.identity(&r)
	if id == "" {
		return d, false
	}
	for _, f := range c.fields {
		f.Decode(&r, &d)
	}
	c.setID(&d, id)
	return d, true
}

// ToStorage encodes d. The storage id is set only for numeric identities.
func (c *Codec[R, D]) ToStorage(d D) R {
	var r R
	for _, f := range c.fields {
		f.Encode(&d, &r)
	}
	if c.numericIDs {
		if key, ok := ParseKey(c.getID(&d)); ok {
			r = r.WithRecordID(key)
		}
	}
	return r
}

// ParseKey converts a numeric domain identity into a storage key.
func ParseKey(id string) (int64, bool) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil || key <= 0 {
		return 0, false
	}
	return key, true
}

// FormatKey converts a storage key into a domain identity.
func FormatKey(key int64) string {
	return strconv.FormatInt(key, 10)
}

func numericIdentity[R models.Record[R]](r *R) string {
	key, ok := (*r).RecordID()
	if !ok {
		return ""
	}
	return FormatKey(key)
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func required(s string) *string {
	return &s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func dateFrom(t *time.Time) models.Date {
	if t == nil {
		return models.Date{}
	}
	return models.DateOf(*t)
}

func timeFrom(d models.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time()
	return &t
}
