package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MerchantCategory is one entry of the merchant-to-category keyword table
type MerchantCategory struct {
	Name        string   `json:"-"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
}

// CategoryKeyword is a flattened (keyword, category) pair
type CategoryKeyword struct {
	Keyword  string
	Category string
}

// CategoryTable maps category names to their keywords and keeps
// the order in which categories were declared.
type CategoryTable struct {
	entries []MerchantCategory
	index   map[string]int
}

// NewCategoryTable builds a table from categories in order
func NewCategoryTable(categories ...MerchantCategory) *CategoryTable {
	t := &CategoryTable{index: make(map[string]int, len(categories))}
	for _, c := range categories {
		t.put(c)
	}
	return t
}

func (t *CategoryTable) put(c MerchantCategory) {
	if t.index == nil {
		t.index = map[string]int{}
	}
	if c.Keywords == nil {
		c.Keywords = []string{}
	}
	if i, ok := t.index[c.Name]; ok {
		t.entries[i] = c
		return
	}
	t.index[c.Name] = len(t.entries)
	t.entries = append(t.entries, c)
}

// Len returns the number of categories
func (t *CategoryTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names returns category names in declaration order
func (t *CategoryTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		names = append(names, e.Name)
	}
	return names
}

// Get returns the category with the given name
func (t *CategoryTable) Get(name string) (MerchantCategory, bool) {
	if t == nil {
		return MerchantCategory{}, false
	}
	i, ok := t.index[name]
	if !ok {
		return MerchantCategory{}, false
	}
	return t.entries[i], true
}

// Has reports whether name is a declared category
func (t *CategoryTable) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Entries returns a copy of the categories in declaration order
func (t *CategoryTable) Entries() []MerchantCategory {
	if t == nil {
		return nil
	}
	out := make([]MerchantCategory, len(t.entries))
	copy(out, t.entries)
	return out
}

// Keywords flattens the table into (keyword, category) pairs,
// category by category, keywords in declared order.
func (t *CategoryTable) Keywords() []CategoryKeyword {
	if t == nil {
		return nil
	}
	var out []CategoryKeyword
	for _, e := range t.entries {
		for _, kw := range e.Keywords {
			out = append(out, CategoryKeyword{Keyword: kw, Category: e.Name})
		}
	}
	return out
}

func (t *CategoryTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category table must be a JSON object")
	}

	*t = CategoryTable{index: map[string]int{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected category key %v", keyTok)
		}

		var category MerchantCategory
		if err := dec.Decode(&category); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		category.Name = name
		t.put(category)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (t *CategoryTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
