package domain

// CategoryFieldName is the lookup key used by /categories/:name.
const CategoryFieldName = "name"

// Category is read-only reference data grouping products by brand.
type Category struct {
	ID   string `bson:"_id,omitempty" json:"_id,omitempty" yaml:"id"`
	Name string `bson:"name" json:"name" yaml:"name"`
}

// Document converts the category into its stored form.
func (c Category) Document() Document {
	doc := Document{CategoryFieldName: c.Name}
	if c.ID != "" {
		doc[FieldID] = c.ID
	}
	return doc
}
