package domain

// Order document fields.
const (
	OrderFieldUser      = "user"
	OrderFieldProductID = "productId"
)

// Order records a buyer's booking of a product. Orders are never updated.
type Order struct {
	ID        string `bson:"_id,omitempty" json:"_id,omitempty"`
	User      string `bson:"user" json:"user"`
	ProductID string `bson:"productId" json:"productId"`
}

// Document converts the order into its stored form.
func (o Order) Document() Document {
	doc := Document{
		OrderFieldUser:      o.User,
		OrderFieldProductID: o.ProductID,
	}
	if o.ID != "" {
		doc[FieldID] = o.ID
	}
	return doc
}
