package domain

// ProductStatus tracks whether a listing can still be bought.
type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "available"
	ProductStatusSold      ProductStatus = "sold"
)

// Advertisement marks listings promoted on the home page.
type Advertisement string

const (
	AdvertisementNone       Advertisement = "none"
	AdvertisementAdvertised Advertisement = "advertised"
)

// ParseAdvertisement validates an advertisement flag from a request.
func ParseAdvertisement(s string) (Advertisement, bool) {
	switch Advertisement(s) {
	case AdvertisementNone, AdvertisementAdvertised:
		return Advertisement(s), true
	default:
		return "", false
	}
}

// Product document fields.
const (
	ProductFieldSeller        = "seller"
	ProductFieldCategory      = "category"
	ProductFieldStatus        = "status"
	ProductFieldAdvertisement = "advertisement"
	ProductFieldPublishedDate = "publishedDate"
)

// Product is a second-hand phone listed by a seller.
type Product struct {
	ID            string        `bson:"_id,omitempty" json:"_id,omitempty"`
	Seller        string        `bson:"seller" json:"seller"`
	Category      string        `bson:"category" json:"category"`
	Status        ProductStatus `bson:"status" json:"status"`
	Advertisement Advertisement `bson:"advertisement" json:"advertisement"`
	PublishedDate string        `bson:"publishedDate" json:"publishedDate"`
}

// Document converts the product into its stored form.
func (p Product) Document() Document {
	doc := Document{
		ProductFieldSeller:        p.Seller,
		ProductFieldCategory:      p.Category,
		ProductFieldStatus:        string(p.Status),
		ProductFieldAdvertisement: string(p.Advertisement),
		ProductFieldPublishedDate: p.PublishedDate,
	}
	if p.ID != "" {
		doc[FieldID] = p.ID
	}
	return doc
}
