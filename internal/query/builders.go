package query

import (
	"strconv"
	"strings"

	"github.com/spec-kit/marketplace-service/internal/domain"
)

// newestFirst orders product listings by publish date, then by id so ties are stable.
var newestFirst = []SortKey{
	{Field: domain.ProductFieldPublishedDate, Direction: Descending},
	{Field: domain.FieldID, Direction: Descending},
}

// ParseLimit reads a limit query parameter. Anything other than a positive
// integer means no limit.
func ParseLimit(raw string) Option[int64] {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return None[int64]()
	}
	return Some(n)
}

// ByID selects a single document by primary key.
func ByID(id string) Filter {
	return Eq(domain.FieldID, id)
}

// UserByEmail selects the user owning email.
func UserByEmail(email string) Filter {
	return Eq(domain.UserFieldEmail, email)
}

// Users lists every user, or only the one with the given email.
func Users(email Option[string]) Query {
	return Query{
		Filter: Match(email,
			func(e string) Filter { return UserByEmail(e) },
			func() Filter { return Filter{} },
		),
	}
}

// UsersByRole lists users holding role.
func UsersByRole(role domain.Role) Query {
	return Query{Filter: Eq(domain.UserFieldRole, string(role))}
}

// Categories lists all categories.
func Categories() Query {
	return Query{Filter: Filter{}}
}

// CategoryByName selects a category by its display name.
func CategoryByName(name string) Filter {
	return Eq(domain.CategoryFieldName, name)
}

// Products lists every product, newest first.
func Products(limit Option[int64]) Query {
	return Query{Filter: Filter{}, Sort: newestFirst, Limit: limit}
}

// AvailableProducts lists unsold products, newest first.
func AvailableProducts(limit Option[int64]) Query {
	q := Products(limit)
	q.Filter = q.Filter.And(domain.ProductFieldStatus, string(domain.ProductStatusAvailable))
	return q
}

// ProductsByCategory lists unsold products of one category. Availability is
// always applied.
func ProductsByCategory(categoryID string) Query {
	return Query{
		Filter: Eq(domain.ProductFieldCategory, categoryID).
			And(domain.ProductFieldStatus, string(domain.ProductStatusAvailable)),
		Sort: newestFirst,
	}
}

// ProductsBySeller lists every product posted by seller, newest first.
func ProductsBySeller(seller string) Query {
	return Query{Filter: Eq(domain.ProductFieldSeller, seller), Sort: newestFirst}
}

// AdvertisedProducts lists promoted products, sold or not, newest first.
func AdvertisedProducts() Query {
	return Query{
		Filter: Eq(domain.ProductFieldAdvertisement, string(domain.AdvertisementAdvertised)),
		Sort:   newestFirst,
	}
}

// ProductOwnedBy selects the product with id only if seller posted it.
func ProductOwnedBy(id, seller string) Filter {
	return ByID(id).And(domain.ProductFieldSeller, seller)
}

// Orders lists the orders placed by user, optionally narrowed to one product.
func Orders(user string, productID Option[string]) Query {
	base := Eq(domain.OrderFieldUser, user)
	return Query{
		Filter: Match(productID,
			func(id string) Filter { return base.And(domain.OrderFieldProductID, id) },
			func() Filter { return base },
		),
	}
}
