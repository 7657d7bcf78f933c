package models

// User roles.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// AddressDetails holds the free-form part of a user's location.
type AddressDetails struct {
	Street     string `json:"street,omitempty" bson:"street,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	Country    string `json:"country,omitempty" bson:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty" bson:"postalCode,omitempty"`
}

// Location is a GeoJSON point plus address details.
type Location struct {
	Type        string         `json:"type" bson:"type"`
	Coordinates []float64      `json:"coordinates" bson:"coordinates"`
	Address     AddressDetails `json:"address_details" bson:"addressDetails"`
}

// User represents a registered buyer or seller.
type User struct {
	ID       string   `json:"id" bson:"_id,omitempty" validate:"omitempty,uuid"`
	Name     string   `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email    string   `json:"email" bson:"email" validate:"required,email"`
	Password string   `json:"-" bson:"password" validate:"required,min=6"`
	Role     string   `json:"role" bson:"role" validate:"omitempty,oneof=buyer seller"`
	Location Location `json:"location" bson:"location"`
	// Products lists product ids owned by a seller.
	Products []string `json:"products" bson:"products"`
	// Cart lists product ids the user intends to order. The referenced
	// products are not guaranteed to still exist.
	Cart []string `json:"cart" bson:"cart"`
}

// UserSummary is the slice of a user exposed on resolved aggregates.
type UserSummary struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Summary strips a user down to the fields safe to embed in responses.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// InCart reports whether productID is already in the user's cart.
func (u *User) InCart(productID string) bool {
	for _, id := range u.Cart {
		if id == productID {
			return true
		}
	}
	return false
}
