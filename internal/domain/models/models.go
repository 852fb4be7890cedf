package models

import "time"

type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Confirmed bool   `json:"confirmed,omitempty"`
}

// DisplayName falls back to the email when the profile has no name.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	}
	return u.Email
}

// Product is the part of a catalogue product the cart needs.
type Product struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
}

type CartItem struct {
	ProductID int64   `json:"productId"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID              int64         `json:"id"`
	CheckInDate     time.Time     `json:"checkInDate"`
	CheckOutDate    time.Time     `json:"checkOutDate"`
	NumberOfGuests  int           `json:"numberOfGuests"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	AccommodationID string        `json:"accommodationId,omitempty"`
	ActivityID      string        `json:"activityId,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	UserID          int64         `json:"userId,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Lodge is an accommodation property.
type Lodge struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location,omitempty"`
	Region    string   `json:"region,omitempty"`
	District  string   `json:"district,omitempty"`
	Services  string   `json:"services,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
	Price     float64  `json:"price,omitempty"`
	Photo     string   `json:"photo,omitempty"`
	Gallery   []string `json:"gallery,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// Safari is a bookable activity.
type Safari struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Photo       string  `json:"photo,omitempty"`
}

type CatalogProduct struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// AsCartProduct is what the product page hands to the cart.
func (p CatalogProduct) AsCartProduct() Product {
	return Product{ID: p.ID, Title: p.Name, Price: p.Price, Currency: p.Currency}
}
