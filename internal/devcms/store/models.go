package store

import "time"

type User struct {
	ID                int64
	DocumentID        string
	Username          string
	Email             string
	FirstName         string
	LastName          string
	Phone             string
	Confirmed         bool
	ConfirmationToken string
	PassHash          []byte
	CreatedAt         time.Time
}

type Booking struct {
	ID              int64
	DocumentID      string
	CheckInDate     string
	CheckOutDate    string
	NumberOfGuests  int
	TotalPrice      float64
	Status          string
	AccommodationID string
	ActivityID      string
	Notes           string
	UserID          int64
	Locale          string
	// LocalizationOf is the id of the booking this one translates, 0 for originals.
	LocalizationOf int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type BookingFilter struct {
	UserID          int64
	Status          string
	AccommodationID string
}

func (f BookingFilter) match(b Booking) bool {
	switch {
	case f.UserID != 0 && b.UserID != f.UserID:
		return false
	case f.Status != "" && b.Status != f.Status:
		return false
	case f.AccommodationID != "" && b.AccommodationID != f.AccommodationID:
		return false
	}
	return true
}

type Lodge struct {
	ID         int64     `yaml:"id"`
	DocumentID string    `yaml:"-"`
	Name       string    `yaml:"name"`
	Location   string    `yaml:"location"`
	Region     string    `yaml:"region"`
	District   string    `yaml:"district"`
	Services   string    `yaml:"services"`
	Rating     float64   `yaml:"rating"`
	Price      float64   `yaml:"price"`
	Photo      string    `yaml:"photo"`
	Photos     []string  `yaml:"photos"`
	CreatedAt  time.Time `yaml:"-"`
}

type Product struct {
	ID          int64   `yaml:"id"`
	DocumentID  string  `yaml:"-"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Currency    string  `yaml:"currency"`
	Rating      float64 `yaml:"rating"`
	Image       string  `yaml:"image"`
}

type Safari struct {
	ID           int64   `yaml:"id"`
	DocumentID   string  `yaml:"-"`
	SafariName   string  `yaml:"safariName"`
	Overview     string  `yaml:"overview"`
	Location     string  `yaml:"location"`
	Duration     int     `yaml:"duration"`
	OverallPrice float64 `yaml:"overallPrice"`
	Image        string  `yaml:"image"`
}
