package m_address

import "cloud.google.com/go/spanner"

// Data represents the database model for the addresses table.
type Data struct {
	AddressID  string             `spanner:"address_id"`
	UserID     string             `spanner:"user_id"`
	Recipient  string             `spanner:"recipient"`
	Line1      string             `spanner:"line1"`
	Line2      spanner.NullString `spanner:"line2"`
	City       string             `spanner:"city"`
	State      string             `spanner:"state"`
	PostalCode string             `spanner:"postal_code"`
	Country    string             `spanner:"country"`
	IsDefault  bool               `spanner:"is_default"`
}
