package m_address

// Field name constants for the addresses table.
const (
	TableName = "addresses"

	AddressID  = "address_id"
	UserID     = "user_id"
	Recipient  = "recipient"
	Line1      = "line1"
	Line2      = "line2"
	City       = "city"
	State      = "state"
	PostalCode = "postal_code"
	Country    = "country"
	IsDefault  = "is_default"
)
