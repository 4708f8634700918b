package models

// Gender is the gender variant carried by the name corpus.
type Gender string

const (
	GenderFeminine  Gender = "female"
	GenderMasculine Gender = "male"
)

// PersonName is a single entry of the name corpus.
type PersonName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    Gender `json:"gender"`
}

// Address is a fake Danish street address. PostalCode and TownName come from
// the postal_code table and are never generated locally.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Floor      string `json:"floor"`
	Door       string `json:"door"`
	PostalCode string `json:"postal_code"`
	TownName   string `json:"town_name"`
}

// Person is one generated fake identity. The shape is fixed: every field is
// always present in the JSON output regardless of random outcomes.
type Person struct {
	CPR         string  `json:"CPR"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Gender      Gender  `json:"gender"`
	BirthDate   string  `json:"birthDate"`
	Address     Address `json:"address"`
	PhoneNumber string  `json:"phoneNumber"`
}
