package models

// Town is one postal-code/town pair from the postal_code table.
type Town struct {
	PostalCode string `json:"postal_code"`
	TownName   string `json:"town_name"`
}
