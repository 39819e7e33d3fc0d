package client

import "strings"

// Vehicle is a car registered under a client. Two vehicles are the same
// when their plates match, case-insensitively.
type Vehicle struct {
	Model string `json:"model"`
	Plate string `json:"plate"`
	Color string `json:"color,omitempty"`
	Year  int    `json:"year,omitempty"`
}

// SamePlate reports whether the vehicle carries the given plate.
func (v Vehicle) SamePlate(plate string) bool {
	return strings.EqualFold(v.Plate, plate)
}

// Client is a workshop customer. Vehicles are embedded in the client
// record and persisted with it.
type Client struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Document string    `json:"document,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Email    string    `json:"email,omitempty"`
	Address  string    `json:"address,omitempty"`
	Vehicles []Vehicle `json:"vehicles"`
}

// VehicleByPlate returns the client's vehicle with the given plate.
func (c *Client) VehicleByPlate(plate string) (Vehicle, bool) {
	for _, v := range c.Vehicles {
		if v.SamePlate(plate) {
			return v, true
		}
	}
	return Vehicle{}, false
}
