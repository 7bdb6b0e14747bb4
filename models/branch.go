package models

type Branch struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	IsOpen       bool    `json:"is_open"`
	OpeningHours string  `json:"opening_hours"`
	Phone        string  `json:"phone"`
}
