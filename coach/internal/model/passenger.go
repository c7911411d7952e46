package model

import "fmt"

// Passenger is the holder of a booked seat. Values are handed out by copy,
// so a Passenger never changes once the ledger created it.
type Passenger struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	SeatNumber int    `json:"seat_number"`
}

func (p Passenger) String() string {
	return fmt.Sprintf("Seat %d: %s (age %d)", p.SeatNumber, p.Name, p.Age)
}
