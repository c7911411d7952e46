package ledger

import (
	"fmt"
	"sync"

	"github.com/meetupaws/coach_seat_reservation/coach/internal/model"
	"github.com/pkg/errors"
)

var (
	ErrSeatUnavailable = errors.New("seat_unavailable")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
)

// SeatUnavailableError is returned by Reserve and Cancel when the seat number
// is out of range or its state conflicts with the operation.
type SeatUnavailableError struct {
	Seat   int
	Reason string
}

func (e *SeatUnavailableError) Error() string {
	return e.Reason
}

func (e *SeatUnavailableError) Is(target error) bool {
	return target == ErrSeatUnavailable
}

// Ledger keeps the occupancy of every seat in one coach.
// Seat numbers are 1-based, seat n lives at seats[n-1].
type Ledger struct {
	mu       sync.Mutex
	seats    []*model.Passenger
	capacity int
}

func (l *Ledger) FreeSeats() []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	free := []int{}
	for i, p := range l.seats {
		if p == nil {
			free = append(free, i+1)
		}
	}
	return free
}

func (l *Ledger) Reserve(name string, age int, seatNumber int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.validateSeat(seatNumber); err != nil {
		return err
	}
	if l.seats[seatNumber-1] != nil {
		return &SeatUnavailableError{
			Seat:   seatNumber,
			Reason: fmt.Sprintf("Seat %d is already booked.", seatNumber),
		}
	}

	l.seats[seatNumber-1] = &model.Passenger{
		Name:       name,
		Age:        age,
		SeatNumber: seatNumber,
	}
	return nil
}

func (l *Ledger) Cancel(seatNumber int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.validateSeat(seatNumber); err != nil {
		return err
	}
	if l.seats[seatNumber-1] == nil {
		return &SeatUnavailableError{
			Seat:   seatNumber,
			Reason: fmt.Sprintf("Seat %d is not booked; nothing to cancel.", seatNumber),
		}
	}

	l.seats[seatNumber-1] = nil
	return nil
}

func (l *Ledger) BookedPassengers() []model.Passenger {
	l.mu.Lock()
	defer l.mu.Unlock()

	booked := []model.Passenger{}
	for _, p := range l.seats {
		if p != nil {
			booked = append(booked, *p)
		}
	}
	return booked
}

// IsOccupied reports false for seat numbers outside the coach instead of
// failing, unlike Reserve and Cancel.
func (l *Ledger) IsOccupied(seatNumber int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if seatNumber < 1 || seatNumber > l.capacity {
		return false
	}
	return l.seats[seatNumber-1] != nil
}

func (l *Ledger) TotalBookedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, p := range l.seats {
		if p != nil {
			count++
		}
	}
	return count
}

func (l *Ledger) Capacity() int {
	return l.capacity
}

func (l *Ledger) validateSeat(seatNumber int) error {
	if seatNumber < 1 || seatNumber > l.capacity {
		return &SeatUnavailableError{
			Seat: seatNumber,
			Reason: fmt.Sprintf(
				"Invalid seat number: %d. Valid seats are 1 to %d.",
				seatNumber,
				l.capacity,
			),
		}
	}
	return nil
}

func New(capacity int) (*Ledger, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return &Ledger{
		seats:    make([]*model.Passenger, capacity),
		capacity: capacity,
	}, nil
}
