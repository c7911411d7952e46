package main

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/meetupaws/coach_seat_reservation/coach/internal/ledger"
	"github.com/meetupaws/coach_seat_reservation/coach/internal/model"
	"github.com/meetupaws/coach_seat_reservation/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler func(ctx context.Context, in io.Reader, out io.Writer) error

type CoachLedger interface {
	FreeSeats() []int
	Reserve(name string, age int, seatNumber int) error
	Cancel(seatNumber int) error
	BookedPassengers() []model.Passenger
	TotalBookedCount() int
	Capacity() int
}

type LedgerFactory func(capacity int) (CoachLedger, error)

const (
	menuCheckSeats = iota + 1
	menuBook
	menuCancel
	menuDisplayBooked
	menuExit
)

var menu = []string{
	"---- MENU ----",
	"1. Check Available Seats",
	"2. Book Seat",
	"3. Cancel Seat",
	"4. Display Booked Tickets",
	"5. Exit",
}

type session struct {
	coach    CoachLedger
	prompter *internal.Prompter
	out      io.Writer
	logger   *zap.Logger
}

func Adapter(newLedger LedgerFactory, capacity int, logger *zap.Logger) Handler {
	return func(ctx context.Context, in io.Reader, out io.Writer) error {
		prompter := internal.NewPrompter(in, out)

		if err := internal.Respond(out, "=== Railway Ticket Booking System ==="); err != nil {
			return err
		}

		// Capacity comes from config or is asked once
		coachCapacity := capacity
		if coachCapacity < 1 {
			var err error
			coachCapacity, err = requestCapacity(prompter, out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
		}

		coach, err := newLedger(coachCapacity)
		if err != nil {
			return errors.Wrap(err, "create coach")
		}
		logger.Info("coach ready", zap.Int("capacity", coachCapacity))

		s := &session{
			coach:    coach,
			prompter: prompter,
			out:      out,
			logger:   logger,
		}

		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			running, err := s.step()
			if errors.Is(err, io.EOF) {
				logger.Debug("input closed")
				return nil
			}
			if err != nil {
				return err
			}
			if !running {
				return nil
			}
		}
	}
}

func requestCapacity(prompter *internal.Prompter, out io.Writer) (int, error) {
	if err := internal.Respond(out, "Enter coach capacity (recommended between 10 and 20):"); err != nil {
		return 0, err
	}
	for {
		n, err := prompter.ReadInt("Capacity: ")
		if err != nil {
			return 0, err
		}
		if n >= 1 {
			return n, nil
		}
		if err := internal.Respond(out, "Capacity must be at least 1."); err != nil {
			return 0, err
		}
	}
}

// step runs one menu round and reports whether the session goes on.
func (s *session) step() (bool, error) {
	for _, line := range menu {
		if err := internal.Respond(s.out, "%s", line); err != nil {
			return false, err
		}
	}

	choice, err := s.prompter.ReadInt("Enter choice: ")
	if err != nil {
		return false, err
	}

	running := true
	switch choice {
	case menuCheckSeats:
		err = s.displayFreeSeats()
	case menuBook:
		err = s.handleBooking()
	case menuCancel:
		err = s.handleCancellation()
	case menuDisplayBooked:
		err = s.displayBooked()
	case menuExit:
		running = false
		err = internal.Respond(s.out, "Exiting. Thank you!")
	default:
		err = internal.Respond(s.out, "Invalid choice, try again.")
	}
	if err != nil {
		return false, err
	}

	return running, internal.Respond(s.out, "")
}

func (s *session) displayFreeSeats() error {
	free := s.coach.FreeSeats()

	listed := "No seats free"
	if len(free) > 0 {
		seats := make([]string, len(free))
		for i, seat := range free {
			seats[i] = strconv.Itoa(seat)
		}
		listed = strings.Join(seats, ", ")
	}

	if err := internal.Respond(s.out, "Free seats: %s", listed); err != nil {
		return err
	}
	return internal.Respond(s.out, "Booked: %d / %d", s.coach.TotalBookedCount(), s.coach.Capacity())
}

func (s *session) handleBooking() error {
	if err := internal.Respond(s.out, "Enter passenger details to book a seat."); err != nil {
		return err
	}

	name, err := s.prompter.ReadString("Name: ")
	if err != nil {
		return err
	}
	age, err := s.prompter.ReadInt("Age: ")
	if err != nil {
		return err
	}
	seat, err := s.prompter.ReadInt("Desired seat number: ")
	if err != nil {
		return err
	}

	err = s.coach.Reserve(name, age, seat)
	if errors.Is(err, ledger.ErrSeatUnavailable) {
		s.logger.Warn("reservation rejected", zap.Int("seat", seat), zap.Error(err))
		return internal.Error(s.out, "Booking", err)
	}
	if err != nil {
		return err
	}

	s.logger.Info("seat reserved", zap.Int("seat", seat), zap.String("passenger", name))
	return internal.Respond(s.out, "Booking successful for seat %d.", seat)
}

func (s *session) handleCancellation() error {
	seat, err := s.prompter.ReadInt("Enter seat number to cancel: ")
	if err != nil {
		return err
	}

	err = s.coach.Cancel(seat)
	if errors.Is(err, ledger.ErrSeatUnavailable) {
		s.logger.Warn("cancellation rejected", zap.Int("seat", seat), zap.Error(err))
		return internal.Error(s.out, "Cancellation", err)
	}
	if err != nil {
		return err
	}

	s.logger.Info("seat cancelled", zap.Int("seat", seat))
	return internal.Respond(s.out, "Seat %d cancelled successfully.", seat)
}

func (s *session) displayBooked() error {
	if err := internal.Respond(s.out, "Booked tickets:"); err != nil {
		return err
	}

	booked := s.coach.BookedPassengers()
	if len(booked) == 0 {
		return internal.Respond(s.out, "No booked tickets.")
	}
	for _, p := range booked {
		if err := internal.Respond(s.out, "%s", p); err != nil {
			return err
		}
	}
	return nil
}

func newLedger(capacity int) (CoachLedger, error) {
	l, err := ledger.New(capacity)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func main() {
	cfg, err := internal.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger, err := internal.NewLogger(cfg)
	if err != nil {
		panic(err)
	}

	handler := Adapter(newLedger, cfg.Capacity, logger)
	err = handler(context.Background(), os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("console stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
