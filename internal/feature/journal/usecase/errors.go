// Package usecase implements the business logic for the journal feature.
package usecase

import "errors"

var (
	// ErrAuthRequired is returned when a mutation is attempted with no
	// resolvable user. It is surfaced to the caller and never retried.
	ErrAuthRequired = errors.New("user not authenticated")

	// ErrEntryNotFound is returned when an update or delete matches no entry.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrMissingFields is returned by the entry form when a required field
	// is empty. It blocks submission locally and never reaches the store.
	ErrMissingFields = errors.New("please fill out all required fields")

	// ErrInvalidPrice is returned by the entry form when the price text does
	// not parse as a number.
	ErrInvalidPrice = errors.New("price must be a number")

	// ErrInvalidSentiment is returned when a sentiment value is not one of
	// Bullish, Neutral or Bearish.
	ErrInvalidSentiment = errors.New("invalid sentiment")
)
