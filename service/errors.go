package service

import "errors"

var (
	// ErrInvalidInput marks inputs outside the domain of the formulas.
	ErrInvalidInput = errors.New("invalid loan input")

	// ErrUnaffordablePayment marks payments that can never retire the balance.
	ErrUnaffordablePayment = errors.New("payment does not cover monthly interest")
)
