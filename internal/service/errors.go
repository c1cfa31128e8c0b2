package service

import "errors"

var (
	ErrButtonNotFound = errors.New("no button with given id on the card")
	ErrUnknownPreset  = errors.New("unknown color preset")
)
