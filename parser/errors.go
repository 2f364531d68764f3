package parser

import "errors"

var (
	ErrSyntax         = errors.New("syntax error")
	ErrEmptyStatement = errors.New("empty statement")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("wrong number of arguments")
	ErrInvalidArg     = errors.New("invalid argument")
)
