package dataseterrors

import (
	"net/http"

	"go-salarydash/internal/shared/apperror"
)

var (
	ErrDatasetNotFound = apperror.New(
		apperror.CodeServiceUnavailable,
		"Salary dataset file not found",
		http.StatusServiceUnavailable,
	)

	ErrDatasetMalformed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Salary dataset file is malformed",
		http.StatusServiceUnavailable,
	)
)
