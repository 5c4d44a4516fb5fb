package constants

import (
	"errors"
	"net/http"
)

// CodedError carries the HTTP status the api layer answers with.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrMissingDatasetType = NewCodedError(`parameter "tipo_dato" is required (cosecha, produccion or plantas)`, http.StatusBadRequest)
	ErrInvalidParam       = NewCodedError("invalid query parameter", http.StatusBadRequest)
	ErrNotReady           = NewCodedError("datasets are still loading", http.StatusServiceUnavailable)
	ErrInternal           = NewCodedError("internal server error", http.StatusInternalServerError)
)

// ErrUnknownDataset is returned by the explorer when tipo_dato does not name a dataset.
var ErrUnknownDataset = errors.New("unknown dataset type")
