package errorx

// This file contains the typed errors produced by the creation-time core
// and the generic API errors, with associated Huma StatusErrors

import (
	"fmt"

	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Error is the interface that all errors should implement
type Error interface {
	Error() string
	GetStatus() int
	HumaError() huma.StatusError
}

// baseErrorImpl is the base implementation of Error
type baseErrorImpl struct {
	err error
}

func (e *baseErrorImpl) Error() string { return e.err.Error() }

func NewErrorx(msg string, args ...any) Error {
	return &baseErrorImpl{err: fmt.Errorf(msg, args...)}
}

func (e *baseErrorImpl) HumaError() huma.StatusError {
	return huma.Error500InternalServerError(e.Error())
}

func (e *baseErrorImpl) GetStatus() int {
	return http.StatusInternalServerError
}

//
// Creation-time core errors
//

// ErrClassification means the mount-table query for a path failed: the path
// does not exist, is not accessible, or the mount table itself could not be
// read. Distinct from a legitimate "Other" classification result.

type ErrClassification struct {
	baseErrorImpl
}

func NewErrClassification(msg string, args ...any) Error {
	return &ErrClassification{baseErrorImpl{err: fmt.Errorf(msg, args...)}}
}

func (e *ErrClassification) HumaError() huma.StatusError {
	return huma.Error422UnprocessableEntity(e.Error())
}

func (e *ErrClassification) GetStatus() int {
	return http.StatusUnprocessableEntity
}

// ErrAttributeRead means the NTFS creation-time extended attribute is
// missing, malformed or unreadable

type ErrAttributeRead struct {
	baseErrorImpl
}

func NewErrAttributeRead(msg string, args ...any) Error {
	return &ErrAttributeRead{baseErrorImpl{err: fmt.Errorf(msg, args...)}}
}

func (e *ErrAttributeRead) HumaError() huma.StatusError {
	return huma.Error500InternalServerError(e.Error())
}

func (e *ErrAttributeRead) GetStatus() int {
	return http.StatusInternalServerError
}

// ErrMetadataRead means the stat-equivalent call failed for the FAT32 strategy

type ErrMetadataRead struct {
	baseErrorImpl
}

func NewErrMetadataRead(msg string, args ...any) Error {
	return &ErrMetadataRead{baseErrorImpl{err: fmt.Errorf(msg, args...)}}
}

func (e *ErrMetadataRead) HumaError() huma.StatusError {
	return huma.Error500InternalServerError(e.Error())
}

func (e *ErrMetadataRead) GetStatus() int {
	return http.StatusInternalServerError
}

//
// Client errors (4xx)
//

// Bad request (400)

type ErrBadRequest struct {
	baseErrorImpl
}

func NewErrBadRequest(msg string, args ...any) Error {
	return &ErrBadRequest{baseErrorImpl{err: fmt.Errorf(msg, args...)}}
}

func (e *ErrBadRequest) HumaError() huma.StatusError {
	return huma.Error400BadRequest(e.Error())
}

func (e *ErrBadRequest) GetStatus() int {
	return http.StatusBadRequest
}

// Not found (404)

type ErrNotFound struct {
	baseErrorImpl
}

func NewErrNotFound(msg string, args ...any) Error {
	return &ErrNotFound{baseErrorImpl{err: fmt.Errorf(msg, args...)}}
}

func (e *ErrNotFound) HumaError() huma.StatusError {
	return huma.Error404NotFound(e.Error())
}

func (e *ErrNotFound) GetStatus() int {
	return http.StatusNotFound
}

//
// Server errors (5xx)
//

// Not implemented (501)

type ErrNotImplemented struct {
	baseErrorImpl
}

func NewErrNotImplemented(msg string, args ...any) Error {
	return &ErrNotImplemented{baseErrorImpl{err: fmt.Errorf(msg, args...)}}
}

func (e *ErrNotImplemented) HumaError() huma.StatusError {
	return huma.Error501NotImplemented(e.Error())
}

func (e *ErrNotImplemented) GetStatus() int {
	return http.StatusNotImplemented
}
