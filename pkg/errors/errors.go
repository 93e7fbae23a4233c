package errors

import "fmt"

// Error codes
const (
	CodeLocalization  = "LOCALIZATION_ERROR"
	CodeAPIError      = "API_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
	CodeGroup         = "GROUP_ERROR"
	CodeCharacterData = "CHARACTER_DATA_ERROR"
	CodeCache         = "CACHE_ERROR"
)

type LocError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *LocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LocError) Unwrap() error {
	return e.Cause
}

func NewLocError(message, code string, statusCode int, context map[string]any) *LocError {
	return &LocError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *LocError) WithCause(cause error) *LocError {
	e.Cause = cause
	return e
}

// APIError covers transport failures and non-2xx responses from the
// chat-completion endpoint.
type APIError struct {
	*LocError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		LocError: &LocError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

// ValidationError is fatal to a run: it is raised before any row is processed.
type ValidationError struct {
	*LocError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		LocError: &LocError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// LocalizationError marks a failed per-row completion call. The row is
// dropped from results; the group and run continue.
type LocalizationError struct {
	*LocError
	LocID string
}

func NewLocalizationError(message, locID string, cause error) *LocalizationError {
	return &LocalizationError{
		LocError: &LocError{
			Message:    message,
			Code:       CodeLocalization,
			StatusCode: 502,
			Context: map[string]any{
				"loc_id": locID,
			},
			Cause: cause,
		},
		LocID: locID,
	}
}

// GroupError wraps any failure that takes down a whole image group.
type GroupError struct {
	*LocError
	ImageID string
}

func NewGroupError(message, imageID string, cause error) *GroupError {
	return &GroupError{
		LocError: &LocError{
			Message:    message,
			Code:       CodeGroup,
			StatusCode: 500,
			Context: map[string]any{
				"image_id": imageID,
			},
			Cause: cause,
		},
		ImageID: imageID,
	}
}

// CharacterDataError signals a malformed character override file. The
// previously loaded default table stays in effect.
type CharacterDataError struct {
	*LocError
	Path string
}

func NewCharacterDataError(message, path string, cause error) *CharacterDataError {
	return &CharacterDataError{
		LocError: &LocError{
			Message:    message,
			Code:       CodeCharacterData,
			StatusCode: 422,
			Context: map[string]any{
				"path": path,
			},
			Cause: cause,
		},
		Path: path,
	}
}

type CacheError struct {
	*LocError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		LocError: &LocError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}
