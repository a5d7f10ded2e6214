package utils

import "errors"

// Common application errors used across services. The text doubles as the
// API error code.
var (
	ErrInvalidToken        = errors.New("INVALID_TOKEN")
	ErrProductNotFound     = errors.New("PRODUCT_NOT_FOUND")
	ErrScenarioNotFound    = errors.New("SCENARIO_NOT_FOUND")
	ErrProductInUse        = errors.New("PRODUCT_IN_USE")
	ErrInvalidProductType  = errors.New("INVALID_PRODUCT_TYPE")
	ErrInvalidTermUnit     = errors.New("INVALID_TERM_UNIT")
	ErrInvalidScenarioType = errors.New("INVALID_SCENARIO_TYPE")
	ErrInvalidSubType      = errors.New("INVALID_SUB_TYPE")
	ErrIDCollision         = errors.New("ID_COLLISION")
	ErrExportDisabled      = errors.New("EXPORT_DISABLED")
)
