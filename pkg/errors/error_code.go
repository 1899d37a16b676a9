package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidPeriod        ErrorCode = 102
	ErrCodeInvalidType          ErrorCode = 103
	ErrCodeMissingParameter     ErrorCode = 104
	ErrCodeInvalidThreshold     ErrorCode = 105
	ErrCodeInvalidStdDev        ErrorCode = 106
	ErrCodeInvalidTolerance     ErrorCode = 107
	ErrCodeInvalidBar           ErrorCode = 108
	ErrCodeInvalidSeries        ErrorCode = 109
	ErrCodeInvalidTrade         ErrorCode = 110
	ErrCodeInvalidLevel         ErrorCode = 111

	// Data errors (200-299)
	ErrCodeNoData           ErrorCode = 200
	ErrCodeInsufficientData ErrorCode = 201
	ErrCodeDataNotFound     ErrorCode = 202

	// Indicator errors (300-399)
	ErrCodeIndicatorCalculation ErrorCode = 300
	ErrCodeIndicatorMismatch    ErrorCode = 301

	// Strategy errors (400-499)
	ErrCodeUnsupportedStrategy ErrorCode = 400
	ErrCodeStrategyConfig      ErrorCode = 401

	// Snapshot/aggregation errors (500-599)
	ErrCodeSnapshotFailed    ErrorCode = 500
	ErrCodeAggregationFailed ErrorCode = 501

	// Backtest errors (600-699)
	ErrCodeBacktestFailed ErrorCode = 600
)
