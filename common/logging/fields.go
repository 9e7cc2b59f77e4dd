package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"
	FieldDuration  = "duration"

	FieldBatchNumber      = "batchNumber"
	FieldAggregationRound = "aggregationRound"
	FieldProverJobId      = "proverJobId"

	FieldTable    = "table"
	FieldAttempts = "attempts"
)
