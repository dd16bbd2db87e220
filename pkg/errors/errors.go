package errors

import "fmt"

// Error codes
const (
	CodePipeline   = "PIPELINE_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeExtraction = "EXTRACTION_ERROR"
	CodeResolver   = "RESOLVER_ERROR"
	CodeConnector  = "CONNECTOR_ERROR"
	CodeCache      = "CACHE_ERROR"
	CodeStore      = "STORE_ERROR"
	CodePlugin     = "PLUGIN_ERROR"
)

type PipelineError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

func NewPipelineError(message, code string, context map[string]any) *PipelineError {
	return &PipelineError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *PipelineError) WithCause(cause error) *PipelineError {
	e.Cause = cause
	return e
}

type ValidationError struct {
	*PipelineError
	Parameter string
	Value     any
}

func NewValidationError(message, parameter string, value any) *ValidationError {
	return &ValidationError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"parameter": parameter,
				"value":     value,
			},
		},
		Parameter: parameter,
		Value:     value,
	}
}

type ExtractionError struct {
	*PipelineError
	Parameter string
}

func NewExtractionError(message, parameter string, cause error) *ExtractionError {
	return &ExtractionError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodeExtraction,
			Context: map[string]any{"parameter": parameter},
			Cause:   cause,
		},
		Parameter: parameter,
	}
}

type ResolverError struct {
	*PipelineError
	Command string
}

func NewResolverError(message, command string, cause error) *ResolverError {
	return &ResolverError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodeResolver,
			Context: map[string]any{"command": command},
			Cause:   cause,
		},
		Command: command,
	}
}

type ConnectorError struct {
	*PipelineError
	Connector string
	Operation string
}

func NewConnectorError(message, connector, operation string, cause error) *ConnectorError {
	return &ConnectorError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodeConnector,
			Context: map[string]any{
				"connector": connector,
				"operation": operation,
			},
			Cause: cause,
		},
		Connector: connector,
		Operation: operation,
	}
}

type CacheError struct {
	*PipelineError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodeCache,
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

type StoreError struct {
	*PipelineError
	Table string
}

func NewStoreError(message, table string, cause error) *StoreError {
	return &StoreError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodeStore,
			Context: map[string]any{"table": table},
			Cause:   cause,
		},
		Table: table,
	}
}

type PluginError struct {
	*PipelineError
	ServiceID string
}

func NewPluginError(message, serviceID string, cause error) *PluginError {
	return &PluginError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodePlugin,
			Context: map[string]any{"service_id": serviceID},
			Cause:   cause,
		},
		ServiceID: serviceID,
	}
}
