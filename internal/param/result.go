package param

import (
	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// Resolve runs extraction for a parameter against the input, returning the
// cached result when this request already extracted it. Handlers store
// their own results, so two calls within one request observe the identical
// outcome.
func Resolve(req *domain.Request, name, input string) *domain.ParameterResult {
	if pr := req.StoredParameterResult(name); pr != nil {
		return pr
	}
	handler, ok := HandlerFor(name)
	if !ok {
		return nil
	}
	handler.Setup(req)
	extracted := handler.Extract(input)
	if pr := req.StoredParameterResult(name); pr != nil {
		return pr
	}
	// handler without cache support; keep the contract anyway
	pr := &domain.ParameterResult{Name: name, Extracted: extracted, Found: handler.Found()}
	req.StoreParameterResult(pr)
	return pr
}

// CleanInput removes the span another parameter already claimed, so a later
// extractor never re-matches text attributed to an earlier one. The order
// callers invoke this in is the declared extraction order.
func CleanInput(req *domain.Request, name, input string) string {
	pr := Resolve(req, name, input)
	if pr == nil || pr.Found == "" {
		return input
	}
	handler, ok := HandlerFor(name)
	if !ok {
		return input
	}
	handler.Setup(req)
	return handler.Remove(input, pr.Found)
}
