package domain

// Proposal is one interpretation step's suggestion.
type Proposal struct {
	Command    Command
	Params     map[string]string
	Confidence float64
	Source     string // step name, for logs
}

// Interpretation is the ranked outcome of the interpretation chain: the
// selected command, its parameters and the alternatives that lost. It stays
// read-only after the chain except for parameters added during the interview.
type Interpretation struct {
	Request      *Request
	Command      Command
	Alternatives []Proposal
	Params       map[string]string
	Certainty    float64
	Language     string
	ContextTag   string
}

func NewInterpretation(req *Request, cmd Command, params map[string]string, certainty float64) *Interpretation {
	if params == nil {
		params = make(map[string]string)
	}
	return &Interpretation{
		Request:    req,
		Command:    cmd,
		Params:     params,
		Certainty:  certainty,
		Language:   req.Language,
		ContextTag: string(cmd),
	}
}

// Param returns a raw or built parameter value ("" when absent).
func (it *Interpretation) Param(name string) string {
	return it.Params[name]
}

// SetParam stores a (usually built) parameter value.
func (it *Interpretation) SetParam(name, value string) {
	if it.Params == nil {
		it.Params = make(map[string]string)
	}
	it.Params[name] = value
}

// RequiredParameter wraps a parameter value for service consumption.
func (it *Interpretation) RequiredParameter(name string) Parameter {
	return Parameter{Name: name, Required: true, Value: it.Param(name)}
}

// OptionalParameter wraps a parameter value, falling back to a default.
func (it *Interpretation) OptionalParameter(name, defaultValue string) Parameter {
	v := it.Param(name)
	if v == "" {
		return Parameter{Name: name, Default: defaultValue, Value: ""}
	}
	return Parameter{Name: name, Value: v}
}

// Summary renders the command summary for session storage and client echo.
func (it *Interpretation) Summary() string {
	return RenderSummary(it.Command, it.Params)
}
