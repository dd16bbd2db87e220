package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/voxadev/voxa-assist-go/internal/util"
)

// Input types reported by the client.
const (
	InputQuestion  = "question"
	InputDirectCmd = "direct_cmd"
	InputResponse  = "response"
)

// Confirmation states of a pending confirm sub-dialog.
const (
	ConfirmUnasked = iota
	ConfirmAffirmed
	ConfirmDeclined
)

type User struct {
	ID          string
	Roles       []string
	IsAssistant bool
}

// Role names relevant to built-in services.
const (
	RoleSmartHomeGuest = "smarthomeguest"
)

func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	return util.Contains(u.Roles, role)
}

// Request is the immutable per-turn record plus the request-scoped mutable
// state the pipeline threads through: the parameter result cache and the
// lazily loaded custom command map. It is created once per turn and owns
// both; nothing here survives the turn except fields echoed to the client.
type Request struct {
	ID          string
	Text        string // raw client text
	TextNorm    string // normalized, set by the pipeline before interpretation
	Language    string
	Context     string
	Environment string
	Mood        int
	SessionID   string
	DeviceID    string
	Timestamp   time.Time

	InputType   string
	InputMiss   string // parameter (or confirm tag) the last response answers
	DialogStage int
	LastCommand string // command summary echoed by the client

	User       *User
	CustomData map[string]any

	paramResults   map[string]*ParameterResult
	customCommands []CommandMapping
	commandsLoaded bool
}

func NewRequest(text, language, sessionID string) *Request {
	return &Request{
		ID:         uuid.NewString(),
		Text:       text,
		Language:   language,
		SessionID:  sessionID,
		Context:    "default",
		Mood:       -1,
		Timestamp:  time.Now(),
		CustomData: make(map[string]any),
	}
}

// StoredParameterResult returns the cached extraction for a parameter, or nil.
func (r *Request) StoredParameterResult(name string) *ParameterResult {
	if r.paramResults == nil {
		return nil
	}
	return r.paramResults[name]
}

// StoreParameterResult caches an extraction outcome. The first stored entry
// wins; repeated extraction attempts must observe the cached value unchanged.
func (r *Request) StoreParameterResult(pr *ParameterResult) {
	if pr == nil || pr.Name == "" {
		return
	}
	if r.paramResults == nil {
		r.paramResults = make(map[string]*ParameterResult)
	}
	if _, exists := r.paramResults[pr.Name]; exists {
		return
	}
	r.paramResults[pr.Name] = pr
}

// ClearParameterResult drops a cached extraction so the next turn's answer
// text can be extracted fresh for that parameter.
func (r *Request) ClearParameterResult(name string) {
	if r.paramResults != nil {
		delete(r.paramResults, name)
	}
}

// CustomCommands returns the owner command map if it was loaded this request.
func (r *Request) CustomCommands() ([]CommandMapping, bool) {
	return r.customCommands, r.commandsLoaded
}

// SetCustomCommands attaches the loaded owner command map to the request.
func (r *Request) SetCustomCommands(mappings []CommandMapping) {
	r.customCommands = mappings
	r.commandsLoaded = true
}

const confirmKeyPrefix = "confirm:"

// ConfirmTag builds the input-miss tag for a confirmation sub-dialog.
func ConfirmTag(name string) string {
	return confirmKeyPrefix + name
}

// IsConfirmTag reports whether an input-miss value addresses a confirmation
// and returns the confirmation name.
func IsConfirmTag(tag string) (string, bool) {
	if len(tag) > len(confirmKeyPrefix) && tag[:len(confirmKeyPrefix)] == confirmKeyPrefix {
		return tag[len(confirmKeyPrefix):], true
	}
	return "", false
}

// ConfirmStatus reads the state of a confirmation sub-dialog for this turn.
func (r *Request) ConfirmStatus(name string) int {
	if v, ok := r.CustomData[ConfirmTag(name)].(int); ok {
		return v
	}
	return ConfirmUnasked
}

// SetConfirmStatus records the user's answer to a confirmation question.
func (r *Request) SetConfirmStatus(name string, status int) {
	if r.CustomData == nil {
		r.CustomData = make(map[string]any)
	}
	r.CustomData[ConfirmTag(name)] = status
}
