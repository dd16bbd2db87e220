package domain

import (
	"sort"
	"strings"
)

// Command identifies what the user wants to do. System commands are bare
// names; custom commands are scoped as "<ownerId>.<name>" and the separator
// is reserved, so a system command never contains it.
type Command string

const OwnerSeparator = "."

const (
	CommandSmartDevice Command = "smartdevice"
	CommandMusicSearch Command = "music_search"
	CommandChat        Command = "chat"
	CommandRepeat      Command = "repeat"
	CommandOpenLink    Command = "open_link"
	CommandAbort       Command = "abort"
	CommandNoResult    Command = "no_result"
)

func (c Command) String() string {
	return string(c)
}

// IsCustom reports whether the command is owner-scoped.
func (c Command) IsCustom() bool {
	return strings.Contains(string(c), OwnerSeparator)
}

// Owner returns the owner id of a custom command, or "" for system commands.
func (c Command) Owner() string {
	if !c.IsCustom() {
		return ""
	}
	return string(c)[:strings.Index(string(c), OwnerSeparator)]
}

// ShortName returns the command name without the owner scope.
func (c Command) ShortName() string {
	if !c.IsCustom() {
		return string(c)
	}
	return string(c)[strings.Index(string(c), OwnerSeparator)+1:]
}

// CommandMapping connects a custom command to an ordered list of service ids
// plus the trigger phrases that select it during interpretation.
type CommandMapping struct {
	Command  Command
	Services []string
	Triggers []string
}

const summarySeparator = ";;"

// RenderSummary serializes a command plus parameter values into the compact
// summary echoed to the client and stored per session
// ("cmd;;param=value;;param=value"). Keys are sorted for determinism.
func RenderSummary(cmd Command, params map[string]string) string {
	parts := []string{string(cmd)}
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}
	return strings.Join(parts, summarySeparator)
}

// ParseSummary is the inverse of RenderSummary. Malformed parameter segments
// are skipped; an empty summary yields the no-result command.
func ParseSummary(summary string) (Command, map[string]string) {
	params := make(map[string]string)
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return CommandNoResult, params
	}
	parts := strings.Split(summary, summarySeparator)
	cmd := Command(strings.TrimSpace(parts[0]))
	for _, part := range parts[1:] {
		k, v, ok := strings.Cut(part, "=")
		if !ok || k == "" {
			continue
		}
		params[k] = v
	}
	return cmd, params
}
