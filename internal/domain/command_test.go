package domain

import "testing"

func TestCommandOwnerScoping(t *testing.T) {
	cmd := Command("user123.good_night")
	if !cmd.IsCustom() {
		t.Fatalf("expected %q to be custom", cmd)
	}
	if owner := cmd.Owner(); owner != "user123" {
		t.Fatalf("expected owner user123, got %q", owner)
	}
	if name := cmd.ShortName(); name != "good_night" {
		t.Fatalf("expected short name good_night, got %q", name)
	}

	if CommandSmartDevice.IsCustom() {
		t.Fatalf("system command must not be custom")
	}
	if CommandSmartDevice.Owner() != "" {
		t.Fatalf("system command must have no owner")
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	params := map[string]string{
		"smart_device": "light",
		"room":         "kitchen",
		"action":       "on",
		"empty":        "",
	}
	summary := RenderSummary(CommandSmartDevice, params)

	cmd, parsed := ParseSummary(summary)
	if cmd != CommandSmartDevice {
		t.Fatalf("expected %q, got %q", CommandSmartDevice, cmd)
	}
	if len(parsed) != 3 {
		t.Fatalf("expected 3 params (empty dropped), got %d: %v", len(parsed), parsed)
	}
	for _, key := range []string{"smart_device", "room", "action"} {
		if parsed[key] != params[key] {
			t.Fatalf("param %q: expected %q, got %q", key, params[key], parsed[key])
		}
	}
}

func TestSummaryDeterministic(t *testing.T) {
	params := map[string]string{"b": "2", "a": "1", "c": "3"}
	first := RenderSummary(CommandMusicSearch, params)
	for i := 0; i < 20; i++ {
		if got := RenderSummary(CommandMusicSearch, params); got != first {
			t.Fatalf("summary not deterministic: %q vs %q", first, got)
		}
	}
}

func TestParseSummaryEmpty(t *testing.T) {
	cmd, params := ParseSummary("  ")
	if cmd != CommandNoResult {
		t.Fatalf("expected no_result for empty summary, got %q", cmd)
	}
	if len(params) != 0 {
		t.Fatalf("expected no params, got %v", params)
	}
}

func TestParseSummarySkipsMalformedSegments(t *testing.T) {
	cmd, params := ParseSummary("smartdevice;;room=kitchen;;garbage;;=nokey")
	if cmd != CommandSmartDevice {
		t.Fatalf("expected smartdevice, got %q", cmd)
	}
	if len(params) != 1 || params["room"] != "kitchen" {
		t.Fatalf("expected only room=kitchen, got %v", params)
	}
}

func TestParameterResultFirstStoreWins(t *testing.T) {
	req := NewRequest("turn on the light", "en", "s1")

	req.StoreParameterResult(&ParameterResult{Name: "room", Extracted: "kitchen", Found: "kitchen"})
	req.StoreParameterResult(&ParameterResult{Name: "room", Extracted: "bedroom", Found: "bedroom"})

	pr := req.StoredParameterResult("room")
	if pr == nil || pr.Extracted != "kitchen" {
		t.Fatalf("first stored result must win, got %+v", pr)
	}

	req.ClearParameterResult("room")
	if req.StoredParameterResult("room") != nil {
		t.Fatalf("expected cleared result")
	}
	req.StoreParameterResult(&ParameterResult{Name: "room", Extracted: "bedroom"})
	if pr := req.StoredParameterResult("room"); pr == nil || pr.Extracted != "bedroom" {
		t.Fatalf("expected fresh store after clear, got %+v", pr)
	}
}

func TestConfirmTags(t *testing.T) {
	tag := ConfirmTag("use_first_device")
	name, ok := IsConfirmTag(tag)
	if !ok || name != "use_first_device" {
		t.Fatalf("confirm tag round trip failed: %q -> %q %v", tag, name, ok)
	}
	if _, ok := IsConfirmTag("room"); ok {
		t.Fatalf("plain parameter must not parse as confirm tag")
	}

	req := NewRequest("yes", "en", "s1")
	if req.ConfirmStatus("use_first_device") != ConfirmUnasked {
		t.Fatalf("expected unasked by default")
	}
	req.SetConfirmStatus("use_first_device", ConfirmAffirmed)
	if req.ConfirmStatus("use_first_device") != ConfirmAffirmed {
		t.Fatalf("expected affirmed after set")
	}
}
