package param

import (
	"strconv"
	"strings"

	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// Canonical room types.
const (
	RoomLivingRoom = "livingroom"
	RoomBedroom    = "bedroom"
	RoomKitchen    = "kitchen"
	RoomBath       = "bath"
	RoomOffice     = "office"
	RoomHallway    = "hallway"
	RoomGarage     = "garage"
)

var roomSynonymsEN = []struct {
	expr      string
	canonical string
}{
	{`\b(living( |-)?room|lounge)\b`, RoomLivingRoom},
	{`\bbed( |-)?room\b`, RoomBedroom},
	{`\bkitchen\b`, RoomKitchen},
	{`\bbath(room)?\b`, RoomBath},
	{`\b(office|study)\b`, RoomOffice},
	{`\b(hallway|corridor)\b`, RoomHallway},
	{`\bgarage\b`, RoomGarage},
}

var roomSynonymsDE = []struct {
	expr      string
	canonical string
}{
	{`\bwohnzimmer\b`, RoomLivingRoom},
	{`\bschlafzimmer\b`, RoomBedroom},
	{`\bkueche\b`, RoomKitchen},
	{`\bbad(ezimmer)?\b`, RoomBath},
	{`\b(buero|arbeitszimmer)\b`, RoomOffice},
	{`\b(flur|diele)\b`, RoomHallway},
	{`\bgarage\b`, RoomGarage},
}

var roomLocalDE = map[string]string{
	RoomLivingRoom: "Wohnzimmer",
	RoomBedroom:    "Schlafzimmer",
	RoomKitchen:    "Küche",
	RoomBath:       "Bad",
	RoomOffice:     "Büro",
	RoomHallway:    "Flur",
	RoomGarage:     "Garage",
}

var roomLocalEN = map[string]string{
	RoomLivingRoom: "living room",
	RoomBedroom:    "bedroom",
	RoomKitchen:    "kitchen",
	RoomBath:       "bathroom",
	RoomOffice:     "office",
	RoomHallway:    "hallway",
	RoomGarage:     "garage",
}

// RoomLocal returns the display name of a room type for a language.
func RoomLocal(roomType, language string) string {
	if language == "de" {
		if local, ok := roomLocalDE[roomType]; ok {
			return local
		}
	}
	if local, ok := roomLocalEN[roomType]; ok {
		return local
	}
	return roomType
}

// RoomHandler extracts the room type (plus an optional trailing index like
// "bedroom 2").
type RoomHandler struct {
	base
	roomType string
	index    int
}

func init() {
	Register(domain.ParamRoom, func() Handler { return &RoomHandler{} })
}

func (h *RoomHandler) Extract(input string) string {
	if pr := h.req.StoredParameterResult(domain.ParamRoom); pr != nil {
		h.found = pr.Found
		return pr.Extracted
	}

	synonyms := roomSynonymsEN
	if h.language == "de" {
		synonyms = roomSynonymsDE
	}

	h.roomType = ""
	h.index = 0
	h.found = ""
	for _, syn := range synonyms {
		match := findFirst(input, syn.expr+`( \d+)?`)
		if match == "" {
			continue
		}
		h.found = match
		h.roomType = syn.canonical
		if m := trailingIndexPattern.FindStringSubmatch(match); m != nil {
			h.index, _ = strconv.Atoi(m[2])
		}
		break
	}

	extracted := h.roomType
	if h.index > 0 {
		extracted = h.roomType + ";" + strconv.Itoa(h.index)
	}
	h.req.StoreParameterResult(&domain.ParameterResult{
		Name:      domain.ParamRoom,
		Extracted: extracted,
		Found:     h.found,
	})
	return extracted
}

func (h *RoomHandler) Validate(value string) bool {
	return validateBuilt(value)
}

func (h *RoomHandler) Build(value string) (string, error) {
	roomType := value
	index := 0
	if t, i, ok := strings.Cut(value, ";"); ok {
		roomType = t
		index, _ = strconv.Atoi(i)
	}
	fields := map[string]any{
		domain.DataValue:      roomType,
		domain.DataValueLocal: RoomLocal(roomType, h.language),
	}
	if index > 0 {
		fields[domain.DataItemIndex] = index
	}
	return buildValue(fields)
}

func (h *RoomHandler) ResponseTweak(input string) string {
	input = strings.TrimSpace(input)
	if h.language == "de" {
		return strings.TrimPrefix(strings.TrimPrefix(input, "im "), "in der ")
	}
	return strings.TrimPrefix(strings.TrimPrefix(input, "in the "), "the ")
}
