package answers

// Answer keys. The suffix groups a key by role: _0x are statements,
// _1x are questions, _2x are failure messages.
const (
	KeyOk              = "ok_0a"
	KeyError           = "error_0a"
	KeyNoAnswer        = "no_answer_0a"
	KeyAbort           = "abort_0a"
	KeyNotPossible     = "default_not_possible_0a"
	KeyAskFirstOfMany  = "default_ask_first_of_many_0a"
	KeyRepeatLast      = "repeat_0a"
	KeyRepeatNothing   = "repeat_0b"
	KeyOpenLink        = "open_link_0a"
	KeyChatHello       = "chat_hello_0a"
	KeyChatThanks      = "chat_thanks_0a"
	KeyChatGeneric     = "chat_0a"
	KeyDeviceSet       = "smartdevice_0a"
	KeyDeviceOn        = "smartdevice_0b"
	KeyDeviceOff       = "smartdevice_0c"
	KeyDeviceGuest     = "smartdevice_0d"
	KeyDeviceShow      = "smartdevice_0e"
	KeyDeviceToggled   = "smartdevice_0f"
	KeyAskDevice       = "smartdevice_1a"
	KeyAskRoomOfMany   = "smartdevice_1c"
	KeyAskDeviceValue  = "smartdevice_1d"
	KeyDeviceNotFound  = "smartdevice_2a"
	KeyHubUnreachable  = "smartdevice_2b"
	KeyDeviceSetFailed = "smartdevice_2c"
	KeyNoDeviceInRoom  = "smartdevice_2d"
	KeyMusicPlay       = "music_0a"
	KeyAskArtist       = "music_1a"
)

var answerPool = map[string]map[string][]string{
	"en": {
		KeyOk:       {"Okay.", "Alright.", "Done."},
		KeyError:    {"Sorry, something went wrong.", "Oops, that didn't work."},
		KeyNoAnswer: {"Sorry, I didn't understand that.", "I'm not sure what you mean."},
		KeyAbort:    {"Okay, I'll stop.", "Alright, never mind."},
		KeyNotPossible: {
			"Sorry, I can't do that right now.",
			"That is not possible at the moment, sorry.",
		},
		KeyAskFirstOfMany: {
			"I found more than one. Should I just take the first?",
		},
		KeyRepeatLast:    {"I said: <1>"},
		KeyRepeatNothing: {"There is nothing to repeat yet."},
		KeyOpenLink:      {"Okay, opening that for you.", "Here you go."},
		KeyChatHello:     {"Hello! How can I help?", "Hi there!"},
		KeyChatThanks:    {"You're welcome!", "Anytime!"},
		KeyChatGeneric:   {"Interesting. Tell me more.", "I see."},
		KeyDeviceSet:     {"Okay, setting the <1> in the <2> to <3>."},
		KeyDeviceOn:      {"Okay, turning the <1> in the <2> on.", "The <1> in the <2> is now on."},
		KeyDeviceOff:     {"Okay, turning the <1> in the <2> off.", "The <1> in the <2> is now off."},
		KeyDeviceGuest: {
			"Sorry, guests are not allowed to control smart home devices here.",
		},
		KeyDeviceShow:    {"The <1> in the <2> is currently <3>."},
		KeyDeviceToggled: {"Okay, I switched the <1> in the <2>."},
		KeyAskDevice:     {"Which device do you mean?", "What device should I control?"},
		KeyAskRoomOfMany: {
			"I found several matching <1>. In which room?",
			"There is more than one <1>. Which room do you mean?",
		},
		KeyAskDeviceValue: {"What should I set the <1> to?"},
		KeyDeviceNotFound: {"I couldn't find a device like <1>, sorry."},
		KeyHubUnreachable: {"I couldn't reach your smart home hub, sorry."},
		KeyDeviceSetFailed: {
			"Setting the <1> didn't work, sorry.",
		},
		KeyNoDeviceInRoom: {"I couldn't find a <1> in the <2>."},
		KeyMusicPlay:      {"Okay, playing <1>.", "Here is <1>."},
		KeyAskArtist:      {"What would you like to hear?", "Which artist should I play?"},
	},
	"de": {
		KeyOk:       {"Okay.", "Alles klar.", "Erledigt."},
		KeyError:    {"Entschuldige, da ist etwas schiefgelaufen.", "Ups, das hat nicht geklappt."},
		KeyNoAnswer: {"Das habe ich leider nicht verstanden.", "Ich bin mir nicht sicher, was du meinst."},
		KeyAbort:    {"Okay, ich höre auf.", "Alles klar, vergiss es."},
		KeyNotPossible: {
			"Das kann ich im Moment leider nicht.",
			"Das ist gerade nicht möglich, sorry.",
		},
		KeyAskFirstOfMany: {
			"Ich habe mehrere gefunden. Soll ich einfach das erste nehmen?",
		},
		KeyRepeatLast:    {"Ich sagte: <1>"},
		KeyRepeatNothing: {"Es gibt noch nichts zu wiederholen."},
		KeyOpenLink:      {"Okay, ich öffne das für dich.", "Bitte sehr."},
		KeyChatHello:     {"Hallo! Wie kann ich helfen?", "Hi!"},
		KeyChatThanks:    {"Gern geschehen!", "Immer gerne!"},
		KeyChatGeneric:   {"Interessant. Erzähl mir mehr.", "Verstehe."},
		KeyDeviceSet:     {"Okay, ich stelle <1> im Raum <2> auf <3>."},
		KeyDeviceOn:      {"Okay, ich schalte <1> im Raum <2> ein.", "<1> im Raum <2> ist jetzt an."},
		KeyDeviceOff:     {"Okay, ich schalte <1> im Raum <2> aus.", "<1> im Raum <2> ist jetzt aus."},
		KeyDeviceGuest: {
			"Entschuldige, Gäste dürfen hier keine Smart-Home-Geräte steuern.",
		},
		KeyDeviceShow:    {"<1> im Raum <2> steht gerade auf <3>."},
		KeyDeviceToggled: {"Okay, ich habe <1> im Raum <2> umgeschaltet."},
		KeyAskDevice:     {"Welches Gerät meinst du?", "Welches Gerät soll ich steuern?"},
		KeyAskRoomOfMany: {
			"Ich habe mehrere Geräte vom Typ <1> gefunden. In welchem Raum?",
			"Es gibt mehr als ein Gerät namens <1>. Welchen Raum meinst du?",
		},
		KeyAskDeviceValue: {"Auf welchen Wert soll ich <1> stellen?"},
		KeyDeviceNotFound: {"Ich konnte kein Gerät wie <1> finden, sorry."},
		KeyHubUnreachable: {"Ich konnte deinen Smart-Home-Hub nicht erreichen, sorry."},
		KeyDeviceSetFailed: {
			"Das Einstellen von <1> hat leider nicht geklappt.",
		},
		KeyNoDeviceInRoom: {"Ich konnte kein Gerät vom Typ <1> im Raum <2> finden."},
		KeyMusicPlay:      {"Okay, ich spiele <1>.", "Hier kommt <1>."},
		KeyAskArtist:      {"Was möchtest du hören?", "Welchen Künstler soll ich spielen?"},
	},
}
