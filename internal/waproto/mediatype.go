package waproto

var mediaTypes = []struct {
	name    string
	present func(*Message) bool
}{
	{"image", func(m *Message) bool { return m.ImageMessage != nil }},
	{"video", func(m *Message) bool { return m.VideoMessage != nil }},
	{"audio", func(m *Message) bool { return m.AudioMessage != nil }},
	{"vcard", func(m *Message) bool { return m.ContactMessage != nil }},
	{"document", func(m *Message) bool { return m.DocumentMessage != nil }},
	{"contact_array", func(m *Message) bool { return m.ContactsArrayMessage != nil }},
	{"livelocation", func(m *Message) bool { return m.LiveLocationMessage != nil }},
	{"sticker", func(m *Message) bool { return m.StickerMessage != nil }},
	{"list", func(m *Message) bool { return m.ListMessage != nil }},
	{"list_response", func(m *Message) bool { return m.ListResponseMessage != nil }},
	{"buttons_response", func(m *Message) bool { return m.ButtonsResponseMessage != nil }},
	{"order", func(m *Message) bool { return m.OrderMessage != nil }},
	{"product", func(m *Message) bool { return m.ProductMessage != nil }},
	{"native_flow_response", func(m *Message) bool { return m.InteractiveResponseMessage != nil }},
}

// MediaType returns the enc mediatype attribute for an encoded message, or
// "" when the message carries no media or cannot be decoded.
func MediaType(message []byte) string {
	m, err := Parse(message)
	if err != nil {
		return ""
	}
	for _, mt := range mediaTypes {
		if !mt.present(m) {
			continue
		}
		switch {
		case mt.name == "video" && m.GetVideoMessage().GetGifPlayback():
			return "gif"
		case mt.name == "audio" && m.GetAudioMessage().GetPTT():
			return "ptt"
		}
		return mt.name
	}
	return ""
}
