package tx

// Message is the payload of a transfer. The type byte is always on the wire,
// so the zero value (an empty plain message) occupies one byte.
type Message struct {
	Type    MessageType `json:"type"`
	Payload []byte      `json:"payload,omitempty"`
}

// NewPlainMessage wraps text as a plain message.
func NewPlainMessage(text string) Message {
	if text == "" {
		return Message{Type: MessagePlain}
	}
	return Message{Type: MessagePlain, Payload: []byte(text)}
}

// IsEmpty reports whether the message is plain and carries no payload.
func (m Message) IsEmpty() bool {
	return m.Type == MessagePlain && len(m.Payload) == 0
}

// Size is the number of bytes the message takes on the wire, type byte included.
func (m Message) Size() int {
	return 1 + len(m.Payload)
}

// Text returns the payload as a string.
func (m Message) Text() string {
	return string(m.Payload)
}
