package assistant

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// WSClientMessage is one inbound websocket frame.
type WSClientMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// WSServerMessage is one outbound websocket frame.
type WSServerMessage struct {
	Type  string `json:"type"`
	Reply string `json:"reply,omitempty"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

func NewReplyFrame(reply string) WSServerMessage {
	return WSServerMessage{Type: "reply", Reply: reply}
}

func NewErrorFrame(code, message string) WSServerMessage {
	return WSServerMessage{Type: "error", Code: code, Error: message}
}

func NewPongFrame() WSServerMessage {
	return WSServerMessage{Type: "pong"}
}
