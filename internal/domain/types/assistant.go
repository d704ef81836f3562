package types

// ChatRole is the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatContext carries move details used to ground assistant replies.
type ChatContext struct {
	MoveDate          string `json:"moveDate,omitempty"`
	HomeSize          string `json:"homeSize,omitempty"`
	FromCity          string `json:"fromCity,omitempty"`
	ToCity            string `json:"toCity,omitempty"`
	TotalItems        int    `json:"totalItems,omitempty"`
	SpecialItemsCount int    `json:"specialItemsCount,omitempty"`
	CurrentStep       string `json:"currentStep,omitempty"`
}

// ChatRequest is the body of a chat call.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Context  ChatContext   `json:"context"`
}

// ReplySource says whether text came from the model or a local fallback.
type ReplySource string

const (
	SourceLLM      ReplySource = "llm"
	SourceFallback ReplySource = "fallback"
)

// ChatReply is the assistant's answer.
type ChatReply struct {
	Text   string
	Source ReplySource
}

// InsightKind selects the insight prompt.
type InsightKind string

const (
	InsightSummary InsightKind = "summary"
	InsightTips    InsightKind = "tips"
)

// InsightRoom is a room line of an insight request.
type InsightRoom struct {
	Name           string `json:"name"`
	FurnitureCount int    `json:"furnitureCount"`
}

// InsightRequest summarises a move for insight generation.
type InsightRequest struct {
	Rooms        []InsightRoom `json:"rooms"`
	SpecialItems []string      `json:"specialItems"`
	Services     []string      `json:"services"`
	HomeSize     string        `json:"homeSize"`
	Type         InsightKind   `json:"type"`
}

// InsightReply is a generated insight paragraph.
type InsightReply struct {
	Text   string
	Source ReplySource
}

// ExtractedDocument is the data read off a scanned statement.
type ExtractedDocument struct {
	Creditor       string  `json:"creditor"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interestRate"`
	MinimumPayment float64 `json:"minimumPayment"`
}

// CompletionRequest is a single model call.
type CompletionRequest struct {
	System    string
	Messages  []ChatMessage
	MaxTokens int
}
