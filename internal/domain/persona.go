package domain

// PersonaRecord is one review exported to the persona chat service.
type PersonaRecord struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	Title   string `json:"title"`
}

// PersonaRecordType tags exported reviews.
const PersonaRecordType = "book_review"

// ChatReply is the persona service's answer to one message.
type ChatReply struct {
	Response    string
	TokensUsed  int
	SearchCount int
	PromptType  string
}
