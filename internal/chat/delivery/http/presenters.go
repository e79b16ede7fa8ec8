package http

import (
	"time"

	"confluence-assistant/internal/chat"
	"confluence-assistant/internal/model"
	"confluence-assistant/pkg/confluence"
)

// --- Request DTOs ---

type documentReq struct {
	FileName string `json:"file_name" binding:"required"`
	Content  string `json:"content"   binding:"required"`
	Preview  string `json:"preview"`
}

type sendReq struct {
	ConversationID string       `json:"conversation_id"`
	Message        string       `json:"message"`
	Document       *documentReq `json:"document"`
}

func (r sendReq) toInput() chat.SendInput {
	input := chat.SendInput{
		ConversationID: r.ConversationID,
		Message:        r.Message,
	}
	if r.Document != nil {
		input.Document = &model.UploadedDocument{
			FileName: r.Document.FileName,
			Content:  r.Document.Content,
			Preview:  r.Document.Preview,
		}
	}
	return input
}

// --- Response DTOs ---

type conversationResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newConversationResp(c model.Conversation) conversationResp {
	return conversationResp{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type messageResp struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	IntentKind string    `json:"intent_kind,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:         m.ID,
		Role:       string(m.Role),
		Content:    m.Content,
		IntentKind: m.IntentKind,
		Confidence: m.Confidence,
		CreatedAt:  m.CreatedAt,
	}
}

type sendResp struct {
	Conversation conversationResp   `json:"conversation"`
	UserMessage  messageResp        `json:"user_message"`
	Reply        messageResp        `json:"reply"`
	Intent       string             `json:"intent"`
	Confidence   float64            `json:"confidence"`
	Source       string             `json:"source"`
	Page         *confluence.Page   `json:"page,omitempty"`
	Pages        []confluence.Page  `json:"pages,omitempty"`
	Spaces       []confluence.Space `json:"spaces,omitempty"`
}

func (h *handler) newSendResp(out chat.SendOutput) sendResp {
	return sendResp{
		Conversation: newConversationResp(out.Conversation),
		UserMessage:  newMessageResp(out.UserMessage),
		Reply:        newMessageResp(out.Reply),
		Intent:       string(out.Intent.Kind),
		Confidence:   out.Intent.Confidence,
		Source:       string(out.Intent.Source),
		Page:         out.Page,
		Pages:        out.Pages,
		Spaces:       out.Spaces,
	}
}

type listConversationsResp struct {
	Conversations []conversationResp `json:"conversations"`
}

func (h *handler) newListConversationsResp(conversations []model.Conversation) listConversationsResp {
	items := make([]conversationResp, len(conversations))
	for i, c := range conversations {
		items[i] = newConversationResp(c)
	}
	return listConversationsResp{Conversations: items}
}

type historyResp struct {
	Conversation conversationResp `json:"conversation"`
	Messages     []messageResp    `json:"messages"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	messages := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		messages[i] = newMessageResp(m)
	}
	return historyResp{
		Conversation: newConversationResp(out.Conversation),
		Messages:     messages,
	}
}
