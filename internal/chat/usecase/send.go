package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"confluence-assistant/internal/chat"
	"confluence-assistant/internal/chat/repository"
	"confluence-assistant/internal/intent"
	"confluence-assistant/internal/model"
)

const conversationTitleLimit = 60

// Send runs one chat turn. The Confluence action is best-effort: any
// upstream failure is folded into the assistant reply so the turn
// itself never fails once the user message is accepted.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.SendOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" && input.Document == nil {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	conversation, err := uc.conversationFor(ctx, sc, input.ConversationID, message, input.Document)
	if err != nil {
		return chat.SendOutput{}, err
	}

	now := time.Now().UTC()
	userMessage := model.Message{
		ID:             uuid.NewString(),
		ConversationID: conversation.ID,
		Role:           model.RoleUser,
		Content:        userMessageContent(message, input.Document),
		CreatedAt:      now,
	}
	if err := uc.repo.CreateMessage(ctx, userMessage); err != nil {
		return chat.SendOutput{}, err
	}

	settings := uc.effectiveSettings(ctx, sc)
	outbound := intent.BuildOutboundMessage(message, input.Document)
	parsed := uc.resolver.Resolve(ctx, outbound, settings.AIAPIKey)
	uc.l.Debugf(ctx, "Send: intent %s (%.2f, %s)", parsed.Kind, parsed.Confidence, parsed.Source)

	output := uc.execute(ctx, settings, parsed)

	reply := model.Message{
		ID:             uuid.NewString(),
		ConversationID: conversation.ID,
		Role:           model.RoleAssistant,
		Content:        output.replyText,
		IntentKind:     string(parsed.Kind),
		Confidence:     parsed.Confidence,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.repo.CreateMessage(ctx, reply); err != nil {
		return chat.SendOutput{}, err
	}

	touch := repository.TouchConversationOptions{
		ID:        conversation.ID,
		UserID:    sc.UserID,
		UpdatedAt: reply.CreatedAt,
	}
	if err := uc.repo.TouchConversation(ctx, touch); err != nil {
		uc.l.Warnf(ctx, "Send: touch conversation: %v", err)
	}
	conversation.UpdatedAt = reply.CreatedAt

	return chat.SendOutput{
		Conversation: conversation,
		UserMessage:  userMessage,
		Reply:        reply,
		Intent:       parsed,
		Page:         output.page,
		Pages:        output.pages,
		Spaces:       output.spaces,
	}, nil
}

// conversationFor loads an existing conversation or starts a new one
// titled after the first message.
func (uc *implUseCase) conversationFor(ctx context.Context, sc model.Scope, id, message string, doc *model.UploadedDocument) (model.Conversation, error) {
	if id != "" {
		conversation, err := uc.repo.GetConversation(ctx, repository.GetConversationOptions{ID: id, UserID: sc.UserID})
		if err != nil {
			return model.Conversation{}, err
		}
		if conversation.ID == "" {
			return model.Conversation{}, chat.ErrConversationNotFound
		}
		return conversation, nil
	}

	now := time.Now().UTC()
	conversation := model.Conversation{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Title:     conversationTitle(message, doc),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.CreateConversation(ctx, conversation); err != nil {
		return model.Conversation{}, err
	}
	return conversation, nil
}

func conversationTitle(message string, doc *model.UploadedDocument) string {
	title := message
	if title == "" && doc != nil {
		title = doc.FileName
	}
	runes := []rune(title)
	if len(runes) > conversationTitleLimit {
		title = string(runes[:conversationTitleLimit]) + "…"
	}
	if title == "" {
		title = "New conversation"
	}
	return title
}

// userMessageContent is what gets persisted for the user's side of the
// turn. Document uploads are recorded as a short marker, not the full
// extracted text.
func userMessageContent(message string, doc *model.UploadedDocument) string {
	if doc == nil {
		return message
	}
	marker := "[Uploaded " + doc.FileName + "]"
	if message == "" {
		return marker
	}
	return message + "\n" + marker
}

// effectiveSettings merges the user's saved settings over the service
// defaults. Settings read failures degrade to the defaults.
func (uc *implUseCase) effectiveSettings(ctx context.Context, sc model.Scope) model.Settings {
	merged := model.Settings{
		UserID:            sc.UserID,
		ConfluenceBaseURL: uc.defaults.ConfluenceBaseURL,
		ConfluenceEmail:   uc.defaults.ConfluenceEmail,
		ConfluenceToken:   uc.defaults.ConfluenceToken,
		AIAPIKey:          uc.defaults.AIAPIKey,
		DefaultSpace:      uc.defaults.DefaultSpace,
	}

	out, err := uc.userUC.GetSettings(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "effectiveSettings: %v", err)
		return merged
	}

	s := out.Settings
	if s.ConfluenceBaseURL != "" {
		merged.ConfluenceBaseURL = s.ConfluenceBaseURL
	}
	if s.ConfluenceEmail != "" {
		merged.ConfluenceEmail = s.ConfluenceEmail
	}
	if s.ConfluenceToken != "" {
		merged.ConfluenceToken = s.ConfluenceToken
	}
	if s.AIAPIKey != "" {
		merged.AIAPIKey = s.AIAPIKey
	}
	if s.DefaultSpace != "" {
		merged.DefaultSpace = s.DefaultSpace
	}
	return merged
}
