package usecase

import (
	"context"

	"confluence-assistant/internal/chat"
	"confluence-assistant/internal/chat/repository"
	"confluence-assistant/internal/model"
)

// ListConversations returns the user's threads, most recent first.
func (uc *implUseCase) ListConversations(ctx context.Context, sc model.Scope) ([]model.Conversation, error) {
	return uc.repo.ListConversations(ctx, sc.UserID)
}

// History returns one conversation and its messages.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, conversationID string) (chat.HistoryOutput, error) {
	conversation, err := uc.repo.GetConversation(ctx, repository.GetConversationOptions{ID: conversationID, UserID: sc.UserID})
	if err != nil {
		return chat.HistoryOutput{}, err
	}
	if conversation.ID == "" {
		return chat.HistoryOutput{}, chat.ErrConversationNotFound
	}

	messages, err := uc.repo.ListMessages(ctx, conversation.ID)
	if err != nil {
		return chat.HistoryOutput{}, err
	}

	return chat.HistoryOutput{Conversation: conversation, Messages: messages}, nil
}

// DeleteConversation removes a thread and its messages.
func (uc *implUseCase) DeleteConversation(ctx context.Context, sc model.Scope, conversationID string) error {
	opt := repository.GetConversationOptions{ID: conversationID, UserID: sc.UserID}
	conversation, err := uc.repo.GetConversation(ctx, opt)
	if err != nil {
		return err
	}
	if conversation.ID == "" {
		return chat.ErrConversationNotFound
	}
	return uc.repo.DeleteConversation(ctx, opt)
}
