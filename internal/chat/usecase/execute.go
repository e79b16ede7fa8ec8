package usecase

import (
	"context"
	"errors"

	"confluence-assistant/internal/intent"
	"confluence-assistant/internal/model"
	"confluence-assistant/pkg/confluence"
)

const searchLimit = 10

// actionResult is what executing an intent against Confluence produced.
type actionResult struct {
	replyText string
	page      *confluence.Page
	pages     []confluence.Page
	spaces    []confluence.Space
}

// execute performs the Confluence action the intent names and renders
// the assistant reply. It never returns an error: failures become
// replies the user can act on.
func (uc *implUseCase) execute(ctx context.Context, settings model.Settings, parsed intent.ParsedIntent) actionResult {
	switch parsed.Kind {
	case intent.KindCreate, intent.KindSearch, intent.KindListSpaces:
		// fall through to the Confluence path below
	default:
		// help, chat and unknown all carry their answer already.
		return actionResult{replyText: parsed.Answer}
	}

	client, err := uc.confluenceClient(settings)
	if err != nil {
		return actionResult{replyText: replyNotConfigured}
	}

	switch parsed.Kind {
	case intent.KindCreate:
		space := parsed.Space
		if space == "" {
			space = settings.DefaultSpace
		}
		if space == "" {
			return actionResult{replyText: replyNoSpace}
		}
		page, err := client.CreatePage(ctx, confluence.CreatePageInput{
			SpaceKey: space,
			Title:    parsed.Title,
			Content:  parsed.Content,
		})
		if err != nil {
			uc.l.Warnf(ctx, "execute: create page: %v", err)
			return actionResult{replyText: replyConfluenceError(err)}
		}
		return actionResult{replyText: replyPageCreated(page), page: &page}

	case intent.KindSearch:
		pages, err := client.SearchPages(ctx, confluence.SearchPagesInput{
			Query:    parsed.Query,
			SpaceKey: parsed.Space,
			Limit:    searchLimit,
		})
		if err != nil {
			uc.l.Warnf(ctx, "execute: search pages: %v", err)
			return actionResult{replyText: replyConfluenceError(err)}
		}
		return actionResult{replyText: replySearchResults(parsed.Query, pages), pages: pages}

	case intent.KindListSpaces:
		spaces, err := client.ListSpaces(ctx, confluence.DefaultLimit)
		if err != nil {
			uc.l.Warnf(ctx, "execute: list spaces: %v", err)
			return actionResult{replyText: replyConfluenceError(err)}
		}
		return actionResult{replyText: replySpaces(spaces), spaces: spaces}
	}

	return actionResult{replyText: parsed.Answer}
}

func (uc *implUseCase) confluenceClient(settings model.Settings) (confluence.IConfluence, error) {
	cfg := confluence.Config{
		BaseURL:  settings.ConfluenceBaseURL,
		Email:    settings.ConfluenceEmail,
		APIToken: settings.ConfluenceToken,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return uc.newConfluence(cfg)
}

// replyConfluenceError picks a user-facing message for an upstream
// failure.
func replyConfluenceError(err error) string {
	switch {
	case errors.Is(err, confluence.ErrUnauthorized):
		return "Confluence rejected your credentials. Please check the email and API token in your settings."
	case errors.Is(err, confluence.ErrNotFound):
		return "Confluence could not find that. Double-check the space key and try again."
	default:
		return "I couldn't reach Confluence right now. Please try again in a moment."
	}
}
