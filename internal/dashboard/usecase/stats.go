package usecase

import (
	"context"
	"sort"
	"time"

	"confluence-assistant/internal/chat/repository"
	"confluence-assistant/internal/dashboard"
	"confluence-assistant/internal/model"
	"confluence-assistant/pkg/confluence"
)

// Stats aggregates the user's activity. Chat numbers come from the
// local store; the Confluence summary is best-effort and simply absent
// on any failure.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (dashboard.Stats, error) {
	if cached, ok := uc.cache.Get(sc.UserID); ok {
		return cached, nil
	}

	conversations, err := uc.chatRepo.ListConversations(ctx, sc.UserID)
	if err != nil {
		return dashboard.Stats{}, err
	}

	total, err := uc.chatRepo.CountMessages(ctx, repository.CountMessagesOptions{UserID: sc.UserID})
	if err != nil {
		return dashboard.Stats{}, err
	}

	recent, err := uc.chatRepo.CountMessages(ctx, repository.CountMessagesOptions{
		UserID: sc.UserID,
		Since:  time.Now().UTC().Add(-activityWindow),
	})
	if err != nil {
		return dashboard.Stats{}, err
	}

	stats := dashboard.Stats{
		Conversations:  len(conversations),
		Messages:       total.Total,
		ByIntent:       total.ByKind,
		MessagesLast7d: recent.Total,
		Confluence:     uc.confluenceStats(ctx, sc),
	}

	uc.cache.Add(sc.UserID, stats)
	return stats, nil
}

// confluenceStats surveys the user's site: spaces, page counts per
// space, contributor ranking and the most recently updated pages. The
// survey is capped at maxSurveySpaces spaces and pagesPerSpace pages
// each so one dashboard hit cannot fan out unboundedly.
func (uc *implUseCase) confluenceStats(ctx context.Context, sc model.Scope) *dashboard.ConfluenceStats {
	client := uc.clientFor(ctx, sc)
	if client == nil {
		return nil
	}

	spaces, err := client.ListSpaces(ctx, confluence.MaxLimit)
	if err != nil {
		uc.l.Warnf(ctx, "confluenceStats: list spaces: %v", err)
		return nil
	}

	stats := &dashboard.ConfluenceStats{Spaces: len(spaces)}
	contributors := map[string]int{}
	var allPages []confluence.Page

	surveyed := spaces
	if len(surveyed) > maxSurveySpaces {
		surveyed = surveyed[:maxSurveySpaces]
	}
	for _, space := range surveyed {
		pages, err := client.ListPages(ctx, confluence.ListPagesInput{
			SpaceKey: space.Key,
			Limit:    pagesPerSpace,
		})
		if err != nil {
			uc.l.Warnf(ctx, "confluenceStats: list pages %s: %v", space.Key, err)
			continue
		}

		stats.Pages += len(pages)
		stats.PagesPerSpace = append(stats.PagesPerSpace, dashboard.SpacePages{
			Key:   space.Key,
			Name:  space.Name,
			Pages: len(pages),
		})
		for _, page := range pages {
			if page.UpdatedBy != "" {
				contributors[page.UpdatedBy]++
			}
		}
		allPages = append(allPages, pages...)
	}

	stats.TopContributors = rankContributors(contributors, topContributors)
	stats.RecentlyUpdated = recentPages(allPages, recentlyUpdated)
	return stats
}

func (uc *implUseCase) clientFor(ctx context.Context, sc model.Scope) confluence.IConfluence {
	out, err := uc.userUC.GetSettings(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "clientFor: settings: %v", err)
		return nil
	}

	cfg := confluence.Config{
		BaseURL:  out.Settings.ConfluenceBaseURL,
		Email:    out.Settings.ConfluenceEmail,
		APIToken: out.Settings.ConfluenceToken,
	}
	if err := cfg.Validate(); err != nil {
		return nil
	}

	client, err := uc.newConfluence(cfg)
	if err != nil {
		return nil
	}
	return client
}

func rankContributors(counts map[string]int, limit int) []dashboard.Contributor {
	ranked := make([]dashboard.Contributor, 0, len(counts))
	for name, pages := range counts {
		ranked = append(ranked, dashboard.Contributor{Name: name, Pages: pages})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Pages != ranked[j].Pages {
			return ranked[i].Pages > ranked[j].Pages
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func recentPages(pages []confluence.Page, limit int) []confluence.Page {
	sorted := make([]confluence.Page, len(pages))
	copy(sorted, pages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
