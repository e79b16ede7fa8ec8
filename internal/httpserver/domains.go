package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "confluence-assistant/internal/chat/delivery/http"
	chatRepo "confluence-assistant/internal/chat/repository/sqlite"
	chatUC "confluence-assistant/internal/chat/usecase"
	dashboardHTTP "confluence-assistant/internal/dashboard/delivery/http"
	dashboardUC "confluence-assistant/internal/dashboard/usecase"
	"confluence-assistant/internal/middleware"
	uploadHTTP "confluence-assistant/internal/upload/delivery/http"
	uploadUC "confluence-assistant/internal/upload/usecase"
	"confluence-assistant/internal/user"
	userHTTP "confluence-assistant/internal/user/delivery/http"
	userRepo "confluence-assistant/internal/user/repository/sqlite"
	userUC "confluence-assistant/internal/user/usecase"
)

// setupUserDomain wires the account store and use case. The use case is
// returned because the auth middleware and the chat domain depend on it.
func (srv HTTPServer) setupUserDomain(ctx context.Context) user.UseCase {
	repo := userRepo.New(srv.db, srv.l)
	uc := userUC.New(srv.l, repo)
	srv.l.Infof(ctx, "User domain initialized")
	return uc
}

// registerDomainRoutes builds the remaining domains on top of the user
// use case and registers every /api/v1 route.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context, api *gin.RouterGroup, users user.UseCase, mw middleware.Middleware) {
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, users, mw), mw)

	repo := chatRepo.New(srv.db, srv.l)
	chats := chatUC.New(srv.l, repo, users, srv.resolver, nil, srv.defaults)
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, chats), mw)

	uploads := uploadUC.New(srv.l)
	uploadHTTP.RegisterRoutes(api, uploadHTTP.New(srv.l, uploads), mw)

	stats := dashboardUC.New(srv.l, repo, users, nil)
	dashboardHTTP.RegisterRoutes(api, dashboardHTTP.New(srv.l, stats), mw)

	srv.l.Infof(ctx, "Chat, upload and dashboard domains registered")
}
