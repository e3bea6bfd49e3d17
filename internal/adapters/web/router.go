package web

import (
	"context"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	commentPort "github.com/8ubble8uddy/yatube-project/internal/ports/comment"
	"github.com/8ubble8uddy/yatube-project/internal/ports/feedcache"
	groupPort "github.com/8ubble8uddy/yatube-project/internal/ports/group"
	postPort "github.com/8ubble8uddy/yatube-project/internal/ports/post"
	userPort "github.com/8ubble8uddy/yatube-project/internal/ports/user"
)

// Inbound ports required by the HTML views.

type PostUseCase interface {
	CreatePost(ctx context.Context, text, authorID string, groupID *string, image string) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, postID, actorID, text string, groupID *string, image string) (*postPort.PostDTO, error)
	GetPostByAuthor(ctx context.Context, username, postID string) (*postPort.PostDTO, error)
	Feed(ctx context.Context, page int) (*postPort.Page, error)
	GroupFeed(ctx context.Context, slug string, page int) (*groupPort.GroupDTO, *postPort.Page, error)
	ProfileFeed(ctx context.Context, username string, page int) (*userPort.UserDTO, *postPort.Page, error)
	FollowFeed(ctx context.Context, userID string, page int) (*postPort.Page, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error)
	ListByPost(ctx context.Context, postID string, offset, limit int) ([]*commentPort.CommentDTO, int64, error)
}

type FollowUseCase interface {
	Follow(ctx context.Context, userID, authorUsername string) error
	Unfollow(ctx context.Context, userID, authorUsername string) error
	IsFollowing(ctx context.Context, userID, authorUsername string) (bool, error)
}

type UserUseCase interface {
	RegisterUser(ctx context.Context, username, firstName, lastName, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
}

type GroupUseCase interface {
	ListGroups(ctx context.Context, offset, limit int) ([]*groupPort.GroupDTO, int64, error)
}

// Handlers renders the HTML site: feeds, post pages, forms and auth pages.
type Handlers struct {
	posts     PostUseCase
	comments  CommentUseCase
	follows   FollowUseCase
	users     UserUseCase
	groups    GroupUseCase
	cache     feedcache.Cache
	templates *template.Template
	jwtSecret []byte
	cacheTTL  time.Duration
	mediaDir  string
}

func NewHandlers(
	posts PostUseCase,
	comments CommentUseCase,
	follows FollowUseCase,
	users UserUseCase,
	groups GroupUseCase,
	cache feedcache.Cache,
	templates *template.Template,
	jwtSecret []byte,
	cacheTTL time.Duration,
	mediaDir string,
) *Handlers {
	return &Handlers{
		posts:     posts,
		comments:  comments,
		follows:   follows,
		users:     users,
		groups:    groups,
		cache:     cache,
		templates: templates,
		jwtSecret: jwtSecret,
		cacheTTL:  cacheTTL,
		mediaDir:  mediaDir,
	}
}

// RegisterRoutes mounts the site. Static segments are registered alongside the
// /:username wildcard; gin resolves static segments first.
func (h *Handlers) RegisterRoutes(r *gin.Engine) {
	r.Use(gin.CustomRecovery(h.recovered))
	r.NoRoute(h.notFound)
	r.Static("/media", h.mediaDir)

	login := h.authRequired()

	r.GET("/", h.index)

	r.GET("/about/author", h.aboutAuthor)
	r.GET("/about/tech", h.aboutTech)

	r.GET("/auth/signup", h.signupForm)
	r.POST("/auth/signup", h.signup)
	r.GET("/auth/login", h.loginForm)
	r.POST("/auth/login", h.login)
	r.GET("/auth/logout", h.logout)

	r.GET("/group/:slug", h.groupPosts)

	r.GET("/new", login, h.newPostForm)
	r.POST("/new", login, h.newPost)

	r.GET("/follow", login, h.followIndex)

	r.GET("/:username", h.profile)
	r.GET("/:username/follow", login, h.profileFollow)
	r.GET("/:username/unfollow", login, h.profileUnfollow)
	r.GET("/:username/:post_id", h.postView)
	r.GET("/:username/:post_id/edit", login, h.postEditForm)
	r.POST("/:username/:post_id/edit", login, h.postEdit)
	r.POST("/:username/:post_id/comment", login, h.addComment)
}
