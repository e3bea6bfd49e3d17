package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/8ubble8uddy/yatube-project/internal/adapters/httpapi/middleware"
	commentPort "github.com/8ubble8uddy/yatube-project/internal/ports/comment"
	followPort "github.com/8ubble8uddy/yatube-project/internal/ports/follow"
	groupPort "github.com/8ubble8uddy/yatube-project/internal/ports/group"
	postPort "github.com/8ubble8uddy/yatube-project/internal/ports/post"
	userPort "github.com/8ubble8uddy/yatube-project/internal/ports/user"
)

// Inbound ports required by the API controllers.

type UserUseCase interface {
	RegisterUser(ctx context.Context, username, firstName, lastName, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, text, authorID string, groupID *string, image string) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, postID, actorID, text string, groupID *string, image string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, postID, actorID string) error
	GetPost(ctx context.Context, postID string) (*postPort.PostDTO, error)
	ListPosts(ctx context.Context, offset, limit int) ([]*postPort.PostDTO, int64, error)
}

type GroupUseCase interface {
	GetByID(ctx context.Context, id string) (*groupPort.GroupDTO, error)
	ListGroups(ctx context.Context, offset, limit int) ([]*groupPort.GroupDTO, int64, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error)
	ListByPost(ctx context.Context, postID string, offset, limit int) ([]*commentPort.CommentDTO, int64, error)
	GetComment(ctx context.Context, id string) (*commentPort.CommentDTO, error)
	UpdateComment(ctx context.Context, id, actorID, text string) (*commentPort.CommentDTO, error)
	DeleteComment(ctx context.Context, id, actorID string) error
}

type FollowUseCase interface {
	Follow(ctx context.Context, userID, authorUsername string) error
	ListFollows(ctx context.Context, userID, search string, offset, limit int) ([]*followPort.FollowDTO, int64, error)
}

// RegisterRoutes mounts the JSON API under /api. Reads are public; every
// write goes through the JWT gate, and mutating a resource additionally
// requires being its author (checked in the controllers).
func RegisterRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	userUC UserUseCase,
	postUC PostUseCase,
	groupUC GroupUseCase,
	commentUC CommentUseCase,
	followUC FollowUseCase,
) {
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	gc := NewGroupController(groupUC)
	cc := NewCommentController(commentUC)
	fc := NewFollowController(followUC)

	auth := middleware.JWTAuth(jwtSecret)
	api := r.Group("/api")

	api.POST("/auth/signup", uc.RegisterUser)
	api.POST("/auth/login", uc.LoginUser)

	api.GET("/posts", pc.ListPosts)
	api.POST("/posts", auth, pc.CreatePost)
	api.GET("/posts/:id", pc.GetPost)
	api.PUT("/posts/:id", auth, pc.UpdatePost)
	api.PATCH("/posts/:id", auth, pc.PatchPost)
	api.DELETE("/posts/:id", auth, pc.DeletePost)

	api.GET("/posts/:id/comments", cc.ListComments)
	api.POST("/posts/:id/comments", auth, cc.AddComment)
	api.GET("/posts/:id/comments/:comment_id", cc.GetComment)
	api.PUT("/posts/:id/comments/:comment_id", auth, cc.UpdateComment)
	api.PATCH("/posts/:id/comments/:comment_id", auth, cc.UpdateComment)
	api.DELETE("/posts/:id/comments/:comment_id", auth, cc.DeleteComment)

	api.GET("/groups", gc.ListGroups)
	api.GET("/groups/:id", gc.GetGroup)

	api.GET("/follow", auth, fc.ListFollows)
	api.POST("/follow", auth, fc.Follow)
}
