package postapp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	groupEntity "github.com/8ubble8uddy/yatube-project/internal/core/group"
	postEntity "github.com/8ubble8uddy/yatube-project/internal/core/post"
	userEntity "github.com/8ubble8uddy/yatube-project/internal/core/user"
	postPort "github.com/8ubble8uddy/yatube-project/internal/ports/post"
)

// memStore is shared in-memory backing state for the repository fakes, so a
// post found through the post repo carries the same author row the user repo
// knows about.
type memStore struct {
	users    map[string]*userEntity.User
	groups   map[string]*groupEntity.Group
	posts    []*postEntity.Post
	followed map[string]map[string]bool
}

func newStore() *memStore {
	return &memStore{
		users:    make(map[string]*userEntity.User),
		groups:   make(map[string]*groupEntity.Group),
		followed: make(map[string]map[string]bool),
	}
}

func (m *memStore) addUser(username string) *userEntity.User {
	u := &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: username}
	m.users[u.ID.String()] = u
	return u
}

func (m *memStore) addGroup(title, slug string) *groupEntity.Group {
	g := &groupEntity.Group{ID: uuid.Must(uuid.NewV4()), Title: title, Slug: slug}
	m.groups[g.ID.String()] = g
	return g
}

func (m *memStore) follow(userID, authorID string) {
	if m.followed[userID] == nil {
		m.followed[userID] = make(map[string]bool)
	}
	m.followed[userID][authorID] = true
}

// hydrate mimics the Preloads the real repository does.
func (m *memStore) hydrate(p *postEntity.Post) *postEntity.Post {
	cp := *p
	if u, ok := m.users[p.AuthorID.String()]; ok {
		cp.Author = *u
	}
	if p.GroupID != nil {
		if g, ok := m.groups[p.GroupID.String()]; ok {
			gc := *g
			cp.Group = &gc
		}
	}
	return &cp
}

type fakePostRepo struct{ s *memStore }

func (r *fakePostRepo) Create(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	cp := *p
	r.s.posts = append(r.s.posts, &cp)
	return p, nil
}

func (r *fakePostRepo) Update(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	for i, stored := range r.s.posts {
		if stored.ID == p.ID {
			cp := *p
			r.s.posts[i] = &cp
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	kept := r.s.posts[:0]
	for _, p := range r.s.posts {
		if p.ID.String() != id {
			kept = append(kept, p)
		}
	}
	r.s.posts = kept
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id string) (*postEntity.Post, error) {
	for _, p := range r.s.posts {
		if p.ID.String() == id {
			return r.s.hydrate(p), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePostRepo) ListAll(_ context.Context, offset, limit int) ([]*postEntity.Post, int64, error) {
	return r.page(r.s.posts, offset, limit)
}

func (r *fakePostRepo) ListByGroup(_ context.Context, groupID string, offset, limit int) ([]*postEntity.Post, int64, error) {
	var matched []*postEntity.Post
	for _, p := range r.s.posts {
		if p.GroupID != nil && p.GroupID.String() == groupID {
			matched = append(matched, p)
		}
	}
	return r.page(matched, offset, limit)
}

func (r *fakePostRepo) ListByAuthor(_ context.Context, authorID string, offset, limit int) ([]*postEntity.Post, int64, error) {
	var matched []*postEntity.Post
	for _, p := range r.s.posts {
		if p.AuthorID.String() == authorID {
			matched = append(matched, p)
		}
	}
	return r.page(matched, offset, limit)
}

func (r *fakePostRepo) ListByFollowed(_ context.Context, userID string, offset, limit int) ([]*postEntity.Post, int64, error) {
	var matched []*postEntity.Post
	for _, p := range r.s.posts {
		if r.s.followed[userID][p.AuthorID.String()] {
			matched = append(matched, p)
		}
	}
	return r.page(matched, offset, limit)
}

// page returns posts newest-first, matching the real repository's ordering.
func (r *fakePostRepo) page(matched []*postEntity.Post, offset, limit int) ([]*postEntity.Post, int64, error) {
	total := int64(len(matched))

	reversed := make([]*postEntity.Post, 0, len(matched))
	for i := len(matched) - 1; i >= 0; i-- {
		reversed = append(reversed, matched[i])
	}

	if offset >= len(reversed) {
		return nil, total, nil
	}
	reversed = reversed[offset:]
	if limit > 0 && limit < len(reversed) {
		reversed = reversed[:limit]
	}

	out := make([]*postEntity.Post, 0, len(reversed))
	for _, p := range reversed {
		out = append(out, r.s.hydrate(p))
	}
	return out, total, nil
}

type fakeGroupRepo struct{ s *memStore }

func (r *fakeGroupRepo) Create(_ context.Context, g *groupEntity.Group) (*groupEntity.Group, error) {
	r.s.groups[g.ID.String()] = g
	return g, nil
}

func (r *fakeGroupRepo) FindByID(_ context.Context, id string) (*groupEntity.Group, error) {
	if g, ok := r.s.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroupRepo) FindBySlug(_ context.Context, slug string) (*groupEntity.Group, error) {
	for _, g := range r.s.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroupRepo) List(_ context.Context, offset, limit int) ([]*groupEntity.Group, int64, error) {
	var all []*groupEntity.Group
	for _, g := range r.s.groups {
		all = append(all, g)
	}
	return all, int64(len(all)), nil
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(_ context.Context, u *userEntity.User) (*userEntity.User, error) {
	r.s.users[u.ID.String()] = u
	return u, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*userEntity.User, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*userEntity.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestService() (*PostService, *memStore) {
	s := newStore()
	svc := NewPostService(&fakePostRepo{s}, &fakeGroupRepo{s}, &fakeUserRepo{s})
	return svc, s
}

func TestCreatePostStampsAuthor(t *testing.T) {
	svc, s := newTestService()
	u := s.addUser("leo")

	dto, err := svc.CreatePost(context.Background(), "hello world", u.ID.String(), nil, "")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if dto.AuthorID != u.ID.String() {
		t.Fatalf("expected author %s, got %s", u.ID, dto.AuthorID)
	}
	if dto.Author != "leo" {
		t.Fatalf("expected author username leo, got %s", dto.Author)
	}
}

func TestCreatePostRequiresText(t *testing.T) {
	svc, s := newTestService()
	u := s.addUser("leo")

	if _, err := svc.CreatePost(context.Background(), "   ", u.ID.String(), nil, ""); !errors.Is(err, ErrTextRequired) {
		t.Fatalf("expected ErrTextRequired, got %v", err)
	}
	if len(s.posts) != 0 {
		t.Fatalf("expected no posts stored, got %d", len(s.posts))
	}
}

func TestCreatePostUnknownGroup(t *testing.T) {
	svc, s := newTestService()
	u := s.addUser("leo")
	bogus := uuid.Must(uuid.NewV4()).String()

	if _, err := svc.CreatePost(context.Background(), "text", u.ID.String(), &bogus, ""); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestFeedPagination(t *testing.T) {
	svc, s := newTestService()
	u := s.addUser("leo")
	for i := 0; i < 15; i++ {
		if _, err := svc.CreatePost(context.Background(), fmt.Sprintf("post %d", i), u.ID.String(), nil, ""); err != nil {
			t.Fatalf("CreatePost %d: %v", i, err)
		}
	}

	page, err := svc.Feed(context.Background(), 1)
	if err != nil {
		t.Fatalf("Feed page 1: %v", err)
	}
	if len(page.Items) != PageSize {
		t.Fatalf("expected %d items on page 1, got %d", PageSize, len(page.Items))
	}
	if page.Total != 15 || page.TotalPages != 2 {
		t.Fatalf("expected total 15 over 2 pages, got %d over %d", page.Total, page.TotalPages)
	}
	if !page.HasNext || page.HasPrev {
		t.Fatalf("page 1 of 2: HasNext=%v HasPrev=%v", page.HasNext, page.HasPrev)
	}
	if page.Items[0].Text != "post 14" {
		t.Fatalf("expected newest post first, got %q", page.Items[0].Text)
	}

	page, err = svc.Feed(context.Background(), 2)
	if err != nil {
		t.Fatalf("Feed page 2: %v", err)
	}
	if len(page.Items) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(page.Items))
	}
	if page.HasNext || !page.HasPrev {
		t.Fatalf("page 2 of 2: HasNext=%v HasPrev=%v", page.HasNext, page.HasPrev)
	}
}

func TestFeedClampsPageNumber(t *testing.T) {
	svc, s := newTestService()
	u := s.addUser("leo")
	for i := 0; i < 15; i++ {
		if _, err := svc.CreatePost(context.Background(), fmt.Sprintf("post %d", i), u.ID.String(), nil, ""); err != nil {
			t.Fatalf("CreatePost %d: %v", i, err)
		}
	}

	page, err := svc.Feed(context.Background(), 99)
	if err != nil {
		t.Fatalf("Feed page 99: %v", err)
	}
	if page.Number != 2 || len(page.Items) != 5 {
		t.Fatalf("expected clamp to last page (2, 5 items), got page %d with %d items", page.Number, len(page.Items))
	}

	page, err = svc.Feed(context.Background(), 0)
	if err != nil {
		t.Fatalf("Feed page 0: %v", err)
	}
	if page.Number != 1 {
		t.Fatalf("expected clamp to page 1, got %d", page.Number)
	}
}

func TestGroupFeedIsolation(t *testing.T) {
	svc, s := newTestService()
	u := s.addUser("leo")
	cats := s.addGroup("Cats", "cats")
	dogs := s.addGroup("Dogs", "dogs")

	catsID := cats.ID.String()
	dogsID := dogs.ID.String()
	mustCreate(t, svc, "about cats", u.ID.String(), &catsID)
	mustCreate(t, svc, "about dogs", u.ID.String(), &dogsID)
	mustCreate(t, svc, "no group", u.ID.String(), nil)

	g, page, err := svc.GroupFeed(context.Background(), "cats", 1)
	if err != nil {
		t.Fatalf("GroupFeed: %v", err)
	}
	if g.Slug != "cats" {
		t.Fatalf("expected group cats, got %s", g.Slug)
	}
	if len(page.Items) != 1 || page.Items[0].Text != "about cats" {
		t.Fatalf("expected only the cats post, got %d items", len(page.Items))
	}

	if _, _, err := svc.GroupFeed(context.Background(), "birds", 1); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestProfileFeed(t *testing.T) {
	svc, s := newTestService()
	leo := s.addUser("leo")
	mia := s.addUser("mia")
	mustCreate(t, svc, "by leo", leo.ID.String(), nil)
	mustCreate(t, svc, "by mia", mia.ID.String(), nil)

	author, page, err := svc.ProfileFeed(context.Background(), "leo", 1)
	if err != nil {
		t.Fatalf("ProfileFeed: %v", err)
	}
	if author.Username != "leo" {
		t.Fatalf("expected author leo, got %s", author.Username)
	}
	if len(page.Items) != 1 || page.Items[0].Text != "by leo" {
		t.Fatalf("expected only leo's post, got %d items", len(page.Items))
	}

	if _, _, err := svc.ProfileFeed(context.Background(), "nobody", 1); !errors.Is(err, ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestFollowFeedOnlyFollowedAuthors(t *testing.T) {
	svc, s := newTestService()
	reader := s.addUser("reader")
	followed := s.addUser("followed")
	other := s.addUser("other")
	s.follow(reader.ID.String(), followed.ID.String())

	mustCreate(t, svc, "from followed", followed.ID.String(), nil)
	mustCreate(t, svc, "from other", other.ID.String(), nil)

	page, err := svc.FollowFeed(context.Background(), reader.ID.String(), 1)
	if err != nil {
		t.Fatalf("FollowFeed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Text != "from followed" {
		t.Fatalf("expected only the followed author's post, got %d items", len(page.Items))
	}
}

func TestUpdatePostByNonAuthor(t *testing.T) {
	svc, s := newTestService()
	author := s.addUser("author")
	intruder := s.addUser("intruder")
	dto := mustCreate(t, svc, "original", author.ID.String(), nil)

	if _, err := svc.UpdatePost(context.Background(), dto.ID, intruder.ID.String(), "hacked", nil, ""); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}

	got, err := svc.GetPost(context.Background(), dto.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got.Text != "original" {
		t.Fatalf("post was mutated by non-author: %q", got.Text)
	}
}

func TestUpdatePostClearsGroup(t *testing.T) {
	svc, s := newTestService()
	author := s.addUser("author")
	g := s.addGroup("Cats", "cats")
	gid := g.ID.String()
	dto := mustCreate(t, svc, "text", author.ID.String(), &gid)
	if dto.Group == nil {
		t.Fatalf("expected group on created post")
	}

	updated, err := svc.UpdatePost(context.Background(), dto.ID, author.ID.String(), "text", nil, "")
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if updated.Group != nil {
		t.Fatalf("expected group cleared, got %v", updated.Group)
	}
}

func TestUpdatePostKeepsImageWhenEmpty(t *testing.T) {
	svc, s := newTestService()
	author := s.addUser("author")
	dto, err := svc.CreatePost(context.Background(), "text", author.ID.String(), nil, "posts/cat.png")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	updated, err := svc.UpdatePost(context.Background(), dto.ID, author.ID.String(), "new text", nil, "")
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if updated.Image != "posts/cat.png" {
		t.Fatalf("expected image kept, got %q", updated.Image)
	}
}

func TestGetPostByAuthorMismatch(t *testing.T) {
	svc, s := newTestService()
	leo := s.addUser("leo")
	s.addUser("mia")
	dto := mustCreate(t, svc, "text", leo.ID.String(), nil)

	if _, err := svc.GetPostByAuthor(context.Background(), "mia", dto.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound for mismatched author, got %v", err)
	}
	if _, err := svc.GetPostByAuthor(context.Background(), "leo", dto.ID); err != nil {
		t.Fatalf("expected post for matching author, got %v", err)
	}
}

func TestDeletePost(t *testing.T) {
	svc, s := newTestService()
	author := s.addUser("author")
	intruder := s.addUser("intruder")
	dto := mustCreate(t, svc, "text", author.ID.String(), nil)

	if err := svc.DeletePost(context.Background(), dto.ID, intruder.ID.String()); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
	if err := svc.DeletePost(context.Background(), dto.ID, author.ID.String()); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if _, err := svc.GetPost(context.Background(), dto.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
}

func mustCreate(t *testing.T, svc *PostService, text, authorID string, groupID *string) *postPort.PostDTO {
	t.Helper()
	dto, err := svc.CreatePost(context.Background(), text, authorID, groupID, "")
	if err != nil {
		t.Fatalf("CreatePost %q: %v", text, err)
	}
	return dto
}
