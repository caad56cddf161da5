package repository

import (
	"sync"
	"time"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/util"
	"malama_health_backend/pkg/store"
)

type ForumRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewForumRepository(s store.Store) *ForumRepository {
	return &ForumRepository{store: s}
}

func (r *ForumRepository) load() ([]model.ForumPost, error) {
	var posts []model.ForumPost
	if err := r.store.ReadAll(store.ForumPosts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *ForumRepository) GetAll() ([]model.ForumPost, error) {
	return r.load()
}

func (r *ForumRepository) GetByID(id string) (*model.ForumPost, error) {
	posts, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, util.ErrPostNotFound
}

func (r *ForumRepository) GetByCategory(category string) ([]model.ForumPost, error) {
	posts, err := r.load()
	if err != nil {
		return nil, err
	}
	matched := make([]model.ForumPost, 0)
	for _, p := range posts {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *ForumRepository) Create(post model.ForumPost) (*model.ForumPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.ID = r.store.GenerateID()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Comments = []model.ForumComment{}
	post.Likes = 0
	post.Views = 0
	if post.Tags == nil {
		post.Tags = []string{}
	}

	posts = append(posts, post)
	if err := r.store.WriteAll(store.ForumPosts, posts); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *ForumRepository) Update(id string, patch map[string]interface{}) (*model.ForumPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := r.indexOf(posts, id)
	if idx == -1 {
		return nil, util.ErrPostNotFound
	}

	delete(patch, "id")
	delete(patch, "createdAt")

	if err := util.MergePatch(&posts[idx], patch); err != nil {
		return nil, err
	}
	posts[idx].UpdatedAt = time.Now().UTC()

	if err := r.store.WriteAll(store.ForumPosts, posts); err != nil {
		return nil, err
	}
	return &posts[idx], nil
}

func (r *ForumRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return err
	}

	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return util.ErrPostNotFound
	}

	return r.store.WriteAll(store.ForumPosts, kept)
}

// AddComment appends a comment to the post's embedded list and stamps the
// post's updated time. The new comment is returned.
func (r *ForumRepository) AddComment(postID string, comment model.ForumComment) (*model.ForumComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := r.indexOf(posts, postID)
	if idx == -1 {
		return nil, util.ErrPostNotFound
	}

	now := time.Now().UTC()
	comment.ID = r.store.GenerateID()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	comment.Likes = 0

	posts[idx].Comments = append(posts[idx].Comments, comment)
	posts[idx].UpdatedAt = now

	if err := r.store.WriteAll(store.ForumPosts, posts); err != nil {
		return nil, err
	}
	return &comment, nil
}

// LikePost adds exactly one like per call. There is no dedup: the same
// caller can like a post any number of times. Client-side dedup is
// advisory only.
func (r *ForumRepository) LikePost(postID string) (*model.ForumPost, error) {
	return r.bump(postID, func(p *model.ForumPost) { p.Likes++ })
}

// IncrementViews adds one view per call, same no-dedup caveat as LikePost.
func (r *ForumRepository) IncrementViews(postID string) (*model.ForumPost, error) {
	return r.bump(postID, func(p *model.ForumPost) { p.Views++ })
}

func (r *ForumRepository) bump(postID string, apply func(*model.ForumPost)) (*model.ForumPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := r.indexOf(posts, postID)
	if idx == -1 {
		return nil, util.ErrPostNotFound
	}

	apply(&posts[idx])

	if err := r.store.WriteAll(store.ForumPosts, posts); err != nil {
		return nil, err
	}
	return &posts[idx], nil
}

func (r *ForumRepository) indexOf(posts []model.ForumPost, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}
