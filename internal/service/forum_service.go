package service

import (
	"go.uber.org/zap"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/repository"
	"malama_health_backend/pkg/logger"
)

type ForumService struct {
	PostRepo *repository.ForumRepository
	UserRepo *repository.UserRepository
}

func NewForumService(postRepo *repository.ForumRepository, userRepo *repository.UserRepository) *ForumService {
	return &ForumService{PostRepo: postRepo, UserRepo: userRepo}
}

func (s *ForumService) GetPosts() ([]model.ForumPost, error) {
	return s.PostRepo.GetAll()
}

func (s *ForumService) GetPostsByCategory(category string) ([]model.ForumPost, error) {
	return s.PostRepo.GetByCategory(category)
}

// ViewPost fetches a post for display and counts the view. The returned
// post already carries the incremented counter.
func (s *ForumService) ViewPost(id string) (*model.ForumPost, error) {
	return s.PostRepo.IncrementViews(id)
}

// CreatePost stores the post and records it in the author's progress.
// The progress write targets a different collection with no transaction
// between the two; a failure there is logged and the post stands.
func (s *ForumService) CreatePost(post model.ForumPost) (*model.ForumPost, error) {
	created, err := s.PostRepo.Create(post)
	if err != nil {
		return nil, err
	}

	if _, err := s.UserRepo.UpdateProgress(created.AuthorID, model.UserProgress{
		ForumPosts: []string{created.ID},
	}); err != nil {
		logger.Log.Warn("failed to record post in author progress",
			zap.String("postId", created.ID),
			zap.String("authorId", created.AuthorID),
			zap.Error(err),
		)
	}

	return created, nil
}

func (s *ForumService) UpdatePost(id string, patch map[string]interface{}) (*model.ForumPost, error) {
	return s.PostRepo.Update(id, patch)
}

func (s *ForumService) DeletePost(id string) error {
	return s.PostRepo.Delete(id)
}

// AddComment appends the comment and records it in the author's progress,
// with the same best-effort semantics as CreatePost.
func (s *ForumService) AddComment(postID string, comment model.ForumComment) (*model.ForumComment, error) {
	created, err := s.PostRepo.AddComment(postID, comment)
	if err != nil {
		return nil, err
	}

	if _, err := s.UserRepo.UpdateProgress(created.AuthorID, model.UserProgress{
		ForumComments: []string{created.ID},
	}); err != nil {
		logger.Log.Warn("failed to record comment in author progress",
			zap.String("commentId", created.ID),
			zap.String("authorId", created.AuthorID),
			zap.Error(err),
		)
	}

	return created, nil
}

func (s *ForumService) LikePost(postID string) (*model.ForumPost, error) {
	return s.PostRepo.LikePost(postID)
}
