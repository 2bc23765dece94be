package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
)

var (
	ErrPostNotFound   = errors.New("Post not found")
	ErrPostPermission = errors.New("You do not have permission to modify this post")
)

type PostService struct {
	postRepo *repository.PostRepository
	userRepo *repository.UserRepository
}

func NewPostService(postRepo *repository.PostRepository, userRepo *repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create 게시글 작성
func (s *PostService) Create(userID int64, req *dto.CreatePostRequest) (*dto.PostItem, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	post := &model.Post{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.buildPostItem(post, user.Username, true), nil
}

// List 게시글 목록. 본문은 내려주지 않는다.
func (s *PostService) List(category, search string, page, pageSize int) ([]*dto.PostItem, int64, error) {
	posts, total, err := s.postRepo.List(category, search, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.buildPostItems(posts, false)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Get 게시글 상세. 조회수를 올린다.
func (s *PostService) Get(id int64) (*dto.PostItem, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if err := s.postRepo.IncrementViewCount(id); err != nil {
		return nil, err
	}
	post.ViewCount++

	username := s.lookupUsername(post.UserID)
	return s.buildPostItem(post, username, true), nil
}

// Update 게시글 수정. 작성자만 가능.
func (s *PostService) Update(userID, id int64, req *dto.UpdatePostRequest) (*dto.PostItem, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if post.UserID != userID {
		return nil, ErrPostPermission
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Category != nil {
		post.Category = *req.Category
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	username := s.lookupUsername(post.UserID)
	return s.buildPostItem(post, username, true), nil
}

// Delete 게시글 삭제. 작성자 또는 관리자만 가능.
func (s *PostService) Delete(userID, id int64, isAdmin bool) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if post.UserID != userID && !isAdmin {
		return ErrPostPermission
	}

	return s.postRepo.Delete(id)
}

func (s *PostService) lookupUsername(userID int64) string {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return ""
	}
	return user.Username
}

func (s *PostService) buildPostItem(post *model.Post, username string, withContent bool) *dto.PostItem {
	item := &dto.PostItem{
		ID:        post.ID,
		UserID:    post.UserID,
		Username:  username,
		Title:     post.Title,
		Category:  post.Category,
		ViewCount: post.ViewCount,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
	}
	if withContent {
		item.Content = post.Content
	}
	return item
}

func (s *PostService) buildPostItems(posts []*model.Post, withContent bool) ([]*dto.PostItem, error) {
	// 작성자 이름은 한 번에 모아서 조회한다
	usernames := make(map[int64]string)
	for _, p := range posts {
		usernames[p.UserID] = ""
	}
	for userID := range usernames {
		usernames[userID] = s.lookupUsername(userID)
	}

	items := make([]*dto.PostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, s.buildPostItem(p, usernames[p.UserID], withContent))
	}
	return items, nil
}
