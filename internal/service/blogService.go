package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/sirupsen/logrus"
)

const blogImageDir = "blogs"

// Paragraphs accepts a JSON array, a JSON-encoded array inside a string,
// or plain text that becomes a single paragraph.
type Paragraphs []string

func (p *Paragraphs) UnmarshalJSON(b []byte) error {
	var items []interface{}
	if err := json.Unmarshal(b, &items); err == nil {
		*p = paragraphsFrom(items)
		return nil
	}

	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return fmt.Errorf("content must be an array or a string")
	}
	*p = ParseParagraphs(text)
	return nil
}

func (p *Paragraphs) UnmarshalParam(param string) error {
	*p = ParseParagraphs(param)
	return nil
}

// ParseParagraphs drops blank entries and never returns nil.
func ParseParagraphs(raw string) Paragraphs {
	var items []interface{}
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		return paragraphsFrom(items)
	}
	if text := strings.TrimSpace(raw); text != "" {
		return Paragraphs{text}
	}
	return Paragraphs{}
}

func paragraphsFrom(items []interface{}) Paragraphs {
	out := make(Paragraphs, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		var text string
		if s, ok := item.(string); ok {
			text = s
		} else {
			text = fmt.Sprint(item)
		}
		if text = strings.TrimSpace(text); text != "" {
			out = append(out, text)
		}
	}
	return out
}

type BlogInput struct {
	Title       *string     `json:"title" form:"title"`
	Tag         *string     `json:"tag" form:"tag"`
	Date        *string     `json:"date" form:"date"`
	ReadingTime *string     `json:"readingTime" form:"readingTime"`
	Author      *string     `json:"author" form:"author"`
	Image       *string     `json:"image" form:"image"`
	Excerpt     *string     `json:"excerpt" form:"excerpt"`
	Content     *Paragraphs `json:"content" form:"content"`

	ImageFile *multipart.FileHeader `json:"-" form:"-"`
}

func (in *BlogInput) apply(post *entity.BlogPost) {
	setString(&post.Title, in.Title)
	setString(&post.Tag, in.Tag)
	setString(&post.Date, in.Date)
	setString(&post.ReadingTime, in.ReadingTime)
	setString(&post.Author, in.Author)
	setString(&post.Image, in.Image)
	setString(&post.Excerpt, in.Excerpt)
	if in.Content != nil {
		post.Content = []string(*in.Content)
	}
}

type blogService struct {
	blogRepo database.BlogRepository
	uploader ImageUploader
}

func NewBlogService(blogRepo database.BlogRepository, uploader ImageUploader) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		uploader: uploader,
	}
}

func (s *blogService) CreatePost(ctx context.Context, in *BlogInput) (*entity.BlogPost, error) {
	post := &entity.BlogPost{Content: []string{}}
	in.apply(post)
	if err := validation.Struct(post); err != nil {
		return nil, err
	}
	if err := s.attachImage(ctx, post, in.ImageFile); err != nil {
		return nil, err
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	logrus.WithFields(logrus.Fields{"post_id": post.ID, "title": post.Title}).Info("Blog post created")
	return post, nil
}

func (s *blogService) GetPost(ctx context.Context, id string) (*entity.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *blogService) ListPosts(ctx context.Context) ([]entity.BlogPost, error) {
	posts, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id string, in *BlogInput) (*entity.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(post)
	if err := validation.Struct(post); err != nil {
		return nil, err
	}
	if err := s.attachImage(ctx, post, in.ImageFile); err != nil {
		return nil, err
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) DeletePost(ctx context.Context, id string) (*entity.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) attachImage(ctx context.Context, post *entity.BlogPost, fh *multipart.FileHeader) error {
	if fh == nil || s.uploader == nil {
		return nil
	}
	url, err := s.uploader.Upload(ctx, blogImageDir, fh)
	if err != nil {
		return err
	}
	post.Image = url
	return nil
}
