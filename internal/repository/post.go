package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"retrolog/internal/cache"
	"retrolog/internal/models"
	"retrolog/internal/observability"

	"gorm.io/gorm"
)

// postRecord is the persisted shape of a post document. Comments live in a
// JSON column so the whole document round-trips through GET/PUT exactly as it
// does over the wire. The soft-delete flag is application data, not a gorm
// deletion scope: soft-deleted rows stay fully visible to the server, and
// filtering them out is a client rule.
type postRecord struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"type:text;not null"`
	Author    string `gorm:"not null"`
	Image     string
	CreatedAt time.Time
	EditedAt  *time.Time
	IsDeleted bool `gorm:"not null;default:false"`
	DeletedAt *time.Time
	Comments  []byte `gorm:"type:jsonb;not null;default:'[]'"`
}

func (postRecord) TableName() string { return "posts" }

func (r *postRecord) toModel() (*models.Post, error) {
	comments := []models.Comment{}
	if len(r.Comments) > 0 {
		if err := json.Unmarshal(r.Comments, &comments); err != nil {
			return nil, err
		}
	}
	return &models.Post{
		ID:        models.FlexID(r.ID),
		UserID:    models.FlexID(r.UserID),
		Title:     r.Title,
		Content:   r.Content,
		Author:    r.Author,
		Image:     r.Image,
		CreatedAt: r.CreatedAt,
		EditedAt:  r.EditedAt,
		IsDeleted: r.IsDeleted,
		DeletedAt: r.DeletedAt,
		Comments:  comments,
	}, nil
}

func recordFromPost(post *models.Post) (*postRecord, error) {
	comments := post.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	data, err := json.Marshal(comments)
	if err != nil {
		return nil, err
	}
	return &postRecord{
		ID:        uint(post.ID.Int64()),
		UserID:    post.UserID.Int64(),
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		Image:     post.Image,
		CreatedAt: post.CreatedAt,
		EditedAt:  post.EditedAt,
		IsDeleted: post.IsDeleted,
		DeletedAt: post.DeletedAt,
		Comments:  data,
	}, nil
}

// PostRepository defines the interface for post document operations
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Replace(ctx context.Context, id int64, post *models.Post) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// List returns every post document, soft-deleted ones included.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "List", "posts")
	defer span.End()
	defer observability.TrackQuery("list", "posts")()

	posts := []models.Post{}
	err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.PostsListTTL, func() error {
		var records []postRecord
		if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&records).Error; err != nil {
			return err
		}
		posts = posts[:0]
		for i := range records {
			post, err := records[i].toModel()
			if err != nil {
				return err
			}
			posts = append(posts, *post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID returns (nil, nil) when no document exists for the id.
func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "GetByID", "posts")
	defer span.End()
	defer observability.TrackQuery("get", "posts")()

	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		var record postRecord
		if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
			return err
		}
		converted, err := record.toModel()
		if err != nil {
			return err
		}
		post = *converted
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create stores a new document and assigns the canonical id.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "Create", "posts")
	defer span.End()
	defer observability.TrackQuery("create", "posts")()

	record, err := recordFromPost(post)
	if err != nil {
		return err
	}
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}
	post.ID = models.FlexID(record.ID)
	cache.InvalidatePostsList(ctx)
	return nil
}

// Replace overwrites the whole document, matching the PUT semantics the
// client's read-modify-write flows depend on. Returns false when no row
// exists for the id.
func (r *postRepository) Replace(ctx context.Context, id int64, post *models.Post) (bool, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "Replace", "posts")
	defer span.End()
	defer observability.TrackQuery("replace", "posts")()

	post.ID = models.FlexID(id)
	record, err := recordFromPost(post)
	if err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).Model(&postRecord{}).Where("id = ?", id).
		Select("*").Omit("id").Updates(record)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	cache.InvalidatePost(ctx, id)
	cache.InvalidatePostsList(ctx)
	return true, nil
}
