package specification

import "gorm.io/gorm"

// OwnedBy filters notebooks by their owning user id
type OwnedBy struct {
	UserID uint
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// PublicOnly restricts to publicly visible notebooks
type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ?", true)
}

// MatchesQuery filters notebooks whose title, description or tag string
// contains the query as a substring. Plain LIKE keeps the match
// case-sensitive on postgres.
type MatchesQuery struct {
	Query string
}

func (s MatchesQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title LIKE ? OR description LIKE ? OR tags LIKE ?", pattern, pattern, pattern)
}

// HasTag filters notebooks whose tag string contains the tag as a substring
type HasTag struct {
	Tag string
}

func (s HasTag) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tags LIKE ?", "%"+s.Tag+"%")
}

// ByTitle filters by exact title
type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}
