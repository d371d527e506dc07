package service

import (
	"time"

	"newsroom/models"
)

// Clock returns the current time. Extracted so tests can freeze it.
type Clock func() time.Time

// AuditStamper fills blame and timestamp fields on mutated records.
// Creation stamps both the creator and the editor; updates only touch the
// editor side, so the original creator is preserved for the lifetime of
// the record.
type AuditStamper struct {
	now Clock
}

func NewAuditStamper() *AuditStamper {
	return &AuditStamper{now: time.Now}
}

// StampNewsCreate marks news as created by actor right now.
func (s *AuditStamper) StampNewsCreate(news *models.News, actor models.User) {
	now := s.now()
	news.CreatedBy = actor
	news.UpdatedBy = actor
	news.CreatedAt = now
	news.UpdatedAt = now
}

// StampNewsUpdate marks news as last edited by actor right now.
// CreatedBy and CreatedAt are left untouched.
func (s *AuditStamper) StampNewsUpdate(news *models.News, actor models.User) {
	news.UpdatedBy = actor
	news.UpdatedAt = s.now()
}

// StampUserCreate sets both timestamps of a new account.
func (s *AuditStamper) StampUserCreate(user *models.User) {
	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now
}

// StampUserUpdate refreshes the modification timestamp of an account.
func (s *AuditStamper) StampUserUpdate(user *models.User) {
	user.UpdatedAt = s.now()
}
