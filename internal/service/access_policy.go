package service

import "newsroom/models"

// AccessPolicy decides whether an acting user may mutate a resource.
// Anonymous actors are always denied.
type AccessPolicy struct{}

func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanEditNews reports whether actor may edit news. Only the creator may.
func (p *AccessPolicy) CanEditNews(actor models.User, news models.News) bool {
	if actor.IsAnonymous() {
		return false
	}

	return actor.ID == news.CreatedBy.ID
}

// CanDeleteNews reports whether actor may delete news. Deletion follows
// the same rule as editing.
func (p *AccessPolicy) CanDeleteNews(actor models.User, news models.News) bool {
	return p.CanEditNews(actor, news)
}

// CanManageUser reports whether actor may edit or delete the target
// account. Only the account owner may.
func (p *AccessPolicy) CanManageUser(actor, target models.User) bool {
	if actor.IsAnonymous() {
		return false
	}

	return actor.ID == target.ID
}
