package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsroom/models"
)

func TestAccessPolicy_CanEditNews(t *testing.T) {
	policy := NewAccessPolicy()

	creator := models.User{ID: 7}
	other := models.User{ID: 8}
	anonymous := models.User{}
	news := models.News{ID: 3, CreatedBy: creator}

	assert.True(t, policy.CanEditNews(creator, news))
	assert.False(t, policy.CanEditNews(other, news))
	assert.False(t, policy.CanEditNews(anonymous, news))
}

func TestAccessPolicy_CanDeleteNews_FollowsEditRule(t *testing.T) {
	policy := NewAccessPolicy()

	creator := models.User{ID: 7}
	other := models.User{ID: 8}
	news := models.News{ID: 3, CreatedBy: creator}

	assert.Equal(t, policy.CanEditNews(creator, news), policy.CanDeleteNews(creator, news))
	assert.Equal(t, policy.CanEditNews(other, news), policy.CanDeleteNews(other, news))
}

func TestAccessPolicy_CanManageUser(t *testing.T) {
	policy := NewAccessPolicy()

	owner := models.User{ID: 7}
	other := models.User{ID: 8}
	anonymous := models.User{}

	assert.True(t, policy.CanManageUser(owner, owner))
	assert.False(t, policy.CanManageUser(other, owner))
	assert.False(t, policy.CanManageUser(anonymous, owner))
}

func TestAccessPolicy_AnonymousNewsByAnonymousCreator(t *testing.T) {
	policy := NewAccessPolicy()

	// an item with a zero-id creator must not be editable by anonymous actors
	news := models.News{ID: 3, CreatedBy: models.User{}}
	assert.False(t, policy.CanEditNews(models.User{}, news))
}
