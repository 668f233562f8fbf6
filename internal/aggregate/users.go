package aggregate

import "github.com/minerahub/dashboard/backend/internal/models"

// IndexUsers maps user id to user.
func IndexUsers(users []models.User) map[uint]models.User {
	index := make(map[uint]models.User, len(users))
	for _, u := range users {
		index[u.ID] = u
	}
	return index
}

// Participant resolves a user id, falling back to the unknown-user placeholder.
func Participant(index map[uint]models.User, id uint) models.UserCompact {
	if u, ok := index[id]; ok {
		return u.ToCompact()
	}
	return models.UnknownCompact(id)
}

// Username resolves a display name, falling back to models.UnknownUsername.
func Username(index map[uint]models.User, id uint) string {
	if u, ok := index[id]; ok && u.Username != "" {
		return u.Username
	}
	return models.UnknownUsername
}
