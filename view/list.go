package view

import (
	"github.com/on-the-ground/likebox/box"
	"github.com/on-the-ground/likebox/user"
)

// LikeReader reads like counts by user id.
type LikeReader interface {
	Likes(id int64) (int, error)
}

// UpdateLikesFunc records a new like count for a user.
type UpdateLikesFunc func(id int64, count int) error

// UpdateKey selects the identifier a list item's button passes to the
// update function.
type UpdateKey int

const (
	KeyByID UpdateKey = iota
	// KeyByDateOfBirth passes the user's date of birth as unix milliseconds,
	// as the first version of the list did.
	KeyByDateOfBirth
)

type listOptions struct {
	updateKey UpdateKey
}

type ListOption func(*listOptions)

func WithUpdateKey(k UpdateKey) ListOption {
	return func(o *listOptions) {
		o.updateKey = k
	}
}

// UserList builds one FancyNameBox per user, in input order.
//
// Each like button calls update with the user's key and the count read
// at build time plus one. Every user needs an ID and an entry in likes.
func UserList(
	users []user.User,
	likes LikeReader,
	update UpdateLikesFunc,
	opts ...ListOption,
) ([]box.Container, error) {
	o := listOptions{updateKey: KeyByID}
	for _, opt := range opts {
		opt(&o)
	}

	items := make([]box.Container, 0, len(users))
	for _, u := range users {
		id, err := u.RequiredID()
		if err != nil {
			return nil, err
		}
		count, err := likes.Likes(id)
		if err != nil {
			return nil, err
		}
		key, err := updateKeyOf(u, id, o.updateKey)
		if err != nil {
			return nil, err
		}
		items = append(items, FancyNameBox(u, count, func() error {
			return update(key, count+1)
		}))
	}
	return items, nil
}

func updateKeyOf(u user.User, id int64, k UpdateKey) (int64, error) {
	switch k {
	case KeyByDateOfBirth:
		dob, err := u.RequiredDateOfBirth()
		if err != nil {
			return 0, err
		}
		return dob.UnixMilli(), nil
	default:
		return id, nil
	}
}
