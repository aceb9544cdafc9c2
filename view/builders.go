// Package view composes box descriptors from user data.
//
// Builders are pure: they never mutate their inputs and return a fresh
// tree on every call. Child order is display order.
package view

import (
	"fmt"
	"time"

	"github.com/on-the-ground/likebox/box"
	"github.com/on-the-ground/likebox/pure"
	"github.com/on-the-ground/likebox/user"
	"github.com/rickb777/date/v2/timespan"
)

func NameBox(name string) box.Label {
	return box.Label{Style: box.Bold(), Content: box.Text(name)}
}

func FancyUserBox(u user.User) box.Container {
	return box.Container{
		Style:    box.Bordered(box.ColorBlue),
		Children: []box.Node{box.Text("Name: "), NameBox(u.FullName())},
	}
}

func FancyBox(children ...box.Node) box.Container {
	return box.Container{
		Style:    box.Bordered(box.ColorBlue),
		Children: children,
	}
}

// UserBox builds the same tree as FancyUserBox through FancyBox.
func UserBox(u user.User) box.Container {
	return FancyBox(box.Text("Name: "), NameBox(u.FullName()))
}

func LikeBox(likes int) box.Label {
	return box.Label{Style: box.Bordered(box.ColorRed), Content: box.Number(likes)}
}

func LikeButton(onClick func() error) box.Button {
	return box.Button{OnClick: onClick}
}

func FancyNameBox(u user.User, likes int, onClick func() error) box.Container {
	return FancyBox(
		box.Text("Name: "),
		NameBox(u.FullName()),
		box.Text("Likes: "),
		LikeBox(likes),
		LikeButton(onClick),
	)
}

// NewNameAndAgeBox returns a builder showing a user's name and age in
// milliseconds at now. The name label is memoized with a locked slot, so
// consecutive builds for the same name reuse it and the builder is safe
// for concurrent use.
func NewNameAndAgeBox() func(u user.User, now time.Time) (box.Container, error) {
	return NameAndAgeBoxOf(pure.SyncMemoizeI1O1(NameBox))
}

// NameAndAgeBoxOf is NewNameAndAgeBox with the name label built by nameBox.
func NameAndAgeBoxOf(nameBox func(string) box.Label) func(u user.User, now time.Time) (box.Container, error) {
	return func(u user.User, now time.Time) (box.Container, error) {
		dob, err := u.RequiredDateOfBirth()
		if err != nil {
			return box.Container{}, err
		}
		if now.Before(dob) {
			return box.Container{}, fmt.Errorf("%w: date_of_birth %s of %q is after %s",
				user.ErrInvalidField, dob.Format(time.RFC3339), u.FullName(), now.Format(time.RFC3339))
		}
		age := timespan.BetweenTimes(dob, now).Duration()
		return FancyBox(
			box.Text("Name: "),
			nameBox(u.FullName()),
			box.Text("Age in milliseconds: "),
			box.Number(age.Milliseconds()),
		), nil
	}
}
