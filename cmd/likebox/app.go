package main

import (
	"fmt"
	"io"

	"github.com/on-the-ground/likebox/box"
	"github.com/on-the-ground/likebox/config"
	"github.com/on-the-ground/likebox/likes"
	"github.com/on-the-ground/likebox/render"
	"github.com/on-the-ground/likebox/user"
	"github.com/on-the-ground/likebox/view"
	"go.uber.org/zap"
)

// app owns the like table and the latest rendered list.
type app struct {
	users   []user.User
	table   *likes.Table
	opts    []view.ListOption
	term    render.Terminal
	out     io.Writer
	logger  *zap.Logger
	items   []box.Container
	lastErr error
}

func newApp(cfg config.Config, logger *zap.Logger, out io.Writer) (*app, error) {
	dataset, err := user.LoadDatasetFile(cfg.Data)
	if err != nil {
		return nil, err
	}
	store, err := newStore(cfg.Store, dataset.Likes)
	if err != nil {
		return nil, err
	}

	a := &app{
		users:  dataset.Users,
		term:   render.NewTerminal(),
		out:    out,
		logger: logger,
	}
	if cfg.UpdateKey == config.UpdateKeyDateOfBirth {
		a.opts = append(a.opts, view.WithUpdateKey(view.KeyByDateOfBirth))
	}
	a.table = likes.NewTable(store, likes.Notifiers(
		likes.NewZapNotifier(logger),
		likes.NotifierFunc(a.rerender),
	))
	return a, nil
}

func newStore(kind string, init map[int64]int) (likes.Store, error) {
	switch kind {
	case config.StoreMemDB:
		return likes.NewMemDBStore(init)
	default:
		return likes.NewInMemoryStore(init), nil
	}
}

func (a *app) render() error {
	items, err := view.UserList(a.users, a.table, a.table.Update, a.opts...)
	if err != nil {
		return err
	}
	a.items = items
	_, err = fmt.Fprintln(a.out, a.term.RenderList(items))
	return err
}

func (a *app) rerender(likes.Notification) {
	if err := a.render(); err != nil {
		a.logger.Error("rerender failed", zap.Error(err))
		a.lastErr = err
	}
}

// click presses the like button of the user with the given id.
func (a *app) click(id int64) error {
	for i, u := range a.users {
		if u.ID == nil || *u.ID != id {
			continue
		}
		if i >= len(a.items) {
			return fmt.Errorf("user %d is not rendered", id)
		}
		buttons := box.Buttons(a.items[i])
		if len(buttons) == 0 {
			return fmt.Errorf("no like button for user %d", id)
		}
		a.lastErr = nil
		if err := buttons[0].Click(); err != nil {
			return err
		}
		return a.lastErr
	}
	return fmt.Errorf("%w: %d", likes.ErrNoSuchUser, id)
}
