package prefs

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	DefaultTheme = Light
)

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

func (t Theme) IsDark() bool {
	return t == Dark
}

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"

	DefaultLanguage = English
)

func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

func (l Language) Valid() bool {
	return l == English || l == Arabic
}

// RTL reports whether the language is written right to left
func (l Language) RTL() bool {
	return l == Arabic
}

// Store persists preferences. Getters never fail, saves only log.
type Store interface {
	GetTheme(ctx context.Context) Theme
	SaveTheme(ctx context.Context, t Theme)
	GetLanguage(ctx context.Context) Language
	SaveLanguage(ctx context.Context, l Language)
}

// Preferences is the in-memory copy of theme and language
type Preferences struct {
	Theme    Theme
	Language Language

	store Store
}

func New(store Store) *Preferences {
	return &Preferences{Theme: DefaultTheme, Language: DefaultLanguage, store: store}
}

// Load reads theme and language side by side. The getters fall back to the
// defaults on their own, so only a cancelled ctx fails it, and then nothing
// is changed.
func (p *Preferences) Load(ctx context.Context) error {
	var (
		theme Theme
		lang  Language
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		theme = p.store.GetTheme(ctx)
		return ctx.Err()
	})
	g.Go(func() error {
		lang = p.store.GetLanguage(ctx)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return err
	}
	p.Theme, p.Language = theme, lang
	return nil
}

func (p *Preferences) ToggleTheme(ctx context.Context) Theme {
	p.Theme = p.Theme.Toggle()
	p.store.SaveTheme(ctx, p.Theme)
	return p.Theme
}

func (p *Preferences) ToggleLanguage(ctx context.Context) Language {
	return p.SetLanguage(ctx, p.Language.Toggle())
}

// SetLanguage ignores languages without translations
func (p *Preferences) SetLanguage(ctx context.Context, l Language) Language {
	if !l.Valid() {
		return p.Language
	}
	p.Language = l
	p.store.SaveLanguage(ctx, l)
	return p.Language
}
