// File: i18n.go
// Title: Locale Calendars
// Description: Loads the embedded locale calendars (month names, day names and
//              AM/PM designators) and matches requested locales against them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML translation files
// - 2026-10-12 v0.2.0: Replaced translation manager with embedded calendars
//                       matched through golang.org/x/text/language

package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	tkerrors "github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/utils/mapx"
)

// InvariantLocale names the culture-neutral calendar
const InvariantLocale = "invariant"

//go:embed locales/*.toml
var localeFS embed.FS

// Calendar holds the culture-specific names used when rendering dates
type Calendar struct {
	Locale     string   `toml:"locale"`
	Name       string   `toml:"name"`
	Months     []string `toml:"months"`
	MonthsAbbr []string `toml:"months_abbr"`
	Days       []string `toml:"days"`
	DaysAbbr   []string `toml:"days_abbr"`
	AM         string   `toml:"am"`
	PM         string   `toml:"pm"`
}

// MonthName returns the full name of m
func (c *Calendar) MonthName(m time.Month) string {
	return c.Months[m-1]
}

// MonthAbbr returns the abbreviated name of m
func (c *Calendar) MonthAbbr(m time.Month) string {
	return c.MonthsAbbr[m-1]
}

// DayName returns the full name of d
func (c *Calendar) DayName(d time.Weekday) string {
	return c.Days[d]
}

// DayAbbr returns the abbreviated name of d
func (c *Calendar) DayAbbr(d time.Weekday) string {
	return c.DaysAbbr[d]
}

// Designator returns the AM or PM designator for the given hour (0-23)
func (c *Calendar) Designator(hour int) string {
	if hour < 12 {
		return c.AM
	}
	return c.PM
}

func (c *Calendar) validate(file string) error {
	switch {
	case len(c.Months) != 12, len(c.MonthsAbbr) != 12:
		return fmt.Errorf("%s: expected 12 month names", file)
	case len(c.Days) != 7, len(c.DaysAbbr) != 7:
		return fmt.Errorf("%s: expected 7 day names", file)
	case c.Locale == "":
		return fmt.Errorf("%s: missing locale", file)
	}
	return nil
}

type registry struct {
	calendars map[string]*Calendar
	tags      []language.Tag
	matcher   language.Matcher
}

var (
	loadOnce sync.Once
	loaded   *registry
	loadErr  error
)

// Load parses the embedded calendars. It is called lazily by Lookup; calling
// it directly surfaces a broken locale file as an error.
func Load() error {
	loadOnce.Do(func() {
		loaded, loadErr = loadRegistry()
	})
	return loadErr
}

func loadRegistry() (*registry, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, tkerrors.OperationFailed(tkerrors.ModuleI18n, "Load", err)
	}

	reg := &registry{calendars: make(map[string]*Calendar, len(entries))}
	// English first: the matcher falls back to its first tag
	reg.tags = append(reg.tags, language.English)

	for _, entry := range entries {
		file := path.Join("locales", entry.Name())
		data, err := localeFS.ReadFile(file)
		if err != nil {
			return nil, tkerrors.OperationFailed(tkerrors.ModuleI18n, "Load", err)
		}

		cal := &Calendar{}
		if _, err := toml.Decode(string(data), cal); err != nil {
			return nil, tkerrors.InvalidFormat(tkerrors.ModuleI18n, "Load", "locale file", err).
				WithDetail("file", file)
		}
		if err := cal.validate(file); err != nil {
			return nil, tkerrors.InvalidFormat(tkerrors.ModuleI18n, "Load", "locale file", err).
				WithDetail("file", file)
		}

		reg.calendars[cal.Locale] = cal
		if cal.Locale != "en" {
			reg.tags = append(reg.tags, language.MustParse(cal.Locale))
		}
	}

	if _, ok := reg.calendars["en"]; !ok {
		return nil, tkerrors.NewErrorBuilder(tkerrors.ModuleI18n).
			Operation("Load").
			Message("invariant calendar is missing").
			Build()
	}

	reg.matcher = language.NewMatcher(reg.tags)
	return reg, nil
}

// Invariant returns the culture-neutral (English) calendar
func Invariant() *Calendar {
	if err := Load(); err != nil {
		return fallbackCalendar
	}
	return loaded.calendars["en"]
}

// Lookup returns the calendar best matching locale. The locale may be a BCP 47
// tag ("de-AT"), a POSIX name ("fr_FR.UTF-8") or an Accept-Language list.
// Empty, "invariant" and unsupported locales yield the invariant calendar.
func Lookup(locale string) *Calendar {
	if err := Load(); err != nil {
		return fallbackCalendar
	}

	locale = NormalizeLocale(locale)
	if locale == "" || locale == InvariantLocale {
		return Invariant()
	}

	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return Invariant()
	}

	_, index, confidence := loaded.matcher.Match(tags...)
	if confidence == language.No {
		return Invariant()
	}
	base, _ := loaded.tags[index].Base()
	if cal, ok := loaded.calendars[base.String()]; ok {
		return cal
	}
	return Invariant()
}

// Available lists the locales with an embedded calendar
func Available() []string {
	if err := Load(); err != nil {
		return []string{"en"}
	}
	return mapx.SortedKeys(loaded.calendars)
}

// NormalizeLocale lower-cases the invariant keyword, strips a POSIX encoding
// suffix and converts underscores to hyphens
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if strings.EqualFold(locale, InvariantLocale) || locale == "C" || locale == "POSIX" {
		return InvariantLocale
	}
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

var fallbackCalendar = &Calendar{
	Locale:     "en",
	Name:       "English (invariant)",
	Months:     []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	MonthsAbbr: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Days:       []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	DaysAbbr:   []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	AM:         "AM",
	PM:         "PM",
}
