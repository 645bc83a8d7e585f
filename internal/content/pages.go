// Package content holds the dashboard pages as data. Every shell (the
// interactive terminal, the printer and the HTTP API) renders from here.
package content

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/DaanHessen/gembooth-dash/internal/envfile"
)

// PageID names a dashboard page.
type PageID string

const (
	PageOverview        PageID = "overview"
	PageAPIKeys         PageID = "api-keys"
	PageSupabase        PageID = "supabase"
	PageStripe          PageID = "stripe"
	PageCommands        PageID = "commands"
	PageLinks           PageID = "links"
	PageStructure       PageID = "structure"
	PageAIModes         PageID = "ai-modes"
	PageTroubleshooting PageID = "troubleshooting"
)

// Page describes one entry of the dashboard menu.
type Page struct {
	ID    PageID `json:"id"`
	Key   string `json:"key"`
	Icon  string `json:"icon"`
	Short string `json:"short"`
	Title string `json:"title"`
}

var pages = []Page{
	{PageOverview, "1", "📊", "Overview", "Project Overview"},
	{PageAPIKeys, "2", "🔑", "API Keys", "Environment Variables & API Keys"},
	{PageSupabase, "3", "🗄️", "Supabase", "Supabase Configuration"},
	{PageStripe, "4", "💳", "Stripe", "Stripe Integration"},
	{PageCommands, "5", "⚡", "Commands", "Quick Commands"},
	{PageLinks, "6", "🔗", "Quick Links", "Quick Links & Dashboards"},
	{PageStructure, "7", "📁", "Structure", "Project Structure"},
	{PageAIModes, "8", "🎨", "AI Modes", "AI Transformation Modes"},
	{PageTroubleshooting, "9", "🔧", "Troubleshoot", "Troubleshooting Guide"},
}

// ErrUnknownPage is returned for ids that name no page.
var ErrUnknownPage = errors.New("unknown page")

// Pages returns the pages in menu order.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// Lookup finds a page by id or menu key, case-insensitively.
func Lookup(idOrKey string) (Page, bool) {
	q := strings.ToLower(strings.TrimSpace(idOrKey))
	for _, p := range pages {
		if string(p.ID) == q || p.Key == q {
			return p, true
		}
	}
	return Page{}, false
}

// Build returns the payload for page id, built from env.
func Build(id PageID, env envfile.Map, now time.Time) (any, error) {
	switch id {
	case PageOverview:
		return BuildOverview(env, now), nil
	case PageAPIKeys:
		return BuildAPIKeys(env), nil
	case PageSupabase:
		return BuildSupabase(env), nil
	case PageStripe:
		return BuildStripe(), nil
	case PageCommands:
		return BuildCommands(), nil
	case PageLinks:
		return BuildLinks(env), nil
	case PageStructure:
		return BuildStructure(), nil
	case PageAIModes:
		return BuildAIModes(), nil
	case PageTroubleshooting:
		return BuildTroubleshooting(), nil
	}
	return nil, errors.Wrapf(ErrUnknownPage, "%q", id)
}
