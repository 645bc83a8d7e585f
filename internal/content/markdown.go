package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/DaanHessen/gembooth-dash/internal/envfile"
)

// Markdown renders page id as a Markdown document.
func Markdown(id PageID, env envfile.Map, now time.Time) (string, error) {
	page, ok := Lookup(string(id))
	if !ok {
		return "", errors.Wrapf(ErrUnknownPage, "%q", id)
	}
	payload, err := Build(id, env, now)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", page.Icon, page.Title)
	switch p := payload.(type) {
	case Overview:
		writeOverview(&b, p)
	case APIKeys:
		writeAPIKeys(&b, p)
	case Supabase:
		writeSupabase(&b, p)
	case Stripe:
		writeStripe(&b, p)
	case Commands:
		writeCommands(&b, p)
	case Links:
		writeLinks(&b, p)
	case Structure:
		b.WriteString("```text\n" + p.Tree + "\n```\n")
	case AIModes:
		for _, m := range p.Modes {
			fmt.Fprintf(&b, "- %s **%s**: %s\n", m.Emoji, m.Name, m.Description)
		}
	case Troubleshooting:
		for _, is := range p.Issues {
			fmt.Fprintf(&b, "## ❗ %s\n\n", is.Problem)
			for _, s := range is.Solutions {
				fmt.Fprintf(&b, "- %s\n", s)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// AllMarkdown renders every page in menu order.
func AllMarkdown(env envfile.Map, now time.Time) (string, error) {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		md, err := Markdown(p.ID, env, now)
		if err != nil {
			return "", err
		}
		parts = append(parts, md)
	}
	return strings.Join(parts, "\n---\n\n"), nil
}

func info(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- **%s:** %s\n", label, value)
}

func writeOverview(b *strings.Builder, o Overview) {
	b.WriteString("## 📋 Project Information\n\n")
	info(b, "Project Name", o.Project.Name)
	info(b, "Description", o.Project.Description)
	info(b, "Version", o.Project.Version)
	info(b, "Tech Stack", o.Project.TechStack)
	info(b, "AI Model", o.Project.AIModel)
	info(b, "Repository", o.Project.Repository)
	info(b, "Last Updated", o.Project.LastUpdated)

	b.WriteString("\n## 📊 Quick Statistics\n\n")
	info(b, "Database Tables", fmt.Sprintf("%d tables", o.Stats.DatabaseTables))
	info(b, "Edge Functions", fmt.Sprintf("%d functions", o.Stats.EdgeFunctions))
	info(b, "Storage Buckets", fmt.Sprintf("%d buckets", o.Stats.StorageBuckets))
	info(b, "AI Modes", fmt.Sprintf("%d modes", o.Stats.AIModes))

	b.WriteString("\n## 🔍 Configuration Status\n\n")
	info(b, "Environment", o.Status.Environment)
	info(b, "Gemini API", o.Status.Gemini)
	info(b, "Supabase", o.Status.Supabase)
	info(b, "Stripe", o.Status.Stripe)

	b.WriteString("\n## ✨ Recent Features\n\n")
	for _, f := range o.Features {
		info(b, f.Name, f.Description)
	}
}

func writeAPIKeys(b *strings.Builder, k APIKeys) {
	if !k.EnvFound {
		b.WriteString("> ⚠️ No .env.local file found (or it is empty).\n\n")
	}
	b.WriteString("## 🤖 Google Gemini AI\n\n")
	info(b, "API Key", "`"+k.Gemini.APIKey+"`")
	fmt.Fprintf(b, "\n📝 %s. Get a key at %s\n", k.Gemini.Note, k.Gemini.URL)

	b.WriteString("\n## 🗄️ Supabase Configuration\n\n")
	info(b, "URL", k.Supabase.URL)
	info(b, "Anon Key", "`"+k.Supabase.AnonKey+"`")
	info(b, "Service Role Key", "`"+k.Supabase.ServiceRoleKey+"`")
	fmt.Fprintf(b, "\n⚠️ %s\n", k.Supabase.Warning)

	b.WriteString("\n## 💳 Stripe Payment\n\n")
	info(b, "Publishable Key", "`"+k.Stripe.PublishableKey+"`")
	info(b, "Secret Key", "`"+k.Stripe.SecretKey+"`")
	info(b, "Webhook Secret", "`"+k.Stripe.WebhookSecret+"`")
}

func writeEntries(b *strings.Builder, title string, entries []Entry) {
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, e := range entries {
		fmt.Fprintf(b, "- `%s`: %s\n", e.Name, e.Description)
	}
}

func writeSupabase(b *strings.Builder, s Supabase) {
	if s.ProjectRef != "" {
		info(b, "Project Reference", s.ProjectRef)
		info(b, "Dashboard URL", s.DashboardURL)
	} else {
		b.WriteString("Project reference unknown: set " + KeySupabaseURL + " in .env.local.\n")
	}
	writeEntries(b, "Database Tables", s.Tables)
	writeEntries(b, "Storage Buckets", s.StorageBuckets)
	writeEntries(b, "Edge Functions", s.EdgeFunctions)
}

func writeStripe(b *strings.Builder, s Stripe) {
	b.WriteString("## 🧪 Test Credit Cards\n\n")
	for _, c := range s.TestCards {
		info(b, c.Name, "`"+c.Number+"`")
	}
	fmt.Fprintf(b, "\n%s\n", s.CardNote)

	b.WriteString("\n## 💰 Subscription Tiers\n\n")
	b.WriteString("| Tier | Price | Limits |\n|---|---|---|\n")
	for _, t := range s.Tiers {
		fmt.Fprintf(b, "| %s | %s | %s |\n", t.Name, t.Price, t.Limits)
	}

	b.WriteString("\n## 🪝 Webhook Endpoints\n\n")
	info(b, "URL", s.Webhook.URL)
	info(b, "Events", "`"+s.Webhook.Events+"`")
}

func writeCommandGroup(b *strings.Builder, title string, cmds []Command) {
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, c := range cmds {
		fmt.Fprintf(b, "- %s\n\n  ```sh\n  $ %s\n  ```\n\n", c.Description, c.Command)
	}
}

func writeCommands(b *strings.Builder, c Commands) {
	writeCommandGroup(b, "Development", c.Development)
	writeCommandGroup(b, "Supabase", c.Supabase)
	writeCommandGroup(b, "Deployment", c.Deployment)
	writeCommandGroup(b, "Stripe", c.Stripe)
}

func writeLinkGroup(b *strings.Builder, title string, links []Link) {
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, l := range links {
		fmt.Fprintf(b, "- [%s](%s)\n", l.Name, l.URL)
	}
	b.WriteString("\n")
}

func writeLinks(b *strings.Builder, l Links) {
	writeLinkGroup(b, "Supabase Dashboards", l.Supabase)
	writeLinkGroup(b, "Stripe Dashboards", l.Stripe)
	writeLinkGroup(b, "External Resources", l.External)
}
