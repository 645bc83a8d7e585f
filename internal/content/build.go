package content

import (
	_ "embed"
	"slices"
	"strings"
	"time"

	"github.com/DaanHessen/gembooth-dash/internal/envfile"
	"github.com/DaanHessen/gembooth-dash/internal/mask"
)

// Environment variables read by the pages.
const (
	KeyGemini            = "VITE_GEMINI_API_KEY"
	KeyGeminiLegacy      = "GEMINI_API_KEY"
	KeySupabaseURL       = "VITE_SUPABASE_URL"
	KeySupabaseAnon      = "VITE_SUPABASE_ANON_KEY"
	KeySupabaseService   = "SUPABASE_SERVICE_ROLE_KEY"
	KeyStripePublishable = "VITE_STRIPE_PUBLISHABLE_KEY"
	KeyStripeSecret      = "STRIPE_SECRET_KEY"
	KeyStripeWebhook     = "STRIPE_WEBHOOK_SECRET"
)

const (
	statusSet        = "✅ Set"
	statusMissing    = "❌ Missing"
	statusConfigured = "✅ Configured"

	supabaseDashboard = "https://supabase.com/dashboard"
)

//go:embed structure.txt
var structureTree string

type ProjectInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack"`
	AIModel     string `json:"ai_model"`
	Repository  string `json:"repository"`
	LastUpdated string `json:"last_updated"`
}

type Stats struct {
	DatabaseTables int `json:"database_tables"`
	EdgeFunctions  int `json:"edge_functions"`
	StorageBuckets int `json:"storage_buckets"`
	AIModes        int `json:"ai_modes"`
}

type Status struct {
	Environment string `json:"environment"`
	Gemini      string `json:"gemini"`
	Supabase    string `json:"supabase"`
	Stripe      string `json:"stripe"`
}

type Overview struct {
	Project  ProjectInfo `json:"project"`
	Stats    Stats       `json:"stats"`
	Status   Status      `json:"status"`
	Features []Entry     `json:"features"`
}

// BuildOverview reports project facts and which integrations are configured.
func BuildOverview(env envfile.Map, now time.Time) Overview {
	return Overview{
		Project: ProjectInfo{
			Name:        projectName,
			Version:     projectVersion,
			Description: projectDescription,
			TechStack:   projectTechStack,
			AIModel:     projectAIModel,
			Repository:  projectRepository,
			LastUpdated: now.Format("2006-01-02 15:04:05"),
		},
		Stats: Stats{
			DatabaseTables: len(tables),
			EdgeFunctions:  len(edgeFunctions),
			StorageBuckets: len(buckets),
			AIModes:        len(modes),
		},
		Status: Status{
			Environment: configured(len(env) > 0),
			Gemini:      set(env.First(KeyGemini, KeyGeminiLegacy) != ""),
			Supabase:    set(env.Has(KeySupabaseURL)),
			Stripe:      set(env.Has(KeyStripePublishable)),
		},
		Features: slices.Clone(features),
	}
}

func set(ok bool) string {
	if ok {
		return statusSet
	}
	return statusMissing
}

func configured(ok bool) string {
	if ok {
		return statusConfigured
	}
	return statusMissing
}

type GeminiKeys struct {
	APIKey string `json:"api_key"`
	URL    string `json:"url"`
	Note   string `json:"note"`
}

type SupabaseKeys struct {
	URL            string `json:"url"`
	AnonKey        string `json:"anon_key"`
	ServiceRoleKey string `json:"service_role_key"`
	Warning        string `json:"warning"`
}

type StripeKeys struct {
	PublishableKey string `json:"publishable_key"`
	SecretKey      string `json:"secret_key"`
	WebhookSecret  string `json:"webhook_secret"`
}

type APIKeys struct {
	EnvFound bool         `json:"env_found"`
	Gemini   GeminiKeys   `json:"gemini"`
	Supabase SupabaseKeys `json:"supabase"`
	Stripe   StripeKeys   `json:"stripe"`
}

// BuildAPIKeys lists the configured keys, masked.
func BuildAPIKeys(env envfile.Map) APIKeys {
	gemini := env.First(KeyGemini, KeyGeminiLegacy)
	if gemini == "" {
		gemini = mask.NotSet
	}
	return APIKeys{
		EnvFound: len(env) > 0,
		Gemini: GeminiKeys{
			APIKey: mask.Secret(gemini),
			URL:    "https://ai.google.dev",
			Note:   "Can be " + KeyGemini + " or " + KeyGeminiLegacy,
		},
		Supabase: SupabaseKeys{
			URL:            env.Get(KeySupabaseURL, mask.NotSet),
			AnonKey:        mask.Value(env, KeySupabaseAnon),
			ServiceRoleKey: mask.Value(env, KeySupabaseService),
			Warning:        "Never expose the Service Role Key to the browser!",
		},
		Stripe: StripeKeys{
			PublishableKey: mask.Value(env, KeyStripePublishable),
			SecretKey:      mask.Value(env, KeyStripeSecret),
			WebhookSecret:  mask.Value(env, KeyStripeWebhook),
		},
	}
}

// ProjectRef extracts the project reference from a Supabase URL such as
// https://abcd.supabase.co. It returns "" for an empty URL.
func ProjectRef(supabaseURL string) string {
	ref := strings.TrimSpace(supabaseURL)
	ref = strings.Replace(ref, "https://", "", 1)
	ref = strings.Replace(ref, ".supabase.co", "", 1)
	return strings.TrimSuffix(ref, "/")
}

func projectURL(ref, suffix string) string {
	return supabaseDashboard + "/project/" + ref + suffix
}

type Supabase struct {
	ProjectRef     string  `json:"project_ref"`
	DashboardURL   string  `json:"dashboard_url"`
	Tables         []Entry `json:"tables"`
	StorageBuckets []Entry `json:"storage_buckets"`
	EdgeFunctions  []Entry `json:"edge_functions"`
}

// BuildSupabase describes the backend, pointing at the project when known.
func BuildSupabase(env envfile.Map) Supabase {
	ref := ProjectRef(env[KeySupabaseURL])
	s := Supabase{
		ProjectRef:     ref,
		Tables:         slices.Clone(tables),
		StorageBuckets: slices.Clone(buckets),
		EdgeFunctions:  slices.Clone(edgeFunctions),
	}
	if ref != "" {
		s.DashboardURL = projectURL(ref, "")
	}
	return s
}

type Webhook struct {
	URL    string `json:"url"`
	Events string `json:"events"`
}

type Stripe struct {
	TestCards []TestCard `json:"test_cards"`
	CardNote  string     `json:"card_note"`
	Tiers     []Tier     `json:"tiers"`
	Webhook   Webhook    `json:"webhook"`
}

func BuildStripe() Stripe {
	return Stripe{
		TestCards: slices.Clone(testCards),
		CardNote:  testCardNote,
		Tiers:     slices.Clone(tiers),
		Webhook:   Webhook{URL: webhookURL, Events: webhookEvents},
	}
}

type Commands struct {
	Development []Command `json:"development"`
	Supabase    []Command `json:"supabase"`
	Deployment  []Command `json:"deployment"`
	Stripe      []Command `json:"stripe"`
}

func BuildCommands() Commands {
	return Commands{
		Development: slices.Clone(devCommands),
		Supabase:    slices.Clone(supabaseCommands),
		Deployment:  slices.Clone(deployCommands),
		Stripe:      slices.Clone(stripeCommands),
	}
}

// All flattens the command groups in display order.
func (c Commands) All() []Command {
	out := make([]Command, 0, len(c.Development)+len(c.Supabase)+len(c.Deployment)+len(c.Stripe))
	out = append(out, c.Development...)
	out = append(out, c.Supabase...)
	out = append(out, c.Deployment...)
	return append(out, c.Stripe...)
}

type Links struct {
	Supabase []Link `json:"supabase"`
	Stripe   []Link `json:"stripe"`
	External []Link `json:"external"`
}

// BuildLinks returns dashboards, specific to the Supabase project when its
// URL is configured.
func BuildLinks(env envfile.Map) Links {
	ref := ProjectRef(env[KeySupabaseURL])
	supa := []Link{{"Dashboard", supabaseDashboard}}
	if ref != "" {
		supa = []Link{
			{"Dashboard", projectURL(ref, "")},
			{"Database", projectURL(ref, "/editor")},
			{"Storage", projectURL(ref, "/storage/buckets")},
			{"Edge Functions", projectURL(ref, "/functions")},
			{"Authentication", projectURL(ref, "/auth/users")},
			{"API Docs", projectURL(ref, "/api")},
		}
	}
	return Links{Supabase: supa, Stripe: slices.Clone(stripeLinks), External: slices.Clone(externalLinks)}
}

type Structure struct {
	Tree string `json:"tree"`
}

func BuildStructure() Structure { return Structure{Tree: strings.TrimRight(structureTree, "\n")} }

type AIModes struct {
	Modes []Mode `json:"modes"`
}

func BuildAIModes() AIModes { return AIModes{Modes: slices.Clone(modes)} }

type Troubleshooting struct {
	Issues []Issue `json:"issues"`
}

func BuildTroubleshooting() Troubleshooting { return Troubleshooting{Issues: slices.Clone(issues)} }
