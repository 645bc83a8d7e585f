package content

// Literal reference data for the GemBooth project. Counts shown on the
// overview are derived from these lists.

const (
	projectName        = "GemBooth"
	projectVersion     = "2.0.0"
	projectDescription = "AI-powered photo booth with Google Gemini API"
	projectTechStack   = "React 18 + Vite + Supabase + Stripe + Gemini AI"
	projectAIModel     = "Google Gemini 2.5 Flash Image Preview"
	projectRepository  = "Local Project"
)

// Entry is a named item with a short description.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Command is a shell command with what it does.
type Command struct {
	Description string `json:"description"`
	Command     string `json:"command"`
}

// Link is a labelled URL.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Tier is a subscription tier.
type Tier struct {
	Name   string `json:"name"`
	Price  string `json:"price"`
	Limits string `json:"limits"`
}

// TestCard is a Stripe test card number.
type TestCard struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Mode is an AI transformation mode.
type Mode struct {
	Emoji       string `json:"emoji"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Issue is a known problem with its fixes.
type Issue struct {
	Problem   string   `json:"problem"`
	Solutions []string `json:"solutions"`
}

var features = []Entry{
	{"Gallery View", "Browse all photos and GIFs"},
	{"Batch Upload", "Upload multiple photos at once"},
	{"Favorite Modes", "Star your favorite AI modes"},
	{"Demo Mode", "Try app without signup"},
	{"Welcome Tutorial", "Onboarding for new users"},
	{"Legal Pages", "Privacy, Terms, Content Policy"},
	{"Usage Tracking", "Real-time usage limits display"},
}

var tables = []Entry{
	{"profiles", "User profiles (username, avatar, bio)"},
	{"photos", "Photo metadata (input_url, output_url, mode, prompt)"},
	{"gifs", "Generated GIFs (gif_url, photo_ids array)"},
	{"usage_stats", "User analytics (photos_created, gifs_created)"},
	{"favorite_modes", "User's favorite AI modes"},
	{"subscription_tiers", "Tier definitions (free, pro, premium)"},
	{"subscriptions", "User subscriptions (stripe_subscription_id)"},
	{"usage_limits", "Monthly limits and current usage"},
	{"payments", "Payment history"},
}

var buckets = []Entry{
	{"user-photos", "Input/output images (10MB limit per file)"},
	{"user-gifs", "Generated GIFs (50MB limit per file)"},
}

var edgeFunctions = []Entry{
	{"process-image", "Transform photos with Gemini API"},
	{"create-gif", "Server-side GIF generation"},
	{"create-checkout-session", "Stripe checkout initialization"},
	{"create-portal-session", "Stripe customer portal"},
	{"stripe-webhook", "Handle Stripe webhook events"},
}

var testCards = []TestCard{
	{"Success", "4242 4242 4242 4242"},
	{"Decline", "4000 0000 0000 0002"},
	{"3D Secure", "4000 0025 0000 3155"},
}

const testCardNote = "Use any future expiry, any CVC, any ZIP"

var tiers = []Tier{
	{"Free", "$0/month", "10 photos, 2 GIFs/month"},
	{"Pro", "$9.99/month", "100 photos, 20 GIFs/month"},
	{"Premium", "$19.99/month", "Unlimited photos & GIFs"},
}

const (
	webhookURL    = "https://[project-ref].supabase.co/functions/v1/stripe-webhook"
	webhookEvents = "customer.subscription.*, invoice.*, payment_intent.*"
)

var devCommands = []Command{
	{"Start development server", "npm run dev"},
	{"Build for production", "npm run build"},
	{"Preview production build", "npm run preview"},
}

var supabaseCommands = []Command{
	{"Link to Supabase project", "supabase link --project-ref [YOUR_REF]"},
	{"Apply database migrations", "supabase db push"},
	{"Reset database (DANGER!)", "supabase db reset"},
	{"Deploy all Edge Functions", "supabase functions deploy"},
	{"Deploy specific function", "supabase functions deploy [function-name]"},
	{"View function logs", "supabase functions logs [function-name]"},
	{"Set environment secret", "supabase secrets set KEY=value"},
	{"List all secrets", "supabase secrets list"},
}

var deployCommands = []Command{
	{"Deploy to Vercel preview", "vercel"},
	{"Deploy to production", "vercel --prod"},
}

var stripeCommands = []Command{
	{"Fetch Stripe product prices", "node get-stripe-prices.js"},
	{"Test webhook locally", "stripe listen --forward-to localhost:54321/functions/v1/stripe-webhook"},
}

var stripeLinks = []Link{
	{"Dashboard", "https://dashboard.stripe.com"},
	{"Test Mode", "https://dashboard.stripe.com/test/dashboard"},
	{"API Keys", "https://dashboard.stripe.com/test/apikeys"},
	{"Webhooks", "https://dashboard.stripe.com/test/webhooks"},
	{"Products", "https://dashboard.stripe.com/test/products"},
	{"Customers", "https://dashboard.stripe.com/test/customers"},
}

var externalLinks = []Link{
	{"Gemini API Console", "https://ai.google.dev"},
	{"Vercel Dashboard", "https://vercel.com/dashboard"},
	{"Supabase Docs", "https://supabase.com/docs"},
	{"Stripe Docs", "https://stripe.com/docs"},
	{"React Docs", "https://react.dev"},
	{"Vite Docs", "https://vitejs.dev"},
}

var modes = []Mode{
	{"🎨", "Renaissance", "Classical renaissance painting"},
	{"😃", "Cartoon", "Cute simple cartoon style"},
	{"🏛️", "Statue", "Classical marble sculpture"},
	{"🍌", "Banana", "Person wearing banana costume"},
	{"✨", "80s", "Retro 1980s yearbook photo"},
	{"🎩", "19th Century", "Victorian daguerreotype"},
	{"🍣", "Anime", "Photorealistic anime character"},
	{"🌈", "Psychedelic", "1960s psychedelic poster art"},
	{"🎮", "8-bit", "Minimalist pixel art (80x80)"},
	{"🧔🏻", "Big Beard", "Epic huge beard transformation"},
	{"💥", "Comic Book", "Classic comic panel style"},
	{"👵🏻", "Old", "Aged 60+ years transformation"},
	{"🎬", "Film Noir", "1940s dramatic black & white"},
	{"🧱", "Claymation", "Stop-motion clay character"},
	{"🤖", "Cyberpunk", "Futuristic neon dystopia"},
	{"🖼️", "Oil Painting", "Classical oil with brushstrokes"},
	{"🎨", "Pop Art", "Andy Warhol style"},
	{"🧟", "Zombie", "Horror movie undead"},
	{"🦸", "Superhero", "Comic book hero costume"},
	{"⚔️", "Medieval Knight", "Full plate armor warrior"},
	{"⛪", "Stained Glass", "Gothic cathedral window"},
	{"💧", "Watercolor", "Soft watercolor painting"},
}

var issues = []Issue{
	{"Missing environment variables", []string{
		"Ensure .env.local exists and is properly formatted",
		"Restart dev server after changing .env.local",
		"Check all VITE_ prefixed variables are set",
	}},
	{"Edge Function errors", []string{
		"Check logs: supabase functions logs [function-name]",
		"Verify secrets: supabase secrets list",
		"Ensure CORS headers are included in responses",
		"Redeploy after changing secrets",
	}},
	{"Photos not saving to Supabase", []string{
		"Verify user is authenticated",
		"Check RLS policies in Supabase Dashboard allow insert",
		"Check browser Network tab for 403/401 errors",
		"Verify storage bucket exists and has proper policies",
	}},
	{"Stripe webhooks not working", []string{
		"Verify webhook URL points to Edge Function",
		"Check webhook secret is set in Supabase",
		"View webhook delivery in Stripe Dashboard → Webhooks",
		"Check stripe-webhook function logs for errors",
	}},
	{"Stripe Customer Portal empty", []string{
		"Switch Stripe Dashboard to TEST mode",
		"Verify products added to portal config",
		"Check portal is activated",
		"Test products only visible in test mode",
	}},
	{"Webcam not working", []string{
		"Ensure browser has camera permissions",
		"Try different browser (Chrome/Edge recommended)",
		"Check if camera is in use by another application",
		"Test in HTTPS environment (not HTTP)",
	}},
}
