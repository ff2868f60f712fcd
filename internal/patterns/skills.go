// Package patterns holds the static keyword vocabularies and compiled regular
// expressions used by the resume analyzers. Everything here is built once at
// package init and is read-only afterwards, so it is safe for concurrent use
// across requests.
package patterns

import "regexp"

// technicalSkillGroups lists known technical skill keywords by domain.
// Matching is case-insensitive, so entries are kept lowercase.
var technicalSkillGroups = map[string][]string{
	"languages": {
		"javascript", "typescript", "python", "java", "c++", "c#", "ruby", "go", "rust",
		"php", "swift", "kotlin", "scala", "perl", "r", "matlab", "sql", "bash", "shell",
		"dart", "elixir", "haskell", "lua", "objective-c", "groovy", "powershell",
		"assembly", "vb.net", "fortran", "cobol", "clojure", "f#", "erlang",
	},
	"frontend": {
		"react", "angular", "vue", "svelte", "next.js", "nuxt", "gatsby", "remix",
		"ember", "backbone", "jquery", "redux", "mobx", "recoil", "zustand",
		"react native", "ionic", "cordova", "electron", "flutter", "xamarin",
		"alpine.js", "htmx", "astro", "solid.js", "preact", "lit", "polymer",
	},
	"backend": {
		"express", "fastapi", "django", "flask", "spring", "spring boot", "laravel",
		"rails", "ruby on rails", "asp.net", "node.js", "nest.js", "fastify", "koa",
		"gin", "echo", "fiber", "actix", "rocket", "phoenix", "play", "ktor",
		"strapi", "adonis", "sails", "loopback", "hapi",
	},
	"datascience": {
		"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy", "scipy",
		"matplotlib", "seaborn", "plotly", "jupyter", "anaconda", "spark", "pyspark",
		"hadoop", "tableau", "power bi", "r studio", "stata", "spss", "sas",
		"opencv", "nltk", "spacy", "hugging face", "langchain", "xgboost", "lightgbm",
	},
	"cloud": {
		"aws", "azure", "gcp", "google cloud", "heroku", "vercel", "netlify", "digitalocean",
		"docker", "kubernetes", "k8s", "jenkins", "gitlab", "github", "bitbucket",
		"terraform", "ansible", "chef", "puppet", "vagrant", "cloudformation",
		"circleci", "travis ci", "github actions", "azure devops", "bamboo",
		"prometheus", "grafana", "datadog", "new relic", "splunk", "elk stack",
	},
	"buildtools": {
		"webpack", "vite", "rollup", "parcel", "esbuild", "turbopack", "babel",
		"gulp", "grunt", "browserify", "swc", "rome", "npm", "yarn", "pnpm", "bun",
	},
	"testing": {
		"jest", "mocha", "chai", "jasmine", "vitest", "cypress", "playwright",
		"selenium", "puppeteer", "testcafe", "webdriver", "karma", "protractor",
		"pytest", "unittest", "junit", "testng", "rspec", "minitest", "phpunit",
		"enzyme", "react testing library", "vue test utils", "storybook", "chromatic",
	},
	"databases": {
		"mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch",
		"cassandra", "oracle", "sql server", "sqlite", "dynamodb", "firebase",
		"supabase", "mariadb", "couchdb", "neo4j", "influxdb", "timescaledb",
		"cockroachdb", "planetscale", "fauna", "prisma", "typeorm", "sequelize",
		"mongoose", "knex", "drizzle", "graphql", "apollo", "hasura", "postgraphile",
	},
	"api": {
		"rest api", "graphql", "grpc", "soap", "websocket", "webhooks",
		"postman", "insomnia", "swagger", "openapi", "apigateway", "kong",
		"apollo server", "apollo client", "relay", "urql", "axios", "fetch",
	},
	"design": {
		"figma", "sketch", "adobe xd", "invision", "zeplin", "framer", "principle",
		"photoshop", "illustrator", "canva", "affinity designer", "blender",
	},
	"projectmgmt": {
		"jira", "confluence", "trello", "asana", "monday", "notion", "clickup",
		"linear", "shortcut", "basecamp", "slack", "teams", "discord", "zoom",
	},
	"css": {
		"tailwind", "tailwind css", "bootstrap", "material ui", "mui", "chakra ui",
		"sass", "scss", "less", "stylus", "postcss", "css modules", "styled components",
		"emotion", "bulma", "foundation", "semantic ui", "ant design", "mantine",
	},
	"mobile": {
		"react native", "flutter", "swift", "swiftui", "kotlin", "android",
		"ios", "xcode", "android studio", "expo", "ionic", "capacitor",
	},
	"concepts": {
		"agile", "scrum", "kanban", "devops", "ci/cd", "tdd", "bdd", "ddd",
		"microservices", "monolith", "serverless", "jamstack", "headless cms",
		"cloud computing", "machine learning", "deep learning", "data science",
		"big data", "blockchain", "web3", "cryptocurrency", "nft", "defi",
		"cybersecurity", "penetration testing", "ethical hacking", "soc",
		"responsive design", "accessibility", "wcag", "a11y", "performance optimization",
		"seo", "ui/ux", "user experience", "user interface", "api design",
		"restful", "solid principles", "design patterns", "clean code", "refactoring",
		"pair programming", "code review", "version control", "git flow",
	},
	"softskills": {
		"leadership", "team lead", "mentoring", "coaching", "communication",
		"collaboration", "problem solving", "critical thinking", "analytical",
		"time management", "project management", "stakeholder management",
		"presentation", "documentation", "technical writing", "cross-functional",
	},
}

// groupOrder fixes the flattening order so TechnicalSkills is deterministic.
var groupOrder = []string{
	"languages", "frontend", "backend", "datascience", "cloud", "buildtools",
	"testing", "databases", "api", "design", "projectmgmt", "css", "mobile",
	"concepts", "softskills",
}

// KeywordPattern pairs a vocabulary keyword with its compiled word-boundary matcher.
type KeywordPattern struct {
	Keyword string
	Pattern *regexp.Regexp
}

var technicalSkillPatterns []KeywordPattern

func init() {
	seen := make(map[string]bool)
	for _, group := range groupOrder {
		for _, skill := range technicalSkillGroups[group] {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			technicalSkillPatterns = append(technicalSkillPatterns, KeywordPattern{
				Keyword: skill,
				Pattern: compileKeyword(skill),
			})
		}
	}
}

// compileKeyword builds a case-insensitive word-boundary matcher for a keyword.
func compileKeyword(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// TechnicalSkills returns the flattened, deduplicated skill vocabulary with
// precompiled matchers, in fixed enumeration order.
func TechnicalSkills() []KeywordPattern {
	return technicalSkillPatterns
}

// TechnicalSkillGroup returns the keywords for a single vocabulary group.
// Returns nil for unknown group names.
func TechnicalSkillGroup(name string) []string {
	return technicalSkillGroups[name]
}
