// Package entities extracts structured resume fields from classified
// section text. Every extractor takes both the full document text and
// the section span so it can fall back when classification missed.
package entities

// Job-title vocabulary shared by the experience extractor and the
// section fallback scoring.
var jobTitleWords = []string{
	"engineer", "developer", "programmer", "architect",
	"manager", "director", "lead", "head", "chief", "officer",
	"analyst", "consultant", "specialist", "coordinator",
	"administrator", "designer", "scientist", "researcher",
	"intern", "associate", "assistant", "representative",
	"technician", "supervisor", "executive", "president",
	"founder", "owner", "principal", "senior", "junior",
}

// Action verbs that open accomplishment bullets.
var actionVerbs = []string{
	"achieved", "administered", "analyzed", "built", "collaborated",
	"created", "delivered", "designed", "developed", "directed",
	"drove", "established", "implemented", "improved", "increased",
	"launched", "led", "maintained", "managed", "mentored",
	"optimized", "oversaw", "owned", "reduced", "resolved",
	"shipped", "spearheaded", "streamlined", "supported", "wrote",
}

var degreeKeywords = []string{
	"bachelor", "master", "doctor", "ph.d", "phd", "mba",
	"b.s.", "bs", "b.a.", "ba", "m.s.", "ms", "m.a.", "ma",
	"b.sc", "bsc", "m.sc", "msc", "b.eng", "beng", "m.eng", "meng",
	"associate degree", "diploma", "certificate",
}

var institutionKeywords = []string{
	"university", "college", "institute", "school",
	"academy", "polytechnic", "conservatory",
}

// skillFamilies groups known skills by domain, in priority order.
// Earlier families rank higher when skills are assembled.
type skillFamily struct {
	Name   string
	Skills []string
}

var skillFamilies = []skillFamily{
	{Name: "languages", Skills: []string{
		"python", "java", "javascript", "typescript", "go", "golang",
		"c", "c++", "c#", "ruby", "php", "swift", "kotlin", "rust",
		"scala", "r", "matlab", "perl", "objective-c", "dart",
		"sql", "html", "css", "bash", "powershell",
	}},
	{Name: "frameworks", Skills: []string{
		"react", "angular", "vue", "svelte", "next.js", "node.js",
		"express", "django", "flask", "fastapi", "spring", "spring boot",
		"rails", "laravel", ".net", "asp.net", "gin", "pandas",
		"numpy", "tensorflow", "pytorch", "scikit-learn", "keras",
	}},
	{Name: "infrastructure", Skills: []string{
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"terraform", "ansible", "jenkins", "circleci", "github actions",
		"linux", "nginx", "apache", "serverless", "lambda",
	}},
	{Name: "data", Skills: []string{
		"postgresql", "postgres", "mysql", "sqlite", "mongodb",
		"redis", "elasticsearch", "kafka", "rabbitmq", "spark",
		"hadoop", "snowflake", "tableau", "power bi", "airflow",
	}},
	{Name: "practices", Skills: []string{
		"agile", "scrum", "kanban", "ci/cd", "tdd", "devops",
		"microservices", "rest", "graphql", "grpc", "oauth",
		"git", "jira", "project management", "data analysis",
		"machine learning", "deep learning", "nlp",
	}},
}

const maxSkills = 50
